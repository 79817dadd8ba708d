package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/natarchives/visitordesk/backend/internal/domain"
	"github.com/natarchives/visitordesk/backend/internal/repository"
	"github.com/natarchives/visitordesk/backend/internal/utils"
)

// GetVisitors lists visitor records, optionally narrowed by ?date, ?status
// and ?type. The filters are conjunctive and each one is optional.
func (h *Handler) GetVisitors(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	status := r.URL.Query().Get("status")
	visitorType := r.URL.Query().Get("type")

	if date != "" {
		if err := utils.ValidateDateKey(date); err != nil {
			h.badRequest(w, r, errors.New("date must be formatted as YYYY-MM-DD"))
			return
		}
	}
	if status != "" && status != string(domain.StatusCheckedIn) && status != string(domain.StatusCheckedOut) {
		h.badRequest(w, r, errors.New("status must be CheckedIn or CheckedOut"))
		return
	}
	if visitorType != "" && visitorType != string(domain.VisitorTypeGeneral) && visitorType != string(domain.VisitorTypeResearcher) {
		h.badRequest(w, r, errors.New("type must be General or Researcher"))
		return
	}

	visitors, err := h.repository.GetAllVisitors()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	filtered := make([]*domain.Visitor, 0, len(visitors))
	for _, v := range visitors {
		if date != "" && v.Date != date {
			continue
		}
		if status != "" && v.Status != domain.VisitStatus(status) {
			continue
		}
		if visitorType != "" && v.VisitorType != domain.VisitorType(visitorType) {
			continue
		}
		filtered = append(filtered, v)
	}

	h.successResponse(w, r, http.StatusOK, "visitors retrieved", filtered)
}

func (h *Handler) GetCheckedInVisitors(w http.ResponseWriter, r *http.Request) {
	visitors, err := h.repository.GetCheckedInVisitors()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "checked-in visitors retrieved", visitors)
}

func (h *Handler) GetVisitor(w http.ResponseWriter, r *http.Request) {
	visitor := r.Context().Value(VisitorCtx).(*domain.Visitor)
	h.successResponse(w, r, http.StatusOK, "visitor retrieved", visitor)
}

func (h *Handler) GetActiveVisitorByIDNumber(w http.ResponseWriter, r *http.Request) {
	idNumber := chi.URLParam(r, "idNumber")

	visitor, err := h.repository.GetActiveVisitorByIDNumber(idNumber)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.notFound(w, r, "no checked-in visitor with this id number")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, "visitor retrieved", visitor)
}

func (h *Handler) CheckInVisitor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName     string `json:"fullName" validate:"required"`
		IDNumber     string `json:"idNumber" validate:"required"`
		PhoneNumber  string `json:"phoneNumber" validate:"required"`
		VisitorType  string `json:"visitorType" validate:"required,oneof=General Researcher"`
		Destination  string `json:"destination" validate:"required"`
		TimeIn       string `json:"timeIn"`
		Institute    string `json:"institute"`
		ResearchArea string `json:"researchArea"`
		HomeAddress  string `json:"homeAddress"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if !domain.IsValidDepartment(req.Destination) {
		h.badRequest(w, r, errors.New("destination is not a known department"))
		return
	}

	// TimeIn comes from the front-desk form; default to now when absent
	timeIn := time.Now()
	if req.TimeIn != "" {
		parsed, err := time.Parse(time.RFC3339, req.TimeIn)
		if err != nil {
			h.badRequest(w, r, errors.New("timeIn must be an RFC 3339 timestamp"))
			return
		}
		timeIn = parsed
	}

	visitor := &domain.Visitor{
		FullName:     req.FullName,
		IDNumber:     req.IDNumber,
		PhoneNumber:  req.PhoneNumber,
		VisitorType:  domain.VisitorType(req.VisitorType),
		Destination:  req.Destination,
		TimeIn:       timeIn,
		Institute:    req.Institute,
		ResearchArea: req.ResearchArea,
		HomeAddress:  req.HomeAddress,
	}

	if err := h.repository.CreateVisitor(visitor); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyCheckedIn):
			h.conflict(w, r, "a visitor with this id number is already checked in")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusCreated, "visitor checked in", visitor)
}

// CheckOutVisitor stamps the current server time, never a client-supplied
// one, so departures cannot be backdated.
func (h *Handler) CheckOutVisitor(w http.ResponseWriter, r *http.Request) {
	visitor := r.Context().Value(VisitorCtx).(*domain.Visitor)

	updated, err := h.repository.CheckOutVisitor(visitor.ID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.notFound(w, r, "visitor not found")
		case errors.Is(err, repository.ErrAlreadyCheckedOut):
			h.conflict(w, r, "visitor is already checked out")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, "visitor checked out", updated)
}

func (h *Handler) UpdateResearcherFee(w http.ResponseWriter, r *http.Request) {
	visitor := r.Context().Value(VisitorCtx).(*domain.Visitor)

	var req struct {
		FeePaid      *bool  `json:"feePaid" validate:"required"`
		TicketNumber string `json:"ticketNumber" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	updated, err := h.repository.UpdateResearcherFee(visitor.ID, *req.FeePaid, req.TicketNumber)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.notFound(w, r, "visitor not found")
		case errors.Is(err, repository.ErrNotResearcher):
			h.conflict(w, r, "fee payment applies to researchers only")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, "fee payment recorded", updated)
}
