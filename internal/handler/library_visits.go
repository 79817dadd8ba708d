package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/natarchives/visitordesk/backend/internal/domain"
	"github.com/natarchives/visitordesk/backend/internal/repository"
	"github.com/natarchives/visitordesk/backend/internal/utils"
)

func (h *Handler) GetLibraryVisits(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	if date != "" {
		if err := utils.ValidateDateKey(date); err != nil {
			h.badRequest(w, r, errors.New("date must be formatted as YYYY-MM-DD"))
			return
		}

		visits, err := h.repository.GetLibraryVisitsByDate(date)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		h.successResponse(w, r, http.StatusOK, "library visits retrieved", visits)
		return
	}

	visits, err := h.repository.GetAllLibraryVisits()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "library visits retrieved", visits)
}

func (h *Handler) GetCheckedInLibraryVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := h.repository.GetCheckedInLibraryVisits()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "checked-in library visits retrieved", visits)
}

func (h *Handler) GetLibraryVisit(w http.ResponseWriter, r *http.Request) {
	visit := r.Context().Value(LibraryVisitCtx).(*domain.LibraryVisit)
	h.successResponse(w, r, http.StatusOK, "library visit retrieved", visit)
}

func (h *Handler) GetLibraryVisitsByVisitor(w http.ResponseWriter, r *http.Request) {
	visitorIDParam := chi.URLParam(r, "visitorId")
	visitorID, err := strconv.ParseInt(visitorIDParam, 10, 64)
	if err != nil {
		h.badRequest(w, r, errors.New("invalid visitor id"))
		return
	}

	visits, err := h.repository.GetLibraryVisitsByVisitorID(visitorID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "library visits retrieved", visits)
}

func (h *Handler) GetActiveLibraryVisitByTicket(w http.ResponseWriter, r *http.Request) {
	ticketNumber := chi.URLParam(r, "ticketNumber")

	visit, err := h.repository.GetActiveLibraryVisitByTicket(ticketNumber)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.notFound(w, r, "no checked-in library visit with this ticket number")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, "library visit retrieved", visit)
}

// CheckInLibraryVisit opens a reading-room session. The visitor reference is
// taken as given; verifying that it points at a fee-paid researcher is the
// front desk's job, mirroring the paper register this replaces.
func (h *Handler) CheckInLibraryVisit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VisitorID          int64  `json:"visitorId" validate:"required"`
		TicketNumber       string `json:"ticketNumber" validate:"required"`
		SpecificStudyArea  string `json:"specificStudyArea" validate:"required"`
		MaterialsRequested string `json:"materialsRequested"`
		ControlOfficer     string `json:"controlOfficer" validate:"required"`
		CheckInTime        string `json:"checkInTime"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	checkInTime := time.Now()
	if req.CheckInTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.CheckInTime)
		if err != nil {
			h.badRequest(w, r, errors.New("checkInTime must be an RFC 3339 timestamp"))
			return
		}
		checkInTime = parsed
	}

	visit := &domain.LibraryVisit{
		VisitorID:          req.VisitorID,
		TicketNumber:       req.TicketNumber,
		SpecificStudyArea:  req.SpecificStudyArea,
		MaterialsRequested: req.MaterialsRequested,
		ControlOfficer:     req.ControlOfficer,
		CheckInTime:        checkInTime,
	}

	if err := h.repository.CreateLibraryVisit(visit); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyCheckedIn):
			h.conflict(w, r, "this ticket number already has an open library visit")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusCreated, "library visit checked in", visit)
}

func (h *Handler) CheckOutLibraryVisit(w http.ResponseWriter, r *http.Request) {
	visit := r.Context().Value(LibraryVisitCtx).(*domain.LibraryVisit)

	var req struct {
		Notes string `json:"notes"`
	}

	// the checkout body is optional; an empty body means no notes
	if err := h.readJSON(r, &req); err != nil && r.ContentLength > 0 {
		h.badRequest(w, r, err)
		return
	}

	updated, err := h.repository.CheckOutLibraryVisit(visit.ID, time.Now(), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.notFound(w, r, "library visit not found")
		case errors.Is(err, repository.ErrAlreadyCheckedOut):
			h.conflict(w, r, "library visit is already checked out")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, "library visit checked out", updated)
}
