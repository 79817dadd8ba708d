package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/natarchives/visitordesk/backend/internal/domain"
	"github.com/natarchives/visitordesk/backend/internal/utils"
)

func (h *Handler) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.badRequest(w, r, errors.New("date query parameter is required"))
		return
	}
	if err := utils.ValidateDateKey(date); err != nil {
		h.badRequest(w, r, errors.New("date must be formatted as YYYY-MM-DD"))
		return
	}

	summary, err := h.repository.GetDailyVisitorSummary(date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "daily summary computed", summary)
}

// ExportDailySummary renders the summary as a plain-text report for download
// and printing at the front desk.
func (h *Handler) ExportDailySummary(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.badRequest(w, r, errors.New("date query parameter is required"))
		return
	}
	if err := utils.ValidateDateKey(date); err != nil {
		h.badRequest(w, r, errors.New("date must be formatted as YYYY-MM-DD"))
		return
	}

	summary, err := h.repository.GetDailyVisitorSummary(date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	visitors, err := h.repository.GetVisitorsByDate(date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	avgDuration, ok := utils.AverageVisitDuration(visitors)
	if !ok {
		avgDuration = "unavailable"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "DAILY VISITOR SUMMARY — %s\n\n", date)
	fmt.Fprintf(&b, "Total visitors:   %d\n", summary.TotalVisitors)
	fmt.Fprintf(&b, "General visitors: %d\n", summary.GeneralVisitors)
	fmt.Fprintf(&b, "Researchers:      %d\n", summary.Researchers)
	fmt.Fprintf(&b, "Average visit duration: %s\n\n", avgDuration)
	b.WriteString("Visits by department:\n")
	for _, dept := range domain.Departments {
		fmt.Fprintf(&b, "  %-20s %d\n", dept, summary.Departments[dept])
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=daily-summary-%s.txt", date))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(b.String())); err != nil {
		h.logInternalServerError(r, err)
	}
}
