package repository

import (
	"github.com/natarchives/visitordesk/backend/internal/domain"
)

// GetDailyVisitorSummary counts one calendar day of visitor records by type
// and destination. Every department key is present, zero-filled, even on a
// day with no visits; records routed to an unknown destination still count
// towards the totals but are dropped from the department tally.
func (r *Repository) GetDailyVisitorSummary(date string) (*domain.DailySummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary := &domain.DailySummary{
		Date:        date,
		Departments: make(map[string]int, len(domain.Departments)),
	}
	for _, dept := range domain.Departments {
		summary.Departments[dept] = 0
	}

	for _, v := range r.visitors {
		if v.Date != date {
			continue
		}

		summary.TotalVisitors++
		switch v.VisitorType {
		case domain.VisitorTypeGeneral:
			summary.GeneralVisitors++
		case domain.VisitorTypeResearcher:
			summary.Researchers++
		}

		if _, known := summary.Departments[v.Destination]; known {
			summary.Departments[v.Destination]++
		}
	}

	return summary, nil
}
