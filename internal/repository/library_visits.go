package repository

import (
	"time"

	"github.com/natarchives/visitordesk/backend/internal/domain"
	"github.com/natarchives/visitordesk/backend/internal/utils"
)

// CreateLibraryVisit mirrors visitor check-in. VisitorID is stored as given;
// whether it refers to an existing, fee-paid visitor is the caller's check.
func (r *Repository) CreateLibraryVisit(visit *domain.LibraryVisit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.libraryVisits {
		if v.TicketNumber == visit.TicketNumber && v.Status == domain.StatusCheckedIn {
			return ErrAlreadyCheckedIn
		}
	}

	visit.ID = r.nextLibraryVisitID
	r.nextLibraryVisitID++
	visit.Status = domain.StatusCheckedIn
	visit.CheckOutTime = nil
	visit.Date = utils.DateKey(visit.CheckInTime)
	visit.Version = 1

	r.libraryVisits[visit.ID] = *visit

	return nil
}

func (r *Repository) GetLibraryVisitByID(id int64) (*domain.LibraryVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	visit, ok := r.libraryVisits[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &visit, nil
}

func (r *Repository) GetActiveLibraryVisitByTicket(ticketNumber string) (*domain.LibraryVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id := int64(1); id < r.nextLibraryVisitID; id++ {
		v, ok := r.libraryVisits[id]
		if ok && v.TicketNumber == ticketNumber && v.Status == domain.StatusCheckedIn {
			return &v, nil
		}
	}

	return nil, ErrNotFound
}

func (r *Repository) GetAllLibraryVisits() ([]*domain.LibraryVisit, error) {
	return r.filterLibraryVisits(func(v *domain.LibraryVisit) bool { return true })
}

func (r *Repository) GetLibraryVisitsByDate(date string) ([]*domain.LibraryVisit, error) {
	return r.filterLibraryVisits(func(v *domain.LibraryVisit) bool { return v.Date == date })
}

func (r *Repository) GetLibraryVisitsByVisitorID(visitorID int64) ([]*domain.LibraryVisit, error) {
	return r.filterLibraryVisits(func(v *domain.LibraryVisit) bool { return v.VisitorID == visitorID })
}

func (r *Repository) GetCheckedInLibraryVisits() ([]*domain.LibraryVisit, error) {
	return r.filterLibraryVisits(func(v *domain.LibraryVisit) bool {
		return v.Status == domain.StatusCheckedIn
	})
}

func (r *Repository) filterLibraryVisits(keep func(*domain.LibraryVisit) bool) ([]*domain.LibraryVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	visits := make([]*domain.LibraryVisit, 0)
	for id := int64(1); id < r.nextLibraryVisitID; id++ {
		v, ok := r.libraryVisits[id]
		if !ok {
			continue
		}
		if keep(&v) {
			visit := v
			visits = append(visits, &visit)
		}
	}

	return visits, nil
}

// CheckOutLibraryVisit sets the checkout time and status. Notes given at
// checkout replace the stored ones; empty notes keep the prior value.
func (r *Repository) CheckOutLibraryVisit(id int64, checkOutTime time.Time, notes string) (*domain.LibraryVisit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	visit, ok := r.libraryVisits[id]
	if !ok {
		return nil, ErrNotFound
	}
	if visit.Status == domain.StatusCheckedOut {
		return nil, ErrAlreadyCheckedOut
	}

	visit.CheckOutTime = &checkOutTime
	visit.Status = domain.StatusCheckedOut
	if notes != "" {
		visit.Notes = notes
	}
	visit.Version++

	r.libraryVisits[id] = visit

	return &visit, nil
}
