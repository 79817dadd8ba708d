package repository

import (
	"time"

	"github.com/natarchives/visitordesk/backend/internal/domain"
	"github.com/natarchives/visitordesk/backend/internal/utils"
)

// CreateVisitor assigns an id, marks the record CheckedIn and derives the
// date key from TimeIn. A second active record for the same id number is
// rejected so the active-visitor lookup always has a single answer.
func (r *Repository) CreateVisitor(visitor *domain.Visitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.visitors {
		if v.IDNumber == visitor.IDNumber && v.Status == domain.StatusCheckedIn {
			return ErrAlreadyCheckedIn
		}
	}

	visitor.ID = r.nextVisitorID
	r.nextVisitorID++
	visitor.Status = domain.StatusCheckedIn
	visitor.TimeOut = nil
	visitor.Date = utils.DateKey(visitor.TimeIn)
	visitor.Version = 1

	r.visitors[visitor.ID] = *visitor

	return nil
}

func (r *Repository) GetVisitorByID(id int64) (*domain.Visitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	visitor, ok := r.visitors[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &visitor, nil
}

// GetActiveVisitorByIDNumber returns the CheckedIn record for an id number.
// Checked-out records are invisible to this lookup, so an id number can be
// reused across visits.
func (r *Repository) GetActiveVisitorByIDNumber(idNumber string) (*domain.Visitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id := int64(1); id < r.nextVisitorID; id++ {
		v, ok := r.visitors[id]
		if ok && v.IDNumber == idNumber && v.Status == domain.StatusCheckedIn {
			return &v, nil
		}
	}

	return nil, ErrNotFound
}

func (r *Repository) GetAllVisitors() ([]*domain.Visitor, error) {
	return r.filterVisitors(func(v *domain.Visitor) bool { return true })
}

func (r *Repository) GetVisitorsByDate(date string) ([]*domain.Visitor, error) {
	return r.filterVisitors(func(v *domain.Visitor) bool { return v.Date == date })
}

func (r *Repository) GetVisitorsByStatus(status domain.VisitStatus) ([]*domain.Visitor, error) {
	return r.filterVisitors(func(v *domain.Visitor) bool { return v.Status == status })
}

func (r *Repository) GetVisitorsByTypeAndDate(visitorType domain.VisitorType, date string) ([]*domain.Visitor, error) {
	return r.filterVisitors(func(v *domain.Visitor) bool {
		return v.VisitorType == visitorType && v.Date == date
	})
}

func (r *Repository) GetVisitorsByDepartmentAndDate(department string, date string) ([]*domain.Visitor, error) {
	return r.filterVisitors(func(v *domain.Visitor) bool {
		return v.Destination == department && v.Date == date
	})
}

// GetCheckedInVisitors returns every active record regardless of date, for
// live occupancy counts.
func (r *Repository) GetCheckedInVisitors() ([]*domain.Visitor, error) {
	return r.GetVisitorsByStatus(domain.StatusCheckedIn)
}

func (r *Repository) filterVisitors(keep func(*domain.Visitor) bool) ([]*domain.Visitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	visitors := make([]*domain.Visitor, 0)
	for id := int64(1); id < r.nextVisitorID; id++ {
		v, ok := r.visitors[id]
		if !ok {
			continue
		}
		if keep(&v) {
			visitor := v
			visitors = append(visitors, &visitor)
		}
	}

	return visitors, nil
}

// CheckOutVisitor sets the checkout time and flips the status in one step.
// Checkout is terminal: a second attempt returns ErrAlreadyCheckedOut and
// leaves the record untouched.
func (r *Repository) CheckOutVisitor(id int64, timeOut time.Time) (*domain.Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	visitor, ok := r.visitors[id]
	if !ok {
		return nil, ErrNotFound
	}
	if visitor.Status == domain.StatusCheckedOut {
		return nil, ErrAlreadyCheckedOut
	}

	visitor.TimeOut = &timeOut
	visitor.Status = domain.StatusCheckedOut
	visitor.Version++

	r.visitors[id] = visitor

	return &visitor, nil
}

// UpdateResearcherFee records fee payment and the issued ticket number.
// Only researcher records carry fees; the record is left unmodified when the
// type precondition fails.
func (r *Repository) UpdateResearcherFee(id int64, feePaid bool, ticketNumber string) (*domain.Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	visitor, ok := r.visitors[id]
	if !ok {
		return nil, ErrNotFound
	}
	if visitor.VisitorType != domain.VisitorTypeResearcher {
		return nil, ErrNotResearcher
	}

	visitor.FeePaid = feePaid
	visitor.TicketNumber = ticketNumber
	visitor.Version++

	r.visitors[id] = visitor

	return &visitor, nil
}
