package domain

import (
	"time"
)

// LibraryVisit is a researcher's reading-room session, distinct from the
// facility-level Visitor record. VisitorID is a back-reference into the
// visitor collection and is not existence-checked at this layer.
type LibraryVisit struct {
	ID                 int64       `json:"id"`
	VisitorID          int64       `json:"visitorId"`
	TicketNumber       string      `json:"ticketNumber"`
	SpecificStudyArea  string      `json:"specificStudyArea"`
	MaterialsRequested string      `json:"materialsRequested,omitempty"`
	ControlOfficer     string      `json:"controlOfficer"`
	CheckInTime        time.Time   `json:"checkInTime"`
	CheckOutTime       *time.Time  `json:"checkOutTime"`
	Status             VisitStatus `json:"status"`
	Notes              string      `json:"notes,omitempty"`
	Date               string      `json:"date"`
	Version            int32       `json:"-"`
}
