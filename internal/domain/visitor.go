package domain

import (
	"slices"
	"time"
)

type VisitStatus string

const (
	StatusCheckedIn  VisitStatus = "CheckedIn"
	StatusCheckedOut VisitStatus = "CheckedOut"
)

type VisitorType string

const (
	VisitorTypeGeneral    VisitorType = "General"
	VisitorTypeResearcher VisitorType = "Researcher"
)

// Departments are the nine sections a visitor can be routed to. The daily
// summary is keyed on exactly this set, in this order.
var Departments = []string{
	"Research Room",
	"Library",
	"Records Management",
	"Administration",
	"Conservation",
	"Audio Visual",
	"Gallery",
	"Accounts",
	"Bindery",
}

func IsValidDepartment(name string) bool {
	return slices.Contains(Departments, name)
}

type Visitor struct {
	ID          int64       `json:"id"`
	FullName    string      `json:"fullName"`
	IDNumber    string      `json:"idNumber"`
	PhoneNumber string      `json:"phoneNumber"`
	VisitorType VisitorType `json:"visitorType"`
	Destination string      `json:"destination"`
	TimeIn      time.Time   `json:"timeIn"`
	TimeOut     *time.Time  `json:"timeOut"`
	Status      VisitStatus `json:"status"`
	// Date is the calendar-day grouping key, derived from TimeIn at
	// creation and never recomputed.
	Date string `json:"date"`

	// researcher-only fields, empty/false for general visitors
	Institute    string `json:"institute,omitempty"`
	ResearchArea string `json:"researchArea,omitempty"`
	HomeAddress  string `json:"homeAddress,omitempty"`
	TicketNumber string `json:"ticketNumber,omitempty"`
	FeePaid      bool   `json:"feePaid"`

	Version int32 `json:"-"`
}
