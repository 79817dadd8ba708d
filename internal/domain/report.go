package domain

// DailySummary aggregates one calendar day of visitor records. Departments
// always carries all nine department keys, zero-filled, so consumers can
// assume key presence.
type DailySummary struct {
	Date            string         `json:"date"`
	TotalVisitors   int            `json:"totalVisitors"`
	GeneralVisitors int            `json:"generalVisitors"`
	Researchers     int            `json:"researchers"`
	Departments     map[string]int `json:"departments"`
}
