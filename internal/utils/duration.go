package utils

import (
	"fmt"
	"math"

	"github.com/natarchives/visitordesk/backend/internal/domain"
)

// AverageVisitDuration computes the mean visit length in minutes over the
// records that have a checkout time, rendered as "Hh Mm". Records still
// checked in carry no duration and are skipped. When no record in the set
// has completed, ok is false; the caller must show a sentinel rather than
// "0h 0m", which would imply completed zero-length visits.
func AverageVisitDuration(visitors []*domain.Visitor) (string, bool) {
	totalMinutes := 0.0
	completed := 0

	for _, v := range visitors {
		if v.TimeOut == nil {
			continue
		}
		totalMinutes += v.TimeOut.Sub(v.TimeIn).Minutes()
		completed++
	}

	if completed == 0 {
		return "", false
	}

	avg := int(math.Round(totalMinutes / float64(completed)))

	return fmt.Sprintf("%dh %dm", avg/60, avg%60), true
}
