package utils

import (
	"fmt"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m", 45 -> "45m", 120 -> "2h"
func ConvertMinutesToDuration(durationInMinutes int64) string {
	if durationInMinutes < 60 {
		return fmt.Sprintf("%dm", durationInMinutes)
	}

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}
