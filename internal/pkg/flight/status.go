package flight

import (
	"time"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
)

// statusOrder is the precedence used by the status sort: in-flight first, cancelled last.
var statusOrder = map[dto.FlightStatus]int{
	dto.StatusActive:    0,
	dto.StatusScheduled: 1,
	dto.StatusLanded:    2,
	dto.StatusDiverted:  3,
	dto.StatusIncident:  4,
	dto.StatusCancelled: 5,
}

var statusLabels = map[dto.FlightStatus]string{
	dto.StatusScheduled: "Scheduled",
	dto.StatusActive:    "In flight",
	dto.StatusLanded:    "Landed",
	dto.StatusCancelled: "Cancelled",
	dto.StatusIncident:  "Incident",
	dto.StatusDiverted:  "Diverted",
}

// StatusRank returns the sort precedence of a status. Unknown statuses sort after
// cancelled.
func StatusRank(status dto.FlightStatus) int {
	if rank, ok := statusOrder[status]; ok {
		return rank
	}

	return len(statusOrder)
}

func StatusLabel(status dto.FlightStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}

	return string(status)
}

// EffectiveInstant is the best-known time of the flight's displayed side: the estimate
// when present, the schedule otherwise.
func EffectiveInstant(f dto.Flight) time.Time {
	if !f.Estimated.IsZero() {
		return f.Estimated
	}

	return f.Scheduled
}
