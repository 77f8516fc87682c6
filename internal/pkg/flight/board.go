package flight

import (
	"context"
	"log/slog"
	"time"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flighttime"
)

// View is one rendering of a board: the filtered and sorted flights plus the filter
// options available in the selected time window.
type View struct {
	Cutoff   time.Time
	InWindow int
	Options  dto.FilterOptions
	Flights  []dto.Flight
}

// ApplyView runs the board pipeline: time partition against the start of the airport's
// local day, airline, place and status filters, then sort. Options come from the
// partitioned set. The input slice is not modified.
func ApplyView(ctx context.Context,
	flights []dto.Flight,
	direction dto.Direction,
	criteria dto.FilterCriteria,
	timezone string,
	now time.Time,
) View {
	criteria = criteria.WithDefaults()
	cutoff := flighttime.StartOfToday(timezone, now)

	windowed := PartitionByTimeWindow(flights, criteria.TimeWindow, cutoff)
	filtered := FilterFlights(windowed, direction, criteria)
	sorted := SortFlights(filtered, criteria.Sort)

	slog.DebugContext(ctx, "board view applied",
		slog.String("timezone", timezone),
		slog.Time("cutoff", cutoff),
		slog.Int("total", len(flights)),
		slog.Int("in_window", len(windowed)),
		slog.Int("filtered", len(sorted)))

	return View{
		Cutoff:   cutoff,
		InWindow: len(windowed),
		Options:  AvailableOptions(windowed, direction),
		Flights:  sorted,
	}
}
