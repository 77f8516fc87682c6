package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/pickup"
	httptransport "github.com/ijalalfrz/flight-pickup-service/internal/pkg/transport/http"
	"github.com/jonboulle/clockwork"
)

// makeCountdownHandler streams the seconds left until leave_by as server-sent events,
// one per second, ending after the zero event or when the client goes away.
func makeCountdownHandler(clock clockwork.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req dto.CountdownRequest
		if err := req.Bind(r); err != nil {
			httptransport.ErrorResponse(ctx, err, w)
			return
		}

		ticks := make(chan pickup.Tick)
		countdown := pickup.StartCountdown(clock, req.LeaveBy, func(tick pickup.Tick) {
			select {
			case ticks <- tick:
			case <-ctx.Done():
			}
		})
		defer countdown.Stop()

		// events is owned by this goroutine; ticks is never closed because a tick may be
		// in flight when the countdown is stopped.
		events := make(chan dto.CountdownEvent)
		go func() {
			defer close(events)

			for {
				select {
				case tick := <-ticks:
					select {
					case events <- dto.CountdownEvent{LeaveBy: tick.LeaveBy, Seconds: tick.Seconds}:
					case <-ctx.Done():
						return
					}

					if tick.Seconds <= 0 {
						return
					}
				case <-ctx.Done():
					return
				}
			}
		}()

		slog.DebugContext(ctx, "countdown stream started", slog.Time("leave_by", req.LeaveBy))

		render.Respond(w, r, events)
	}
}
