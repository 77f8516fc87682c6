package pickup

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flight"
	"github.com/jonboulle/clockwork"
)

// State names what the session waits for next.
type State int

const (
	// StateAwaitingFlight: no flight loaded.
	StateAwaitingFlight State = iota
	// StateFlightLoaded: flight loaded, arrivals snapshot pending, no address yet.
	StateFlightLoaded
	// StateAwaitingAddress: flight and arrivals known, no address yet.
	StateAwaitingAddress
	// StateAwaitingDriveTime: address entered, drive time pending.
	StateAwaitingDriveTime
	// StateDriveTimeKnown: drive time known but the landing instant is not.
	StateDriveTimeKnown
	StateLeaveByKnown
)

func (s State) String() string {
	switch s {
	case StateAwaitingFlight:
		return "awaiting_flight"
	case StateFlightLoaded:
		return "flight_loaded"
	case StateAwaitingAddress:
		return "awaiting_address"
	case StateAwaitingDriveTime:
		return "awaiting_drive_time"
	case StateDriveTimeKnown:
		return "drive_time_known"
	case StateLeaveByKnown:
		return "leave_by_known"
	default:
		return "unknown"
	}
}

// DriveTimer returns the current drive duration in seconds between two free-text
// addresses.
type DriveTimer interface {
	DriveTime(ctx context.Context, origin, destination string) (int, error)
}

// Snapshot is a consistent copy of a session. Version grows with every change, so a
// consumer receiving snapshots from several goroutines can drop older ones.
type Snapshot struct {
	Version          uint64
	State            State
	Flight           *dto.Flight
	Address          string
	Estimate         Estimate
	CountdownSeconds int
	LookupError      string
	ArrivalsError    string
	DriveError       string
}

type SessionConfig struct {
	Clock         clockwork.Clock
	Debounce      time.Duration
	LandingWindow time.Duration
	// OnChange receives every new snapshot. It is called without the session lock held,
	// possibly from timer goroutines.
	OnChange func(Snapshot)
}

// Session is the driver flow for one passenger flight. Each input (flight, arrivals,
// address) invalidates what is derived from it: a new flight resets the arrivals count
// and, when the airport changed, the drive time; a new drive time or baggage wait
// recomputes leave-by and restarts the countdown.
type Session struct {
	ctx    context.Context
	cancel context.CancelFunc

	clock     clockwork.Clock
	window    time.Duration
	driver    DriveTimer
	debouncer *Debouncer
	onChange  func(Snapshot)

	mu            sync.Mutex
	closed        bool
	version       uint64
	flight        *dto.Flight
	arrivals      []dto.Flight
	arrivalsKnown bool
	address       string
	driveMinutes  *int
	estimate      Estimate
	countdown     *Countdown
	seconds       int
	lookupError   string
	arrivalsError string
	driveError    string
}

func NewSession(ctx context.Context, driver DriveTimer, cfg SessionConfig) *Session {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}

	if cfg.LandingWindow <= 0 {
		cfg.LandingWindow = DefaultLandingWindow
	}

	if cfg.OnChange == nil {
		cfg.OnChange = func(Snapshot) {}
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Session{
		ctx:       ctx,
		cancel:    cancel,
		clock:     cfg.Clock,
		window:    cfg.LandingWindow,
		driver:    driver,
		debouncer: NewDebouncer(cfg.Clock, cfg.Debounce),
		onChange:  cfg.OnChange,
	}
}

// SetFlight loads the passenger's flight. Arrivals from a previous flight are dropped; a
// change of arrival airport also drops the drive time and looks it up again.
func (s *Session) SetFlight(raw dto.RawFlight) {
	passenger := flight.ProjectArrival(raw)

	s.update(func() bool {
		airportChanged := s.flight == nil || !strings.EqualFold(s.flight.DestinationIata, passenger.DestinationIata)

		s.flight = &passenger
		s.arrivals = nil
		s.arrivalsKnown = false
		s.lookupError = ""
		s.arrivalsError = ""

		if airportChanged {
			s.driveMinutes = nil
			s.driveError = ""
			s.scheduleDriveLocked()
		}

		return true
	})
}

// FailLookup records a failed flight lookup. Everything derived from the previous
// flight is discarded.
func (s *Session) FailLookup(err error) {
	s.update(func() bool {
		s.flight = nil
		s.arrivals = nil
		s.arrivalsKnown = false
		s.driveMinutes = nil
		s.driveError = ""
		s.arrivalsError = ""
		s.lookupError = err.Error()
		s.debouncer.Cancel()

		return true
	})
}

// SetArrivals applies an arrivals snapshot of airport. Snapshots for another airport than
// the current flight's are ignored.
func (s *Session) SetArrivals(airport string, raws []dto.RawFlight) {
	arrivals := flight.ProjectAll(raws, dto.DirectionArrival)

	s.update(func() bool {
		if s.flight == nil || !strings.EqualFold(s.flight.DestinationIata, airport) {
			return false
		}

		s.arrivals = arrivals
		s.arrivalsKnown = true
		s.arrivalsError = ""

		return true
	})
}

// FailArrivals records a failed arrivals query. The baggage wait falls back to its base.
func (s *Session) FailArrivals(airport string, err error) {
	s.update(func() bool {
		if s.flight == nil || !strings.EqualFold(s.flight.DestinationIata, airport) {
			return false
		}

		s.arrivals = nil
		s.arrivalsKnown = true
		s.arrivalsError = err.Error()

		return true
	})
}

// SetAddress records the driver's address and schedules a debounced drive-time lookup.
func (s *Session) SetAddress(address string) {
	address = strings.TrimSpace(address)

	s.update(func() bool {
		if address == s.address {
			return false
		}

		s.address = address
		s.scheduleDriveLocked()

		return true
	})
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Close stops the countdown, drops the pending drive lookup and cancels in-flight ones.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	s.debouncer.Cancel()
	s.cancel()

	if s.countdown != nil {
		s.countdown.Stop()
		s.countdown = nil
	}
}

// update runs mutate under the lock. When mutate reports a change, the estimate is
// recomputed and a snapshot published.
func (s *Session) update(mutate func() bool) {
	s.mu.Lock()
	if s.closed || !mutate() {
		s.mu.Unlock()
		return
	}

	s.recomputeLocked()
	s.version++
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.onChange(snap)
}

func (s *Session) recomputeLocked() {
	if s.flight == nil {
		s.estimate = Estimate{}
	} else {
		s.estimate = NewEstimate(*s.flight, s.arrivals, s.driveMinutes, s.window)
	}

	s.restartCountdownLocked()
}

// restartCountdownLocked keeps the running countdown only if leave-by did not change.
func (s *Session) restartCountdownLocked() {
	leaveBy := s.estimate.LeaveBy

	if s.countdown != nil {
		if leaveBy != nil && s.countdown.LeaveBy().Equal(*leaveBy) {
			return
		}

		s.countdown.Stop()
		s.countdown = nil
	}

	if leaveBy == nil {
		s.seconds = 0
		return
	}

	s.seconds = CountdownSeconds(s.clock.Now(), *leaveBy)
	s.countdown = StartCountdown(s.clock, *leaveBy, s.onTick)
}

func (s *Session) onTick(tick Tick) {
	s.update(func() bool {
		if s.estimate.LeaveBy == nil || !s.estimate.LeaveBy.Equal(tick.LeaveBy) {
			return false
		}

		s.seconds = tick.Seconds

		return true
	})
}

func (s *Session) scheduleDriveLocked() {
	if s.flight == nil || s.address == "" || s.driver == nil {
		s.debouncer.Cancel()
		return
	}

	origin := s.address
	destination := DriveDestination(s.flight.Destination)

	s.debouncer.Trigger(func(token uint64) {
		seconds, err := s.driver.DriveTime(s.ctx, origin, destination)
		s.applyDrive(token, seconds, err)
	})
}

// applyDrive drops results of superseded lookups. A failed lookup keeps the last known
// drive time so an existing leave-by survives.
func (s *Session) applyDrive(token uint64, seconds int, err error) {
	s.update(func() bool {
		if !s.debouncer.IsCurrent(token) {
			slog.DebugContext(s.ctx, "dropping superseded drive time", slog.Uint64("token", token))
			return false
		}

		if err != nil {
			s.driveError = err.Error()
			return true
		}

		minutes := DriveMinutes(seconds)
		s.driveMinutes = &minutes
		s.driveError = ""

		return true
	})
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		Version:          s.version,
		State:            s.stateLocked(),
		Address:          s.address,
		Estimate:         s.estimate,
		CountdownSeconds: s.seconds,
		LookupError:      s.lookupError,
		ArrivalsError:    s.arrivalsError,
		DriveError:       s.driveError,
	}

	if s.flight != nil {
		f := *s.flight
		snap.Flight = &f
	}

	return snap
}

func (s *Session) stateLocked() State {
	switch {
	case s.flight == nil:
		return StateAwaitingFlight
	case s.estimate.LeaveBy != nil:
		return StateLeaveByKnown
	case s.driveMinutes != nil:
		return StateDriveTimeKnown
	case s.address != "":
		return StateAwaitingDriveTime
	case !s.arrivalsKnown:
		return StateFlightLoaded
	default:
		return StateAwaitingAddress
	}
}
