// Package pickup turns a passenger's flight, the arrivals landing around it and a drive
// time into a leave-by deadline for the driver.
package pickup

import (
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flight"
)

const (
	BaseBaggageWaitMinutes  = 20
	ExtraBaggageWaitMinutes = 5
	FlightsPerExtraWait     = 3

	DefaultLandingWindow = 30 * time.Minute
)

// Estimate is the derived pickup timing for one flight. DriveMinutes and LeaveBy are nil
// until a drive time is known and the landing instant can be parsed.
type Estimate struct {
	Flight             dto.Flight
	LandingAt          time.Time
	OtherFlights       int
	BaggageWaitMinutes int
	DriveMinutes       *int
	LeaveBy            *time.Time
}

// NewEstimate computes the estimate from the passenger's arrival projection, the arrival
// board of the same airport and an optional drive time in minutes.
func NewEstimate(passenger dto.Flight, arrivals []dto.Flight, driveMinutes *int, window time.Duration) Estimate {
	landing := flight.EffectiveInstant(passenger)
	others := OtherArrivals(CountConcurrentArrivals(arrivals, landing, window))
	baggage := BaggageWaitMinutes(others)

	return Estimate{
		Flight:             passenger,
		LandingAt:          landing,
		OtherFlights:       others,
		BaggageWaitMinutes: baggage,
		DriveMinutes:       driveMinutes,
		LeaveBy:            LeaveByFor(landing, baggage, driveMinutes),
	}
}

// BaggageWaitMinutes is the base wait plus a fixed step for every full group of other
// flights landing in the window.
func BaggageWaitMinutes(otherFlights int) int {
	if otherFlights < 0 {
		otherFlights = 0
	}

	return BaseBaggageWaitMinutes + (otherFlights/FlightsPerExtraWait)*ExtraBaggageWaitMinutes
}

// OtherArrivals excludes the passenger's own flight from a concurrent-arrivals count.
func OtherArrivals(concurrentMatches int) int {
	return max(0, concurrentMatches-1)
}

// CountConcurrentArrivals counts arrivals whose effective instant is within window of
// landing, bounds included. Arrivals without a parseable time are skipped.
func CountConcurrentArrivals(arrivals []dto.Flight, landing time.Time, window time.Duration) int {
	if landing.IsZero() {
		return 0
	}

	if window <= 0 {
		window = DefaultLandingWindow
	}

	count := 0
	for _, arrival := range arrivals {
		at := flight.EffectiveInstant(arrival)
		if at.IsZero() {
			continue
		}

		diff := at.Sub(landing)
		if diff < 0 {
			diff = -diff
		}

		if diff <= window {
			count++
		}
	}

	return count
}

// ComputeLeaveBy returns landing + baggage wait - drive time. A result in the past is
// valid and means the driver is already late.
func ComputeLeaveBy(landing time.Time, baggageWaitMinutes, driveMinutes int) time.Time {
	return landing.Add(time.Duration(baggageWaitMinutes-driveMinutes) * time.Minute)
}

// LeaveByFor is ComputeLeaveBy for partially known inputs. It returns nil when the
// landing instant or the drive time is unknown, or the drive time is negative.
func LeaveByFor(landing time.Time, baggageWaitMinutes int, driveMinutes *int) *time.Time {
	if landing.IsZero() || driveMinutes == nil || *driveMinutes < 0 {
		return nil
	}

	leaveBy := ComputeLeaveBy(landing, baggageWaitMinutes, *driveMinutes)

	return &leaveBy
}

// CountdownSeconds is the whole number of seconds left until leaveBy, never negative.
func CountdownSeconds(now, leaveBy time.Time) int {
	remaining := leaveBy.Sub(now)
	if remaining <= 0 {
		return 0
	}

	return int(remaining / time.Second)
}

// FormatCountdown renders remaining seconds as "12m 5s", or "Leave now" at zero.
func FormatCountdown(seconds int) string {
	if seconds <= 0 {
		return "Leave now"
	}

	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

// DriveMinutes rounds a drive duration up to whole minutes.
func DriveMinutes(durationSeconds int) int {
	return int(math.Ceil(float64(durationSeconds) / 60))
}

// DriveDestination is the free-text destination sent to the drive-time provider.
func DriveDestination(arrivalAirport string) string {
	return arrivalAirport + " Airport"
}

// SharePath is the driver link for a flight code.
func SharePath(flightCode string) string {
	return "/pickup?flight=" + url.QueryEscape(flightCode)
}
