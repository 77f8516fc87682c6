package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/service"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flighttime"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/logger"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/pickup"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Runs a live pickup session, reading pickup addresses from stdin",
	Long: "Loads the flight, counts the arrivals landing around it and prints the leave-by time. " +
		"Every line on stdin replaces the driver's address; the drive time is looked up again " +
		"once typing settles.",
	Args: cobra.NoArgs,
	RunE: session,
}

var (
	sessionFlight  string
	sessionAddress string
)

func init() {
	sessionCmd.Flags().StringVarP(&sessionFlight, "flight", "f", "", "Flight code, e.g. AA1004")
	sessionCmd.Flags().StringVarP(&sessionAddress, "address", "", "", "Initial pickup address")
	_ = sessionCmd.MarkFlagRequired("flight")
}

func session(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	app, cfg, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	lookup := dto.LookupRequest{Flight: sessionFlight}
	if err := lookup.Validate(); err != nil {
		return err
	}

	ctx = logger.WithFlight(ctx, strings.ToUpper(lookup.Flight))
	printer := &snapshotPrinter{}

	s := pickup.NewSession(ctx, app.Maps, pickup.SessionConfig{
		Clock:         app.Clock,
		Debounce:      cfg.Pickup.Debounce,
		LandingWindow: cfg.Pickup.LandingWindow,
		OnChange:      printer.Print,
	})
	defer s.Close()

	found, err := app.FlightService.LookupFlight(ctx, lookup)
	if err != nil {
		s.FailLookup(err)
		return err
	}

	airport := found.Flight.Arrival.IATA
	if airport == "" {
		return service.ErrNoArrivalAirport
	}

	s.SetFlight(found.Flight)

	if arrivals, err := app.FlightService.ListFlights(ctx, airport, dto.DirectionArrival); err != nil {
		s.FailArrivals(airport, err)
	} else {
		s.SetArrivals(airport, arrivals)
	}

	if sessionAddress != "" {
		s.SetAddress(sessionAddress)
	}

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			s.SetAddress(scanner.Text())
		}
	}()

	<-ctx.Done()

	return nil
}

// snapshotPrinter prints session snapshots in version order. Countdown ticks are only
// printed on whole minutes and during the last minute.
type snapshotPrinter struct {
	mu      sync.Mutex
	version uint64
	last    string
}

func (p *snapshotPrinter) Print(snap pickup.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if snap.Version <= p.version {
		return
	}

	p.version = snap.Version

	line := describe(snap)
	if line != p.last {
		p.last = line
		fmt.Println(line)
	}

	if snap.Estimate.LeaveBy != nil && (snap.CountdownSeconds%60 == 0 || snap.CountdownSeconds < 60) {
		fmt.Printf("  leave in %s\n", pickup.FormatCountdown(snap.CountdownSeconds))
	}
}

func describe(snap pickup.Snapshot) string {
	if snap.Flight == nil {
		if snap.LookupError != "" {
			return fmt.Sprintf("[%s] lookup failed: %s", snap.State, snap.LookupError)
		}

		return fmt.Sprintf("[%s]", snap.State)
	}

	est := snap.Estimate
	line := fmt.Sprintf("[%s] %s lands at %s %s, %d other flights, baggage %dm",
		snap.State, snap.Flight.FlightIata, snap.Flight.DestinationIata,
		flighttime.FormatInTimezone(est.LandingAt, snap.Flight.Timezone, flighttime.StyleTime),
		est.OtherFlights, est.BaggageWaitMinutes)

	if est.DriveMinutes != nil {
		line += fmt.Sprintf(", drive %dm", *est.DriveMinutes)
	}

	if est.LeaveBy != nil {
		line += ", leave by " + flighttime.FormatInTimezone(*est.LeaveBy, snap.Flight.Timezone, flighttime.StyleTime)
	}

	for _, problem := range []string{snap.ArrivalsError, snap.DriveError} {
		if problem != "" {
			line += " (" + problem + ")"
		}
	}

	return line
}
