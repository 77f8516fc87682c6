package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flighttime"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Prints the filtered departure or arrival board of an airport",
	Args:  cobra.NoArgs,
	RunE:  board,
}

var (
	boardAirport   string
	boardDirection string
	boardWindow    string
	boardAirline   string
	boardPlace     string
	boardStatus    string
	boardSort      string
)

func init() {
	boardCmd.Flags().StringVarP(&boardAirport, "airport", "a", "", "Airport IATA code")
	boardCmd.Flags().StringVarP(&boardDirection, "direction", "d", string(dto.DirectionDeparture), "departure or arrival")
	boardCmd.Flags().StringVarP(&boardWindow, "window", "w", string(dto.TimeWindowUpcoming), "upcoming or historical")
	boardCmd.Flags().StringVarP(&boardAirline, "airline", "", "", "Restrict to an airline name")
	boardCmd.Flags().StringVarP(&boardPlace, "place", "", "", "Restrict to an origin or destination IATA code")
	boardCmd.Flags().StringVarP(&boardStatus, "status", "s", string(dto.StatusCategoryAll),
		"all, delayed, on_time, scheduled, cancelled or in_flight")
	boardCmd.Flags().StringVarP(&boardSort, "sort", "", string(dto.SortByScheduled), "scheduled, estimated or status")
	_ = boardCmd.MarkFlagRequired("airport")
}

func board(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	req := dto.BoardRequest{
		Airport:   boardAirport,
		Direction: dto.Direction(boardDirection),
		FilterCriteria: dto.FilterCriteria{
			TimeWindow: dto.TimeWindow(boardWindow),
			Airline:    boardAirline,
			Place:      boardPlace,
			Status:     dto.StatusCategory(boardStatus),
			Sort:       dto.SortKey(boardSort),
		},
	}

	app, _, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := req.Validate(); err != nil {
		return err
	}

	req.Airport = strings.ToUpper(req.Airport)
	req.FilterCriteria = req.FilterCriteria.WithDefaults()

	resp, err := app.FlightService.GetBoard(ctx, req)
	if err != nil {
		return err
	}

	printBoard(resp)

	return nil
}

func printBoard(resp dto.BoardResponse) {
	name := resp.AirportName
	if name == "" {
		name = resp.Airport
	}

	fmt.Printf("%s %ss (%s), last updated %s\n", name, resp.Direction, resp.Timezone, resp.Metadata.LastUpdated)

	place := "TO"
	if resp.Direction == dto.DirectionArrival {
		place = "FROM"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "FLIGHT\tAIRLINE\t%s\tSCHEDULED\tESTIMATED\tSTATUS\n", place)

	for _, f := range resp.Flights {
		other, otherIata := f.Destination, f.DestinationIata
		if resp.Direction == dto.DirectionArrival {
			other, otherIata = f.Origin, f.OriginIata
		}

		estimated := f.EstimatedLocal
		if estimated == "" {
			estimated = flighttime.Placeholder
		}

		fmt.Fprintf(w, "%s\t%s\t%s (%s)\t%s\t%s\t%s\n",
			f.FlightIata, f.Airline, other, otherIata, f.ScheduledLocal, estimated, f.StatusLabel)
	}

	_ = w.Flush()

	fmt.Printf("%d of %d flights in the %s window\n", resp.Metadata.TotalResults,
		resp.Metadata.TotalInWindow, resp.Criteria.TimeWindow)
}
