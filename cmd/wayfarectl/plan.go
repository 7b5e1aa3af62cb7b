package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"wayfinder.gobus.org/internal/appconf"
	"wayfinder.gobus.org/internal/enrich"
	"wayfinder.gobus.org/internal/logging"
	"wayfinder.gobus.org/internal/models"
	"wayfinder.gobus.org/internal/routing"
	"wayfinder.gobus.org/internal/schedule"
)

var planCmd = &cobra.Command{
	Use:   "plan <origin> <destination>",
	Short: "Resolves itineraries between two locations",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlan,
}

var (
	planMaxTransfers int
	planLocale       string
)

func init() {
	planCmd.Flags().IntVar(&planMaxTransfers, "max-transfers", routing.DefaultMaxTransfers, "Maximum number of transfers")
	planCmd.Flags().StringVar(&planLocale, "locale", "", "Display locale for names")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	logger := logging.NewStructuredLogger(os.Stderr, slog.LevelWarn)

	manager, err := schedule.InitManager(schedule.Config{
		DataPath: dataPath,
		Env:      appconf.Development,
	}, logger)
	if err != nil {
		return err
	}
	defer manager.Shutdown()

	planner := routing.NewPlanner(routing.DefaultOptions(),
		enrich.NewLocaleEnricher(manager.ScheduleDB.Queries))

	request := models.SearchRequest{
		OriginID:      args[0],
		DestinationID: args[1],
		MaxTransfers:  &planMaxTransfers,
		Locale:        planLocale,
	}

	itineraries, err := planner.Plan(cmd.Context(), manager.Snapshot(), request)
	if err != nil {
		return err
	}

	if len(itineraries) == 0 {
		fmt.Println("no itinerary found")
		return nil
	}

	for i, itinerary := range itineraries {
		fmt.Printf("Itinerary %d: %d transfer(s), %s total\n",
			i+1, itinerary.TransferCount, itinerary.TotalDuration)
		for _, leg := range itinerary.Legs {
			fmt.Printf("  %s  %s -> %s  (%s, %s)\n",
				legLabel(leg), leg.BoardingLocationID(), leg.AlightingLocationID(),
				leg.Departure(), leg.Arrival())
		}
		for j, wait := range itinerary.WaitTimes {
			fmt.Printf("  wait %d: %s\n", j+1, wait.Round(time.Minute))
		}
	}

	return nil
}

func legLabel(leg models.Leg) string {
	if leg.Display != nil && leg.Display.TripLabel != "" {
		return leg.Display.TripLabel
	}
	return leg.Trip.Label
}
