package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"wayfinder.gobus.org/internal/appconf"
	"wayfinder.gobus.org/internal/logging"
	"wayfinder.gobus.org/internal/schedule"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Imports schedule data into the local store",
	Long:  "Imports a GTFS zip (local path or URL) or a directory of schedule CSV files",
	RunE:  runImport,
}

var (
	importGTFSSource string
	importCSVDir     string
)

func init() {
	importCmd.Flags().StringVar(&importGTFSSource, "gtfs-source", "", "URL or path of a static GTFS zip file")
	importCmd.Flags().StringVar(&importCSVDir, "csv-dir", "", "Directory of schedule CSV files")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if importGTFSSource == "" && importCSVDir == "" {
		return fmt.Errorf("either --gtfs-source or --csv-dir is required")
	}
	if importGTFSSource != "" && importCSVDir != "" {
		return fmt.Errorf("--gtfs-source and --csv-dir are mutually exclusive")
	}

	logger := logging.NewStructuredLogger(os.Stderr, slog.LevelInfo)

	manager, err := schedule.InitManager(schedule.Config{
		GTFSSource: importGTFSSource,
		CSVDir:     importCSVDir,
		DataPath:   dataPath,
		Env:        appconf.Development,
		Verbose:    true,
	}, logger)
	if err != nil {
		return err
	}
	defer manager.Shutdown()

	manager.PrintStatistics()
	return nil
}
