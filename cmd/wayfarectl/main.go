package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "wayfarectl",
	Short:        "Wayfinder schedule tool",
	Long:         "Imports schedule data and resolves routes from the command line",
	SilenceUsage: true,
}

var dataPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data-path", "./data/wayfinder.db", "Path to the schedule database")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
