// Package commands implements the CLI commands for flightscan.
package commands

import (
	"fmt"

	"flightscan-service/internal/infrastructure/config"
	"flightscan-service/pkg/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flightscan",
	Short: "Extract flight bookings from a Gmail mailbox",
	Long: `Flightscan searches a Gmail mailbox for booking confirmations, boarding
passes and itineraries, extracts date, airline, flight number, route and
booking reference from each, and merges repeated mails about the same
booking into one record.

Configuration is read from the environment and an optional .env file.

Examples:
  # Obtain a refresh token once
  flightscan auth

  # One scan, written to CSV
  flightscan scan -o flights.csv

  # Only bookings for these passengers, as JSON on stdout
  flightscan scan -o - -f json --passenger "jane doe" --passenger "john doe"

  # Rescan periodically and expose /metrics
  flightscan serve --port 8080`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads configuration and builds the logger, honouring --debug.
func loadConfig(cmd *cobra.Command) (*config.Config, *logger.ZapLogger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}
	return cfg, logger.NewLoggerWithLevel(cfg.LogLevel), nil
}
