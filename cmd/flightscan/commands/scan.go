package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"flightscan-service/internal/infrastructure/config"
	"flightscan-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the mailbox once and write the flight records",
	Long: `Scan runs every flight search against the mailbox, extracts one
candidate record per message, drops non-flight mail, merges duplicates
and writes the result sorted by flight date.

Examples:
  flightscan scan
  flightscan scan -o flights.yaml
  flightscan scan -o - -f json --workers 8`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	addScanFlags(scanCmd)
}

// addScanFlags registers the flags shared by scan and serve.
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "output file, - for stdout (default from OUTPUT_FILE)")
	cmd.Flags().StringP("format", "f", "", "output format: csv, json, yaml (default from file extension)")
	cmd.Flags().Int("workers", 0, "concurrent message fetches (default from GMAIL_FETCH_WORKERS)")
	cmd.Flags().StringArray("passenger", nil, "keep only mail mentioning this passenger (repeatable)")
}

// applyScanFlags overrides configuration with flags that were set.
func applyScanFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputFile, _ = flags.GetString("output")
	}
	if flags.Changed("format") {
		cfg.OutputFormat, _ = flags.GetString("format")
	}
	if flags.Changed("workers") {
		cfg.GmailFetchWorkers, _ = flags.GetInt("workers")
	}
	if flags.Changed("passenger") {
		cfg.PassengerNames, _ = flags.GetStringArray("passenger")
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()
	applyScanFlags(cmd, cfg)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	m := metrics.NewMetrics("flightscan", prometheus.NewRegistry())
	scanner, closers, err := buildScanner(ctx, cfg, log, m)
	if err != nil {
		log.Error("Failed to set up scanner", "error", err)
		return err
	}
	defer closeAll(context.Background(), closers, log)

	result, err := scanner.Scan(ctx)
	if err != nil {
		log.Error("Scan failed", "error", err)
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.OutputFile == "-" {
		out = cmd.ErrOrStderr()
	} else if cfg.OutputFile != "" {
		fmt.Fprintf(out, "Results saved to %s\n", cfg.OutputFile)
	}
	fmt.Fprintf(out, "Total flight emails: %d\n", len(result.Records))
	fmt.Fprintf(out, "With flight number: %d\n", result.WithFlightNumber)
	fmt.Fprintf(out, "With PNR/booking ref: %d\n", result.WithBookingRef)
	fmt.Fprintf(out, "With route (from/to): %d\n", result.WithRoute)
	return nil
}
