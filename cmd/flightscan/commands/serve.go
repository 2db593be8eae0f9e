package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightscan-service/internal/usecase"
	"flightscan-service/pkg/logger"
	"flightscan-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Rescan the mailbox periodically and serve metrics",
	Long: `Serve runs a scan at start-up and then every poll interval, writing
to the configured sinks each time. It exposes /metrics and /health and
shuts down cleanly on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addScanFlags(serveCmd)
	serveCmd.Flags().String("port", "", "HTTP port (default from PORT)")
	serveCmd.Flags().Duration("interval", 0, "time between scans (default from GMAIL_POLL_INTERVAL)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()
	applyScanFlags(cmd, cfg)
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetString("port")
	}
	if cmd.Flags().Changed("interval") {
		cfg.GmailPollInterval, _ = cmd.Flags().GetDuration("interval")
	}

	log.Info("Starting flightscan service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	m := metrics.NewMetrics("flightscan", prometheus.DefaultRegisterer)
	scanner, closers, err := buildScanner(ctx, cfg, log, m)
	if err != nil {
		log.Fatal("Failed to set up scanner", "error", err)
	}

	// Start scan loop in a goroutine
	done := make(chan struct{})
	go func() {
		defer close(done)
		pollScans(ctx, scanner, cfg.GmailPollInterval, log)
	}()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newServeMux(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Stop the scan loop
	<-done
	closeAll(shutdownCtx, closers, log)

	log.Info("Flightscan service stopped")
	return nil
}

func newServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	return mux
}

// pollScans runs a scan immediately and then on every tick until ctx ends.
func pollScans(ctx context.Context, scanner *usecase.Scanner, interval time.Duration, log logger.Logger) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := scanner.Scan(ctx); err != nil && ctx.Err() == nil {
			log.Error("Error scanning mailbox", "error", err)
		}

		select {
		case <-ctx.Done():
			log.Info("Scan loop stopped")
			return
		case <-ticker.C:
			log.Info("Starting scheduled scan")
		}
	}
}
