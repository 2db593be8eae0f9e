package commands

import (
	"context"
	"errors"

	"flightscan-service/internal/domain/repository"
	"flightscan-service/internal/infrastructure/config"
	"flightscan-service/internal/infrastructure/oauth"
	"flightscan-service/internal/infrastructure/persistence"
	"flightscan-service/internal/interface/gmail"
	repo "flightscan-service/internal/interface/repository"
	"flightscan-service/internal/usecase"
	"flightscan-service/pkg/logger"
	"flightscan-service/pkg/metrics"
	"flightscan-service/pkg/parser"
)

var errNoRefreshToken = errors.New("GMAIL_REFRESH_TOKEN is not set, run `flightscan auth` first")

// closer releases a sink's connection.
type closer func(ctx context.Context) error

// buildScanner wires the Gmail source, the filter and every configured sink.
func buildScanner(ctx context.Context, cfg *config.Config, log logger.Logger, m *metrics.Metrics) (*usecase.Scanner, []closer, error) {
	gmailOAuth := oauth.NewGmailOAuth(
		cfg.GmailClientID,
		cfg.GmailClientSecret,
		cfg.GmailRedirectURL,
		cfg.GmailRefreshToken,
		log,
	)
	if !gmailOAuth.HasRefreshToken() {
		return nil, nil, errNoRefreshToken
	}

	source, err := gmail.NewGmailService(ctx, gmailOAuth.GetTokenSource(ctx), nil, log)
	if err != nil {
		return nil, nil, err
	}

	sinks, closers, err := buildSinks(ctx, cfg, log)
	if err != nil {
		closeAll(context.Background(), closers, log)
		return nil, nil, err
	}

	scanner := usecase.NewScanner(source, parser.NewFilter(cfg.PassengerNames), sinks, m, log, cfg.GmailFetchWorkers)
	return scanner, closers, nil
}

// buildSinks returns the file sink when an output file is set, plus the
// MongoDB and PostgreSQL sinks when their DSNs are set.
func buildSinks(ctx context.Context, cfg *config.Config, log logger.Logger) ([]repository.FlightRecordRepository, []closer, error) {
	var sinks []repository.FlightRecordRepository
	var closers []closer

	if cfg.OutputFile != "" {
		fileRepo, err := repo.NewFileFlightRecordRepository(cfg.OutputFile, cfg.OutputFormat)
		if err != nil {
			return nil, closers, err
		}
		sinks = append(sinks, fileRepo)
	}

	if cfg.MongoURI != "" {
		log.Info("Connecting to MongoDB", "database", cfg.MongoDB)
		client, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			return nil, closers, err
		}
		closers = append(closers, client.Disconnect)

		mongoRepo, err := repo.NewMongoFlightRecordRepository(ctx, persistence.GetDatabase(client, cfg.MongoDB))
		if err != nil {
			return nil, closers, err
		}
		sinks = append(sinks, mongoRepo)
	}

	if cfg.PostgresURI != "" {
		log.Info("Connecting to PostgreSQL")
		db, err := persistence.NewPostgresDB(cfg.PostgresURI)
		if err != nil {
			return nil, closers, err
		}
		closers = append(closers, func(context.Context) error {
			return persistence.ClosePostgresDB(db)
		})

		gormRepo, err := repo.NewGormFlightRecordRepository(db)
		if err != nil {
			return nil, closers, err
		}
		sinks = append(sinks, gormRepo)
	}

	if len(sinks) == 0 {
		log.Warn("No sinks configured, results are only logged")
	}
	return sinks, closers, nil
}

func closeAll(ctx context.Context, closers []closer, log logger.Logger) {
	for _, c := range closers {
		if err := c(ctx); err != nil {
			log.Error("Failed to close sink", "error", err)
		}
	}
}
