package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"flightscan-service/internal/domain/entity"
	"flightscan-service/internal/domain/repository"
	"flightscan-service/pkg/logger"
	"flightscan-service/pkg/metrics"
	"flightscan-service/pkg/parser"
	"flightscan-service/pkg/reconcile"

	"golang.org/x/sync/errgroup"
)

// ScanResult summarises one scan
type ScanResult struct {
	MessagesFound int
	Fetched       int
	FetchFailed   int
	Rejected      map[parser.Reason]int
	Reconcile     reconcile.Stats
	Records       []entity.FlightRecord

	WithFlightNumber int
	WithBookingRef   int
	WithRoute        int
}

// Scanner runs the extraction pipeline from an email source to the sinks
type Scanner struct {
	source  repository.EmailSource
	filter  *parser.Filter
	sinks   []repository.FlightRecordRepository
	metrics *metrics.Metrics
	logger  logger.Logger
	workers int
}

// NewScanner creates a new scanner. workers bounds concurrent fetches.
func NewScanner(
	source repository.EmailSource,
	filter *parser.Filter,
	sinks []repository.FlightRecordRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
	workers int,
) *Scanner {
	if workers < 1 {
		workers = 1
	}
	return &Scanner{
		source:  source,
		filter:  filter,
		sinks:   sinks,
		metrics: metrics,
		logger:  logger,
		workers: workers,
	}
}

// Scan lists and fetches all matching emails, extracts and reconciles
// their records, and hands the result to every sink
func (s *Scanner) Scan(ctx context.Context) (*ScanResult, error) {
	start := time.Now()
	defer func() {
		s.metrics.ScanDuration.Observe(time.Since(start).Seconds())
	}()

	ids, err := s.source.ListMessageIDs(ctx)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("list").Inc()
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	s.logger.Info("Parsing emails for flight details", "count", len(ids))

	result := &ScanResult{
		MessagesFound: len(ids),
		Rejected:      make(map[parser.Reason]int),
	}

	emails, failed := s.fetchAll(ctx, ids)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result.FetchFailed = failed
	result.Fetched = len(ids) - failed

	engine := reconcile.NewEngine()
	for _, email := range emails {
		if email == nil {
			continue
		}
		record := parser.Assemble(*email)
		if reason := s.filter.Check(*email, record); reason != parser.ReasonNone {
			result.Rejected[reason]++
			s.metrics.RecordsRejected.WithLabelValues(string(reason)).Inc()
			s.logger.Debug("Record rejected", "emailID", email.EmailID, "subject", email.Subject, "reason", reason)
			continue
		}
		engine.Add(record)
	}

	result.Records = engine.Records()
	result.Reconcile = engine.Stats()
	s.metrics.DuplicatesMerged.Add(float64(result.Reconcile.Replaced + result.Reconcile.Dropped))

	for _, r := range result.Records {
		if r.FlightNumber != "" {
			result.WithFlightNumber++
		}
		if r.BookingRef != "" {
			result.WithBookingRef++
		}
		if r.HasRoute() {
			result.WithRoute++
		}
	}

	if err := s.save(ctx, result.Records); err != nil {
		return result, err
	}

	s.logger.Info("Scan complete",
		"found", result.MessagesFound,
		"fetchFailed", result.FetchFailed,
		"excludedBySubject", result.Rejected[parser.ReasonExcludedSubject],
		"noFlightSignal", result.Rejected[parser.ReasonNoSignal],
		"noPassenger", result.Rejected[parser.ReasonNoPassenger],
		"duplicatesRemoved", result.Reconcile.Replaced+result.Reconcile.Dropped,
		"flights", len(result.Records),
		"withFlightNumber", result.WithFlightNumber,
		"withBookingRef", result.WithBookingRef,
		"withRoute", result.WithRoute,
		"duration", time.Since(start).String(),
	)

	return result, nil
}

// fetchAll fetches every message with a bounded pool. Each email lands at
// its ID's index; failed fetches leave a nil.
func (s *Scanner) fetchAll(ctx context.Context, ids []string) ([]*entity.Email, int) {
	emails := make([]*entity.Email, len(ids))
	var failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, id := range ids {
		g.Go(func() error {
			email, err := s.source.FetchEmail(ctx, id)
			if err != nil {
				failed.Add(1)
				s.metrics.FetchFailures.Inc()
				s.logger.Warn("Failed to fetch email, skipping", "emailID", id, "error", err)
				return nil
			}
			s.metrics.EmailsFetched.Inc()
			emails[i] = email
			return nil
		})
	}
	g.Wait()

	return emails, int(failed.Load())
}

// save hands records to every sink; one failing sink does not stop the others
func (s *Scanner) save(ctx context.Context, records []entity.FlightRecord) error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.SaveAll(ctx, records); err != nil {
			s.metrics.ErrorsCount.WithLabelValues("save").Inc()
			s.logger.Error("Failed to save flight records", "sink", fmt.Sprintf("%T", sink), "error", err)
			errs = append(errs, err)
			continue
		}
		s.metrics.RecordsWritten.Add(float64(len(records)))
	}
	if len(errs) > 0 {
		return fmt.Errorf("failed to save flight records: %w", errors.Join(errs...))
	}
	return nil
}
