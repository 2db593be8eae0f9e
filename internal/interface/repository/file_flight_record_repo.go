package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"flightscan-service/internal/domain/entity"
	"flightscan-service/internal/domain/repository"
	"flightscan-service/internal/output"
)

// FileFlightRecordRepository writes the record set to a file, replacing it
type FileFlightRecordRepository struct {
	path   string
	format output.Format
	stdout io.Writer
}

// NewFileFlightRecordRepository creates a file sink. An empty format is
// inferred from the path extension; path "-" writes to standard output.
func NewFileFlightRecordRepository(path, format string) (repository.FlightRecordRepository, error) {
	if format == "" {
		format = filepath.Ext(path)
	}
	if format == "" {
		format = string(output.FormatCSV)
	}
	f, err := output.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return &FileFlightRecordRepository{
		path:   path,
		format: f,
		stdout: os.Stdout,
	}, nil
}

// SaveAll writes all records in order
func (r *FileFlightRecordRepository) SaveAll(ctx context.Context, records []entity.FlightRecord) error {
	if r.path == "-" {
		return r.write(r.stdout, records)
	}

	file, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", r.path, err)
	}
	if err := r.write(file, records); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", r.path, err)
	}
	return nil
}

func (r *FileFlightRecordRepository) write(w io.Writer, records []entity.FlightRecord) error {
	writer, err := output.NewWriter(w, r.format)
	if err != nil {
		return err
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s output: %w", r.format, err)
	}
	return nil
}
