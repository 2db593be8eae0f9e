package output

import (
	"encoding/csv"
	"io"

	"flightscan-service/internal/domain/entity"
)

// CSVWriter writes a header row followed by one row per record.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter creates a CSV writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteAll writes header and records, then flushes.
func (w *CSVWriter) WriteAll(records []entity.FlightRecord) error {
	if err := w.w.Write(entity.Columns); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.w.Write(r.Row()); err != nil {
			return err
		}
	}
	w.w.Flush()
	return w.w.Error()
}
