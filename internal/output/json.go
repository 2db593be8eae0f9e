package output

import (
	"bufio"
	"encoding/json"
	"io"

	"flightscan-service/internal/domain/entity"
)

// JSONWriter writes the records as one indented JSON array.
type JSONWriter struct {
	w      *bufio.Writer
	indent string
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, indent string) *JSONWriter {
	return &JSONWriter{
		w:      bufio.NewWriter(w),
		indent: indent,
	}
}

// WriteAll writes the array. An empty set is written as [].
func (w *JSONWriter) WriteAll(records []entity.FlightRecord) error {
	if records == nil {
		records = []entity.FlightRecord{}
	}
	enc := json.NewEncoder(w.w)
	enc.SetIndent("", w.indent)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return w.w.Flush()
}
