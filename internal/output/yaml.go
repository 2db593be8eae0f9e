package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"flightscan-service/internal/domain/entity"
)

// YAMLWriter writes the records as a YAML sequence.
type YAMLWriter struct {
	w *bufio.Writer
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{w: bufio.NewWriter(w)}
}

// WriteAll encodes the sequence and flushes.
func (w *YAMLWriter) WriteAll(records []entity.FlightRecord) error {
	if records == nil {
		records = []entity.FlightRecord{}
	}
	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}
