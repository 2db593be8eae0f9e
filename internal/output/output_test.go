package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"flightscan-service/internal/domain/entity"
)

var sample = []entity.FlightRecord{
	{
		FlightDate:   "2025-01-15",
		Airline:      "IndiGo",
		FlightNumber: "6E2341",
		FromCode:     "DEL",
		ToCode:       "BOM",
		BookingRef:   "X7YQ2Z",
		Subject:      "Your IndiGo Itinerary, PNR X7YQ2Z",
		ReceivedDate: "2025-01-14",
		MessageID:    "msg-1",
	},
	{Subject: "E-ticket", BookingRef: "ABC123"},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{"JSON", FormatJSON, false},
		{".yml", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrUnsupportedFormat", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewWriter_UnsupportedFormat(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, Format("xml")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestCSVWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := NewCSVWriter(buf).WriteAll(sample); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	rows, err := csv.NewReader(buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], []string{"Date", "Airline", "Flight Number", "From", "To", "PNR/Booking Ref", "Email Subject", "Email Date"}) {
		t.Errorf("unexpected header %v", rows[0])
	}
	if !reflect.DeepEqual(rows[1], sample[0].Row()) {
		t.Errorf("row 1 = %v, want %v", rows[1], sample[0].Row())
	}
	if rows[2][5] != "ABC123" || rows[2][0] != "" {
		t.Errorf("unexpected row 2 %v", rows[2])
	}
}

func TestJSONWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := NewJSONWriter(buf, "  ").WriteAll(sample); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	var got []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0]["flightNumber"] != "6E2341" || got[0]["from"] != "DEL" {
		t.Errorf("unexpected first item %v", got[0])
	}
	if _, ok := got[0]["MessageID"]; ok {
		t.Errorf("message id must not be serialised")
	}
}

func TestJSONWriter_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := NewJSONWriter(buf, "").WriteAll(nil); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if got := buf.String(); got != "[]\n" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestYAMLWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, FormatYAML)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	if err := w.WriteAll(sample); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	var got []entity.FlightRecord
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	want := sample[0]
	want.MessageID = ""
	if len(got) != 2 || got[0] != want {
		t.Fatalf("unexpected YAML round trip %+v", got)
	}
}
