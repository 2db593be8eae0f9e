package reconcile

import (
	"reflect"
	"testing"

	"flightscan-service/internal/domain/entity"
)

func dates(records []entity.FlightRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.FlightDate
	}
	return out
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		name   string
		record entity.FlightRecord
		want   IdentityKey
		wantOK bool
	}{
		{
			name:   "booking ref wins",
			record: entity.FlightRecord{BookingRef: "ABC123", FlightNumber: "AI302", FlightDate: "2025-01-01"},
			want:   IdentityKey{BookingRef: "ABC123"},
			wantOK: true,
		},
		{
			name:   "flight and date",
			record: entity.FlightRecord{FlightNumber: "AI302", FlightDate: "2025-01-01"},
			want:   IdentityKey{FlightNumber: "AI302", FlightDate: "2025-01-01"},
			wantOK: true,
		},
		{
			name:   "date only still identifies",
			record: entity.FlightRecord{FlightDate: "2025-01-01", FromCode: "DEL", ToCode: "BOM"},
			want:   IdentityKey{FlightDate: "2025-01-01"},
			wantOK: true,
		},
		{
			name:   "no identity",
			record: entity.FlightRecord{FromCode: "DEL", ToCode: "BOM"},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyOf(tt.record)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("KeyOf() = (%+v, %v), want (%+v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIdentityKeyString(t *testing.T) {
	if got := (IdentityKey{BookingRef: "ABC123"}).String(); got != "pnr:ABC123" {
		t.Errorf("String() = %q", got)
	}
	if got := (IdentityKey{FlightNumber: "AI302", FlightDate: "2025-01-01"}).String(); got != "flight:AI302@2025-01-01" {
		t.Errorf("String() = %q", got)
	}
}

func TestReconcileIdenticalCopies(t *testing.T) {
	r := entity.FlightRecord{BookingRef: "ABC123", FlightNumber: "AI302", Subject: "first", MessageID: "1"}
	copyOf := r
	copyOf.MessageID = "2"

	got := Reconcile([]entity.FlightRecord{r, copyOf})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].MessageID != "1" {
		t.Fatalf("expected the first copy to survive a tie, got %q", got[0].MessageID)
	}
}

func TestReconcileRicherReplacesAndMovesToEnd(t *testing.T) {
	poor := entity.FlightRecord{BookingRef: "ABC123", MessageID: "poor"}
	other := entity.FlightRecord{FlightNumber: "6E201", MessageID: "other"}
	rich := entity.FlightRecord{BookingRef: "ABC123", FlightNumber: "AI302", FromCode: "DEL", ToCode: "BOM", MessageID: "rich"}

	e := NewEngine()
	for _, r := range []entity.FlightRecord{poor, other, rich} {
		e.Add(r)
	}
	got := e.Records()

	var ids []string
	for _, r := range got {
		ids = append(ids, r.MessageID)
	}
	if !reflect.DeepEqual(ids, []string{"other", "rich"}) {
		t.Fatalf("unexpected order %v", ids)
	}

	stats := e.Stats()
	want := Stats{Input: 3, Replaced: 1, Output: 2}
	if stats != want {
		t.Fatalf("Stats() = %+v, want %+v", stats, want)
	}
}

func TestReconcilePoorerDropped(t *testing.T) {
	rich := entity.FlightRecord{FlightNumber: "AI302", FlightDate: "2025-01-01", Airline: "Air India", MessageID: "rich"}
	poor := entity.FlightRecord{FlightNumber: "AI302", FlightDate: "2025-01-01", MessageID: "poor"}

	e := NewEngine()
	e.Add(rich)
	e.Add(poor)
	got := e.Records()
	if len(got) != 1 || got[0].MessageID != "rich" {
		t.Fatalf("expected only the richer record, got %+v", got)
	}
	if e.Stats().Dropped != 1 {
		t.Fatalf("expected 1 dropped, got %+v", e.Stats())
	}
}

func TestReconcileNoIdentityPassesThrough(t *testing.T) {
	a := entity.FlightRecord{FromCode: "DEL", ToCode: "BOM", MessageID: "a"}
	b := entity.FlightRecord{FromCode: "DEL", ToCode: "BOM", MessageID: "b"}

	e := NewEngine()
	e.Add(a)
	e.Add(b)
	if got := e.Records(); len(got) != 2 {
		t.Fatalf("expected both unidentified records, got %d", len(got))
	}
	if e.Stats().PassThrough != 2 {
		t.Fatalf("expected 2 pass-through, got %+v", e.Stats())
	}
}

func TestReconcileSortsEmptyDatesLast(t *testing.T) {
	in := []entity.FlightRecord{
		{FlightNumber: "AI1", FlightDate: "2025-03-01"},
		{BookingRef: "NODATE"},
		{FlightNumber: "AI2", FlightDate: "2024-12-31"},
	}
	got := dates(Reconcile(in))
	want := []string{"2024-12-31", "2025-03-01", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	in := []entity.FlightRecord{
		{BookingRef: "ABC123", MessageID: "1"},
		{FlightNumber: "6E201", FlightDate: "2025-02-01", MessageID: "2"},
		{BookingRef: "ABC123", FlightNumber: "AI302", MessageID: "3"},
		{FromCode: "DEL", ToCode: "BOM", MessageID: "4"},
		{FlightNumber: "6E201", FlightDate: "2025-02-01", Airline: "IndiGo", MessageID: "5"},
		{FlightNumber: "SG8", FlightDate: "2025-02-01", MessageID: "6"},
	}
	once := Reconcile(in)
	twice := Reconcile(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second pass changed output:\n%+v\n%+v", once, twice)
	}
}

func TestSortByFlightDateStable(t *testing.T) {
	in := []entity.FlightRecord{
		{FlightDate: "", MessageID: "x"},
		{FlightDate: "2025-01-01", MessageID: "a"},
		{FlightDate: "", MessageID: "y"},
		{FlightDate: "2025-01-01", MessageID: "b"},
	}
	SortByFlightDate(in)
	var ids []string
	for _, r := range in {
		ids = append(ids, r.MessageID)
	}
	if !reflect.DeepEqual(ids, []string{"a", "b", "x", "y"}) {
		t.Fatalf("unexpected order %v", ids)
	}
}
