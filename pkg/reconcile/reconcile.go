// Package reconcile merges repeated observations of the same booking into
// one record and orders the result by flight date.
package reconcile

import (
	"sort"

	"flightscan-service/internal/domain/entity"
)

// IdentityKey decides whether two records describe the same booking.
// A booking reference alone identifies a booking; without one the flight
// number and date together do.
type IdentityKey struct {
	BookingRef   string
	FlightNumber string
	FlightDate   string
}

// KeyOf derives a record's identity. ok is false when the record has no
// identity and must never be merged.
func KeyOf(r entity.FlightRecord) (key IdentityKey, ok bool) {
	if r.BookingRef != "" {
		return IdentityKey{BookingRef: r.BookingRef}, true
	}
	if r.FlightNumber == "" && r.FlightDate == "" {
		return IdentityKey{}, false
	}
	return IdentityKey{FlightNumber: r.FlightNumber, FlightDate: r.FlightDate}, true
}

// String renders the key for storage and logs.
func (k IdentityKey) String() string {
	if k.BookingRef != "" {
		return "pnr:" + k.BookingRef
	}
	return "flight:" + k.FlightNumber + "@" + k.FlightDate
}

// Stats counts what a reconciliation pass did.
type Stats struct {
	Input       int
	PassThrough int
	Replaced    int
	Dropped     int
	Output      int
}

// Engine keeps the best record per identity in first-seen order.
// It is not safe for concurrent use.
type Engine struct {
	slots []slot
	index map[IdentityKey]int
	stats Stats
}

type slot struct {
	record entity.FlightRecord
	live   bool
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{index: make(map[IdentityKey]int)}
}

// Add folds one record into the engine. A record whose key is already
// held replaces the held one only when it is strictly richer; the
// replacement moves to the end of the sequence.
func (e *Engine) Add(r entity.FlightRecord) {
	e.stats.Input++

	key, ok := KeyOf(r)
	if !ok {
		e.stats.PassThrough++
		e.slots = append(e.slots, slot{record: r, live: true})
		return
	}

	pos, seen := e.index[key]
	if !seen {
		e.index[key] = len(e.slots)
		e.slots = append(e.slots, slot{record: r, live: true})
		return
	}

	if r.Richness() <= e.slots[pos].record.Richness() {
		e.stats.Dropped++
		return
	}

	e.stats.Replaced++
	e.slots[pos].live = false
	e.index[key] = len(e.slots)
	e.slots = append(e.slots, slot{record: r, live: true})
}

// Records returns the surviving records sorted by flight date ascending,
// undated records last. Records with equal dates keep their sequence order.
func (e *Engine) Records() []entity.FlightRecord {
	out := make([]entity.FlightRecord, 0, len(e.index))
	for _, s := range e.slots {
		if s.live {
			out = append(out, s.record)
		}
	}
	SortByFlightDate(out)
	return out
}

// Stats reports counts for the records added so far.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.Output = s.Input - s.Replaced - s.Dropped
	return s
}

// Reconcile runs a fresh engine over records in order.
func Reconcile(records []entity.FlightRecord) []entity.FlightRecord {
	e := NewEngine()
	for _, r := range records {
		e.Add(r)
	}
	return e.Records()
}

// SortByFlightDate orders records by ISO flight date, empty dates last.
func SortByFlightDate(records []entity.FlightRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].FlightDate, records[j].FlightDate
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a < b
	})
}
