package parser

import (
	"strings"

	"flightscan-service/internal/domain/entity"
)

// Reason says why a candidate record was rejected before reconciliation.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonExcludedSubject Reason = "excluded_subject"
	ReasonNoSignal        Reason = "no_signal"
	ReasonNoPassenger     Reason = "no_passenger"
)

// IsExcludedSubject reports whether the subject names a known non-flight
// category such as hotel bookings or card statements.
func IsExcludedSubject(subject string) bool {
	s := strings.ToLower(subject)
	for _, kw := range excludedSubjects {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// HasSignal reports whether a record carries anything that identifies an
// actual flight: a flight number, a booking reference, or a full route.
func HasSignal(r entity.FlightRecord) bool {
	return r.FlightNumber != "" || r.BookingRef != "" || r.HasRoute()
}

// Filter decides which candidate records go on to reconciliation.
type Filter struct {
	passengers []string
}

// NewFilter creates a filter. With no passenger names every passenger is
// accepted; otherwise the email text must mention one of them.
func NewFilter(passengerNames []string) *Filter {
	var names []string
	for _, n := range passengerNames {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			names = append(names, n)
		}
	}
	return &Filter{passengers: names}
}

// Check returns ReasonNone if the record should be kept.
func (f *Filter) Check(email entity.Email, record entity.FlightRecord) Reason {
	if IsExcludedSubject(record.Subject) {
		return ReasonExcludedSubject
	}
	if !HasSignal(record) {
		return ReasonNoSignal
	}
	if !f.mentionsPassenger(FullText(email)) {
		return ReasonNoPassenger
	}
	return ReasonNone
}

func (f *Filter) mentionsPassenger(text string) bool {
	if len(f.passengers) == 0 {
		return true
	}
	lower := strings.ToLower(text)
	for _, n := range f.passengers {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}
