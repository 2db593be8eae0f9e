package repository

import (
	"flightscan-service/internal/domain/entity"
	"flightscan-service/pkg/reconcile"
)

// recordKey is the stored identity of a record. Records without a booking
// identity are keyed by the message they came from so rescans stay idempotent.
func recordKey(r entity.FlightRecord) string {
	if key, ok := reconcile.KeyOf(r); ok {
		return key.String()
	}
	return "msg:" + r.MessageID
}

// replaces reports whether r should overwrite a stored record of the given
// richness. Ties keep the stored record.
func replaces(storedRichness int, r entity.FlightRecord) bool {
	return r.Richness() > storedRichness
}
