package repository

import (
	"context"

	"flightscan-service/internal/domain/entity"
)

// FlightRecordRepository accepts the reconciled record sequence.
type FlightRecordRepository interface {
	SaveAll(ctx context.Context, records []entity.FlightRecord) error
}
