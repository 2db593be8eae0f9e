package repository

import (
	"context"

	"flightscan-service/internal/domain/entity"
)

// EmailSource yields candidate flight emails in a stable order.
type EmailSource interface {
	// ListMessageIDs returns the IDs of matching messages, de-duplicated,
	// in first-seen order.
	ListMessageIDs(ctx context.Context) ([]string, error)

	// FetchEmail retrieves and decodes one message.
	FetchEmail(ctx context.Context, id string) (*entity.Email, error)
}
