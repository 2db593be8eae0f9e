package repository

import (
	"context"
	"fmt"
	"time"

	"flightscan-service/internal/domain/entity"
	"flightscan-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFlightRecordRepository implements FlightRecordRepository
type MongoFlightRecordRepository struct {
	collection *mongo.Collection
}

// NewMongoFlightRecordRepository creates a new flight record repository
func NewMongoFlightRecordRepository(ctx context.Context, db *mongo.Database) (repository.FlightRecordRepository, error) {
	collection := db.Collection("flight_records")

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.M{"identityKey": 1},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.M{"flightDate": 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create flight record indexes: %w", err)
	}

	return &MongoFlightRecordRepository{
		collection: collection,
	}, nil
}

// SaveAll upserts every record. A stored record is only overwritten by a
// strictly richer one.
func (r *MongoFlightRecordRepository) SaveAll(ctx context.Context, records []entity.FlightRecord) error {
	for _, record := range records {
		if err := r.upsert(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (r *MongoFlightRecordRepository) upsert(ctx context.Context, record entity.FlightRecord) error {
	key := recordKey(record)
	now := time.Now()

	// Matches only a poorer stored document. When a richer or equal one
	// exists the upsert collides with the unique index and is skipped.
	filter := bson.M{
		"identityKey": key,
		"richness":    bson.M{"$lt": record.Richness()},
	}
	update := bson.M{
		"$set": bson.M{
			"identityKey":  key,
			"richness":     record.Richness(),
			"flightDate":   record.FlightDate,
			"airline":      record.Airline,
			"flightNumber": record.FlightNumber,
			"fromCode":     record.FromCode,
			"toCode":       record.ToCode,
			"bookingRef":   record.BookingRef,
			"subject":      record.Subject,
			"receivedDate": record.ReceivedDate,
			"messageId":    record.MessageID,
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{
			"createdAt": now,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to upsert flight record %s: %w", key, err)
	}
	return nil
}
