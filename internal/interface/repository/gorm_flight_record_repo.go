package repository

import (
	"context"
	"fmt"
	"time"

	"flightscan-service/internal/domain/entity"
	"flightscan-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormFlightRecordRepository implements FlightRecordRepository on PostgreSQL
type GormFlightRecordRepository struct {
	db *gorm.DB
}

// FlightRecords GORM model for database mapping
type FlightRecords struct {
	ID           uint   `gorm:"primaryKey"`
	IdentityKey  string `gorm:"column:identity_key;uniqueIndex"`
	Richness     int    `gorm:"column:richness"`
	FlightDate   string `gorm:"column:flight_date;index"`
	Airline      string `gorm:"column:airline"`
	FlightNumber string `gorm:"column:flight_number"`
	FromCode     string `gorm:"column:from_code"`
	ToCode       string `gorm:"column:to_code"`
	BookingRef   string `gorm:"column:booking_ref"`
	Subject      string `gorm:"column:subject"`
	ReceivedDate string `gorm:"column:received_date"`
	MessageID    string `gorm:"column:message_id"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name
func (FlightRecords) TableName() string {
	return "flight_records"
}

// NewGormFlightRecordRepository creates the repository and migrates its table
func NewGormFlightRecordRepository(db *gorm.DB) (repository.FlightRecordRepository, error) {
	if err := db.AutoMigrate(&FlightRecords{}); err != nil {
		return nil, fmt.Errorf("failed to migrate flight_records: %w", err)
	}
	return &GormFlightRecordRepository{
		db: db,
	}, nil
}

// SaveAll stores the records in one transaction. A stored row is only
// overwritten by a strictly richer record.
func (r *GormFlightRecordRepository) SaveAll(ctx context.Context, records []entity.FlightRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if err := saveRecord(tx, record); err != nil {
				return err
			}
		}
		return nil
	})
}

func saveRecord(tx *gorm.DB, record entity.FlightRecord) error {
	row := toFlightRecordRow(record)

	var stored FlightRecords
	result := tx.Where("identity_key = ?", row.IdentityKey).Limit(1).Find(&stored)
	if result.Error != nil {
		return fmt.Errorf("failed to load flight record %s: %w", row.IdentityKey, result.Error)
	}
	if result.RowsAffected == 0 {
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert flight record %s: %w", row.IdentityKey, err)
		}
		return nil
	}

	if !replaces(stored.Richness, record) {
		return nil
	}

	// A map so that fields cleared to "" are written too.
	err := tx.Model(&stored).Updates(map[string]interface{}{
		"richness":      row.Richness,
		"flight_date":   row.FlightDate,
		"airline":       row.Airline,
		"flight_number": row.FlightNumber,
		"from_code":     row.FromCode,
		"to_code":       row.ToCode,
		"booking_ref":   row.BookingRef,
		"subject":       row.Subject,
		"received_date": row.ReceivedDate,
		"message_id":    row.MessageID,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update flight record %s: %w", row.IdentityKey, err)
	}
	return nil
}

func toFlightRecordRow(record entity.FlightRecord) FlightRecords {
	return FlightRecords{
		IdentityKey:  recordKey(record),
		Richness:     record.Richness(),
		FlightDate:   record.FlightDate,
		Airline:      record.Airline,
		FlightNumber: record.FlightNumber,
		FromCode:     record.FromCode,
		ToCode:       record.ToCode,
		BookingRef:   record.BookingRef,
		Subject:      record.Subject,
		ReceivedDate: record.ReceivedDate,
		MessageID:    record.MessageID,
	}
}
