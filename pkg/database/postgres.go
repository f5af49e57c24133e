package database

import (
	"log"

	"github.com/camphq/scheduling-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	return db
}

// Migrate creates the schema plus the indexes AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Camp{},
		&models.CampSchedule{},
		&models.ScheduleException{},
		&models.RecurrencePattern{},
		&models.CampSession{},
		&models.AvailabilitySlot{},
		&models.SlotBooking{},
	); err != nil {
		return err
	}

	// Partial unique index: at most one non-cancelled booking per (slot, child).
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_slot_booking_active
		ON slot_bookings (slot_id, child_id)
		WHERE status <> 'cancelled'
	`).Error
}
