package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/camphq/scheduling-service/internal/models"
	"github.com/camphq/scheduling-service/pkg/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. cache=shared keeps the
// database alive across the connections gorm pools.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestCamp(t *testing.T, db *gorm.DB, name string) *models.Camp {
	t.Helper()
	camp := &models.Camp{OrganizationID: 1, Name: name}
	require.NoError(t, db.Create(camp).Error)
	return camp
}

func createTestSlot(t *testing.T, db *gorm.DB, campID uint, maxBookings int) *models.AvailabilitySlot {
	t.Helper()
	slot := &models.AvailabilitySlot{
		CampID:          campID,
		CreatedBy:       1,
		SlotDate:        date(2024, 7, 15),
		StartTime:       "09:00",
		EndTime:         "10:00",
		DurationMinutes: 60,
		MaxBookings:     maxBookings,
		Status:          models.SlotAvailable,
	}
	require.NoError(t, db.Create(slot).Error)
	return slot
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
