package repository

import (
	"context"
	"time"

	"github.com/camphq/scheduling-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.SlotBooking) error
	FindByID(ctx context.Context, id uint) (*models.SlotBooking, error)
	FindBySlotID(ctx context.Context, slotID uint, status *models.BookingStatus) ([]models.SlotBooking, error)
	CountConfirmed(ctx context.Context, tx *gorm.DB, slotID uint) (int64, error)
	HasConfirmed(ctx context.Context, tx *gorm.DB, slotID, childID uint) (bool, error)
	MarkCancelled(ctx context.Context, tx *gorm.DB, bookingID uint, reason string, at time.Time) error
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.SlotBooking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.SlotBooking, error) {
	var booking models.SlotBooking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindBySlotID(ctx context.Context, slotID uint, status *models.BookingStatus) ([]models.SlotBooking, error) {
	var bookings []models.SlotBooking
	q := r.db.WithContext(ctx).Where("slot_id = ?", slotID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// CountConfirmed is the ground truth the slot counter is reconciled against.
func (r *bookingRepository) CountConfirmed(ctx context.Context, tx *gorm.DB, slotID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.SlotBooking{}).
		Where("slot_id = ? AND status = ?", slotID, models.BookingConfirmed).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) HasConfirmed(ctx context.Context, tx *gorm.DB, slotID, childID uint) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.SlotBooking{}).
		Where("slot_id = ? AND child_id = ? AND status = ?", slotID, childID, models.BookingConfirmed).
		Count(&count).Error
	return count > 0, err
}

func (r *bookingRepository) MarkCancelled(ctx context.Context, tx *gorm.DB, bookingID uint, reason string, at time.Time) error {
	return tx.WithContext(ctx).
		Model(&models.SlotBooking{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			"status":              models.BookingCancelled,
			"cancelled_at":        at,
			"cancellation_reason": reason,
		}).Error
}
