package repository

import (
	"context"

	"github.com/camphq/scheduling-service/internal/models"
	"gorm.io/gorm"
)

type SlotRepository interface {
	Create(ctx context.Context, tx *gorm.DB, slot *models.AvailabilitySlot) error
	CreateBatch(ctx context.Context, tx *gorm.DB, slots []models.AvailabilitySlot) error
	FindByID(ctx context.Context, id uint) (*models.AvailabilitySlot, error)
	FindByCampID(ctx context.Context, campID uint) ([]models.AvailabilitySlot, error)
	ReserveSeat(ctx context.Context, tx *gorm.DB, slotID uint) (bool, error)
	SetOccupancy(ctx context.Context, tx *gorm.DB, slotID uint, count int, status models.SlotStatus) error
	Save(ctx context.Context, slot *models.AvailabilitySlot) error
	Delete(ctx context.Context, id uint) error
	GetDB() *gorm.DB
}

type slotRepository struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) SlotRepository {
	return &slotRepository{db: db}
}

func (r *slotRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *slotRepository) Create(ctx context.Context, tx *gorm.DB, slot *models.AvailabilitySlot) error {
	return tx.WithContext(ctx).Create(slot).Error
}

func (r *slotRepository) CreateBatch(ctx context.Context, tx *gorm.DB, slots []models.AvailabilitySlot) error {
	if len(slots) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&slots).Error
}

func (r *slotRepository) FindByID(ctx context.Context, id uint) (*models.AvailabilitySlot, error) {
	var slot models.AvailabilitySlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) FindByCampID(ctx context.Context, campID uint) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	err := r.db.WithContext(ctx).
		Where("camp_id = ?", campID).
		Order("slot_date ASC, start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// ReserveSeat claims one seat with a conditional increment so two concurrent
// bookings can never jointly push the counter past capacity. Zero rows
// affected means the slot is full.
func (r *slotRepository) ReserveSeat(ctx context.Context, tx *gorm.DB, slotID uint) (bool, error) {
	res := tx.WithContext(ctx).
		Model(&models.AvailabilitySlot{}).
		Where("id = ? AND current_bookings < max_bookings", slotID).
		Updates(map[string]interface{}{
			"current_bookings": gorm.Expr("current_bookings + 1"),
			"status": gorm.Expr(
				"CASE WHEN current_bookings + 1 >= max_bookings THEN ? ELSE ? END",
				models.SlotBooked, models.SlotAvailable,
			),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *slotRepository) SetOccupancy(ctx context.Context, tx *gorm.DB, slotID uint, count int, status models.SlotStatus) error {
	return tx.WithContext(ctx).
		Model(&models.AvailabilitySlot{}).
		Where("id = ?", slotID).
		Updates(map[string]interface{}{
			"current_bookings": count,
			"status":           status,
		}).Error
}

func (r *slotRepository) Save(ctx context.Context, slot *models.AvailabilitySlot) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *slotRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.AvailabilitySlot{}, id).Error
}
