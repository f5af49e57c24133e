package repository

import (
	"context"
	"time"

	"github.com/camphq/scheduling-service/internal/models"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	CreateSchedule(ctx context.Context, entry *models.CampSchedule) error
	FindScheduleByDay(ctx context.Context, campID uint, dayOfWeek int) (*models.CampSchedule, error)
	ListSchedules(ctx context.Context, campID uint) ([]models.CampSchedule, error)
	CreateException(ctx context.Context, exc *models.ScheduleException) error
	FindExceptionByDate(ctx context.Context, campID uint, date time.Time) (*models.ScheduleException, error)
	ListExceptions(ctx context.Context, campID uint) ([]models.ScheduleException, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) CreateSchedule(ctx context.Context, entry *models.CampSchedule) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *scheduleRepository) FindScheduleByDay(ctx context.Context, campID uint, dayOfWeek int) (*models.CampSchedule, error) {
	var entry models.CampSchedule
	err := r.db.WithContext(ctx).
		Where("camp_id = ? AND day_of_week = ?", campID, dayOfWeek).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleRepository) ListSchedules(ctx context.Context, campID uint) ([]models.CampSchedule, error) {
	var entries []models.CampSchedule
	err := r.db.WithContext(ctx).
		Where("camp_id = ?", campID).
		Order("day_of_week ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *scheduleRepository) CreateException(ctx context.Context, exc *models.ScheduleException) error {
	return r.db.WithContext(ctx).Create(exc).Error
}

func (r *scheduleRepository) FindExceptionByDate(ctx context.Context, campID uint, date time.Time) (*models.ScheduleException, error) {
	var exc models.ScheduleException
	err := r.db.WithContext(ctx).
		Where("camp_id = ? AND exception_date = ?", campID, date).
		First(&exc).Error
	if err != nil {
		return nil, err
	}
	return &exc, nil
}

func (r *scheduleRepository) ListExceptions(ctx context.Context, campID uint) ([]models.ScheduleException, error) {
	var excs []models.ScheduleException
	err := r.db.WithContext(ctx).
		Where("camp_id = ?", campID).
		Order("exception_date ASC").
		Find(&excs).Error
	if err != nil {
		return nil, err
	}
	return excs, nil
}
