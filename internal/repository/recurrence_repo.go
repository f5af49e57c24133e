package repository

import (
	"context"

	"github.com/camphq/scheduling-service/internal/models"
	"gorm.io/gorm"
)

type RecurrenceRepository interface {
	CreatePattern(ctx context.Context, pattern *models.RecurrencePattern) error
	FindPatternByID(ctx context.Context, id uint) (*models.RecurrencePattern, error)
	MarkExpanded(ctx context.Context, tx *gorm.DB, patternID uint) error
	CreateSessions(ctx context.Context, tx *gorm.DB, sessions []models.CampSession) error
	FindSessionsByCampID(ctx context.Context, campID uint) ([]models.CampSession, error)
	GetDB() *gorm.DB
}

type recurrenceRepository struct {
	db *gorm.DB
}

func NewRecurrenceRepository(db *gorm.DB) RecurrenceRepository {
	return &recurrenceRepository{db: db}
}

func (r *recurrenceRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *recurrenceRepository) CreatePattern(ctx context.Context, pattern *models.RecurrencePattern) error {
	return r.db.WithContext(ctx).Create(pattern).Error
}

func (r *recurrenceRepository) FindPatternByID(ctx context.Context, id uint) (*models.RecurrencePattern, error) {
	var pattern models.RecurrencePattern
	if err := r.db.WithContext(ctx).First(&pattern, id).Error; err != nil {
		return nil, err
	}
	return &pattern, nil
}

func (r *recurrenceRepository) MarkExpanded(ctx context.Context, tx *gorm.DB, patternID uint) error {
	return tx.WithContext(ctx).
		Model(&models.RecurrencePattern{}).
		Where("id = ?", patternID).
		Update("expanded", true).Error
}

func (r *recurrenceRepository) CreateSessions(ctx context.Context, tx *gorm.DB, sessions []models.CampSession) error {
	if len(sessions) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&sessions).Error
}

func (r *recurrenceRepository) FindSessionsByCampID(ctx context.Context, campID uint) ([]models.CampSession, error) {
	var sessions []models.CampSession
	err := r.db.WithContext(ctx).
		Where("camp_id = ?", campID).
		Order("session_date ASC, start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
