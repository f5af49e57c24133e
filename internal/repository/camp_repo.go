package repository

import (
	"context"

	"github.com/camphq/scheduling-service/internal/models"
	"gorm.io/gorm"
)

type CampRepository interface {
	Create(ctx context.Context, camp *models.Camp) error
	FindByID(ctx context.Context, id uint) (*models.Camp, error)
}

type campRepository struct {
	db *gorm.DB
}

func NewCampRepository(db *gorm.DB) CampRepository {
	return &campRepository{db: db}
}

func (r *campRepository) Create(ctx context.Context, camp *models.Camp) error {
	return r.db.WithContext(ctx).Create(camp).Error
}

func (r *campRepository) FindByID(ctx context.Context, id uint) (*models.Camp, error) {
	var camp models.Camp
	if err := r.db.WithContext(ctx).First(&camp, id).Error; err != nil {
		return nil, err
	}
	return &camp, nil
}
