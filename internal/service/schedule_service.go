package service

import (
	"context"
	"errors"
	"time"

	"github.com/camphq/scheduling-service/internal/models"
	"github.com/camphq/scheduling-service/internal/repository"
	"gorm.io/gorm"
)

type ScheduleService interface {
	CreateSchedule(ctx context.Context, entry *models.CampSchedule) error
	ListSchedules(ctx context.Context, campID uint) ([]models.CampSchedule, error)
	CreateException(ctx context.Context, exc *models.ScheduleException) error
	ListExceptions(ctx context.Context, campID uint) ([]models.ScheduleException, error)
	EffectiveWindow(ctx context.Context, campID uint, date time.Time) (*models.EffectiveWindow, error)
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	campRepo     repository.CampRepository
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository, campRepo repository.CampRepository) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo, campRepo: campRepo}
}

func (s *scheduleService) CreateSchedule(ctx context.Context, entry *models.CampSchedule) error {
	if _, err := s.campRepo.FindByID(ctx, entry.CampID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampNotFound
		}
		return err
	}
	if window, err := models.WindowMinutes(entry.StartTime, entry.EndTime); err != nil || window <= 0 {
		return ErrInvalidWindow
	}
	return s.scheduleRepo.CreateSchedule(ctx, entry)
}

func (s *scheduleService) ListSchedules(ctx context.Context, campID uint) ([]models.CampSchedule, error) {
	return s.scheduleRepo.ListSchedules(ctx, campID)
}

func (s *scheduleService) CreateException(ctx context.Context, exc *models.ScheduleException) error {
	if _, err := s.campRepo.FindByID(ctx, exc.CampID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampNotFound
		}
		return err
	}
	if window, err := models.WindowMinutes(exc.StartTime, exc.EndTime); err != nil || window <= 0 {
		return ErrInvalidWindow
	}
	// The weekday column is a cache of the concrete date, never client input.
	exc.DayOfWeek = int(exc.ExceptionDate.Weekday())
	if exc.Status == "" {
		exc.Status = models.ExceptionActive
	}
	return s.scheduleRepo.CreateException(ctx, exc)
}

func (s *scheduleService) ListExceptions(ctx context.Context, campID uint) ([]models.ScheduleException, error) {
	return s.scheduleRepo.ListExceptions(ctx, campID)
}

// EffectiveWindow resolves the camp's time window for one date. An active
// exception for the exact date beats the weekly schedule; a cancelled
// exception suppresses the date even when a base entry exists.
func (s *scheduleService) EffectiveWindow(ctx context.Context, campID uint, date time.Time) (*models.EffectiveWindow, error) {
	exc, err := s.scheduleRepo.FindExceptionByDate(ctx, campID, date)
	if err == nil {
		if exc.Status == models.ExceptionCancelled {
			return nil, ErrNoSessionOnDate
		}
		return &models.EffectiveWindow{
			Date:      date,
			DayOfWeek: exc.DayOfWeek,
			StartTime: exc.StartTime,
			EndTime:   exc.EndTime,
			Source:    "exception",
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry, err := s.scheduleRepo.FindScheduleByDay(ctx, campID, int(date.Weekday()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSessionOnDate
		}
		return nil, err
	}
	return &models.EffectiveWindow{
		Date:      date,
		DayOfWeek: entry.DayOfWeek,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		Source:    "schedule",
	}, nil
}
