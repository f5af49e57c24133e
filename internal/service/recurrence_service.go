package service

import (
	"context"
	"errors"
	"time"

	"github.com/camphq/scheduling-service/internal/models"
	"github.com/camphq/scheduling-service/internal/repository"
	"gorm.io/gorm"
)

type RecurrenceService interface {
	CreatePattern(ctx context.Context, pattern *models.RecurrencePattern) error
	ExpandPattern(ctx context.Context, patternID uint) ([]models.CampSession, error)
	ListSessions(ctx context.Context, campID uint) ([]models.CampSession, error)
}

type recurrenceService struct {
	recurrenceRepo repository.RecurrenceRepository
	campRepo       repository.CampRepository
}

func NewRecurrenceService(recurrenceRepo repository.RecurrenceRepository, campRepo repository.CampRepository) RecurrenceService {
	return &recurrenceService{recurrenceRepo: recurrenceRepo, campRepo: campRepo}
}

func (s *recurrenceService) CreatePattern(ctx context.Context, pattern *models.RecurrencePattern) error {
	if _, err := s.campRepo.FindByID(ctx, pattern.CampID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampNotFound
		}
		return err
	}
	if pattern.StartDate.After(pattern.EndDate) {
		return ErrInvalidPattern
	}
	if pattern.PatternType == models.PatternSpecificDays && len(pattern.DaysOfWeek) == 0 {
		return ErrInvalidPattern
	}
	if window, err := models.WindowMinutes(pattern.StartTime, pattern.EndTime); err != nil || window <= 0 {
		return ErrInvalidWindow
	}
	return s.recurrenceRepo.CreatePattern(ctx, pattern)
}

// ExpandPattern materializes a pattern into concrete sessions. Expansion runs
// at most once per pattern: the sessions and the expanded flag are written in
// one transaction, and a second call is rejected instead of producing
// duplicate sessions.
func (s *recurrenceService) ExpandPattern(ctx context.Context, patternID uint) ([]models.CampSession, error) {
	pattern, err := s.recurrenceRepo.FindPatternByID(ctx, patternID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatternNotFound
		}
		return nil, err
	}
	if pattern.Expanded {
		return nil, ErrPatternAlreadyExpanded
	}

	sessions := expandPattern(pattern)

	err = s.recurrenceRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.recurrenceRepo.CreateSessions(ctx, tx, sessions); err != nil {
			return err
		}
		return s.recurrenceRepo.MarkExpanded(ctx, tx, patternID)
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// expandPattern walks the date range day by day. specific_days emits only on
// matching weekdays and always advances one day; every other pattern type
// emits on each visited date and advances by the repeat interval. A range
// with start after end yields nothing.
func expandPattern(p *models.RecurrencePattern) []models.CampSession {
	groupID := p.ID
	var sessions []models.CampSession

	if p.PatternType == models.PatternSpecificDays {
		wanted := make(map[int]bool, len(p.DaysOfWeek))
		for _, d := range p.DaysOfWeek {
			wanted[d] = true
		}
		for d := p.StartDate; !d.After(p.EndDate); d = d.AddDate(0, 0, 1) {
			if wanted[int(d.Weekday())] {
				sessions = append(sessions, sessionOn(p, d, groupID))
			}
		}
		return sessions
	}

	step := p.RepeatInterval.StepDays()
	for d := p.StartDate; !d.After(p.EndDate); d = d.AddDate(0, 0, step) {
		sessions = append(sessions, sessionOn(p, d, groupID))
	}
	return sessions
}

func sessionOn(p *models.RecurrencePattern, date time.Time, groupID uint) models.CampSession {
	return models.CampSession{
		CampID:            p.CampID,
		SessionDate:       date,
		StartTime:         p.StartTime,
		EndTime:           p.EndTime,
		Status:            models.SessionActive,
		RecurrenceGroupID: &groupID,
	}
}

func (s *recurrenceService) ListSessions(ctx context.Context, campID uint) ([]models.CampSession, error) {
	if _, err := s.campRepo.FindByID(ctx, campID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampNotFound
		}
		return nil, err
	}
	return s.recurrenceRepo.FindSessionsByCampID(ctx, campID)
}
