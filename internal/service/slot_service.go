package service

import (
	"context"
	"errors"
	"time"

	"github.com/camphq/scheduling-service/internal/models"
	"github.com/camphq/scheduling-service/internal/repository"
	"gorm.io/gorm"
)

type SlotService interface {
	CreateSlot(ctx context.Context, input CreateSlotInput) (*models.AvailabilitySlot, error)
	GetSlot(ctx context.Context, id uint) (*models.AvailabilitySlot, error)
	ListSlots(ctx context.Context, campID uint) ([]models.AvailabilitySlot, error)
	UpdateSlot(ctx context.Context, id uint, patch UpdateSlotInput) (*models.AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, id uint) error
}

type CreateSlotInput struct {
	CampID            uint
	CreatedBy         uint
	Date              time.Time
	StartTime         string
	EndTime           string
	MaxBookings       int
	BufferBefore      int
	BufferAfter       int
	Notes             string
	Recurring         bool
	RecurrenceRule    models.RepeatInterval
	RecurrenceEndDate *time.Time
}

type UpdateSlotInput struct {
	StartTime    *string
	EndTime      *string
	MaxBookings  *int
	BufferBefore *int
	BufferAfter  *int
	Notes        *string
}

type slotService struct {
	slotRepo   repository.SlotRepository
	campRepo   repository.CampRepository
	reconciler *Reconciler
}

func NewSlotService(slotRepo repository.SlotRepository, campRepo repository.CampRepository, reconciler *Reconciler) SlotService {
	return &slotService{
		slotRepo:   slotRepo,
		campRepo:   campRepo,
		reconciler: reconciler,
	}
}

// CreateSlot creates a bookable window. A recurring slot also spawns its
// follow-up occurrences, linked back through parent_slot_id, in the same
// transaction — either the whole chain is created or none of it.
func (s *slotService) CreateSlot(ctx context.Context, input CreateSlotInput) (*models.AvailabilitySlot, error) {
	if _, err := s.campRepo.FindByID(ctx, input.CampID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampNotFound
		}
		return nil, err
	}

	duration, err := models.WindowMinutes(input.StartTime, input.EndTime)
	if err != nil || duration <= 0 {
		return nil, ErrInvalidWindow
	}
	if input.MaxBookings < 1 {
		return nil, ErrInvalidCapacity
	}

	slot := &models.AvailabilitySlot{
		CampID:          input.CampID,
		CreatedBy:       input.CreatedBy,
		SlotDate:        input.Date,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		DurationMinutes: duration,
		MaxBookings:     input.MaxBookings,
		CurrentBookings: 0,
		Status:          models.SlotAvailable,
		BufferBefore:    input.BufferBefore,
		BufferAfter:     input.BufferAfter,
		Notes:           input.Notes,
	}
	if input.Recurring && input.RecurrenceEndDate != nil {
		slot.IsRecurring = true
		slot.RecurrenceRule = string(input.RecurrenceRule)
		slot.RecurrenceEndDate = input.RecurrenceEndDate
	}

	err = s.slotRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.slotRepo.Create(ctx, tx, slot); err != nil {
			return err
		}
		if !slot.IsRecurring {
			return nil
		}
		children := spawnRecurring(slot)
		return s.slotRepo.CreateBatch(ctx, tx, children)
	})
	if err != nil {
		return nil, err
	}
	return slot, nil
}

// spawnRecurring generates the child occurrences of a recurring slot, one per
// interval step after the parent's date up to the recurrence end date
// inclusive. Same stepping as session expansion, parameterized by the parent.
func spawnRecurring(parent *models.AvailabilitySlot) []models.AvailabilitySlot {
	step := models.RepeatInterval(parent.RecurrenceRule).StepDays()
	end := *parent.RecurrenceEndDate

	var children []models.AvailabilitySlot
	for d := parent.SlotDate.AddDate(0, 0, step); !d.After(end); d = d.AddDate(0, 0, step) {
		children = append(children, models.AvailabilitySlot{
			CampID:          parent.CampID,
			CreatedBy:       parent.CreatedBy,
			SlotDate:        d,
			StartTime:       parent.StartTime,
			EndTime:         parent.EndTime,
			DurationMinutes: parent.DurationMinutes,
			MaxBookings:     parent.MaxBookings,
			Status:          models.SlotAvailable,
			BufferBefore:    parent.BufferBefore,
			BufferAfter:     parent.BufferAfter,
			Notes:           parent.Notes,
			ParentSlotID:    &parent.ID,
		})
	}
	return children
}

func (s *slotService) GetSlot(ctx context.Context, id uint) (*models.AvailabilitySlot, error) {
	slot, err := s.slotRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return s.reconciler.Reconcile(ctx, slot), nil
}

func (s *slotService) ListSlots(ctx context.Context, campID uint) ([]models.AvailabilitySlot, error) {
	if _, err := s.campRepo.FindByID(ctx, campID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampNotFound
		}
		return nil, err
	}
	slots, err := s.slotRepo.FindByCampID(ctx, campID)
	if err != nil {
		return nil, err
	}
	for i := range slots {
		s.reconciler.Reconcile(ctx, &slots[i])
	}
	return slots, nil
}

func (s *slotService) UpdateSlot(ctx context.Context, id uint, patch UpdateSlotInput) (*models.AvailabilitySlot, error) {
	slot, err := s.slotRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	if patch.StartTime != nil {
		slot.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		slot.EndTime = *patch.EndTime
	}
	if patch.StartTime != nil || patch.EndTime != nil {
		duration, err := models.WindowMinutes(slot.StartTime, slot.EndTime)
		if err != nil || duration <= 0 {
			return nil, ErrInvalidWindow
		}
		slot.DurationMinutes = duration
	}

	if patch.MaxBookings != nil {
		if *patch.MaxBookings < 1 {
			return nil, ErrInvalidCapacity
		}
		if *patch.MaxBookings < slot.CurrentBookings {
			return nil, ErrCapacityBelowBookings
		}
		slot.MaxBookings = *patch.MaxBookings
		// A capacity change can flip the status in either direction.
		slot.Status = slot.StatusFor(slot.CurrentBookings)
	}

	if patch.BufferBefore != nil {
		slot.BufferBefore = *patch.BufferBefore
	}
	if patch.BufferAfter != nil {
		slot.BufferAfter = *patch.BufferAfter
	}
	if patch.Notes != nil {
		slot.Notes = *patch.Notes
	}

	if err := s.slotRepo.Save(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *slotService) DeleteSlot(ctx context.Context, id uint) error {
	slot, err := s.slotRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSlotNotFound
		}
		return err
	}
	if slot.CurrentBookings > 0 {
		return ErrSlotHasBookings
	}
	return s.slotRepo.Delete(ctx, id)
}
