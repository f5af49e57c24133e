package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/camphq/scheduling-service/internal/models"
	"github.com/camphq/scheduling-service/internal/repository"
	"github.com/camphq/scheduling-service/pkg/rabbitmq"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingService interface {
	BookSlot(ctx context.Context, input BookSlotInput) (*models.SlotBooking, error)
	CancelBooking(ctx context.Context, bookingID uint, reason string) (*models.SlotBooking, error)
	GetBooking(ctx context.Context, id uint) (*models.SlotBooking, error)
	ListBookings(ctx context.Context, slotID uint, status *models.BookingStatus) ([]models.SlotBooking, error)
}

type BookSlotInput struct {
	SlotID         uint
	ChildID        uint
	ParentID       uint
	RegistrationID *uint
	Notes          string
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	slotRepo    repository.SlotRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(bookingRepo repository.BookingRepository, slotRepo repository.SlotRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		publisher:   publisher,
	}
}

// BookSlot claims one seat on a slot. The booking insert and the counter
// increment commit or roll back together; the conditional increment in
// ReserveSeat is what stops concurrent callers from overselling the slot.
func (s *bookingService) BookSlot(ctx context.Context, input BookSlotInput) (*models.SlotBooking, error) {
	var result *models.SlotBooking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slot, err := s.slotRepo.FindByID(ctx, input.SlotID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}

		// Capacity check precedes the status check so a full slot reports
		// Full rather than NotAvailable.
		if slot.CurrentBookings >= slot.MaxBookings {
			return ErrSlotFull
		}
		if slot.Status != models.SlotAvailable {
			return ErrSlotNotAvailable
		}

		dup, err := s.bookingRepo.HasConfirmed(ctx, tx, input.SlotID, input.ChildID)
		if err != nil {
			return err
		}
		if dup {
			return ErrDuplicateBooking
		}

		booking := &models.SlotBooking{
			SlotID:         input.SlotID,
			ChildID:        input.ChildID,
			ParentID:       input.ParentID,
			RegistrationID: input.RegistrationID,
			Reference:      uuid.NewString(),
			Status:         models.BookingConfirmed,
			BookedAt:       time.Now(),
			Notes:          input.Notes,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			// The partial unique index on (slot_id, child_id) catches the
			// duplicate race the check above can miss.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateBooking
			}
			return err
		}

		reserved, err := s.slotRepo.ReserveSeat(ctx, tx, input.SlotID)
		if err != nil {
			return err
		}
		if !reserved {
			return ErrSlotFull
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify("booking.confirmed", result)
	return result, nil
}

// CancelBooking flips a booking to cancelled and recomputes the slot counter
// from the confirmed-booking count rather than decrementing blindly, so a
// counter that drifted gets corrected here as well.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID uint, reason string) (*models.SlotBooking, error) {
	var result *models.SlotBooking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Status == models.BookingCancelled {
			return ErrAlreadyCancelled
		}

		now := time.Now()
		if err := s.bookingRepo.MarkCancelled(ctx, tx, bookingID, reason, now); err != nil {
			return err
		}

		slot, err := s.slotRepo.FindByID(ctx, booking.SlotID)
		if err != nil {
			return err
		}

		count, err := s.bookingRepo.CountConfirmed(ctx, tx, slot.ID)
		if err != nil {
			return err
		}
		if err := s.slotRepo.SetOccupancy(ctx, tx, slot.ID, int(count), slot.StatusFor(int(count))); err != nil {
			return err
		}

		booking.Status = models.BookingCancelled
		booking.CancelledAt = &now
		booking.CancellationReason = reason
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify("booking.cancelled", result)
	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.SlotBooking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, slotID uint, status *models.BookingStatus) ([]models.SlotBooking, error) {
	return s.bookingRepo.FindBySlotID(ctx, slotID, status)
}

// notify dispatches a best-effort message to the notification collaborator.
// Delivery failures never fail the booking operation itself.
func (s *bookingService) notify(routingKey string, booking *models.SlotBooking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(routingKey, booking); err != nil {
		log.Printf("[Notify] failed to publish %s for booking %s: %v", routingKey, booking.Reference, err)
	}
}
