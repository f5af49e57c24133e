package service

import (
	"context"
	"log"

	"github.com/camphq/scheduling-service/internal/models"
	"github.com/camphq/scheduling-service/internal/repository"
)

// Reconciler recomputes a slot's booked count and status from the booking
// ledger on the read path and persists any correction. The cached counter can
// drift after partial failures; the ledger is the source of truth.
type Reconciler struct {
	slotRepo    repository.SlotRepository
	bookingRepo repository.BookingRepository
}

func NewReconciler(slotRepo repository.SlotRepository, bookingRepo repository.BookingRepository) *Reconciler {
	return &Reconciler{slotRepo: slotRepo, bookingRepo: bookingRepo}
}

// Reconcile repairs slot in place and returns it. Repair is best-effort: a
// failed recount or persist is logged and the read proceeds with whatever
// values are most truthful at that point.
func (r *Reconciler) Reconcile(ctx context.Context, slot *models.AvailabilitySlot) *models.AvailabilitySlot {
	count, err := r.bookingRepo.CountConfirmed(ctx, r.bookingRepo.GetDB(), slot.ID)
	if err != nil {
		log.Printf("[Reconciler] slot %d: recount failed: %v", slot.ID, err)
		return slot
	}

	trueCount := int(count)
	status := slot.StatusFor(trueCount)
	if trueCount == slot.CurrentBookings && status == slot.Status {
		return slot
	}

	log.Printf("[Reconciler] slot %d: correcting bookings %d -> %d, status %s -> %s",
		slot.ID, slot.CurrentBookings, trueCount, slot.Status, status)
	if err := r.slotRepo.SetOccupancy(ctx, r.slotRepo.GetDB(), slot.ID, trueCount, status); err != nil {
		log.Printf("[Reconciler] slot %d: persist correction failed: %v", slot.ID, err)
	}

	slot.CurrentBookings = trueCount
	slot.Status = status
	return slot
}
