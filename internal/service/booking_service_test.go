package service

import (
	"context"
	"testing"

	"github.com/camphq/scheduling-service/internal/models"
	"github.com/camphq/scheduling-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestBookingService(db *gorm.DB) BookingService {
	return NewBookingService(
		repository.NewBookingRepository(db),
		repository.NewSlotRepository(db),
		nil,
	)
}

func TestBookSlot_Success(t *testing.T) {
	db := newTestDB(t)
	camp := createTestCamp(t, db, "Summer Camp")
	slot := createTestSlot(t, db, camp.ID, 3)
	svc := newTestBookingService(db)

	booking, err := svc.BookSlot(context.Background(), BookSlotInput{
		SlotID:   slot.ID,
		ChildID:  10,
		ParentID: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.NotEmpty(t, booking.Reference)
	assert.False(t, booking.BookedAt.IsZero())

	var stored models.AvailabilitySlot
	require.NoError(t, db.First(&stored, slot.ID).Error)
	assert.Equal(t, 1, stored.CurrentBookings)
	assert.Equal(t, models.SlotAvailable, stored.Status)
}

func TestBookSlot_FillsToCapacity(t *testing.T) {
	db := newTestDB(t)
	camp := createTestCamp(t, db, "Summer Camp")
	slot := createTestSlot(t, db, camp.ID, 2)
	svc := newTestBookingService(db)

	for child := uint(1); child <= 2; child++ {
		_, err := svc.BookSlot(context.Background(), BookSlotInput{SlotID: slot.ID, ChildID: child, ParentID: 20})
		require.NoError(t, err)
	}

	var stored models.AvailabilitySlot
	require.NoError(t, db.First(&stored, slot.ID).Error)
	assert.Equal(t, 2, stored.CurrentBookings)
	assert.Equal(t, models.SlotBooked, stored.Status)

	_, err := svc.BookSlot(context.Background(), BookSlotInput{SlotID: slot.ID, ChildID: 3, ParentID: 20})
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestBookSlot_DuplicateChild(t *testing.T) {
	db := newTestDB(t)
	camp := createTestCamp(t, db, "Summer Camp")
	slot := createTestSlot(t, db, camp.ID, 5)
	svc := newTestBookingService(db)

	_, err := svc.BookSlot(context.Background(), BookSlotInput{SlotID: slot.ID, ChildID: 10, ParentID: 20})
	require.NoError(t, err)

	_, err = svc.BookSlot(context.Background(), BookSlotInput{SlotID: slot.ID, ChildID: 10, ParentID: 20})
	assert.ErrorIs(t, err, ErrDuplicateBooking)

	// Only the first attempt may touch the counter.
	var stored models.AvailabilitySlot
	require.NoError(t, db.First(&stored, slot.ID).Error)
	assert.Equal(t, 1, stored.CurrentBookings)
}

func TestBookSlot_SlotNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestBookingService(db)

	_, err := svc.BookSlot(context.Background(), BookSlotInput{SlotID: 9999, ChildID: 10, ParentID: 20})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestBookSlot_NotAvailable(t *testing.T) {
	db := newTestDB(t)
	camp := createTestCamp(t, db, "Summer Camp")
	slot := createTestSlot(t, db, camp.ID, 5)
	require.NoError(t, db.Model(slot).Update("status", models.SlotBooked).Error)
	svc := newTestBookingService(db)

	_, err := svc.BookSlot(context.Background(), BookSlotInput{SlotID: slot.ID, ChildID: 10, ParentID: 20})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCancelBooking_ReleasesSeat(t *testing.T) {
	db := newTestDB(t)
	camp := createTestCamp(t, db, "Summer Camp")
	slot := createTestSlot(t, db, camp.ID, 1)
	svc := newTestBookingService(db)

	booking, err := svc.BookSlot(context.Background(), BookSlotInput{SlotID: slot.ID, ChildID: 10, ParentID: 20})
	require.NoError(t, err)

	var full models.AvailabilitySlot
	require.NoError(t, db.First(&full, slot.ID).Error)
	require.Equal(t, models.SlotBooked, full.Status)

	cancelled, err := svc.CancelBooking(context.Background(), booking.ID, "schedule conflict")
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, "schedule conflict", cancelled.CancellationReason)

	var freed models.AvailabilitySlot
	require.NoError(t, db.First(&freed, slot.ID).Error)
	assert.Equal(t, 0, freed.CurrentBookings)
	assert.Equal(t, models.SlotAvailable, freed.Status)
}

func TestCancelBooking_Twice(t *testing.T) {
	db := newTestDB(t)
	camp := createTestCamp(t, db, "Summer Camp")
	slot := createTestSlot(t, db, camp.ID, 2)
	svc := newTestBookingService(db)

	booking, err := svc.BookSlot(context.Background(), BookSlotInput{SlotID: slot.ID, ChildID: 10, ParentID: 20})
	require.NoError(t, err)

	_, err = svc.CancelBooking(context.Background(), booking.ID, "")
	require.NoError(t, err)

	_, err = svc.CancelBooking(context.Background(), booking.ID, "")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelBooking_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestBookingService(db)

	_, err := svc.CancelBooking(context.Background(), 9999, "")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookSlot_RebookAfterCancel(t *testing.T) {
	db := newTestDB(t)
	camp := createTestCamp(t, db, "Summer Camp")
	slot := createTestSlot(t, db, camp.ID, 2)
	svc := newTestBookingService(db)

	first, err := svc.BookSlot(context.Background(), BookSlotInput{SlotID: slot.ID, ChildID: 10, ParentID: 20})
	require.NoError(t, err)

	_, err = svc.CancelBooking(context.Background(), first.ID, "sick")
	require.NoError(t, err)

	// A cancelled booking no longer blocks the same child.
	second, err := svc.BookSlot(context.Background(), BookSlotInput{SlotID: slot.ID, ChildID: 10, ParentID: 20})
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, second.Status)
	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestListBookings_StatusFilter(t *testing.T) {
	db := newTestDB(t)
	camp := createTestCamp(t, db, "Summer Camp")
	slot := createTestSlot(t, db, camp.ID, 5)
	svc := newTestBookingService(db)

	b1, err := svc.BookSlot(context.Background(), BookSlotInput{SlotID: slot.ID, ChildID: 1, ParentID: 20})
	require.NoError(t, err)
	_, err = svc.BookSlot(context.Background(), BookSlotInput{SlotID: slot.ID, ChildID: 2, ParentID: 21})
	require.NoError(t, err)
	_, err = svc.CancelBooking(context.Background(), b1.ID, "")
	require.NoError(t, err)

	all, err := svc.ListBookings(context.Background(), slot.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	confirmed := models.BookingConfirmed
	active, err := svc.ListBookings(context.Background(), slot.ID, &confirmed)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, uint(2), active[0].ChildID)
}

func TestGetBooking_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestBookingService(db)

	_, err := svc.GetBooking(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
