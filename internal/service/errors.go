package service

import "errors"

// Every rejected operation surfaces one of these; anything else bubbling out
// of the services is an unexpected store failure the caller may retry.
var (
	ErrCampNotFound    = errors.New("camp not found")
	ErrSlotNotFound    = errors.New("slot not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrPatternNotFound = errors.New("recurrence pattern not found")

	ErrInvalidWindow   = errors.New("end time must be after start time")
	ErrInvalidCapacity = errors.New("max bookings must be at least 1")

	ErrSlotNotAvailable      = errors.New("slot is not available for booking")
	ErrSlotFull              = errors.New("slot has reached its booking capacity")
	ErrDuplicateBooking      = errors.New("child already has a confirmed booking on this slot")
	ErrAlreadyCancelled      = errors.New("booking is already cancelled")
	ErrSlotHasBookings       = errors.New("slot has active bookings and cannot be deleted")
	ErrCapacityBelowBookings = errors.New("max bookings cannot be reduced below current bookings")

	ErrPatternAlreadyExpanded = errors.New("recurrence pattern has already been expanded")
	ErrInvalidPattern         = errors.New("invalid recurrence pattern")
	ErrNoSessionOnDate        = errors.New("no session scheduled on this date")
)
