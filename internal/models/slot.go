package models

import "time"

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// AvailabilitySlot is a single bookable window with finite seat capacity.
// current_bookings caches the count of confirmed bookings; the booking
// ledger stays the source of truth and the reconciler corrects drift on read.
type AvailabilitySlot struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CampID          uint       `gorm:"not null;index" json:"camp_id"`
	CreatedBy       uint       `gorm:"not null" json:"created_by"`
	SlotDate        time.Time  `gorm:"type:date;not null;index" json:"slot_date"`
	StartTime       string     `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime         string     `gorm:"type:varchar(5);not null" json:"end_time"`
	DurationMinutes int        `gorm:"not null" json:"duration_minutes"`
	MaxBookings     int        `gorm:"not null" json:"max_bookings"`
	CurrentBookings int        `gorm:"not null;default:0" json:"current_bookings"`
	Status          SlotStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`

	// Reserved scheduling padding, stored but not enforced.
	BufferBefore int `gorm:"not null;default:0" json:"buffer_before"`
	BufferAfter  int `gorm:"not null;default:0" json:"buffer_after"`

	IsRecurring       bool       `gorm:"not null;default:false" json:"is_recurring"`
	RecurrenceRule    string     `gorm:"type:varchar(20)" json:"recurrence_rule,omitempty"`
	RecurrenceEndDate *time.Time `gorm:"type:date" json:"recurrence_end_date,omitempty"`
	ParentSlotID      *uint      `gorm:"index" json:"parent_slot_id,omitempty"`

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Camp       *Camp             `gorm:"foreignKey:CampID" json:"camp,omitempty"`
	ParentSlot *AvailabilitySlot `gorm:"foreignKey:ParentSlotID" json:"parent_slot,omitempty"`
}

// StatusFor derives the slot status from a confirmed-booking count.
func (s *AvailabilitySlot) StatusFor(count int) SlotStatus {
	if count >= s.MaxBookings {
		return SlotBooked
	}
	return SlotAvailable
}

func (s *AvailabilitySlot) SeatsAvailable() int {
	if left := s.MaxBookings - s.CurrentBookings; left > 0 {
		return left
	}
	return 0
}
