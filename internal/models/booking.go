package models

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// SlotBooking is one seat claim against an availability slot. Rows are never
// deleted; cancellation is a one-way status change that preserves history.
type SlotBooking struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	SlotID         uint          `gorm:"not null;index" json:"slot_id"`
	RegistrationID *uint         `gorm:"index" json:"registration_id,omitempty"`
	ChildID        uint          `gorm:"not null;index" json:"child_id"`
	ParentID       uint          `gorm:"not null" json:"parent_id"`
	Reference      string        `gorm:"type:varchar(36);not null;uniqueIndex" json:"reference"`
	Status         BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`

	BookedAt           time.Time  `gorm:"not null" json:"booked_at"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`

	RescheduledFromID *uint  `gorm:"index" json:"rescheduled_from_id,omitempty"`
	Notes             string `json:"notes,omitempty"`

	// Delivery flags owned by the notification collaborator.
	NotificationSent bool `gorm:"not null;default:false" json:"notification_sent"`
	ReminderSent     bool `gorm:"not null;default:false" json:"reminder_sent"`
	FeedbackSent     bool `gorm:"not null;default:false" json:"feedback_sent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slot            *AvailabilitySlot `gorm:"foreignKey:SlotID" json:"slot,omitempty"`
	RescheduledFrom *SlotBooking      `gorm:"foreignKey:RescheduledFromID" json:"rescheduled_from,omitempty"`
}
