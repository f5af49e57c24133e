package dto

type CreateCampRequest struct {
	OrganizationID uint   `json:"organization_id" validate:"required"`
	Name           string `json:"name" validate:"required"`
}

type CreateSlotRequest struct {
	Date         string `json:"date" validate:"required"` // YYYY-MM-DD
	StartTime    string `json:"start_time" validate:"required"`
	EndTime      string `json:"end_time" validate:"required"`
	MaxBookings  int    `json:"max_bookings" validate:"required,gte=1"`
	BufferBefore int    `json:"buffer_before" validate:"gte=0"`
	BufferAfter  int    `json:"buffer_after" validate:"gte=0"`
	Notes        string `json:"notes"`
	CreatorID    uint   `json:"creator_id" validate:"required"`

	IsRecurring       bool   `json:"is_recurring"`
	RecurrenceRule    string `json:"recurrence_rule" validate:"omitempty,oneof=daily weekly biweekly custom"`
	RecurrenceEndDate string `json:"recurrence_end_date"` // YYYY-MM-DD, required when recurring
}

type UpdateSlotRequest struct {
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	MaxBookings  *int    `json:"max_bookings"`
	BufferBefore *int    `json:"buffer_before"`
	BufferAfter  *int    `json:"buffer_after"`
	Notes        *string `json:"notes"`
}

type BookSlotRequest struct {
	ChildID        uint   `json:"child_id" validate:"required"`
	ParentID       uint   `json:"parent_id" validate:"required"`
	RegistrationID *uint  `json:"registration_id"`
	Notes          string `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type CreatePatternRequest struct {
	Label          string `json:"label" validate:"required"`
	PatternType    string `json:"pattern_type" validate:"required,oneof=all_days weekdays weekends specific_days custom"`
	RepeatInterval string `json:"repeat_interval" validate:"required,oneof=daily weekly biweekly custom"`
	StartDate      string `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate        string `json:"end_date" validate:"required"`   // YYYY-MM-DD
	DaysOfWeek     []int  `json:"days_of_week" validate:"dive,gte=0,lte=6"`
	StartTime      string `json:"start_time" validate:"required"`
	EndTime        string `json:"end_time" validate:"required"`
}

type CreateScheduleRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type CreateExceptionRequest struct {
	ScheduleID *uint  `json:"schedule_id"`
	Date       string `json:"date" validate:"required"` // YYYY-MM-DD
	StartTime  string `json:"start_time" validate:"required"`
	EndTime    string `json:"end_time" validate:"required"`
	Status     string `json:"status" validate:"omitempty,oneof=active cancelled"`
	Reason     string `json:"reason"`
}
