package dto

import (
	"time"

	"github.com/camphq/scheduling-service/internal/models"
)

type SlotResponse struct {
	ID                uint              `json:"id"`
	CampID            uint              `json:"camp_id"`
	CreatedBy         uint              `json:"created_by"`
	SlotDate          string            `json:"slot_date"`
	StartTime         string            `json:"start_time"`
	EndTime           string            `json:"end_time"`
	DurationMinutes   int               `json:"duration_minutes"`
	MaxBookings       int               `json:"max_bookings"`
	CurrentBookings   int               `json:"current_bookings"`
	SeatsAvailable    int               `json:"seats_available"`
	Status            models.SlotStatus `json:"status"`
	BufferBefore      int               `json:"buffer_before"`
	BufferAfter       int               `json:"buffer_after"`
	IsRecurring       bool              `json:"is_recurring"`
	RecurrenceRule    string            `json:"recurrence_rule,omitempty"`
	RecurrenceEndDate string            `json:"recurrence_end_date,omitempty"`
	ParentSlotID      *uint             `json:"parent_slot_id,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}

type BookingResponse struct {
	ID                 uint                 `json:"id"`
	SlotID             uint                 `json:"slot_id"`
	RegistrationID     *uint                `json:"registration_id,omitempty"`
	ChildID            uint                 `json:"child_id"`
	ParentID           uint                 `json:"parent_id"`
	Reference          string               `json:"reference"`
	Status             models.BookingStatus `json:"status"`
	BookedAt           time.Time            `json:"booked_at"`
	CancelledAt        *time.Time           `json:"cancelled_at,omitempty"`
	CancellationReason string               `json:"cancellation_reason,omitempty"`
	Notes              string               `json:"notes,omitempty"`
}

type SessionResponse struct {
	ID                uint                 `json:"id"`
	CampID            uint                 `json:"camp_id"`
	SessionDate       string               `json:"session_date"`
	StartTime         string               `json:"start_time"`
	EndTime           string               `json:"end_time"`
	Status            models.SessionStatus `json:"status"`
	RecurrenceGroupID *uint                `json:"recurrence_group_id,omitempty"`
	Notes             string               `json:"notes,omitempty"`
}

type PatternResponse struct {
	ID             uint   `json:"id"`
	CampID         uint   `json:"camp_id"`
	Label          string `json:"label"`
	PatternType    string `json:"pattern_type"`
	RepeatInterval string `json:"repeat_interval"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	DaysOfWeek     []int  `json:"days_of_week,omitempty"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Expanded       bool   `json:"expanded"`
}

type ScheduleResponse struct {
	ID        uint   `json:"id"`
	CampID    uint   `json:"camp_id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ExceptionResponse struct {
	ID         uint                   `json:"id"`
	CampID     uint                   `json:"camp_id"`
	ScheduleID *uint                  `json:"schedule_id,omitempty"`
	Date       string                 `json:"date"`
	DayOfWeek  int                    `json:"day_of_week"`
	StartTime  string                 `json:"start_time"`
	EndTime    string                 `json:"end_time"`
	Status     models.ExceptionStatus `json:"status"`
	Reason     string                 `json:"reason,omitempty"`
}

type WindowResponse struct {
	Date      string `json:"date"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Source    string `json:"source"`
}

type CampResponse struct {
	ID             uint   `json:"id"`
	OrganizationID uint   `json:"organization_id"`
	Name           string `json:"name"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

const dateLayout = "2006-01-02"

func ToSlotResponse(s *models.AvailabilitySlot) SlotResponse {
	resp := SlotResponse{
		ID:              s.ID,
		CampID:          s.CampID,
		CreatedBy:       s.CreatedBy,
		SlotDate:        s.SlotDate.Format(dateLayout),
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
		MaxBookings:     s.MaxBookings,
		CurrentBookings: s.CurrentBookings,
		SeatsAvailable:  s.SeatsAvailable(),
		Status:          s.Status,
		BufferBefore:    s.BufferBefore,
		BufferAfter:     s.BufferAfter,
		IsRecurring:     s.IsRecurring,
		RecurrenceRule:  s.RecurrenceRule,
		ParentSlotID:    s.ParentSlotID,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
	}
	if s.RecurrenceEndDate != nil {
		resp.RecurrenceEndDate = s.RecurrenceEndDate.Format(dateLayout)
	}
	return resp
}

func ToBookingResponse(b *models.SlotBooking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		SlotID:             b.SlotID,
		RegistrationID:     b.RegistrationID,
		ChildID:            b.ChildID,
		ParentID:           b.ParentID,
		Reference:          b.Reference,
		Status:             b.Status,
		BookedAt:           b.BookedAt,
		CancelledAt:        b.CancelledAt,
		CancellationReason: b.CancellationReason,
		Notes:              b.Notes,
	}
}

func ToSessionResponse(s *models.CampSession) SessionResponse {
	return SessionResponse{
		ID:                s.ID,
		CampID:            s.CampID,
		SessionDate:       s.SessionDate.Format(dateLayout),
		StartTime:         s.StartTime,
		EndTime:           s.EndTime,
		Status:            s.Status,
		RecurrenceGroupID: s.RecurrenceGroupID,
		Notes:             s.Notes,
	}
}

func ToPatternResponse(p *models.RecurrencePattern) PatternResponse {
	return PatternResponse{
		ID:             p.ID,
		CampID:         p.CampID,
		Label:          p.Label,
		PatternType:    string(p.PatternType),
		RepeatInterval: string(p.RepeatInterval),
		StartDate:      p.StartDate.Format(dateLayout),
		EndDate:        p.EndDate.Format(dateLayout),
		DaysOfWeek:     p.DaysOfWeek,
		StartTime:      p.StartTime,
		EndTime:        p.EndTime,
		Expanded:       p.Expanded,
	}
}

func ToScheduleResponse(e *models.CampSchedule) ScheduleResponse {
	return ScheduleResponse{
		ID:        e.ID,
		CampID:    e.CampID,
		DayOfWeek: e.DayOfWeek,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
	}
}

func ToExceptionResponse(e *models.ScheduleException) ExceptionResponse {
	return ExceptionResponse{
		ID:         e.ID,
		CampID:     e.CampID,
		ScheduleID: e.ScheduleID,
		Date:       e.ExceptionDate.Format(dateLayout),
		DayOfWeek:  e.DayOfWeek,
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
		Status:     e.Status,
		Reason:     e.Reason,
	}
}

func ToWindowResponse(w *models.EffectiveWindow) WindowResponse {
	return WindowResponse{
		Date:      w.Date.Format(dateLayout),
		DayOfWeek: w.DayOfWeek,
		StartTime: w.StartTime,
		EndTime:   w.EndTime,
		Source:    w.Source,
	}
}

func ToCampResponse(c *models.Camp) CampResponse {
	return CampResponse{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
	}
}
