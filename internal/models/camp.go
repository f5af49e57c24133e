package models

import "time"

type Camp struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OrganizationID uint      `gorm:"not null;index" json:"organization_id"`
	Name           string    `gorm:"not null" json:"name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CampSchedule is one entry of a camp's default weekly schedule:
// "on this weekday the camp runs from start_time to end_time".
type CampSchedule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CampID    uint      `gorm:"not null;index" json:"camp_id"`
	DayOfWeek int       `gorm:"not null" json:"day_of_week"` // 0 = Sunday .. 6 = Saturday
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Camp *Camp `gorm:"foreignKey:CampID" json:"camp,omitempty"`
}

type ExceptionStatus string

const (
	ExceptionActive    ExceptionStatus = "active"
	ExceptionCancelled ExceptionStatus = "cancelled"
)

// ScheduleException overrides the weekly schedule for one concrete date.
// An active exception replaces the base window; a cancelled one suppresses
// the date entirely.
type ScheduleException struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CampID        uint            `gorm:"not null;index" json:"camp_id"`
	ScheduleID    *uint           `gorm:"index" json:"schedule_id,omitempty"` // base entry this overrides, if any
	ExceptionDate time.Time       `gorm:"type:date;not null;index" json:"exception_date"`
	DayOfWeek     int             `gorm:"not null" json:"day_of_week"` // cached from exception_date
	StartTime     string          `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime       string          `gorm:"type:varchar(5);not null" json:"end_time"`
	Status        ExceptionStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Reason        string          `json:"reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Camp     *Camp         `gorm:"foreignKey:CampID" json:"camp,omitempty"`
	Schedule *CampSchedule `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
}

// EffectiveWindow is the resolved time window for a camp on one date.
type EffectiveWindow struct {
	Date      time.Time `json:"date"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Source    string    `json:"source"` // "exception" or "schedule"
}
