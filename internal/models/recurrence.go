package models

import (
	"time"

	"gorm.io/datatypes"
)

type PatternType string

const (
	PatternAllDays      PatternType = "all_days"
	PatternWeekdays     PatternType = "weekdays"
	PatternWeekends     PatternType = "weekends"
	PatternSpecificDays PatternType = "specific_days"
	PatternCustom       PatternType = "custom"
)

type RepeatInterval string

const (
	RepeatDaily    RepeatInterval = "daily"
	RepeatWeekly   RepeatInterval = "weekly"
	RepeatBiweekly RepeatInterval = "biweekly"
	RepeatCustom   RepeatInterval = "custom"
)

// StepDays is the day increment a repeat interval implies. Anything
// unrecognized steps one day at a time.
func (r RepeatInterval) StepDays() int {
	switch r {
	case RepeatWeekly:
		return 7
	case RepeatBiweekly:
		return 14
	default:
		return 1
	}
}

// RecurrencePattern declaratively generates camp sessions over a date range.
type RecurrencePattern struct {
	ID             uint                     `gorm:"primaryKey" json:"id"`
	CampID         uint                     `gorm:"not null;index" json:"camp_id"`
	Label          string                   `gorm:"not null" json:"label"`
	PatternType    PatternType              `gorm:"type:varchar(20);not null" json:"pattern_type"`
	RepeatInterval RepeatInterval           `gorm:"type:varchar(20);not null" json:"repeat_interval"`
	StartDate      time.Time                `gorm:"type:date;not null" json:"start_date"`
	EndDate        time.Time                `gorm:"type:date;not null" json:"end_date"`
	DaysOfWeek     datatypes.JSONSlice[int] `json:"days_of_week"` // 0 = Sunday .. 6 = Saturday
	StartTime      string                   `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime        string                   `gorm:"type:varchar(5);not null" json:"end_time"`
	Expanded       bool                     `gorm:"not null;default:false" json:"expanded"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`

	Camp *Camp `gorm:"foreignKey:CampID" json:"camp,omitempty"`
}

type SessionStatus string

const (
	SessionActive      SessionStatus = "active"
	SessionCancelled   SessionStatus = "cancelled"
	SessionRescheduled SessionStatus = "rescheduled"
)

// CampSession is one concrete camp occurrence produced by pattern expansion
// (or created directly by staff).
type CampSession struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CampID      uint          `gorm:"not null;index" json:"camp_id"`
	SessionDate time.Time     `gorm:"type:date;not null;index" json:"session_date"`
	StartTime   string        `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime     string        `gorm:"type:varchar(5);not null" json:"end_time"`
	Status      SessionStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	RescheduledDate      *time.Time `gorm:"type:date" json:"rescheduled_date,omitempty"`
	RescheduledStartTime string     `gorm:"type:varchar(5)" json:"rescheduled_start_time,omitempty"`
	RescheduledEndTime   string     `gorm:"type:varchar(5)" json:"rescheduled_end_time,omitempty"`

	RecurrenceGroupID *uint  `gorm:"index" json:"recurrence_group_id,omitempty"`
	Notes             string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Camp *Camp `gorm:"foreignKey:CampID" json:"camp,omitempty"`
}
