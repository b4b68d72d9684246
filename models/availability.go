package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DayOfWeek counts from Monday = 0 through Sunday = 6.
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayNames[d]
}

// DayOfDate maps time.Weekday (Sunday = 0) onto the Monday-first numbering.
func DayOfDate(t time.Time) DayOfWeek {
	return DayOfWeek((int(t.Weekday()) + 6) % 7)
}

// AvailabilitySlot is a recurring weekly window during which a doctor
// accepts bookings. A doctor may have several slots on the same day.
type AvailabilitySlot struct {
	gorm.Model
	DoctorID  uint      `json:"doctor_id"`
	Doctor    Doctor    `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	Day       DayOfWeek `json:"day"`
	StartTime string    `json:"start_time"` // "HH:MM" in 24h
	EndTime   string    `json:"end_time"`   // "HH:MM" in 24h
}

// Validate rejects slots with an out-of-range day or an inverted or empty
// time window before they reach the database.
func (s *AvailabilitySlot) Validate() error {
	if s.Day < Monday || s.Day > Sunday {
		return fmt.Errorf("day must be between 0 (Monday) and 6 (Sunday), got %d", int(s.Day))
	}
	start, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start time %q: must be HH:MM", s.StartTime)
	}
	end, err := time.Parse("15:04", s.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end time %q: must be HH:MM", s.EndTime)
	}
	if !start.Before(end) {
		return fmt.Errorf("start time %s must be before end time %s", s.StartTime, s.EndTime)
	}
	return nil
}
