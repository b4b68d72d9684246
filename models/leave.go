package models

import (
	"time"

	"gorm.io/gorm"
)

// LeaveDay marks a specific calendar date on which a doctor is fully
// unavailable, overriding any weekly availability.
type LeaveDay struct {
	gorm.Model
	DoctorID uint      `json:"doctor_id"`
	Doctor   Doctor    `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	Date     time.Time `json:"date" gorm:"type:date"`
	Reason   string    `json:"reason"`
}
