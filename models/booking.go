package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Terminal reports whether the status admits no further transitions.
// Rejected and cancelled bookings also release their slot.
func (s BookingStatus) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted || s == StatusCancelled
}

// Occupies reports whether a booking in this status still holds its
// (doctor, date, time) slot against other bookings.
func (s BookingStatus) Occupies() bool {
	return s != StatusRejected && s != StatusCancelled
}

// SlotReleasingStatuses lists the statuses that free a slot for reuse.
// Narrower than Terminal: completed is terminal but keeps its slot.
var SlotReleasingStatuses = []BookingStatus{StatusRejected, StatusCancelled}

var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled},
	StatusAccepted: {StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled},
}

// CanTransition reports whether a booking may move from its current
// status to the given one. Terminal statuses admit no transitions.
func (s BookingStatus) CanTransition(to BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if to == allowed {
			return true
		}
	}
	return false
}

// Booking is a patient's appointment request for a (doctor, date, time)
// slot. A partial unique index over non-terminal statuses guarantees at
// most one active booking per slot (see db.Migrate).
type Booking struct {
	gorm.Model
	PatientName  string        `json:"patient_name"`
	PatientPhone string        `json:"patient_phone"`
	PatientEmail string        `json:"patient_email"`
	DoctorID     uint          `json:"doctor_id"`
	Doctor       Doctor        `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	Date         time.Time     `json:"date" gorm:"type:date"`
	Time         string        `json:"time" gorm:"type:varchar(5)"` // "HH:MM" in 24h
	Status       BookingStatus `json:"status" gorm:"type:varchar(16);index"`
	UserID       uint          `json:"user_id"`
	User         User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}
