package scheduling

import (
	"errors"
)

// ReasonCode identifies why a scheduling request was refused.
type ReasonCode string

const (
	ReasonPastDate          ReasonCode = "past_date"
	ReasonDoctorOnLeave     ReasonCode = "doctor_on_leave"
	ReasonNoAvailability    ReasonCode = "no_availability"
	ReasonOutsideHours      ReasonCode = "outside_hours"
	ReasonSlotTaken         ReasonCode = "slot_taken"
	ReasonNotOwner          ReasonCode = "not_owner"
	ReasonNotAuthorized     ReasonCode = "not_authorized"
	ReasonInvalidState      ReasonCode = "invalid_state"
	ReasonInvalidTransition ReasonCode = "invalid_transition"
)

// Rejection is a structured, user-displayable refusal. It is recovered
// locally and returned to the caller, never fatal.
type Rejection struct {
	Code        ReasonCode `json:"code"`
	Message     string     `json:"message"`
	Suggestions []string   `json:"suggestions,omitempty"`
}

func (r *Rejection) Error() string {
	return r.Message
}

func reject(code ReasonCode, message string, suggestions ...string) *Rejection {
	return &Rejection{Code: code, Message: message, Suggestions: suggestions}
}

// ErrNotFound is returned when a referenced doctor or booking does not
// exist. Handlers surface it as a plain 404 rather than a scheduling
// rejection.
var ErrNotFound = errors.New("resource not found")

// ErrSlotConflict is returned by BookingStore.CreateLocked when a
// concurrent writer claimed the slot first. The workflow remaps it to a
// SlotTaken rejection.
var ErrSlotConflict = errors.New("booking slot already taken")
