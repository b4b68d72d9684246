package scheduling

import (
	"time"

	"github.com/clinicore/booking-app/models"
)

// DoctorStore resolves doctor references for validation messages.
type DoctorStore interface {
	GetDoctor(doctorID uint) (*models.Doctor, error)
}

// AvailabilityStore reads a doctor's recurring weekly windows.
type AvailabilityStore interface {
	SlotsForDay(doctorID uint, day models.DayOfWeek) ([]models.AvailabilitySlot, error)
	// AvailableDays returns the distinct days the doctor has any slot on,
	// in ascending day order.
	AvailableDays(doctorID uint) ([]models.DayOfWeek, error)
}

// LeaveStore reads a doctor's calendar leave days.
type LeaveStore interface {
	// FindLeave returns nil when no leave exists for the date.
	FindLeave(doctorID uint, date time.Time) (*models.LeaveDay, error)
}

// BookingStore persists bookings and answers slot occupancy queries.
// Occupancy only counts non-terminal statuses.
type BookingStore interface {
	SlotTaken(doctorID uint, date time.Time, timeOfDay string) (bool, error)
	BookedTimes(doctorID uint, date time.Time) ([]string, error)
	// CreateLocked inserts the booking inside a transaction that re-checks
	// the slot under a write lock. Returns ErrSlotConflict when a
	// concurrent booking holds the slot.
	CreateLocked(b *models.Booking) error
	GetBooking(id uint) (*models.Booking, error)
	Save(b *models.Booking) error
}

// Clock supplies the reference "today" for the past-date check, injected
// so the validator stays deterministic under test.
type Clock interface {
	Today() time.Time
}

type systemClock struct{}

// Today is pinned to UTC because request dates parse as UTC midnight
// (utils.ParseDate); mixing in the server's zone would shift the
// past-date cutoff.
func (systemClock) Today() time.Time {
	return DateOnly(time.Now().UTC())
}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// DateOnly truncates a timestamp to midnight so calendar dates compare
// without a time-of-day component.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
