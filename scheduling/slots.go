package scheduling

import (
	"fmt"
	"time"

	"github.com/clinicore/booking-app/models"
	"github.com/clinicore/booking-app/utils"
)

// Window is one availability range on a given day, formatted for display
// alongside the raw 24h values.
type Window struct {
	SlotID  uint   `json:"slot_id"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Display string `json:"display"`
}

// DaySlots is the answer to "can I book this doctor on this date, and at
// what times". BookedTimes lists the non-terminal bookings already
// holding a slot that day.
type DaySlots struct {
	Available   bool     `json:"available"`
	Windows     []Window `json:"windows,omitempty"`
	BookedTimes []string `json:"booked_times,omitempty"`
	Message     string   `json:"message,omitempty"`
}

// ListAvailableSlots reuses the date, leave and weekly-availability
// checks of Validate and, when they pass, returns the day's windows plus
// the times already booked, so callers can render free versus taken
// slots without submitting a candidate time.
func (s *Service) ListAvailableSlots(doctorID uint, date time.Time) (*DaySlots, error) {
	doctor, err := s.doctors.GetDoctor(doctorID)
	if err != nil {
		return nil, err
	}

	date = DateOnly(date)

	if date.Before(s.clock.Today()) {
		return &DaySlots{Available: false,
			Message: "Cannot book appointments for past dates. Please select today or a future date."}, nil
	}

	leave, err := s.leaves.FindLeave(doctorID, date)
	if err != nil {
		return nil, err
	}
	if leave != nil {
		reason := ""
		if leave.Reason != "" {
			reason = fmt.Sprintf(" (Reason: %s)", leave.Reason)
		}
		return &DaySlots{Available: false,
			Message: fmt.Sprintf("Dr. %s is on leave on %s%s.", doctor.Name, utils.FormatDate(date), reason)}, nil
	}

	day := models.DayOfDate(date)
	slots, err := s.availability.SlotsForDay(doctorID, day)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return &DaySlots{Available: false,
			Message: fmt.Sprintf("Dr. %s is not available on %ss.", doctor.Name, day)}, nil
	}

	booked, err := s.bookings.BookedTimes(doctorID, date)
	if err != nil {
		return nil, err
	}

	windows := make([]Window, len(slots))
	for i, slot := range slots {
		windows[i] = Window{
			SlotID:  slot.ID,
			Start:   slot.StartTime,
			End:     slot.EndTime,
			Display: fmt.Sprintf("%s - %s", utils.ClockAMPM(slot.StartTime), utils.ClockAMPM(slot.EndTime)),
		}
	}

	return &DaySlots{Available: true, Windows: windows, BookedTimes: booked}, nil
}
