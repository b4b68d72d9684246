package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/clinicore/booking-app/models"
	"github.com/clinicore/booking-app/utils"
)

// Validate decides whether the (doctor, date, time) slot is legal and
// available. Checks run in order and short-circuit at the first failure,
// from doctor-wide facts down to slot-specific ones:
//
//  1. the date is not in the past
//  2. the doctor is not on leave that date
//  3. the doctor has availability on that weekday
//  4. the time falls within one of that day's windows (inclusive)
//  5. no non-terminal booking already holds the slot
//
// A nil, nil return means the slot is bookable. The validator performs
// no writes.
func (s *Service) Validate(doctorID uint, date time.Time, timeOfDay string) (*Rejection, error) {
	doctor, err := s.doctors.GetDoctor(doctorID)
	if err != nil {
		return nil, err
	}

	date = DateOnly(date)

	if date.Before(s.clock.Today()) {
		return reject(ReasonPastDate,
			"Cannot book appointments for past dates. Please select today or a future date."), nil
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
		return reject(ReasonDoctorOnLeave,
			fmt.Sprintf("Dr. %s is on leave on %s%s. Please choose another date.",
				doctor.Name, utils.FormatDate(date), reason)), nil
	}

	day := models.DayOfDate(date)
	slots, err := s.availability.SlotsForDay(doctorID, day)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		rej := reject(ReasonNoAvailability,
			fmt.Sprintf("Dr. %s is not available on %ss. Please choose a different day.", doctor.Name, day))
		days, err := s.availability.AvailableDays(doctorID)
		if err != nil {
			return nil, err
		}
		if len(days) > 0 {
			names := make([]string, len(days))
			for i, d := range days {
				names[i] = d.String()
			}
			rej.Suggestions = append(rej.Suggestions,
				fmt.Sprintf("Doctor is available on: %s", strings.Join(names, ", ")))
		}
		return rej, nil
	}

	within, err := timeWithinAnySlot(timeOfDay, slots)
	if err != nil {
		return nil, err
	}
	if !within {
		return reject(ReasonOutsideHours,
			fmt.Sprintf("The selected time (%s) is outside Dr. %s's working hours for %s.",
				utils.ClockAMPM(timeOfDay), doctor.Name, day),
			fmt.Sprintf("Available time slots: %s", formatWindows(slots))), nil
	}

	taken, err := s.bookings.SlotTaken(doctorID, date, timeOfDay)
	if err != nil {
		return nil, err
	}
	if taken {
		return reject(ReasonSlotTaken,
			fmt.Sprintf("This time slot (%s on %s) is already booked by another patient.",
				utils.ClockAMPM(timeOfDay), utils.FormatDate(date)),
			"Please select a different time within the doctor's available hours."), nil
	}

	return nil, nil
}

// timeWithinAnySlot reports whether the candidate time falls inside at
// least one window. Window bounds are inclusive.
func timeWithinAnySlot(timeOfDay string, slots []models.AvailabilitySlot) (bool, error) {
	t, err := utils.ParseClock(timeOfDay)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		start, err := utils.ParseClock(slot.StartTime)
		if err != nil {
			return false, err
		}
		end, err := utils.ParseClock(slot.EndTime)
		if err != nil {
			return false, err
		}
		if !t.Before(start) && !t.After(end) {
			return true, nil
		}
	}
	return false, nil
}

func formatWindows(slots []models.AvailabilitySlot) string {
	parts := make([]string, len(slots))
	for i, slot := range slots {
		parts[i] = fmt.Sprintf("%s - %s", utils.ClockAMPM(slot.StartTime), utils.ClockAMPM(slot.EndTime))
	}
	return strings.Join(parts, " | ")
}
