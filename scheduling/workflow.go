package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clinicore/booking-app/models"
)

// BookingRequest carries the patient-supplied fields for a new booking.
type BookingRequest struct {
	PatientName  string
	PatientPhone string
	PatientEmail string
	DoctorID     uint
	Date         time.Time
	Time         string
}

// CreateBooking validates the requested slot and, on success, persists a
// pending booking owned by ownerID. On rejection no row is created. A
// concurrent writer racing for the same slot loses with SlotTaken.
func (s *Service) CreateBooking(req BookingRequest, ownerID uint) (*models.Booking, *Rejection, error) {
	rej, err := s.Validate(req.DoctorID, req.Date, req.Time)
	if err != nil {
		return nil, nil, err
	}
	if rej != nil {
		return nil, rej, nil
	}

	booking := &models.Booking{
		PatientName:  req.PatientName,
		PatientPhone: req.PatientPhone,
		PatientEmail: req.PatientEmail,
		DoctorID:     req.DoctorID,
		Date:         DateOnly(req.Date),
		Time:         req.Time,
		Status:       models.StatusPending,
		UserID:       ownerID,
	}

	if err := s.bookings.CreateLocked(booking); err != nil {
		if errors.Is(err, ErrSlotConflict) {
			return nil, reject(ReasonSlotTaken,
				"This time slot was just booked by another patient. Please select a different time."), nil
		}
		return nil, nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"doctor_id":  booking.DoctorID,
		"date":       booking.Date.Format("2006-01-02"),
		"time":       booking.Time,
	}).Info("booking created")

	return booking, nil, nil
}

// CancelBooking cancels a booking on behalf of its owning patient (or an
// administrator). Only pending and accepted bookings may be cancelled.
func (s *Service) CancelBooking(bookingID uint, actor Actor) (*models.Booking, *Rejection, error) {
	booking, err := s.bookings.GetBooking(bookingID)
	if err != nil {
		return nil, nil, err
	}

	if !actor.IsAdmin() && booking.UserID != actor.UserID {
		return nil, reject(ReasonNotOwner, "You can only cancel your own bookings."), nil
	}

	if booking.Status != models.StatusPending && booking.Status != models.StatusAccepted {
		return nil, reject(ReasonInvalidState,
			"Only pending or accepted bookings can be cancelled."), nil
	}

	booking.Status = models.StatusCancelled
	if err := s.bookings.Save(booking); err != nil {
		return nil, nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"actor":      actor.Kind,
	}).Info("booking cancelled")

	return booking, nil, nil
}

// doctorStatuses are the statuses a doctor actor may assign.
var doctorStatuses = map[models.BookingStatus]bool{
	models.StatusAccepted:  true,
	models.StatusRejected:  true,
	models.StatusCompleted: true,
}

// SetStatus moves a booking to newStatus on behalf of its assigned
// doctor or an administrator. The full transition table is enforced:
// terminal bookings admit no further writes.
func (s *Service) SetStatus(bookingID uint, newStatus models.BookingStatus, actor Actor) (*models.Booking, *Rejection, error) {
	booking, err := s.bookings.GetBooking(bookingID)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case actor.IsAdmin():
		// any transition the table allows
	case actor.IsDoctor():
		if booking.DoctorID != actor.DoctorID {
			return nil, reject(ReasonNotAuthorized,
				"You can only update appointments assigned to you."), nil
		}
		if !doctorStatuses[newStatus] {
			return nil, reject(ReasonNotAuthorized,
				"Doctors may only accept, reject or complete appointments."), nil
		}
	default:
		return nil, reject(ReasonNotAuthorized,
			"You are not allowed to update this appointment."), nil
	}

	if !booking.Status.CanTransition(newStatus) {
		return nil, reject(ReasonInvalidTransition,
			fmt.Sprintf("Cannot move a %s appointment to %s.", booking.Status, newStatus)), nil
	}

	booking.Status = newStatus
	if err := s.bookings.Save(booking); err != nil {
		return nil, nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"status":     newStatus,
		"actor":      actor.Kind,
	}).Info("booking status updated")

	return booking, nil, nil
}
