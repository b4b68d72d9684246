package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicore/booking-app/db"
	"github.com/clinicore/booking-app/middleware"
	"github.com/clinicore/booking-app/models"
	"github.com/clinicore/booking-app/redis"
	"github.com/clinicore/booking-app/scheduling"
	"github.com/clinicore/booking-app/utils"
)

// GetAvailableSlots answers "what can I book for this doctor on this
// date": the day's windows plus the times already taken. Responses are
// cached briefly in redis keyed by (doctor, date).
func GetAvailableSlots(c *fiber.Ctx) error {
	doctorID, err := strconv.ParseUint(c.Query("doctor_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "doctor_id is required",
		})
	}
	dateStr := c.Query("date")
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	if cached := redis.GetSlots(uint(doctorID), dateStr); cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	slots, err := sched.ListAvailableSlots(uint(doctorID), date)
	if err != nil {
		return schedulingError(c, err)
	}

	if payload, err := json.Marshal(slots); err == nil {
		redis.SetSlots(uint(doctorID), dateStr, payload)
	}

	return c.JSON(slots)
}

// CreateBooking books a (doctor, date, time) slot for the logged-in
// patient. Validation failures come back as a structured rejection with
// no booking row created.
func CreateBooking(c *fiber.Ctx) error {
	type BookingInput struct {
		PatientName  string `json:"patient_name"`
		PatientPhone string `json:"patient_phone"`
		PatientEmail string `json:"patient_email"`
		DoctorID     uint   `json:"doctor_id"`
		Date         string `json:"date"`
		Time         string `json:"time"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.PatientName == "" || input.PatientPhone == "" || input.PatientEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Patient name, phone and email are required",
		})
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}
	clock, err := utils.NormalizeClock(input.Time)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	actor := middleware.CurrentActor(c)
	booking, rej, err := sched.CreateBooking(scheduling.BookingRequest{
		PatientName:  input.PatientName,
		PatientPhone: input.PatientPhone,
		PatientEmail: input.PatientEmail,
		DoctorID:     input.DoctorID,
		Date:         date,
		Time:         clock,
	}, actor.UserID)
	if err != nil {
		return schedulingError(c, err)
	}
	if rej != nil {
		return c.Status(rejectStatus(rej)).JSON(rej)
	}

	redis.InvalidateSlots(booking.DoctorID, input.Date)
	sendBookingConfirmation(booking)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetMyBookings lists the logged-in patient's bookings, newest first
func GetMyBookings(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)

	var bookings []models.Booking
	if err := db.DB.Preload("Doctor").Preload("Doctor.Department").
		Where("user_id = ?", actor.UserID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// CancelBooking cancels one of the caller's own bookings
func CancelBooking(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking id",
		})
	}

	actor := middleware.CurrentActor(c)
	booking, rej, err := sched.CancelBooking(uint(id), actor)
	if err != nil {
		return schedulingError(c, err)
	}
	if rej != nil {
		return c.Status(rejectStatus(rej)).JSON(rej)
	}

	redis.InvalidateSlots(booking.DoctorID, booking.Date.Format("2006-01-02"))

	return c.JSON(booking)
}

// sendBookingConfirmation emails the patient; delivery failures are
// logged, never surfaced to the caller.
func sendBookingConfirmation(booking *models.Booking) {
	if !utils.EmailConfigured() {
		return
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, booking.DoctorID).Error; err != nil {
		log.Printf("Failed to load doctor for confirmation email: %v", err)
		return
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment request has been received.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Doctor:</strong> Dr. %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>You will be notified when the doctor confirms your appointment.</p>
	`, booking.PatientName, doctor.Name,
		utils.FormatDate(booking.Date), utils.ClockAMPM(booking.Time), booking.Status)

	if err := utils.SendEmail(booking.PatientEmail, "Appointment Request Received", body); err != nil {
		log.Printf("Failed to send confirmation for booking %d: %v", booking.ID, err)
	}
}
