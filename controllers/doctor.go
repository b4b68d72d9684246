package controllers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicore/booking-app/db"
	"github.com/clinicore/booking-app/middleware"
	"github.com/clinicore/booking-app/models"
	"github.com/clinicore/booking-app/redis"
	"github.com/clinicore/booking-app/utils"
)

// GetMyAppointments lists bookings assigned to the logged-in doctor,
// optionally filtered by ?status=
func GetMyAppointments(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)

	query := db.DB.Preload("User").
		Where("doctor_id = ?", actor.DoctorID).
		Order("created_at DESC")

	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// UpdateAppointmentStatus moves one of the doctor's bookings to a new
// status (accepted, rejected or completed)
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking id",
		})
	}

	type StatusInput struct {
		Status models.BookingStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	actor := middleware.CurrentActor(c)
	booking, rej, err := sched.SetStatus(uint(id), input.Status, actor)
	if err != nil {
		return schedulingError(c, err)
	}
	if rej != nil {
		return c.Status(rejectStatus(rej)).JSON(rej)
	}

	redis.InvalidateSlots(booking.DoctorID, booking.Date.Format("2006-01-02"))
	sendStatusNotification(booking)

	return c.JSON(booking)
}

// GetSchedule lists the doctor's weekly availability slots
func GetSchedule(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)

	var slots []models.AvailabilitySlot
	if err := db.DB.Where("doctor_id = ?", actor.DoctorID).
		Order("day, start_time").
		Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedule",
			Error:   err.Error(),
		})
	}
	return c.JSON(slots)
}

// CreateScheduleSlot adds a weekly availability window for the doctor
func CreateScheduleSlot(c *fiber.Ctx) error {
	slot := new(models.AvailabilitySlot)
	if err := c.BodyParser(slot); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	actor := middleware.CurrentActor(c)
	slot.DoctorID = actor.DoctorID

	if start, err := utils.NormalizeClock(slot.StartTime); err == nil {
		slot.StartTime = start
	}
	if end, err := utils.NormalizeClock(slot.EndTime); err == nil {
		slot.EndTime = end
	}
	if err := slot.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	if err := db.DB.Create(slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create availability slot",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

// DeleteScheduleSlot removes one of the doctor's own availability slots
func DeleteScheduleSlot(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)

	var slot models.AvailabilitySlot
	if err := db.DB.Where("id = ? AND doctor_id = ?", c.Params("id"), actor.DoctorID).
		First(&slot).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Availability slot not found",
		})
	}

	if err := db.DB.Delete(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete availability slot",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetLeaves lists the doctor's leave days, newest first
func GetLeaves(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)

	var leaves []models.LeaveDay
	if err := db.DB.Where("doctor_id = ?", actor.DoctorID).
		Order("date DESC").
		Find(&leaves).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch leaves",
			Error:   err.Error(),
		})
	}
	return c.JSON(leaves)
}

// CreateLeave marks a calendar date as unavailable. A second leave for
// the same date is refused.
func CreateLeave(c *fiber.Ctx) error {
	type LeaveInput struct {
		Date   string `json:"date"`
		Reason string `json:"reason"`
	}
	input := new(LeaveInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	actor := middleware.CurrentActor(c)

	var existing models.LeaveDay
	if db.DB.Where("doctor_id = ? AND date = ?", actor.DoctorID, date).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "You already have a leave request for this date.",
		})
	}

	leave := models.LeaveDay{
		DoctorID: actor.DoctorID,
		Date:     date,
		Reason:   input.Reason,
	}
	if err := db.DB.Create(&leave).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create leave",
			Error:   err.Error(),
		})
	}

	redis.InvalidateSlots(actor.DoctorID, input.Date)

	return c.Status(fiber.StatusCreated).JSON(leave)
}

// DeleteLeave cancels one of the doctor's own leave days
func DeleteLeave(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)

	var leave models.LeaveDay
	if err := db.DB.Where("id = ? AND doctor_id = ?", c.Params("id"), actor.DoctorID).
		First(&leave).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Leave not found",
		})
	}

	if err := db.DB.Delete(&leave).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete leave",
			Error:   err.Error(),
		})
	}

	redis.InvalidateSlots(actor.DoctorID, leave.Date.Format("2006-01-02"))

	return c.SendStatus(fiber.StatusNoContent)
}

// GetDoctorDashboard returns booking counts and the five most recent
// bookings for the logged-in doctor
func GetDoctorDashboard(c *fiber.Ctx) error {
	actor := middleware.CurrentActor(c)

	var total, pending, completed int64
	db.DB.Model(&models.Booking{}).Where("doctor_id = ?", actor.DoctorID).Count(&total)
	db.DB.Model(&models.Booking{}).Where("doctor_id = ? AND status = ?", actor.DoctorID, models.StatusPending).Count(&pending)
	db.DB.Model(&models.Booking{}).Where("doctor_id = ? AND status = ?", actor.DoctorID, models.StatusCompleted).Count(&completed)

	var recent []models.Booking
	db.DB.Where("doctor_id = ?", actor.DoctorID).
		Order("created_at DESC").
		Limit(5).
		Find(&recent)

	return c.JSON(fiber.Map{
		"total_bookings":     total,
		"pending_bookings":   pending,
		"completed_bookings": completed,
		"recent_bookings":    recent,
	})
}

// sendStatusNotification emails the patient when the booking moves
// status; failures are logged only.
func sendStatusNotification(booking *models.Booking) {
	if !utils.EmailConfigured() {
		return
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, booking.DoctorID).Error; err != nil {
		log.Printf("Failed to load doctor for status email: %v", err)
		return
	}

	subject := fmt.Sprintf("Appointment %s", booking.Status)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment with Dr. %s on %s at %s is now <strong>%s</strong>.</p>
	`, booking.PatientName, doctor.Name,
		utils.FormatDate(booking.Date), utils.ClockAMPM(booking.Time), booking.Status)

	if err := utils.SendEmail(booking.PatientEmail, subject, body); err != nil {
		log.Printf("Failed to send status email for booking %d: %v", booking.ID, err)
	}
}
