package cron

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/clinicore/booking-app/db"
	"github.com/clinicore/booking-app/models"
	"github.com/clinicore/booking-app/utils"
)

var logger = logrus.New()

// StartCronJobs schedules the daily appointment reminder run
func StartCronJobs() {
	c := cron.New()
	// Every morning at 08:00 remind patients booked for tomorrow
	_, err := c.AddFunc("0 8 * * *", sendAppointmentReminders)
	if err != nil {
		logger.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	logger.Info("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders emails every patient with an accepted
// booking dated tomorrow
func sendAppointmentReminders() {
	if !utils.EmailConfigured() {
		return
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var bookings []models.Booking
	err := db.DB.Preload("Doctor").
		Where("status = ? AND date = ?", models.StatusAccepted, tomorrow).
		Find(&bookings).Error
	if err != nil {
		logger.Errorf("Error fetching bookings for reminders: %v", err)
		return
	}

	logger.Infof("Found %d bookings for reminders", len(bookings))

	for _, booking := range bookings {
		if err := sendReminderEmail(&booking); err != nil {
			logger.Errorf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		logger.Infof("Sent reminder for booking %d to %s", booking.ID, booking.PatientEmail)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	subject := "Reminder: Upcoming Appointment"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Doctor:</strong> Dr. %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to cancel, do so as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Clinic Team</p>
	`, booking.PatientName, booking.Doctor.Name,
		utils.FormatDate(booking.Date),
		utils.ClockAMPM(booking.Time))

	return utils.SendEmail(booking.PatientEmail, subject, body)
}
