package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicore/booking-app/controllers"
	"github.com/clinicore/booking-app/middleware"
	"github.com/clinicore/booking-app/scheduling"
)

// SetupDoctorRoutes configures the doctor portal routes
func SetupDoctorRoutes(app *fiber.App) {
	portal := app.Group("/portal", middleware.Protected(), middleware.RequireActor(scheduling.ActorDoctor))

	portal.Get("/dashboard", controllers.GetDoctorDashboard)

	portal.Get("/appointments", controllers.GetMyAppointments)
	portal.Patch("/appointments/:id/status", controllers.UpdateAppointmentStatus)

	portal.Get("/schedule", controllers.GetSchedule)
	portal.Post("/schedule", controllers.CreateScheduleSlot)
	portal.Delete("/schedule/:id", controllers.DeleteScheduleSlot)

	portal.Get("/leaves", controllers.GetLeaves)
	portal.Post("/leaves", controllers.CreateLeave)
	portal.Delete("/leaves/:id", controllers.DeleteLeave)
}
