package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicore/booking-app/controllers"
	"github.com/clinicore/booking-app/middleware"
)

// SetupBookingRoutes configures the patient booking routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.Protected())
	booking.Get("/available-slots", controllers.GetAvailableSlots)
	booking.Post("/", controllers.CreateBooking)
	booking.Get("/my", controllers.GetMyBookings)
	booking.Post("/:id/cancel", controllers.CancelBooking)
}
