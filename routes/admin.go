package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicore/booking-app/controllers"
	"github.com/clinicore/booking-app/middleware"
	"github.com/clinicore/booking-app/scheduling"
)

// SetupAdminRoutes configures the admin management routes
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireActor(scheduling.ActorAdmin))

	admin.Get("/dashboard", controllers.GetAdminDashboard)

	admin.Get("/doctors", controllers.SearchDoctors)
	admin.Post("/doctors", controllers.CreateDoctor)
	admin.Patch("/doctors/:id", controllers.UpdateDoctor)
	admin.Delete("/doctors/:id", controllers.DeleteDoctor)

	admin.Get("/departments", controllers.GetDepartmentsWithCounts)
	admin.Post("/departments", controllers.CreateDepartment)
	admin.Patch("/departments/:id", controllers.UpdateDepartment)
	admin.Delete("/departments/:id", controllers.DeleteDepartment)

	admin.Get("/messages", controllers.GetMessages)
	admin.Get("/messages/:id", controllers.GetMessage)
	admin.Delete("/messages/:id", controllers.DeleteMessage)

	admin.Patch("/bookings/:id/status", controllers.UpdateAppointmentStatus)
}
