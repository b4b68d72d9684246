package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicore/booking-app/controllers"
)

// SetupPublicRoutes configures the anonymous browse and contact routes
func SetupPublicRoutes(app *fiber.App) {
	app.Get("/departments", controllers.GetAllDepartments)
	app.Get("/doctors", controllers.GetAllDoctors)
	app.Get("/doctors/:id", controllers.GetDoctor)
	app.Post("/contact", controllers.SubmitContact)
}
