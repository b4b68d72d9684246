package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"github.com/clinicore/booking-app/controllers"
	"github.com/clinicore/booking-app/cron"
	"github.com/clinicore/booking-app/db"
	"github.com/clinicore/booking-app/redis"
	"github.com/clinicore/booking-app/routes"
	"github.com/clinicore/booking-app/scheduling"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	app := fiber.New()
	db.Migrate()
	redis.InitRedis()

	controllers.Init(scheduling.NewGormService(db.DB, logger))
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Clinic booking service is up")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupPublicRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupAdminRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := app.Listen(":" + port); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
