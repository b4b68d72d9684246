package middleware

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/clinicore/booking-app/db"
	"github.com/clinicore/booking-app/models"
	"github.com/clinicore/booking-app/scheduling"
)

// Protected validates the bearer token and resolves the caller into an
// explicit scheduling.Actor stored in locals. The actor is resolved once
// here, at the session boundary, rather than re-derived per operation.
func Protected() fiber.Handler {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}

	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token",
				})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token claims",
				})
			}
			id, ok := claims["id"].(float64)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid user ID in token",
				})
			}

			actor, err := resolveActor(uint(id))
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "User not found",
				})
			}

			c.Locals("actor", actor)
			c.Locals("userID", actor.UserID)
			return c.Next()
		},
	})
}

// resolveActor tags the user as admin, doctor or patient. A doctor is a
// user with a linked doctor profile; the profile id rides along so
// ownership checks need no further lookups.
func resolveActor(userID uint) (scheduling.Actor, error) {
	var user models.User
	if err := db.DB.Preload("Role").First(&user, userID).Error; err != nil {
		return scheduling.Actor{}, err
	}

	actor := scheduling.Actor{Kind: scheduling.ActorPatient, UserID: user.ID}
	if user.Role.Name == models.RoleAdmin {
		actor.Kind = scheduling.ActorAdmin
		return actor, nil
	}

	var doctor models.Doctor
	err := db.DB.Where("user_id = ?", user.ID).First(&doctor).Error
	if err == nil {
		actor.Kind = scheduling.ActorDoctor
		actor.DoctorID = doctor.ID
		return actor, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return scheduling.Actor{}, err
	}
	return actor, nil
}

// jwtError handles JWT errors
func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   "Unauthorized",
		"message": "Invalid or expired token",
	})
}

// CurrentActor returns the actor resolved by Protected.
func CurrentActor(c *fiber.Ctx) scheduling.Actor {
	actor, _ := c.Locals("actor").(scheduling.Actor)
	return actor
}

// RequireActor restricts a route to the given actor kind.
func RequireActor(kind scheduling.ActorKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := CurrentActor(c)
		if actor.Kind == kind {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}
}
