package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicore/booking-app/scheduling"
	"github.com/clinicore/booking-app/utils"
)

var sched *scheduling.Service

// Init wires the scheduling service used by the booking, doctor and
// admin handlers. Called once from main after the DB is up.
func Init(svc *scheduling.Service) {
	sched = svc
}

// rejectStatus maps a scheduling rejection to an HTTP status: ownership
// and authorization failures are 403, everything else is a 409 conflict.
func rejectStatus(rej *scheduling.Rejection) int {
	switch rej.Code {
	case scheduling.ReasonNotOwner, scheduling.ReasonNotAuthorized:
		return fiber.StatusForbidden
	default:
		return fiber.StatusConflict
	}
}

// schedulingError renders store-level failures: missing resources as
// 404, anything else as a 500.
func schedulingError(c *fiber.Ctx, err error) error {
	if errors.Is(err, scheduling.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Resource not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
		Message: "Something went wrong",
		Error:   err.Error(),
	})
}
