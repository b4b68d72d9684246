package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicore/booking-app/db"
	"github.com/clinicore/booking-app/models"
	"github.com/clinicore/booking-app/utils"
)

// GetAllDepartments lists every department
func GetAllDepartments(c *fiber.Ctx) error {
	var departments []models.Department
	if err := db.DB.Find(&departments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch departments",
			Error:   err.Error(),
		})
	}
	return c.JSON(departments)
}

// GetAllDoctors lists doctors, optionally filtered by ?department=
func GetAllDoctors(c *fiber.Ctx) error {
	query := db.DB.Preload("Department").Preload("Availabilities")

	if department := c.Query("department"); department != "" {
		query = query.Where("department_id = ?", department)
	}

	var doctors []models.Doctor
	if err := query.Find(&doctors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctors)
}

// GetDoctor returns a doctor with availability and leave days
func GetDoctor(c *fiber.Ctx) error {
	id := c.Params("id")
	var doctor models.Doctor
	if err := db.DB.Preload("Department").Preload("Availabilities").Preload("Leaves").First(&doctor, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctor)
}

// SubmitContact stores a message from the public contact form
func SubmitContact(c *fiber.Ctx) error {
	contact := new(models.Contact)
	if err := c.BodyParser(contact); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if contact.Name == "" || contact.Email == "" || contact.Subject == "" || contact.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Please fill in all fields",
		})
	}

	contact.IsRead = false
	if err := db.DB.Create(contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save message",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Thank you for contacting us! We will get back to you soon.",
	})
}
