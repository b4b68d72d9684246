package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinicore/booking-app/db"
	"github.com/clinicore/booking-app/models"
	"github.com/clinicore/booking-app/utils"
)

// GetAdminDashboard returns site-wide counts plus the most recent
// bookings and contact messages
func GetAdminDashboard(c *fiber.Ctx) error {
	var totalDoctors, totalBookings, totalDepartments, totalMessages, unreadMessages int64
	db.DB.Model(&models.Doctor{}).Count(&totalDoctors)
	db.DB.Model(&models.Booking{}).Count(&totalBookings)
	db.DB.Model(&models.Department{}).Count(&totalDepartments)
	db.DB.Model(&models.Contact{}).Count(&totalMessages)
	db.DB.Model(&models.Contact{}).Where("is_read = ?", false).Count(&unreadMessages)

	var recentBookings []models.Booking
	db.DB.Preload("Doctor").Order("created_at DESC").Limit(5).Find(&recentBookings)

	var recentMessages []models.Contact
	db.DB.Order("created_at DESC").Limit(5).Find(&recentMessages)

	return c.JSON(fiber.Map{
		"total_doctors":     totalDoctors,
		"total_bookings":    totalBookings,
		"total_departments": totalDepartments,
		"total_messages":    totalMessages,
		"unread_messages":   unreadMessages,
		"recent_bookings":   recentBookings,
		"recent_messages":   recentMessages,
	})
}

// ============= DOCTOR MANAGEMENT =============

type doctorInput struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	DepartmentID   uint   `json:"department_id"`
	// Optional credentials; all three must be set to create the linked
	// user account.
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SearchDoctors lists doctors with optional ?search= over name,
// specialization and department
func SearchDoctors(c *fiber.Ctx) error {
	query := db.DB.Preload("Department")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Joins("LEFT JOIN departments ON departments.id = doctors.department_id").
			Where("doctors.name ILIKE ? OR doctors.specialization ILIKE ? OR departments.name ILIKE ?",
				like, like, like)
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

// CreateDoctor adds a doctor, optionally creating a linked user account
// when username, email and password are all provided
func CreateDoctor(c *fiber.Ctx) error {
	input := new(doctorInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Name == "" || input.DepartmentID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Doctor name and department are required",
		})
	}

	var department models.Department
	if err := db.DB.First(&department, input.DepartmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Department not found",
		})
	}

	doctor := models.Doctor{
		Name:           input.Name,
		Specialization: input.Specialization,
		DepartmentID:   department.ID,
	}

	if input.Username != "" && input.Email != "" && input.Password != "" {
		user, err := createDoctorAccount(input)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to create doctor account",
				Error:   err.Error(),
			})
		}
		doctor.UserID = &user.ID
	} else if input.Username != "" || input.Email != "" || input.Password != "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "To create a user account you must fill username, email AND password",
		})
	}

	if err := db.DB.Create(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create doctor",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(doctor)
}

// UpdateDoctor edits a doctor and, when credentials are supplied,
// creates or updates the linked user account
func UpdateDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.First(&doctor, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}

	input := new(doctorInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Name != "" {
		doctor.Name = input.Name
	}
	if input.Specialization != "" {
		doctor.Specialization = input.Specialization
	}
	if input.DepartmentID != 0 {
		var department models.Department
		if err := db.DB.First(&department, input.DepartmentID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Department not found",
			})
		}
		doctor.DepartmentID = department.ID
	}

	if doctor.UserID != nil {
		if err := updateDoctorAccount(*doctor.UserID, input); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update doctor account",
				Error:   err.Error(),
			})
		}
	} else if input.Username != "" && input.Email != "" && input.Password != "" {
		user, err := createDoctorAccount(input)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to create doctor account",
				Error:   err.Error(),
			})
		}
		doctor.UserID = &user.ID
	}

	if err := db.DB.Save(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update doctor",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctor)
}

// DeleteDoctor removes a doctor
func DeleteDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.First(&doctor, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}

	if err := db.DB.Delete(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete doctor",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func createDoctorAccount(input *doctorInput) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var doctorRole models.Role
	if err := db.DB.Where("name = ?", models.RoleDoctor).First(&doctorRole).Error; err != nil {
		return nil, err
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		RoleID:   doctorRole.ID,
	}
	if user.Name == "" {
		user.Name = input.Username
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func updateDoctorAccount(userID uint, input *doctorInput) error {
	if input.Email == "" && input.Password == "" {
		return nil
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return err
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hashed)
		log.Printf("Password changed for doctor account %d", user.ID)
	}
	return db.DB.Save(&user).Error
}

// ============= DEPARTMENT MANAGEMENT =============

// GetDepartmentsWithCounts lists departments with their doctor counts
func GetDepartmentsWithCounts(c *fiber.Ctx) error {
	var departments []models.Department
	if err := db.DB.Find(&departments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch departments",
			Error:   err.Error(),
		})
	}

	type deptWithCount struct {
		models.Department
		DoctorCount int64 `json:"doctor_count"`
	}
	out := make([]deptWithCount, len(departments))
	for i, dept := range departments {
		var count int64
		db.DB.Model(&models.Doctor{}).Where("department_id = ?", dept.ID).Count(&count)
		out[i] = deptWithCount{Department: dept, DoctorCount: count}
	}
	return c.JSON(out)
}

// CreateDepartment adds a department
func CreateDepartment(c *fiber.Ctx) error {
	department := new(models.Department)
	if err := c.BodyParser(department); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if department.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Department name is required",
		})
	}

	if err := db.DB.Create(department).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create department",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(department)
}

// UpdateDepartment edits a department
func UpdateDepartment(c *fiber.Ctx) error {
	var department models.Department
	if err := db.DB.First(&department, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Department not found",
		})
	}
	if err := c.BodyParser(&department); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
		})
	}
	if err := db.DB.Save(&department).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update department",
			Error:   err.Error(),
		})
	}
	return c.JSON(department)
}

// DeleteDepartment removes a department
func DeleteDepartment(c *fiber.Ctx) error {
	var department models.Department
	if err := db.DB.First(&department, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Department not found",
		})
	}
	if err := db.DB.Delete(&department).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete department",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ============= CONTACT MESSAGE MANAGEMENT =============

// GetMessages lists all contact messages, newest first
func GetMessages(c *fiber.Ctx) error {
	var contacts []models.Contact
	if err := db.DB.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch messages",
			Error:   err.Error(),
		})
	}
	return c.JSON(contacts)
}

// GetMessage returns a single contact message and marks it read
func GetMessage(c *fiber.Ctx) error {
	var contact models.Contact
	if err := db.DB.First(&contact, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Message not found",
		})
	}

	if !contact.IsRead {
		contact.IsRead = true
		db.DB.Save(&contact)
	}
	return c.JSON(contact)
}

// DeleteMessage removes a contact message
func DeleteMessage(c *fiber.Ctx) error {
	var contact models.Contact
	if err := db.DB.First(&contact, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Message not found",
		})
	}
	if err := db.DB.Delete(&contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete message",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
