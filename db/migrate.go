package db

import (
	"fmt"
	"log"

	"github.com/clinicore/booking-app/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Department{},
		&models.Doctor{},
		&models.AvailabilitySlot{},
		&models.LeaveDay{},
		&models.Booking{},
		&models.Contact{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// At most one non-terminal booking may hold a (doctor, date, time) slot.
	// Rejected and cancelled rows are excluded so the slot frees up for reuse.
	err = DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_booking_slot
		ON bookings (doctor_id, date, time)
		WHERE status NOT IN ('rejected', 'cancelled')
	`).Error
	if err != nil {
		log.Fatal("Failed to create booking slot index: ", err)
	}

	seedRoles()

	fmt.Println("✅ Migrations applied successfully!")
}

func seedRoles() {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Administrator with full access"},
		{Name: models.RoleDoctor, Description: "Doctor managing own schedule and appointments"},
		{Name: models.RolePatient, Description: "Patient who can book appointments"},
	}

	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}
}
