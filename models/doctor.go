package models

import (
	"gorm.io/gorm"
)

type Doctor struct {
	gorm.Model
	Name           string             `json:"name"`
	Specialization string             `json:"specialization"`
	DepartmentID   uint               `json:"department_id"`
	Department     Department         `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	UserID         *uint              `json:"user_id,omitempty"`
	User           *User              `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Availabilities []AvailabilitySlot `json:"availabilities,omitempty" gorm:"foreignKey:DoctorID"`
	Leaves         []LeaveDay         `json:"leaves,omitempty" gorm:"foreignKey:DoctorID"`
}
