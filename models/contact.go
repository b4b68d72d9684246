package models

import (
	"gorm.io/gorm"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	IsRead  bool   `json:"is_read" gorm:"default:false"`
}
