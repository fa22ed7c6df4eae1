package model

import (
	"gorm.io/gorm"
)

// ContactSubmission is a lead from the public contact form. Everything but
// the read flag is immutable once created, and leads are never deleted
// through the API.
type ContactSubmission struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" gorm:"type:text;not null"`
	IsRead  bool   `json:"is_read" gorm:"default:false"`
}
