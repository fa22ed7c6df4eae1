package model

import (
	"gorm.io/gorm"
)

// User is a staff account for the admin surface. There is no public
// registration; accounts are created out of band.
type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Name     string `json:"name"`
	IsStaff  bool   `json:"is_staff" gorm:"default:false"`
}
