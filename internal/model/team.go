package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TeamMember struct {
	gorm.Model
	Name        string            `json:"name" gorm:"not null"`
	Role        string            `json:"role" gorm:"not null"`
	Bio         string            `json:"bio" gorm:"type:text"`
	Photo       string            `json:"photo"`
	SocialLinks datatypes.JSONMap `json:"social_links"`
	OrderIndex  int               `json:"order_index" gorm:"default:0"`
}

// OrderTeamMembers applies the roster ordering: explicit order first, then
// name as the tiebreak.
func OrderTeamMembers(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC, name ASC")
}
