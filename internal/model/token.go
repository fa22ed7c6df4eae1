package model

import (
	"time"

	"gorm.io/gorm"
)

// RevokedToken blacklists a refresh token by its JTI. Rows become dead weight
// once ExpiresAt passes since the token would no longer verify anyway.
type RevokedToken struct {
	gorm.Model
	JTI       string    `json:"jti" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsTokenRevoked reports whether a refresh token JTI has been blacklisted.
func IsTokenRevoked(db *gorm.DB, jti string) (bool, error) {
	var count int64
	err := db.Model(&RevokedToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, err
}

// RevokeToken blacklists a refresh token JTI. Revoking an already revoked
// token is a no-op.
func RevokeToken(db *gorm.DB, jti string, expiresAt time.Time) error {
	revoked, err := IsTokenRevoked(db, jti)
	if err != nil || revoked {
		return err
	}
	return db.Create(&RevokedToken{JTI: jti, ExpiresAt: expiresAt}).Error
}
