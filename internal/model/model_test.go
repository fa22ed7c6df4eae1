package model

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&Property{}, &PropertyImage{}, &Review{}, &TeamMember{}, &ContactSubmission{},
		&User{}, &RevokedToken{},
	))
	return db
}

func createProperty(t *testing.T, db *gorm.DB, name string) *Property {
	t.Helper()
	p := &Property{
		Name:          name,
		Location:      "Brighton, United Kingdom",
		Description:   "A place to stay.",
		PricePerNight: 100,
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     4,
		PropertyType:  PropertyTypeApartment,
		IsActive:      true,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}
