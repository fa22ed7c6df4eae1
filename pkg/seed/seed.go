package seed

import (
	"log"

	"gorm.io/gorm"

	"nurastays_backend/internal/model"
)

// SeedSampleData loads a small demo dataset when the catalog is empty.
func SeedSampleData(db *gorm.DB) {
	var count int64
	db.Model(&model.Property{}).Count(&count)
	if count > 0 {
		return
	}

	properties := []model.Property{
		{
			Name:             "Seafront Apartment",
			Location:         "Brighton, United Kingdom",
			Description:      "A bright two-bedroom apartment right on the seafront, a short walk from the pier and the Lanes.",
			ShortDescription: "Bright two-bedroom apartment on the seafront.",
			PricePerNight:    145.00,
			Bedrooms:         2,
			Bathrooms:        1,
			MaxGuests:        4,
			PropertyType:     model.PropertyTypeApartment,
			Amenities:        []string{"WiFi", "Washing machine", "Sea view", "Heating"},
			HouseRules:       "No smoking. No parties. Quiet hours after 22:00.",
			IsActive:         true,
			IsFeatured:       true,
		},
		{
			Name:             "Garden Cottage",
			Location:         "Cotswolds, United Kingdom",
			Description:      "A stone cottage with a private garden at the edge of the village, ideal for a quiet countryside stay.",
			ShortDescription: "Stone cottage with a private garden.",
			PricePerNight:    120.00,
			Bedrooms:         1,
			Bathrooms:        1,
			MaxGuests:        2,
			PropertyType:     model.PropertyTypeCottage,
			Amenities:        []string{"WiFi", "Fireplace", "Garden", "Parking"},
			IsActive:         true,
			IsFeatured:       false,
		},
		{
			Name:             "City Centre Studio",
			Location:         "Manchester, United Kingdom",
			Description:      "A compact studio in the Northern Quarter with everything in walking distance.",
			ShortDescription: "Compact studio in the Northern Quarter.",
			PricePerNight:    85.00,
			Bedrooms:         1,
			Bathrooms:        1,
			MaxGuests:        2,
			PropertyType:     model.PropertyTypeStudio,
			Amenities:        []string{"WiFi", "Kitchenette"},
			IsActive:         true,
			IsFeatured:       true,
		},
	}

	for i := range properties {
		if err := db.Create(&properties[i]).Error; err != nil {
			log.Printf("Could not seed property %q: %v", properties[i].Name, err)
		}
	}

	reviews := []model.Review{
		{PropertyID: &properties[0].ID, GuestName: "Amelia H.", Rating: 5, ReviewText: "Stunning view and spotless throughout. We will be back.", IsApproved: true},
		{PropertyID: &properties[0].ID, GuestName: "Tom W.", Rating: 4, ReviewText: "Great location, parking was a little tricky.", IsApproved: true},
		{PropertyID: &properties[1].ID, GuestName: "Priya S.", Rating: 5, ReviewText: "The garden alone is worth the stay.", IsApproved: true},
		{GuestName: "James O.", Rating: 5, ReviewText: "Booking with the team was effortless from start to finish.", IsApproved: true},
	}
	for i := range reviews {
		if err := db.Create(&reviews[i]).Error; err != nil {
			log.Printf("Could not seed review: %v", err)
		}
	}

	team := []model.TeamMember{
		{Name: "Nura Ahmed", Role: "Founder", Bio: "Started the company after a decade in hospitality.", OrderIndex: 0},
		{Name: "Ben Carter", Role: "Guest Experience", Bio: "Your first point of contact before and during a stay.", OrderIndex: 1},
	}
	for i := range team {
		if err := db.Create(&team[i]).Error; err != nil {
			log.Printf("Could not seed team member: %v", err)
		}
	}

	log.Println("Seeded sample data")
}
