package model

import (
	"fmt"
	"math"

	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	PropertyID *uint  `json:"property_id" gorm:"index"`
	GuestName  string `json:"guest_name" gorm:"not null"`
	Rating     int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	ReviewText string `json:"review_text" gorm:"type:text"`
	IsApproved bool   `json:"is_approved" gorm:"default:true"`

	// Nullable on purpose: a review may be a general testimonial, and the
	// reference is cleared rather than cascading when the property goes away.
	Property *Property `json:"-" gorm:"foreignKey:PropertyID;constraint:OnDelete:SET NULL"`
}

// ReviewStats is the global aggregate over all approved reviews.
type ReviewStats struct {
	AverageRating *float64         `json:"average_rating"`
	TotalReviews  int64            `json:"total_reviews"`
	Distribution  map[string]int64 `json:"distribution"`
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// AverageRating returns the mean rating over approved reviews for a property,
// rounded to one decimal place. A property with no approved reviews has no
// rating at all, so nil is returned rather than zero.
func AverageRating(db *gorm.DB, propertyID uint) (*float64, error) {
	var avg *float64
	err := db.Model(&Review{}).
		Where("property_id = ? AND is_approved = ?", propertyID, true).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return nil, err
	}
	rounded := roundToTenth(*avg)
	return &rounded, nil
}

// ReviewCount returns the number of approved reviews for a property.
func ReviewCount(db *gorm.DB, propertyID uint) (int64, error) {
	var count int64
	err := db.Model(&Review{}).
		Where("property_id = ? AND is_approved = ?", propertyID, true).
		Count(&count).Error
	return count, err
}

// GlobalReviewStats computes the site-wide average, total and per-rating
// histogram across all approved reviews. Every bucket 1..5 is present even
// when empty; the average follows the same nil sentinel as AverageRating.
func GlobalReviewStats(db *gorm.DB) (*ReviewStats, error) {
	stats := &ReviewStats{Distribution: map[string]int64{
		"1": 0, "2": 0, "3": 0, "4": 0, "5": 0,
	}}

	if err := db.Model(&Review{}).
		Where("is_approved = ?", true).
		Count(&stats.TotalReviews).Error; err != nil {
		return nil, err
	}

	var avg *float64
	if err := db.Model(&Review{}).
		Where("is_approved = ?", true).
		Select("AVG(rating)").
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	if avg != nil {
		rounded := roundToTenth(*avg)
		stats.AverageRating = &rounded
	}

	var rows []struct {
		Rating int
		Count  int64
	}
	if err := db.Model(&Review{}).
		Where("is_approved = ?", true).
		Select("rating, COUNT(*) as count").
		Group("rating").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Rating >= 1 && row.Rating <= 5 {
			stats.Distribution[fmt.Sprint(row.Rating)] = row.Count
		}
	}

	return stats, nil
}
