package controller

import (
	"github.com/gofiber/fiber/v2"

	"nurastays_backend/internal/model"
	"nurastays_backend/pkg/database"
)

// DashboardStats is the admin dashboard overview payload.
type DashboardStats struct {
	TotalProperties  int64    `json:"total_properties"`
	ActiveProperties int64    `json:"active_properties"`
	TotalReviews     int64    `json:"total_reviews"`
	ApprovedReviews  int64    `json:"approved_reviews"`
	AverageRating    *float64 `json:"average_rating"`
	TotalTeamMembers int64    `json:"total_team_members"`
}

// GetDashboardStats returns entity counts and the global approved-review
// average, computed fresh on every request.
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.GetDB()
	var stats DashboardStats

	if err := db.Model(&model.Property{}).Count(&stats.TotalProperties).Error; err != nil {
		return dashboardError(c)
	}
	if err := db.Model(&model.Property{}).
		Where("is_active = ?", true).
		Count(&stats.ActiveProperties).Error; err != nil {
		return dashboardError(c)
	}
	if err := db.Model(&model.Review{}).Count(&stats.TotalReviews).Error; err != nil {
		return dashboardError(c)
	}
	if err := db.Model(&model.Review{}).
		Where("is_approved = ?", true).
		Count(&stats.ApprovedReviews).Error; err != nil {
		return dashboardError(c)
	}
	if err := db.Model(&model.TeamMember{}).Count(&stats.TotalTeamMembers).Error; err != nil {
		return dashboardError(c)
	}

	global, err := model.GlobalReviewStats(db)
	if err != nil {
		return dashboardError(c)
	}
	stats.AverageRating = global.AverageRating

	return c.JSON(stats)
}

func dashboardError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Could not compute dashboard stats",
	})
}
