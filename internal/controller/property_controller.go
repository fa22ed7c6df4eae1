package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nurastays_backend/internal/model"
	"nurastays_backend/internal/query"
	"nurastays_backend/pkg/database"
	"nurastays_backend/pkg/pagination"
)

const FeaturedLimit = 6

// ListProperties lists active properties with filtering, search, ordering
// and pagination.
func ListProperties(c *fiber.Ctx) error {
	db := database.GetDB()
	filter := query.PropertyFilterFromQuery(c)

	base := filter.Apply(db.Model(&model.Property{}).Where("is_active = ?", true))

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch properties",
		})
	}

	page := pagination.Normalize(c.QueryInt("page", 1))
	var properties []model.Property
	if err := filter.Order(base.Session(&gorm.Session{})).
		Offset(pagination.Offset(page)).
		Limit(pagination.PageSize).
		Preload("Images", model.PreloadImages).
		Find(&properties).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch properties",
		})
	}

	results := make([]PropertyListItem, 0, len(properties))
	for _, p := range properties {
		item, err := propertyListItem(db, p, c.BaseURL())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not fetch properties",
			})
		}
		results = append(results, item)
	}

	return c.JSON(pagination.New(count, page, results))
}

// FeaturedProperties returns up to six active, featured properties.
func FeaturedProperties(c *fiber.Ctx) error {
	db := database.GetDB()

	var properties []model.Property
	if err := db.Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Limit(FeaturedLimit).
		Preload("Images", model.PreloadImages).
		Find(&properties).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch properties",
		})
	}

	results := make([]PropertyListItem, 0, len(properties))
	for _, p := range properties {
		item, err := propertyListItem(db, p, c.BaseURL())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not fetch properties",
			})
		}
		results = append(results, item)
	}

	return c.JSON(results)
}

// GetPropertyBySlug returns an active property's full detail, with its
// ordered image list and read-time rating aggregates.
func GetPropertyBySlug(c *fiber.Ctx) error {
	db := database.GetDB()
	slug := c.Params("slug")

	var property model.Property
	err := db.Where("slug = ? AND is_active = ?", slug, true).
		Preload("Images", model.PreloadImages).
		First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch property",
		})
	}

	detail, err := propertyDetail(db, property, c.BaseURL())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch property",
		})
	}

	return c.JSON(detail)
}
