package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nurastays_backend/internal/model"
	"nurastays_backend/internal/query"
	"nurastays_backend/pkg/database"
	"nurastays_backend/pkg/pagination"
	"nurastays_backend/pkg/utils/validation"
)

type ReviewInput struct {
	PropertyID *uint  `json:"property_id"`
	GuestName  string `json:"guest_name" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text" validate:"required"`
	IsApproved *bool  `json:"is_approved"`
}

// ListReviews lists approved reviews, filterable by rating and property,
// paginated.
func ListReviews(c *fiber.Ctx) error {
	db := database.GetDB()
	filter := query.ReviewFilterFromQuery(c)
	filter.IsApproved = nil // public path, approval is forced below

	base := filter.Apply(db.Model(&model.Review{}).Where("is_approved = ?", true))

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch reviews",
		})
	}

	page := pagination.Normalize(c.QueryInt("page", 1))
	var reviews []model.Review
	if err := filter.Order(base.Session(&gorm.Session{})).
		Offset(pagination.Offset(page)).
		Limit(pagination.PageSize).
		Preload("Property").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch reviews",
		})
	}

	results := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		results = append(results, reviewView(r))
	}

	return c.JSON(pagination.New(count, page, results))
}

// ReviewStats returns the global average, count and rating histogram over
// approved reviews.
func ReviewStats(c *fiber.Ctx) error {
	stats, err := model.GlobalReviewStats(database.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not compute review stats",
		})
	}
	return c.JSON(stats)
}

// PropertyReviews lists approved reviews for one property, unpaginated.
func PropertyReviews(c *fiber.Ctx) error {
	db := database.GetDB()

	var reviews []model.Review
	if err := db.Where("property_id = ? AND is_approved = ?", c.Params("id"), true).
		Order("created_at DESC").
		Preload("Property").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch reviews",
		})
	}

	results := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		results = append(results, reviewView(r))
	}
	return c.JSON(results)
}

// AdminListReviews lists every review, approved or not, with filters and
// pagination.
func AdminListReviews(c *fiber.Ctx) error {
	db := database.GetDB()
	filter := query.ReviewFilterFromQuery(c)

	base := filter.Apply(db.Model(&model.Review{}))

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch reviews",
		})
	}

	page := pagination.Normalize(c.QueryInt("page", 1))
	var reviews []model.Review
	if err := filter.Order(base.Session(&gorm.Session{})).
		Offset(pagination.Offset(page)).
		Limit(pagination.PageSize).
		Preload("Property").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch reviews",
		})
	}

	return c.JSON(pagination.New(count, page, reviews))
}

func AdminGetReview(c *fiber.Ctx) error {
	var review model.Review
	if err := database.GetDB().Preload("Property").First(&review, c.Params("id")).Error; err != nil {
		return reviewNotFoundOr500(c, err)
	}
	return c.JSON(review)
}

func AdminCreateReview(c *fiber.Ctx) error {
	input := new(ReviewInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if fieldErrors := validation.ValidateStruct(input); fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fieldErrors,
		})
	}

	db := database.GetDB()
	if input.PropertyID != nil {
		var property model.Property
		if err := db.First(&property, *input.PropertyID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": fiber.Map{"property_id": "Referenced property does not exist."},
			})
		}
	}

	review := model.Review{
		PropertyID: input.PropertyID,
		GuestName:  input.GuestName,
		Rating:     input.Rating,
		ReviewText: input.ReviewText,
		IsApproved: true,
	}
	if input.IsApproved != nil {
		review.IsApproved = *input.IsApproved
	}

	if err := db.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create review",
		})
	}

	db.Preload("Property").First(&review, review.ID)
	return c.Status(fiber.StatusCreated).JSON(review)
}

func AdminUpdateReview(c *fiber.Ctx) error {
	db := database.GetDB()

	var review model.Review
	if err := db.First(&review, c.Params("id")).Error; err != nil {
		return reviewNotFoundOr500(c, err)
	}

	input := new(ReviewInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if fieldErrors := validation.ValidateStruct(input); fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fieldErrors,
		})
	}

	if input.PropertyID != nil {
		var property model.Property
		if err := db.First(&property, *input.PropertyID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": fiber.Map{"property_id": "Referenced property does not exist."},
			})
		}
	}

	review.PropertyID = input.PropertyID
	review.GuestName = input.GuestName
	review.Rating = input.Rating
	review.ReviewText = input.ReviewText
	if input.IsApproved != nil {
		review.IsApproved = *input.IsApproved
	}

	if err := db.Save(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update review",
		})
	}

	db.Preload("Property").First(&review, review.ID)
	return c.JSON(review)
}

func AdminDeleteReview(c *fiber.Ctx) error {
	db := database.GetDB()

	var review model.Review
	if err := db.First(&review, c.Params("id")).Error; err != nil {
		return reviewNotFoundOr500(c, err)
	}

	if err := db.Delete(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete review",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func reviewNotFoundOr500(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Could not fetch review",
	})
}
