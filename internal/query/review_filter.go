package query

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReviewFilter holds the recognized review listing parameters.
type ReviewFilter struct {
	Rating     *int
	PropertyID *int
	IsApproved *bool // admin listings only; public paths force approved
	Ordering   string
}

var reviewOrderings = map[string]string{
	"created_at": "created_at",
	"rating":     "rating",
}

func ReviewFilterFromQuery(c *fiber.Ctx) ReviewFilter {
	return ReviewFilter{
		Rating:     intParam(c, "rating"),
		PropertyID: intParam(c, "property"),
		IsApproved: boolParam(c, "is_approved"),
		Ordering:   c.Query("ordering"),
	}
}

func (f ReviewFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.Rating != nil {
		db = db.Where("rating = ?", *f.Rating)
	}
	if f.PropertyID != nil {
		db = db.Where("property_id = ?", *f.PropertyID)
	}
	if f.IsApproved != nil {
		db = db.Where("is_approved = ?", *f.IsApproved)
	}
	return db
}

func (f ReviewFilter) Order(db *gorm.DB) *gorm.DB {
	return applyOrdering(db, f.Ordering, reviewOrderings, "created_at DESC")
}
