package query

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PropertyFilter holds the recognized listing filter parameters. Every field
// is optional; set fields are combined with logical AND.
type PropertyFilter struct {
	MinPrice     *float64
	MaxPrice     *float64
	MinBedrooms  *int
	MaxBedrooms  *int
	Bedrooms     *int
	Bathrooms    *int
	IsFeatured   *bool
	PropertyType string
	Location     string
	Search       string
	Ordering     string

	searchColumns []string
}

var (
	publicSearchColumns = []string{"name", "location", "description"}
	adminSearchColumns  = []string{"name", "location"}
)

var propertyOrderings = map[string]string{
	"price_per_night": "price_per_night",
	"created_at":      "created_at",
	"name":            "name",
}

// PropertyFilterFromQuery reads the filter parameters off the request.
// Unparseable values are treated as absent.
func PropertyFilterFromQuery(c *fiber.Ctx) PropertyFilter {
	return PropertyFilter{
		MinPrice:     floatParam(c, "min_price"),
		MaxPrice:     floatParam(c, "max_price"),
		MinBedrooms:  intParam(c, "min_bedrooms"),
		MaxBedrooms:  intParam(c, "max_bedrooms"),
		Bedrooms:     intParam(c, "bedrooms"),
		Bathrooms:    intParam(c, "bathrooms"),
		IsFeatured:   boolParam(c, "is_featured"),
		PropertyType: c.Query("property_type"),
		Location:     c.Query("location"),
		Search:       c.Query("search"),
		Ordering:     c.Query("ordering"),
	}
}

// AdminPropertyFilterFromQuery reads the same parameters as the public
// listing but scopes free-text search to name and location only.
func AdminPropertyFilterFromQuery(c *fiber.Ctx) PropertyFilter {
	f := PropertyFilterFromQuery(c)
	f.searchColumns = adminSearchColumns
	return f
}

// Apply chains the set filters onto a property query.
func (f PropertyFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.MinPrice != nil {
		db = db.Where("price_per_night >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		db = db.Where("price_per_night <= ?", *f.MaxPrice)
	}
	if f.MinBedrooms != nil {
		db = db.Where("bedrooms >= ?", *f.MinBedrooms)
	}
	if f.MaxBedrooms != nil {
		db = db.Where("bedrooms <= ?", *f.MaxBedrooms)
	}
	if f.Bedrooms != nil {
		db = db.Where("bedrooms = ?", *f.Bedrooms)
	}
	if f.Bathrooms != nil {
		db = db.Where("bathrooms = ?", *f.Bathrooms)
	}
	if f.IsFeatured != nil {
		db = db.Where("is_featured = ?", *f.IsFeatured)
	}
	if f.PropertyType != "" {
		db = db.Where("property_type = ?", f.PropertyType)
	}
	if f.Location != "" {
		db = db.Where("LOWER(location) LIKE ?", contains(f.Location))
	}
	if f.Search != "" {
		columns := f.searchColumns
		if columns == nil {
			columns = publicSearchColumns
		}
		term := contains(f.Search)
		conds := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, column := range columns {
			conds = append(conds, "LOWER("+column+") LIKE ?")
			args = append(args, term)
		}
		db = db.Where(strings.Join(conds, " OR "), args...)
	}
	return db
}

// Order applies the requested ordering, falling back to newest-first. Only
// whitelisted columns are honored; a leading '-' flips direction.
func (f PropertyFilter) Order(db *gorm.DB) *gorm.DB {
	return applyOrdering(db, f.Ordering, propertyOrderings, "created_at DESC")
}

func applyOrdering(db *gorm.DB, requested string, allowed map[string]string, fallback string) *gorm.DB {
	field := requested
	desc := false
	if strings.HasPrefix(field, "-") {
		desc = true
		field = field[1:]
	}
	column, ok := allowed[field]
	if !ok {
		return db.Order(fallback)
	}
	if desc {
		return db.Order(column + " DESC")
	}
	return db.Order(column + " ASC")
}

func contains(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

func floatParam(c *fiber.Ctx, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func intParam(c *fiber.Ctx, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func boolParam(c *fiber.Ctx, name string) *bool {
	raw := strings.ToLower(c.Query(name))
	switch raw {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}
