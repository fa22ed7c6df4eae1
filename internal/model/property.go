package model

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Property Types
type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeStudio    PropertyType = "studio"
	PropertyTypeVilla     PropertyType = "villa"
	PropertyTypeCottage   PropertyType = "cottage"
	PropertyTypePenthouse PropertyType = "penthouse"
)

// ValidPropertyType reports whether t is one of the supported listing types.
func ValidPropertyType(t PropertyType) bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeStudio,
		PropertyTypeVilla, PropertyTypeCottage, PropertyTypePenthouse:
		return true
	}
	return false
}

type Property struct {
	gorm.Model
	Name               string                      `json:"name" gorm:"not null"`
	Slug               string                      `json:"slug" gorm:"uniqueIndex;not null"`
	Location           string                      `json:"location" gorm:"not null"`
	Description        string                      `json:"description" gorm:"type:text"`
	ShortDescription   string                      `json:"short_description" gorm:"size:500"`
	PricePerNight      float64                     `json:"price_per_night" gorm:"type:decimal(10,2);not null"`
	Bedrooms           int                         `json:"bedrooms" gorm:"default:1"`
	Bathrooms          int                         `json:"bathrooms" gorm:"default:1"`
	MaxGuests          int                         `json:"max_guests" gorm:"default:2"`
	PropertyType       PropertyType                `json:"property_type" gorm:"size:50;default:'apartment'"`
	Amenities          datatypes.JSONSlice[string] `json:"amenities"`
	HouseRules         string                      `json:"house_rules" gorm:"type:text"`
	CancellationPolicy string                      `json:"cancellation_policy" gorm:"type:text"`
	IsActive           bool                        `json:"is_active" gorm:"default:true"`
	IsFeatured         bool                        `json:"is_featured" gorm:"default:false"`

	Images []PropertyImage `json:"images" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

type PropertyImage struct {
	gorm.Model
	PropertyID uint   `json:"property_id" gorm:"index;not null"`
	Image      string `json:"image" gorm:"not null"`
	IsPrimary  bool   `json:"is_primary" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`

	Property Property `json:"-" gorm:"foreignKey:PropertyID"`
}

// BeforeCreate derives the URL slug from the name. The slug is assigned once
// here and kept for the lifetime of the property; renames do not touch it.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.Slug != "" {
		return nil
	}

	base := slug.Make(p.Name)
	candidate := base
	counter := 1
	for {
		var count int64
		q := tx.Model(&Property{}).Where("slug = ?", candidate)
		if p.ID != 0 {
			q = q.Where("id <> ?", p.ID)
		}
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}

	p.Slug = candidate
	return nil
}

// PrimaryImage resolves the image shown in list views: the first image flagged
// primary in order_index order, the first image overall when none is flagged,
// or nil when the property has no images. Images must be preloaded in
// (order_index, created_at) order.
func (p *Property) PrimaryImage() *PropertyImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}

// PreloadImages applies the canonical image ordering to a Preload call.
func PreloadImages(db *gorm.DB) *gorm.DB {
	return db.Order("property_images.order_index ASC, property_images.created_at ASC")
}
