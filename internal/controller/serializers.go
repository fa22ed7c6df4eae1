package controller

import (
	"time"

	"gorm.io/gorm"

	"nurastays_backend/internal/model"
	"nurastays_backend/pkg/utils/storage"
)

// Read-side projections. One canonical record, several fixed field sets:
// a lightweight list item, a full public detail, and the raw model for the
// admin surface.

type PropertyListItem struct {
	ID               uint               `json:"id"`
	Name             string             `json:"name"`
	Slug             string             `json:"slug"`
	Location         string             `json:"location"`
	ShortDescription string             `json:"short_description"`
	PricePerNight    float64            `json:"price_per_night"`
	Bedrooms         int                `json:"bedrooms"`
	Bathrooms        int                `json:"bathrooms"`
	MaxGuests        int                `json:"max_guests"`
	PropertyType     model.PropertyType `json:"property_type"`
	Amenities        []string           `json:"amenities"`
	IsFeatured       bool               `json:"is_featured"`
	PrimaryImage     *string            `json:"primary_image"`
	AverageRating    *float64           `json:"average_rating"`
	ReviewCount      int64              `json:"review_count"`
	CreatedAt        time.Time          `json:"created_at"`
}

type PropertyImageView struct {
	ID         uint      `json:"id"`
	Image      string    `json:"image"`
	ImageURL   string    `json:"image_url"`
	IsPrimary  bool      `json:"is_primary"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}

type PropertyDetail struct {
	ID                 uint                `json:"id"`
	Name               string              `json:"name"`
	Slug               string              `json:"slug"`
	Location           string              `json:"location"`
	Description        string              `json:"description"`
	ShortDescription   string              `json:"short_description"`
	PricePerNight      float64             `json:"price_per_night"`
	Bedrooms           int                 `json:"bedrooms"`
	Bathrooms          int                 `json:"bathrooms"`
	MaxGuests          int                 `json:"max_guests"`
	PropertyType       model.PropertyType  `json:"property_type"`
	Amenities          []string            `json:"amenities"`
	HouseRules         string              `json:"house_rules"`
	CancellationPolicy string              `json:"cancellation_policy"`
	IsActive           bool                `json:"is_active"`
	IsFeatured         bool                `json:"is_featured"`
	Images             []PropertyImageView `json:"images"`
	AverageRating      *float64            `json:"average_rating"`
	ReviewCount        int64               `json:"review_count"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

type ReviewView struct {
	ID           uint      `json:"id"`
	Property     *uint     `json:"property"`
	PropertyName *string   `json:"property_name"`
	GuestName    string    `json:"guest_name"`
	Rating       int       `json:"rating"`
	ReviewText   string    `json:"review_text"`
	CreatedAt    time.Time `json:"created_at"`
}

type TeamMemberView struct {
	ID          uint                   `json:"id"`
	Name        string                 `json:"name"`
	Role        string                 `json:"role"`
	Bio         string                 `json:"bio"`
	Photo       string                 `json:"photo"`
	PhotoURL    *string                `json:"photo_url"`
	SocialLinks map[string]interface{} `json:"social_links"`
	OrderIndex  int                    `json:"order_index"`
	CreatedAt   time.Time              `json:"created_at"`
}

func imageView(img model.PropertyImage, baseURL string) PropertyImageView {
	return PropertyImageView{
		ID:         img.ID,
		Image:      img.Image,
		ImageURL:   storage.ResolveURL(baseURL, img.Image),
		IsPrimary:  img.IsPrimary,
		OrderIndex: img.OrderIndex,
		CreatedAt:  img.CreatedAt,
	}
}

// propertyListItem builds the list projection for a property with preloaded,
// ordered images. Rating aggregates are computed fresh on every read.
func propertyListItem(db *gorm.DB, p model.Property, baseURL string) (PropertyListItem, error) {
	avg, err := model.AverageRating(db, p.ID)
	if err != nil {
		return PropertyListItem{}, err
	}
	count, err := model.ReviewCount(db, p.ID)
	if err != nil {
		return PropertyListItem{}, err
	}

	var primary *string
	if img := p.PrimaryImage(); img != nil {
		url := storage.ResolveURL(baseURL, img.Image)
		primary = &url
	}

	return PropertyListItem{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Location:         p.Location,
		ShortDescription: p.ShortDescription,
		PricePerNight:    p.PricePerNight,
		Bedrooms:         p.Bedrooms,
		Bathrooms:        p.Bathrooms,
		MaxGuests:        p.MaxGuests,
		PropertyType:     p.PropertyType,
		Amenities:        p.Amenities,
		IsFeatured:       p.IsFeatured,
		PrimaryImage:     primary,
		AverageRating:    avg,
		ReviewCount:      count,
		CreatedAt:        p.CreatedAt,
	}, nil
}

func propertyDetail(db *gorm.DB, p model.Property, baseURL string) (PropertyDetail, error) {
	avg, err := model.AverageRating(db, p.ID)
	if err != nil {
		return PropertyDetail{}, err
	}
	count, err := model.ReviewCount(db, p.ID)
	if err != nil {
		return PropertyDetail{}, err
	}

	images := make([]PropertyImageView, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, imageView(img, baseURL))
	}

	return PropertyDetail{
		ID:                 p.ID,
		Name:               p.Name,
		Slug:               p.Slug,
		Location:           p.Location,
		Description:        p.Description,
		ShortDescription:   p.ShortDescription,
		PricePerNight:      p.PricePerNight,
		Bedrooms:           p.Bedrooms,
		Bathrooms:          p.Bathrooms,
		MaxGuests:          p.MaxGuests,
		PropertyType:       p.PropertyType,
		Amenities:          p.Amenities,
		HouseRules:         p.HouseRules,
		CancellationPolicy: p.CancellationPolicy,
		IsActive:           p.IsActive,
		IsFeatured:         p.IsFeatured,
		Images:             images,
		AverageRating:      avg,
		ReviewCount:        count,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}, nil
}

func reviewView(r model.Review) ReviewView {
	var propertyName *string
	if r.Property != nil {
		propertyName = &r.Property.Name
	}
	return ReviewView{
		ID:           r.ID,
		Property:     r.PropertyID,
		PropertyName: propertyName,
		GuestName:    r.GuestName,
		Rating:       r.Rating,
		ReviewText:   r.ReviewText,
		CreatedAt:    r.CreatedAt,
	}
}

func teamMemberView(m model.TeamMember, baseURL string) TeamMemberView {
	var photoURL *string
	if m.Photo != "" {
		url := storage.ResolveURL(baseURL, m.Photo)
		photoURL = &url
	}
	return TeamMemberView{
		ID:          m.ID,
		Name:        m.Name,
		Role:        m.Role,
		Bio:         m.Bio,
		Photo:       m.Photo,
		PhotoURL:    photoURL,
		SocialLinks: m.SocialLinks,
		OrderIndex:  m.OrderIndex,
		CreatedAt:   m.CreatedAt,
	}
}
