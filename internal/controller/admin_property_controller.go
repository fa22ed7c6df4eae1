package controller

import (
	"errors"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nurastays_backend/internal/model"
	"nurastays_backend/internal/query"
	"nurastays_backend/pkg/database"
	"nurastays_backend/pkg/pagination"
	imageutil "nurastays_backend/pkg/utils/image"
	"nurastays_backend/pkg/utils/storage"
	"nurastays_backend/pkg/utils/validation"
)

type PropertyInput struct {
	Name               string             `json:"name" validate:"required"`
	Location           string             `json:"location" validate:"required"`
	Description        string             `json:"description" validate:"required"`
	ShortDescription   string             `json:"short_description"`
	PricePerNight      *float64           `json:"price_per_night" validate:"required"`
	Bedrooms           int                `json:"bedrooms" validate:"min=0"`
	Bathrooms          int                `json:"bathrooms" validate:"min=0"`
	MaxGuests          int                `json:"max_guests" validate:"min=0"`
	PropertyType       model.PropertyType `json:"property_type"`
	Amenities          []string           `json:"amenities"`
	HouseRules         string             `json:"house_rules"`
	CancellationPolicy string             `json:"cancellation_policy"`
	IsActive           *bool              `json:"is_active"`
	IsFeatured         *bool              `json:"is_featured"`
}

// validatePropertyInput collects per-field failures beyond what the struct
// tags cover: price precision and the property type enum.
func validatePropertyInput(input *PropertyInput) map[string]string {
	fieldErrors := validation.ValidateStruct(input)
	if fieldErrors == nil {
		fieldErrors = make(map[string]string)
	}
	if input.PricePerNight != nil && !validation.ValidPrice(*input.PricePerNight) {
		fieldErrors["price_per_night"] = "Price must be a non-negative amount with at most 10 digits and 2 decimal places."
	}
	if input.PropertyType != "" && !model.ValidPropertyType(input.PropertyType) {
		fieldErrors["property_type"] = "Value is not one of the allowed choices."
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// AdminListProperties lists every property regardless of active flag, with
// search over name/location, ordering and pagination.
func AdminListProperties(c *fiber.Ctx) error {
	db := database.GetDB()
	filter := query.AdminPropertyFilterFromQuery(c)

	base := filter.Apply(db.Model(&model.Property{}))

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

	return c.JSON(pagination.New(count, page, properties))
}

func AdminGetProperty(c *fiber.Ctx) error {
	var property model.Property
	err := database.GetDB().
		Preload("Images", model.PreloadImages).
		First(&property, c.Params("id")).Error
	if err != nil {
		return propertyNotFoundOr500(c, err)
	}
	return c.JSON(property)
}

// AdminCreateProperty creates a listing. The slug is derived from the name
// inside the insert transaction; clients never supply one.
func AdminCreateProperty(c *fiber.Ctx) error {
	input := new(PropertyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if fieldErrors := validatePropertyInput(input); fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fieldErrors,
		})
	}

	property := model.Property{
		Name:               input.Name,
		Location:           input.Location,
		Description:        input.Description,
		ShortDescription:   input.ShortDescription,
		PricePerNight:      *input.PricePerNight,
		Bedrooms:           orDefault(input.Bedrooms, 1),
		Bathrooms:          orDefault(input.Bathrooms, 1),
		MaxGuests:          orDefault(input.MaxGuests, 2),
		PropertyType:       input.PropertyType,
		Amenities:          input.Amenities,
		HouseRules:         input.HouseRules,
		CancellationPolicy: input.CancellationPolicy,
		IsActive:           true,
		IsFeatured:         false,
	}
	if property.PropertyType == "" {
		property.PropertyType = model.PropertyTypeApartment
	}
	if input.IsActive != nil {
		property.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		property.IsFeatured = *input.IsFeatured
	}

	if err := database.GetDB().Create(&property).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create property",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(property)
}

// AdminUpdateProperty updates a listing's fields. The slug is deliberately
// left alone even when the name changes.
func AdminUpdateProperty(c *fiber.Ctx) error {
	var property model.Property
	if err := database.GetDB().First(&property, c.Params("id")).Error; err != nil {
		return propertyNotFoundOr500(c, err)
	}

	input := new(PropertyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if fieldErrors := validatePropertyInput(input); fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fieldErrors,
		})
	}

	property.Name = input.Name
	property.Location = input.Location
	property.Description = input.Description
	property.ShortDescription = input.ShortDescription
	property.PricePerNight = *input.PricePerNight
	if input.Bedrooms > 0 {
		property.Bedrooms = input.Bedrooms
	}
	if input.Bathrooms > 0 {
		property.Bathrooms = input.Bathrooms
	}
	if input.MaxGuests > 0 {
		property.MaxGuests = input.MaxGuests
	}
	if input.PropertyType != "" {
		property.PropertyType = input.PropertyType
	}
	if input.Amenities != nil {
		property.Amenities = input.Amenities
	}
	property.HouseRules = input.HouseRules
	property.CancellationPolicy = input.CancellationPolicy
	if input.IsActive != nil {
		property.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		property.IsFeatured = *input.IsFeatured
	}

	if err := database.GetDB().Save(&property).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update property",
		})
	}

	database.GetDB().Preload("Images", model.PreloadImages).First(&property, property.ID)
	return c.JSON(property)
}

// AdminDeleteProperty removes a property, its images and their stored
// binaries. Reviews pointing at the property keep existing with the
// reference cleared.
func AdminDeleteProperty(c *fiber.Ctx) error {
	db := database.GetDB()

	var property model.Property
	if err := db.Preload("Images").First(&property, c.Params("id")).Error; err != nil {
		return propertyNotFoundOr500(c, err)
	}

	tx := db.Begin()

	if err := tx.Model(&model.Review{}).
		Where("property_id = ?", property.ID).
		Update("property_id", nil).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete property",
		})
	}

	// Hard deletes: the slug must be reusable afterwards, so the row has
	// to leave the unique index rather than linger soft-deleted.
	if err := tx.Unscoped().Where("property_id = ?", property.ID).
		Delete(&model.PropertyImage{}).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete property",
		})
	}

	if err := tx.Unscoped().Delete(&property).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete property",
		})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not complete deletion",
		})
	}

	for _, img := range property.Images {
		if err := storage.Active().Delete(img.Image); err != nil {
			log.Printf("Could not delete stored file %s: %v", img.Image, err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AdminUploadPropertyImages appends a batch of images to a property. Order
// indexes continue from the current image count. When is_primary is set,
// only the first file of the batch gets the flag; flags already present on
// other images are left as they are.
func AdminUploadPropertyImages(c *fiber.Ctx) error {
	db := database.GetDB()

	var property model.Property
	if err := db.First(&property, c.Params("id")).Error; err != nil {
		return propertyNotFoundOr500(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid multipart form",
		})
	}

	files := form.File["images"]
	if len(files) == 0 {
		files = form.File["image"]
	}
	if len(files) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No images provided",
		})
	}

	for _, file := range files {
		if err := validation.ValidateImage(file); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	markPrimary := c.FormValue("is_primary") == "true"

	var created []model.PropertyImage
	err = db.Transaction(func(tx *gorm.DB) error {
		var currentCount int64
		if err := tx.Model(&model.PropertyImage{}).
			Where("property_id = ?", property.ID).
			Count(&currentCount).Error; err != nil {
			return err
		}

		for i, file := range files {
			ref, err := storeImage(file, "properties")
			if err != nil {
				return err
			}
			img := model.PropertyImage{
				PropertyID: property.ID,
				Image:      ref,
				IsPrimary:  markPrimary && i == 0,
				OrderIndex: int(currentCount) + i,
			}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
			created = append(created, img)
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save images",
		})
	}

	views := make([]PropertyImageView, 0, len(created))
	for _, img := range created {
		views = append(views, imageView(img, c.BaseURL()))
	}

	return c.Status(fiber.StatusCreated).JSON(views)
}

// AdminDeletePropertyImage removes one image and its stored binary. The
// image must belong to the property in the path.
func AdminDeletePropertyImage(c *fiber.Ctx) error {
	db := database.GetDB()

	var img model.PropertyImage
	err := db.Where("id = ? AND property_id = ?", c.Params("image_id"), c.Params("id")).
		First(&img).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Image not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch image",
		})
	}

	if err := storage.Active().Delete(img.Image); err != nil {
		log.Printf("Could not delete stored file %s: %v", img.Image, err)
	}

	if err := db.Unscoped().Delete(&img).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete image",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// storeImage re-encodes an upload and writes it to the active storage
// backend under a fresh name.
func storeImage(file *multipart.FileHeader, dir string) (string, error) {
	buf, ext, err := imageutil.ProcessImage(file)
	if err != nil {
		return "", err
	}
	return storage.Active().Save(buf.Bytes(), dir, uuid.NewString()+ext)
}

func propertyNotFoundOr500(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Could not fetch property",
	})
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
