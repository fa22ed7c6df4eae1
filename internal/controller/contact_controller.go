package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nurastays_backend/internal/model"
	"nurastays_backend/pkg/database"
	"nurastays_backend/pkg/email"
	"nurastays_backend/pkg/pagination"
	"nurastays_backend/pkg/utils/validation"
)

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// validateContactInput rejects blank (including whitespace-only) required
// fields with per-field messages.
func validateContactInput(input *ContactInput) map[string]string {
	fieldErrors := make(map[string]string)
	if validation.Blank(input.Name) {
		fieldErrors["name"] = "Name is required."
	}
	if validation.Blank(input.Email) {
		fieldErrors["email"] = "Email is required."
	}
	if validation.Blank(input.Message) {
		fieldErrors["message"] = "Message is required."
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// SubmitContact accepts a contact form lead. The submission is durable once
// persisted; the notification email afterwards is best effort and a failure
// there is only logged.
func SubmitContact(c *fiber.Ctx) error {
	input := new(ContactInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if fieldErrors := validateContactInput(input); fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fieldErrors,
		})
	}

	submission := model.ContactSubmission{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
	}

	if err := database.GetDB().Create(&submission).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save submission",
		})
	}

	if email.GlobalEmailService != nil {
		err := email.GlobalEmailService.SendContactNotification(email.ContactNotificationData{
			Name:    submission.Name,
			Email:   submission.Email,
			Phone:   submission.Phone,
			Subject: submission.Subject,
			Message: submission.Message,
		})
		if err != nil {
			log.Printf("Could not send contact notification email: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Thank you for your message! We will get back to you soon.",
	})
}

// AdminListLeads lists contact submissions with an OR'd substring search
// over name, email, message and subject, and an exact read-state filter.
func AdminListLeads(c *fiber.Ctx) error {
	db := database.GetDB()
	base := db.Model(&model.ContactSubmission{})

	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		base = base.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(message) LIKE ? OR LOWER(subject) LIKE ?",
			term, term, term, term,
		)
	}

	if isRead := c.Query("is_read"); isRead != "" {
		base = base.Where("is_read = ?", isRead == "true")
	}

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch leads",
		})
	}

	page := pagination.Normalize(c.QueryInt("page", 1))
	var leads []model.ContactSubmission
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset(pagination.Offset(page)).
		Limit(pagination.PageSize).
		Find(&leads).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch leads",
		})
	}

	return c.JSON(pagination.New(count, page, leads))
}

func AdminGetLead(c *fiber.Ctx) error {
	var lead model.ContactSubmission
	if err := database.GetDB().First(&lead, c.Params("id")).Error; err != nil {
		return leadNotFoundOr500(c, err)
	}
	return c.JSON(lead)
}

// AdminMarkLeadRead toggles the read flag and nothing else; every other
// field is frozen at submission time.
func AdminMarkLeadRead(c *fiber.Ctx) error {
	db := database.GetDB()

	var lead model.ContactSubmission
	if err := db.First(&lead, c.Params("id")).Error; err != nil {
		return leadNotFoundOr500(c, err)
	}

	input := struct {
		IsRead *bool `json:"is_read"`
	}{}
	if err := c.BodyParser(&input); err != nil || input.IsRead == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"is_read": "This field is required."},
		})
	}

	if err := db.Model(&lead).Update("is_read", *input.IsRead).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update lead",
		})
	}

	lead.IsRead = *input.IsRead
	return c.JSON(lead)
}

func leadNotFoundOr500(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Lead not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Could not fetch lead",
	})
}
