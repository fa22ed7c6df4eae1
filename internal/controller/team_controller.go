package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nurastays_backend/internal/model"
	"nurastays_backend/pkg/database"
	"nurastays_backend/pkg/utils/storage"
	"nurastays_backend/pkg/utils/validation"
)

type TeamMemberInput struct {
	Name        string                 `json:"name" validate:"required"`
	Role        string                 `json:"role" validate:"required"`
	Bio         string                 `json:"bio"`
	SocialLinks map[string]interface{} `json:"social_links"`
	OrderIndex  int                    `json:"order_index" validate:"min=0"`
}

// ListTeamMembers returns the full roster, unpaginated, in
// (order_index, name) order.
func ListTeamMembers(c *fiber.Ctx) error {
	var members []model.TeamMember
	if err := model.OrderTeamMembers(database.GetDB()).Find(&members).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch team members",
		})
	}

	results := make([]TeamMemberView, 0, len(members))
	for _, m := range members {
		results = append(results, teamMemberView(m, c.BaseURL()))
	}
	return c.JSON(results)
}

func AdminListTeamMembers(c *fiber.Ctx) error {
	var members []model.TeamMember
	if err := model.OrderTeamMembers(database.GetDB()).Find(&members).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch team members",
		})
	}
	return c.JSON(members)
}

func AdminGetTeamMember(c *fiber.Ctx) error {
	var member model.TeamMember
	if err := database.GetDB().First(&member, c.Params("id")).Error; err != nil {
		return teamMemberNotFoundOr500(c, err)
	}
	return c.JSON(member)
}

func AdminCreateTeamMember(c *fiber.Ctx) error {
	input := new(TeamMemberInput)
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

	member := model.TeamMember{
		Name:        input.Name,
		Role:        input.Role,
		Bio:         input.Bio,
		SocialLinks: input.SocialLinks,
		OrderIndex:  input.OrderIndex,
	}

	if err := database.GetDB().Create(&member).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create team member",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(member)
}

func AdminUpdateTeamMember(c *fiber.Ctx) error {
	db := database.GetDB()

	var member model.TeamMember
	if err := db.First(&member, c.Params("id")).Error; err != nil {
		return teamMemberNotFoundOr500(c, err)
	}

	input := new(TeamMemberInput)
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

	member.Name = input.Name
	member.Role = input.Role
	member.Bio = input.Bio
	if input.SocialLinks != nil {
		member.SocialLinks = input.SocialLinks
	}
	member.OrderIndex = input.OrderIndex

	if err := db.Save(&member).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update team member",
		})
	}

	return c.JSON(member)
}

// AdminUploadTeamMemberPhoto replaces a team member's photo; a previous
// stored photo is removed.
func AdminUploadTeamMemberPhoto(c *fiber.Ctx) error {
	db := database.GetDB()

	var member model.TeamMember
	if err := db.First(&member, c.Params("id")).Error; err != nil {
		return teamMemberNotFoundOr500(c, err)
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No photo uploaded",
		})
	}

	if err := validation.ValidateImage(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	ref, err := storeImage(file, "team")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save photo",
		})
	}

	if member.Photo != "" {
		if err := storage.Active().Delete(member.Photo); err != nil {
			log.Printf("Could not delete stored file %s: %v", member.Photo, err)
		}
	}

	member.Photo = ref
	if err := db.Model(&member).Update("photo", ref).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save photo",
		})
	}

	return c.JSON(teamMemberView(member, c.BaseURL()))
}

func AdminDeleteTeamMember(c *fiber.Ctx) error {
	db := database.GetDB()

	var member model.TeamMember
	if err := db.First(&member, c.Params("id")).Error; err != nil {
		return teamMemberNotFoundOr500(c, err)
	}

	if err := db.Delete(&member).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete team member",
		})
	}

	if member.Photo != "" {
		if err := storage.Active().Delete(member.Photo); err != nil {
			log.Printf("Could not delete stored file %s: %v", member.Photo, err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func teamMemberNotFoundOr500(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Team member not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Could not fetch team member",
	})
}
