package controller

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"nurastays_backend/internal/model"
	"nurastays_backend/pkg/database"
	"nurastays_backend/pkg/utils/jwt"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshInput struct {
	Refresh string `json:"refresh"`
}

// Login authenticates a staff member and issues an access/refresh token
// pair. Non-staff accounts are rejected with the same message as bad
// credentials.
func Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	var user model.User
	if err := database.GetDB().Where("email = ?", input.Email).First(&user).Error; err != nil {
		return invalidCredentials(c)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return invalidCredentials(c)
	}

	if !user.IsStaff {
		return invalidCredentials(c)
	}

	pair, err := jwt.GenerateTokenPair(user.ID, user.Email, user.Name, user.IsStaff)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate tokens",
		})
	}

	return c.JSON(fiber.Map{
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// Logout revokes the presented refresh token. An invalid or absent token
// still yields a success response; logout is idempotent from the client's
// point of view.
func Logout(c *fiber.Ctx) error {
	input := new(RefreshInput)
	if err := c.BodyParser(input); err == nil && input.Refresh != "" {
		if claims, err := jwt.ValidateRefreshToken(input.Refresh); err == nil {
			if err := model.RevokeToken(database.GetDB(), claims.ID, claims.ExpiresAt.Time); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Could not revoke token",
				})
			}
		}
	}
	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// Refresh exchanges a valid, non-revoked refresh token for a fresh token
// pair. The presented token is revoked in the process, so each refresh
// token is good for one rotation.
func Refresh(c *fiber.Ctx) error {
	input := new(RefreshInput)
	if err := c.BodyParser(input); err != nil || input.Refresh == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Refresh token is required",
		})
	}

	claims, err := jwt.ValidateRefreshToken(input.Refresh)
	if err != nil {
		return invalidCredentials(c)
	}

	db := database.GetDB()
	revoked, err := model.IsTokenRevoked(db, claims.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not verify token",
		})
	}
	if revoked {
		return invalidCredentials(c)
	}

	var user model.User
	if err := db.First(&user, claims.UserID).Error; err != nil || !user.IsStaff {
		return invalidCredentials(c)
	}

	if err := model.RevokeToken(db, claims.ID, claims.ExpiresAt.Time); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not rotate token",
		})
	}

	pair, err := jwt.GenerateTokenPair(user.ID, user.Email, user.Name, user.IsStaff)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate tokens",
		})
	}

	return c.JSON(pair)
}

// Verify returns the identity behind a valid access token.
func Verify(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	var user model.User
	if err := database.GetDB().First(&user, claims.UserID).Error; err != nil {
		return invalidCredentials(c)
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

func invalidCredentials(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Invalid credentials",
	})
}
