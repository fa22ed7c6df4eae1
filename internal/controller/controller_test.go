package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nurastays_backend/internal/middleware"
	"nurastays_backend/internal/model"
	"nurastays_backend/pkg/database"
	"nurastays_backend/pkg/utils/jwt"
	"nurastays_backend/pkg/utils/storage"
)

const testPassword = "s3cret-pass"

// setupApp wires a fresh in-memory database, local storage under a temp dir
// and a fiber app with the full route table.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:ctl_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.RevokedToken{},
		&model.Property{},
		&model.PropertyImage{},
		&model.Review{},
		&model.TeamMember{},
		&model.ContactSubmission{},
	))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	local, err := storage.NewLocalStorage(t.TempDir() + "/media")
	require.NoError(t, err)
	storage.Use(local)

	app := fiber.New()
	registerRoutes(app)
	return app, db
}

// registerRoutes mirrors the server's route table.
func registerRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/properties/", ListProperties)
	api.Get("/properties/featured/", FeaturedProperties)
	api.Get("/properties/:slug/", GetPropertyBySlug)

	api.Get("/reviews/", ListReviews)
	api.Get("/reviews/stats/", ReviewStats)
	api.Get("/reviews/property/:id/", PropertyReviews)

	api.Get("/team/", ListTeamMembers)

	api.Post("/contact/", limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Hour,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Request was throttled. Try again later.",
			})
		},
	}), SubmitContact)

	auth := api.Group("/admin")
	auth.Post("/login/", Login)
	auth.Post("/logout/", Logout)
	auth.Post("/token/refresh/", Refresh)
	auth.Get("/verify/", middleware.AuthRequired(), Verify)

	admin := api.Group("/admin", middleware.AuthRequired())
	admin.Get("/dashboard/stats/", GetDashboardStats)

	admin.Get("/properties/", AdminListProperties)
	admin.Post("/properties/", AdminCreateProperty)
	admin.Get("/properties/:id/", AdminGetProperty)
	admin.Put("/properties/:id/", AdminUpdateProperty)
	admin.Delete("/properties/:id/", AdminDeleteProperty)
	admin.Post("/properties/:id/images/", AdminUploadPropertyImages)
	admin.Delete("/properties/:id/images/:image_id/", AdminDeletePropertyImage)

	admin.Get("/reviews/", AdminListReviews)
	admin.Post("/reviews/", AdminCreateReview)
	admin.Get("/reviews/:id/", AdminGetReview)
	admin.Put("/reviews/:id/", AdminUpdateReview)
	admin.Delete("/reviews/:id/", AdminDeleteReview)

	admin.Get("/team/", AdminListTeamMembers)
	admin.Post("/team/", AdminCreateTeamMember)
	admin.Get("/team/:id/", AdminGetTeamMember)
	admin.Put("/team/:id/", AdminUpdateTeamMember)
	admin.Post("/team/:id/photo/", AdminUploadTeamMemberPhoto)
	admin.Delete("/team/:id/", AdminDeleteTeamMember)

	admin.Get("/leads/", AdminListLeads)
	admin.Get("/leads/:id/", AdminGetLead)
	admin.Patch("/leads/:id/", AdminMarkLeadRead)
}

// createStaff inserts a staff user and returns it with a valid access token.
func createStaff(t *testing.T, db *gorm.DB, emailAddr string) (model.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := model.User{Email: emailAddr, Password: string(hash), Name: "Admin", IsStaff: true}
	require.NoError(t, db.Create(&user).Error)

	pair, err := jwt.GenerateTokenPair(user.ID, user.Email, user.Name, user.IsStaff)
	require.NoError(t, err)
	return user, pair.Access
}

func request(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createTestProperty(t *testing.T, db *gorm.DB, name string, active bool) model.Property {
	t.Helper()
	p := model.Property{
		Name:          name,
		Location:      "Lisbon",
		Description:   "A place to stay",
		PricePerNight: 100,
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     4,
		PropertyType:  model.PropertyTypeApartment,
		IsActive:      active,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}
