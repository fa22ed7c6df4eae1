package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"nurastays_backend/internal/controller"
	"nurastays_backend/internal/middleware"
	"nurastays_backend/internal/model"
	"nurastays_backend/pkg/config"
	"nurastays_backend/pkg/database"
	"nurastays_backend/pkg/email"
	"nurastays_backend/pkg/seed"
	"nurastays_backend/pkg/utils/jwt"
	"nurastays_backend/pkg/utils/storage"
)

func setupRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	// Public property routes
	api.Get("/properties/", controller.ListProperties)
	api.Get("/properties/featured/", controller.FeaturedProperties)
	api.Get("/properties/:slug/", controller.GetPropertyBySlug)

	// Public review routes
	api.Get("/reviews/", controller.ListReviews)
	api.Get("/reviews/stats/", controller.ReviewStats)
	api.Get("/reviews/property/:id/", controller.PropertyReviews)

	// Public team routes
	api.Get("/team/", controller.ListTeamMembers)

	// Contact form, throttled per anonymous origin
	api.Post("/contact/", contactLimiter(cfg), controller.SubmitContact)

	// Auth routes
	auth := api.Group("/admin")
	auth.Post("/login/", controller.Login)
	auth.Post("/logout/", controller.Logout)
	auth.Post("/token/refresh/", controller.Refresh)
	auth.Get("/verify/", middleware.AuthRequired(), controller.Verify)

	// Admin routes
	admin := api.Group("/admin", middleware.AuthRequired())
	admin.Get("/dashboard/stats/", controller.GetDashboardStats)

	admin.Get("/properties/", controller.AdminListProperties)
	admin.Post("/properties/", controller.AdminCreateProperty)
	admin.Get("/properties/:id/", controller.AdminGetProperty)
	admin.Put("/properties/:id/", controller.AdminUpdateProperty)
	admin.Delete("/properties/:id/", controller.AdminDeleteProperty)
	admin.Post("/properties/:id/images/", controller.AdminUploadPropertyImages)
	admin.Delete("/properties/:id/images/:image_id/", controller.AdminDeletePropertyImage)

	admin.Get("/reviews/", controller.AdminListReviews)
	admin.Post("/reviews/", controller.AdminCreateReview)
	admin.Get("/reviews/:id/", controller.AdminGetReview)
	admin.Put("/reviews/:id/", controller.AdminUpdateReview)
	admin.Delete("/reviews/:id/", controller.AdminDeleteReview)

	admin.Get("/team/", controller.AdminListTeamMembers)
	admin.Post("/team/", controller.AdminCreateTeamMember)
	admin.Get("/team/:id/", controller.AdminGetTeamMember)
	admin.Put("/team/:id/", controller.AdminUpdateTeamMember)
	admin.Post("/team/:id/photo/", controller.AdminUploadTeamMemberPhoto)
	admin.Delete("/team/:id/", controller.AdminDeleteTeamMember)

	admin.Get("/leads/", controller.AdminListLeads)
	admin.Get("/leads/:id/", controller.AdminGetLead)
	admin.Patch("/leads/:id/", controller.AdminMarkLeadRead)
}

// contactLimiter throttles contact form submissions per client IP.
func contactLimiter(cfg *config.Config) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.Contact.RateLimit,
		Expiration: time.Duration(cfg.Contact.RateWindowMinutes) * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Request was throttled. Try again later.",
			})
		},
	})
}

func main() {
	cfg := config.Load()
	jwt.SetSecret(cfg.JWT.Secret)

	if cfg.Email.ResendAPIKey != "" {
		if err := email.InitEmailService(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.Email.To); err != nil {
			log.Printf("Email service disabled: %v", err)
		}
	} else {
		log.Println("Email service disabled: no API key configured")
	}

	switch cfg.Storage.Driver {
	case "s3":
		s3Store, err := storage.NewS3Storage(cfg.Storage.Bucket, cfg.Storage.Region,
			cfg.Storage.AccessKey, cfg.Storage.SecretKey)
		if err != nil {
			log.Fatal("Could not initialize S3 storage:", err)
		}
		storage.Use(s3Store)
	default:
		localStore, err := storage.NewLocalStorage(cfg.Storage.MediaRoot)
		if err != nil {
			log.Fatal("Could not initialize local storage:", err)
		}
		storage.Use(localStore)
	}

	database.InitDB(cfg.Database.URL)
	err := database.MigrateDatabase(
		&model.User{},
		&model.RevokedToken{},
		&model.Property{},
		&model.PropertyImage{},
		&model.Review{},
		&model.TeamMember{},
		&model.ContactSubmission{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	if os.Getenv("SEED_DATA") == "true" {
		seed.SeedSampleData(database.GetDB())
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
	}))

	// Serve locally stored uploads
	if cfg.Storage.Driver != "s3" {
		app.Static("/media", cfg.Storage.MediaRoot)
	}

	setupRoutes(app, cfg)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
