package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Email    EmailConfig
	CORS     CORSConfig
	Contact  ContactConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

type StorageConfig struct {
	Driver    string // "local" or "s3"
	MediaRoot string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

type EmailConfig struct {
	ResendAPIKey string
	From         string
	To           string // address that receives contact form notifications
}

type CORSConfig struct {
	AllowOrigins string
}

type ContactConfig struct {
	// Contact form throttle: RateLimit submissions per RateWindowMinutes
	// per anonymous origin.
	RateLimit         int
	RateWindowMinutes int
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", "nurastays.db"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Storage: StorageConfig{
			Driver:    getEnv("STORAGE_DRIVER", "local"),
			MediaRoot: getEnv("MEDIA_ROOT", "./media"),
			Bucket:    getEnv("AWS_BUCKET_NAME", "nurastays-media"),
			Region:    getEnv("AWS_REGION", "eu-central-1"),
			AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "Nura Stays <noreply@nurastays.com>"),
			To:           getEnv("CONTACT_EMAIL_TO", ""),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		Contact: ContactConfig{
			RateLimit:         getEnvInt("CONTACT_RATE_LIMIT", 5),
			RateWindowMinutes: getEnvInt("CONTACT_RATE_WINDOW_MINUTES", 60),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
