package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Settings holds all process configuration, loaded once at startup.
type Settings struct {
	Port string

	DatabaseURL  string
	DatabaseName string

	JWTSecret          string
	JWTExpirationHours int

	GeminiAPIKey string
	GeminiModel  string

	RazorpayKeyID     string
	RazorpayKeySecret string

	AWSRegion     string
	S3Bucket      string
	CloudFrontURL string
	UploadDir     string
}

// Load reads .env (if present) and the environment. DATABASE_URL and
// JWT_SECRET are required; serving without them is refused.
func Load() (*Settings, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, relying on environment variables")
	}

	s := &Settings{
		Port:               getEnv("PORT", "8000"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DatabaseName:       getEnv("DATABASE_NAME", "fitness_app"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 24),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		RazorpayKeyID:      os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:  os.Getenv("RAZORPAY_KEY_SECRET"),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		S3Bucket:           os.Getenv("S3_BUCKET"),
		CloudFrontURL:      os.Getenv("CLOUDFRONT_URL"),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
	}

	if s.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if s.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return s, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
