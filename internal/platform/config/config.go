package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Razorpay credentials. All three are mandatory: the server refuses to
	// start without them rather than silently operating against dummy keys.
	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string

	// Receipt artifact storage
	ReceiptStore    string // "local" or "s3"
	ReceiptDir      string
	ReceiptBaseURL  string
	ReceiptS3Bucket string
	ReceiptS3Region string

	PosthogAPIKey   string
	FrontendBaseURL string

	// Public base URL of this API, embedded in receipt verification links.
	APIBaseURL string
}

const devJWTSecret = "dev-only-insecure-jwt-secret-change-me"

// LoadConfig loads configuration from environment variables and a .env file
// if present. Missing secrets that payment processing depends on are a hard
// error, never a silent fallback.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "transparify-backend")
	viper.SetDefault("RAZORPAY_KEY_ID", "")
	viper.SetDefault("RAZORPAY_KEY_SECRET", "")
	viper.SetDefault("RAZORPAY_WEBHOOK_SECRET", "")
	viper.SetDefault("RECEIPT_STORE", "local")
	viper.SetDefault("RECEIPT_DIR", "receipts")
	viper.SetDefault("RECEIPT_BASE_URL", "http://localhost:8080/receipts")
	viper.SetDefault("RECEIPT_S3_BUCKET", "")
	viper.SetDefault("RECEIPT_S3_REGION", "ap-south-1")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:           viper.GetString("PGSQL_URL"),
		Port:                  viper.GetString("PORT"),
		IsProduction:          viper.GetBool("IS_PRODUCTION"),
		JWTSecret:             viper.GetString("JWT_SECRET"),
		JWTIssuer:             viper.GetString("JWT_ISSUER"),
		RazorpayKeyID:         viper.GetString("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:     viper.GetString("RAZORPAY_KEY_SECRET"),
		RazorpayWebhookSecret: viper.GetString("RAZORPAY_WEBHOOK_SECRET"),
		ReceiptStore:          viper.GetString("RECEIPT_STORE"),
		ReceiptDir:            viper.GetString("RECEIPT_DIR"),
		ReceiptBaseURL:        viper.GetString("RECEIPT_BASE_URL"),
		ReceiptS3Bucket:       viper.GetString("RECEIPT_S3_BUCKET"),
		ReceiptS3Region:       viper.GetString("RECEIPT_S3_REGION"),
		PosthogAPIKey:         viper.GetString("POSTHOG_API_KEY"),
		FrontendBaseURL:       viper.GetString("FRONTEND_BASE_URL"),
		APIBaseURL:            viper.GetString("API_BASE_URL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable is required")
	}

	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		return nil, fmt.Errorf("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET environment variables are required")
	}
	if cfg.RazorpayWebhookSecret == "" {
		return nil, fmt.Errorf("RAZORPAY_WEBHOOK_SECRET environment variable is required")
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET environment variable is required in production")
		}
		log.Println("Warning: JWT_SECRET not set. Using insecure development default.")
		cfg.JWTSecret = devJWTSecret
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	switch cfg.ReceiptStore {
	case "local":
		// nothing else required
	case "s3":
		if cfg.ReceiptS3Bucket == "" {
			return nil, fmt.Errorf("RECEIPT_S3_BUCKET is required when RECEIPT_STORE=s3")
		}
	default:
		return nil, fmt.Errorf("RECEIPT_STORE must be 'local' or 's3', got %q", cfg.ReceiptStore)
	}

	return cfg, nil
}
