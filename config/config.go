package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment        string
	Port               string
	DBUrl              string
	SeedDemoData       bool
	CORSAllowedOrigins []string
	BcryptCost         int
	Email              EmailConfig
}

// EmailConfig holds mailer settings. Provider is "noop" or "ses".
type EmailConfig struct {
	Provider              string
	FromAddress           string
	FromName              string
	AWSRegion             string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string
	SESInsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the environment is the only source.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               getEnv("PORT", "8080"),
		DBUrl:              os.Getenv("DATABASE_URL"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Email: EmailConfig{
			Provider:           getEnv("EMAIL_PROVIDER", "noop"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           getEnv("EMAIL_FROM_NAME", "EventHub"),
			AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	var err error
	if cfg.SeedDemoData, err = getBool("SEED_DEMO_DATA", true); err != nil {
		return nil, err
	}
	if cfg.Email.SESInsecureSkipVerify, err = getBool("SES_INSECURE_SKIP_VERIFY", false); err != nil {
		return nil, err
	}
	if cfg.BcryptCost, err = getInt("BCRYPT_COST", 10); err != nil {
		return nil, err
	}
	if cfg.Email.Provider != "noop" && cfg.Email.Provider != "ses" {
		return nil, fmt.Errorf("EMAIL_PROVIDER must be \"noop\" or \"ses\", got %q", cfg.Email.Provider)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return v, nil
}

func getInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
