package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	StaticDir   string
	Locale      string
	// Email (Resend)
	ResendAPIKey     string
	EmailFrom        string
	EmailFromName    string
	ContactRecipient string
	EmailTestMode    bool // When true, emails are logged to console instead of sent
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Other
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		AppURL:             getEnv("APP_URL", "http://localhost:8080"),
		StaticDir:          getEnv("STATIC_DIR", "static"),
		Locale:             getEnv("LOCALE", "fr"),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "noreply@latelierweb.fr"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "L'Atelier Web"),
		ContactRecipient:   getEnv("CONTACT_RECIPIENT", "contact@latelierweb.fr"),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		AllowedOrigins:     strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}

	Validate(cfg)

	return cfg
}

// Validate checks that secrets required in production are present.
// In development the pipeline degrades gracefully (emails are logged in test
// mode), so missing keys only produce warnings there.
func Validate(cfg *Config) {
	if cfg.Environment == "production" {
		if cfg.TurnstileSecretKey == "" {
			log.Fatal("[CRITICAL] TURNSTILE_SECRET_KEY must be set in production")
		}
		if !cfg.EmailTestMode && cfg.ResendAPIKey == "" {
			log.Fatal("[CRITICAL] RESEND_API_KEY must be set in production when EMAIL_TEST_MODE is off")
		}
		return
	}

	if cfg.TurnstileSecretKey == "" {
		log.Printf("[WARNING] TURNSTILE_SECRET_KEY not set, captcha verification will reject all submissions")
	}
	if !cfg.EmailTestMode && cfg.ResendAPIKey == "" {
		log.Printf("[WARNING] RESEND_API_KEY not set, email dispatch will fail")
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
