package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultLanguages is the language list offered in the CV view when
// TRANSLATING_LANGUAGES is not configured.
var DefaultLanguages = []string{
	"Cornish",
	"Manx",
	"Breton",
	"Inuktitut",
	"Kalaallisut",
	"Romani",
	"Occitan",
	"Ladino",
	"Northern Sami",
	"Upper Sorbian",
	"Kashubian",
	"Zazaki",
	"Chuvash",
	"Livonian",
	"Tsakonian",
	"Saramaccan",
	"Bislama",
}

type Config struct {
	Port  string
	DBUrl string
	// Auth
	JWTSecret   string
	JWTTTLHours int
	// SMTP Configuration
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	// RabbitMQ task broker
	AMQPUrl string
	// Translation (Gemini)
	GeminiAPIKey         string
	TranslationModel     string
	TranslationTimeout   time.Duration
	TranslatingLanguages []string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBUrl:         getEnv("DATABASE_URL", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTTTLHours:   getEnvInt("JWT_TTL_HOURS", 24),
		SMTPHost:      getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@cvproject.local"),
		AMQPUrl:       getEnv("AMQP_URL", ""),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		// Flash tier is plenty for short structured translations
		TranslationModel:   getEnv("TRANSLATION_MODEL", "gemini-2.5-flash"),
		TranslationTimeout: time.Duration(getEnvInt("TRANSLATION_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	if langs := getEnv("TRANSLATING_LANGUAGES", ""); langs != "" {
		for _, l := range strings.Split(langs, ",") {
			if l = strings.TrimSpace(l); l != "" {
				cfg.TranslatingLanguages = append(cfg.TranslatingLanguages, l)
			}
		}
	} else {
		cfg.TranslatingLanguages = DefaultLanguages
	}

	// Basic validation to avoid odd panics later
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Authenticated endpoints will reject all tokens.")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not configured. Translation will be unavailable.")
	}
	if cfg.AMQPUrl == "" {
		log.Println("WARNING: AMQP_URL not configured. Email delivery tasks will be dropped.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
