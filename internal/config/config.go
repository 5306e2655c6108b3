package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the components need at construction time.
// A missing credential disables the component that needs it; it never
// turns into a call-time failure.
type Config struct {
	Port string

	LeadsFile   string
	SendLogFile string

	PlacesAPIKey string

	GeminiAPIKey string
	GeminiModel  string

	SendGridAPIKey string
	FromAddress    string
	FromName       string

	// SMTP fallback when SendGrid is not configured.
	MailHost string
	MailPort int
	MailUser string
	MailPass string

	ScrapeDelay   time.Duration
	ScrapeTimeout time.Duration
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		LeadsFile:      getEnv("LEADS_FILE", "leads_database.json"),
		SendLogFile:    getEnv("SEND_LOG_FILE", "email_log.json"),
		PlacesAPIKey:   os.Getenv("PLACES_API_KEY"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-1.5-pro-latest"),
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		FromAddress:    getEnv("FROM_ADDRESS", "noreply@leadgenius.dev"),
		FromName:       getEnv("FROM_NAME", "LeadGenius"),
		MailHost:       os.Getenv("MAIL_HOST"),
		MailPort:       getEnvInt("MAIL_PORT", 587),
		MailUser:       os.Getenv("MAIL_USER"),
		MailPass:       os.Getenv("MAIL_PASS"),
		ScrapeDelay:    getEnvDuration("SCRAPE_DELAY", time.Second),
		ScrapeTimeout:  getEnvDuration("SCRAPE_TIMEOUT", 10*time.Second),
	}
}

func (c *Config) GeneratorEnabled() bool {
	return c.PlacesAPIKey != ""
}

func (c *Config) ComposerEnabled() bool {
	return c.GeminiAPIKey != ""
}

func (c *Config) DispatchEnabled() bool {
	return c.SendGridAPIKey != "" || c.MailHost != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
