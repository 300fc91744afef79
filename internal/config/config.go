// Package config holds the process-wide configuration.
//
// All configuration is read from the environment once at startup and
// passed explicitly to the components that need it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	DBPath string

	// CORS
	CORSAllowOrigins []string

	// Bearer tokens
	TokenSecret string
	TokenTTL    time.Duration

	// Text generation
	GeminiAPIKey     string
	GenerationModels []string

	// Chat ingestion
	//
	// Messages arriving on the webhook carry the sender identity of the
	// messaging channel, not a bearer token. They are attributed to the
	// user with this email address.
	WebhookUserEmail string
}

// DefaultTokenTTL is the token lifetime used when TOKEN_TTL is not set.
const DefaultTokenTTL = 3000 * time.Minute

// defaultGenerationModels is the model fallback chain used when
// GENERATION_MODELS is not set. Models are attempted in order.
var defaultGenerationModels = []string{
	"gemini-2.5-flash-lite",
	"gemini-2.5-flash",
}

// Load reads the configuration from the environment.
func Load() *Config {
	cfg := &Config{
		Port:   getEnv("PORT", "8080"),
		DBPath: getEnv("DB_PATH", "data/centavo.db"),

		CORSAllowOrigins: strings.Fields(getEnv("CORS_ALLOW_ORIGINS", "")),

		TokenSecret: getEnv("TOKEN_SECRET", ""),
		TokenTTL:    getEnvDuration("TOKEN_TTL", DefaultTokenTTL),

		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GenerationModels: getEnvList("GENERATION_MODELS", defaultGenerationModels),

		WebhookUserEmail: getEnv("WEBHOOK_USER_EMAIL", ""),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.TokenSecret == "" {
		errs = append(errs, "TOKEN_SECRET must be set")
	}

	if c.TokenTTL <= 0 {
		errs = append(errs, "TOKEN_TTL must be positive")
	}

	if len(c.GenerationModels) == 0 {
		errs = append(errs, "GENERATION_MODELS must contain at least one model")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	var list []string
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			list = append(list, entry)
		}
	}

	if len(list) == 0 {
		return fallback
	}
	return list
}
