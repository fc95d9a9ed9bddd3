package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DevJWTSecret is only used when JWT_SECRET is unset. main logs a warning.
	DevJWTSecret = "quality_store_secret_key_2024"

	defaultPort        = "8001"
	defaultOwnerPhones = "+85254061680,+85211223344"
	defaultRateLimit   = 20
)

type Config struct {
	Port     string
	LogLevel string

	JWTSecret      string
	OwnerKeySecret string
	OwnerPhones    []string

	DatabaseURL string
	RedisURL    string

	CORSOrigins []string

	// RateLimitPerMinute bounds credential requests per client IP; 0 disables it.
	RateLimitPerMinute int
	// TrustProxy keys rate limits by X-Forwarded-For.
	TrustProxy bool

	MetricsEnabled bool
	MetricsToken   string
}

// UsingDevSecret reports whether tokens are signed with the built-in secret.
func (c Config) UsingDevSecret() bool { return c.JWTSecret == DevJWTSecret }

// Load reads configuration from the environment. A .env file in the working
// directory (or the files named) is applied first without overriding variables
// that are already set.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Config{
		Port:     EnvDefault("PORT", defaultPort),
		LogLevel: EnvDefault("LOG_LEVEL", "info"),

		JWTSecret:   EnvDefault("JWT_SECRET", DevJWTSecret),
		OwnerPhones: CSV(EnvDefault("OWNER_PHONES", defaultOwnerPhones)),

		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:    strings.TrimSpace(os.Getenv("REDIS_URL")),

		CORSOrigins: CSV(EnvDefault("CORS_ORIGINS", "*")),

		RateLimitPerMinute: EnvIntDefault("RATE_LIMIT_PER_MINUTE", defaultRateLimit),
		TrustProxy:         EnvBoolDefault("TRUST_PROXY", false),

		MetricsEnabled: EnvBoolDefault("METRICS_ENABLED", true),
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	}
	cfg.OwnerKeySecret = EnvDefault("OWNER_KEY_SECRET", cfg.JWTSecret)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric: %q", c.Port)
	}
	if len(c.OwnerPhones) == 0 {
		return errors.New("OWNER_PHONES must list at least one phone number")
	}
	if c.RateLimitPerMinute < 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.OwnerKeySecret == "" {
		return errors.New("OWNER_KEY_SECRET must not be empty")
	}
	return nil
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func EnvIntDefault(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
