package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Admin   AdminConfig
	Discord DiscordConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string
	TrustedProxies []string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AdminConfig struct {
	Password      string
	SessionSecret string
	SessionTTL    time.Duration
	MaxFailures   int
	FailureWindow time.Duration
	LockoutPeriod time.Duration
	SweepInterval time.Duration
}

type DiscordConfig struct {
	MilestoneWebhookURL string
	StatsWebhookURL     string
	MilestoneRoleID     string
	StatsRoleID         string
	EnableMentions      bool
	CreatorUserID       string
	CreatorName         string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	adminPassword := getEnv("ADMIN_PASSWORD", "")
	if adminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required")
	}

	// The session signing secret falls back to the admin password so a
	// minimal deployment needs only one secret.
	sessionSecret := getEnv("ADMIN_SESSION_SECRET", adminPassword)

	env := getEnv("ENV", "development")

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			Env:            env,
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			AllowedOrigins: parseAllowedOrigins(env),
			TrustedProxies: parseCSV(getEnv("TRUSTED_PROXIES", "")),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Admin: AdminConfig{
			Password:      adminPassword,
			SessionSecret: sessionSecret,
			SessionTTL:    getEnvAsDuration("ADMIN_SESSION_TTL", 8*time.Hour),
			MaxFailures:   getEnvAsInt("ADMIN_MAX_FAILURES", 8),
			FailureWindow: getEnvAsDuration("ADMIN_FAILURE_WINDOW", 15*time.Minute),
			LockoutPeriod: getEnvAsDuration("ADMIN_LOCKOUT_PERIOD", 30*time.Minute),
			SweepInterval: getEnvAsDuration("ADMIN_LIMITER_SWEEP_INTERVAL", 10*time.Minute),
		},
		Discord: DiscordConfig{
			MilestoneWebhookURL: getEnv("DISCORD_MILESTONE_WEBHOOK_URL", ""),
			StatsWebhookURL:     getEnv("DISCORD_STATS_WEBHOOK_URL", ""),
			MilestoneRoleID:     getEnv("DISCORD_MILESTONE_ROLE_ID", ""),
			StatsRoleID:         getEnv("DISCORD_STATS_ROLE_ID", ""),
			EnableMentions:      getEnvAsBool("DISCORD_ENABLE_MENTIONS", true),
			CreatorUserID:       getEnv("CREATOR_USER_ID", ""),
			CreatorName:         getEnv("CREATOR_NAME", "ItsCoreyE"),
		},
	}

	if err := validateSessionSecret(sessionSecret, env); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateSessionSecret enforces minimum strength for the token signing secret
func validateSessionSecret(secret, env string) error {
	minLength := 8 // Development minimum
	if env == "production" {
		minLength = 16
	}

	if len(secret) < minLength {
		return fmt.Errorf("session secret must be at least %d characters in %s environment (got %d)",
			minLength, env, len(secret))
	}

	// Check against common weak secrets
	weakSecrets := []string{
		"secret", "test", "password", "12345678", "changeme",
		"admin", "root", "default", "example",
	}

	secretLower := strings.ToLower(secret)
	for _, weak := range weakSecrets {
		if secretLower == weak {
			return fmt.Errorf("session secret cannot be a common weak value")
		}
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}

func parseCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseAllowedOrigins(env string) []string {
	if env == "production" {
		originsStr := getEnv("ALLOWED_ORIGINS", "")
		if originsStr == "" {
			return []string{} // Default to no origins in production
		}
		return parseCSV(originsStr)
	}

	// Development: allow localhost variants
	return []string{
		"http://localhost:3000",
		"http://localhost:8080",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:8080",
	}
}
