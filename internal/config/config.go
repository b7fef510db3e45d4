package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds gateway client configuration
type Config struct {
	LogLevel string

	// smstrade gateway
	APIKey    string
	Endpoint  string
	Route     string
	From      string
	Charset   string
	Debug     bool
	Concat    bool
	Timeout   time.Duration
	UserAgent string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		APIKey:    getEnv("SMSTRADE_KEY", ""),
		Endpoint:  getEnv("SMSTRADE_ENDPOINT", ""),
		Route:     strings.ToLower(strings.TrimSpace(getEnv("SMSTRADE_ROUTE", ""))),
		From:      getEnv("SMSTRADE_FROM", ""),
		Charset:   getEnv("SMSTRADE_CHARSET", ""),
		Debug:     getEnvAsBool("SMSTRADE_DEBUG", false),
		Concat:    getEnvAsBool("SMSTRADE_CONCAT", false),
		Timeout:   getEnvAsDuration("SMSTRADE_TIMEOUT", 10*time.Second),
		UserAgent: getEnv("SMSTRADE_USER_AGENT", ""),
	}
}

// LoadFile overlays a dotenv file on top of the process environment and then
// calls Load. Variables already set in the environment win over the file.
func LoadFile(path string) (*Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	for key, value := range values {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return nil, fmt.Errorf("config: set %s: %w", key, err)
		}
	}
	return Load(), nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
