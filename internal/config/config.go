package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Name string
		Env  string
	}

	API struct {
		Host string
		Port string
	}

	Gateway struct {
		APIID    string
		User     string
		Password string
		Secure   bool
		Timeout  time.Duration
	}
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// App
	cfg.App.Name = getEnv("APP_NAME", "smsbridge")
	cfg.App.Env = getEnv("APP_ENV", "development")

	// API
	cfg.API.Host = getEnv("API_HOST", "0.0.0.0")
	cfg.API.Port = getEnv("API_PORT", "8080")

	// Clickatell gateway
	cfg.Gateway.APIID = getEnv("CLICKATELL_API_ID", "")
	cfg.Gateway.User = getEnv("CLICKATELL_USER", "")
	cfg.Gateway.Password = getEnv("CLICKATELL_PASSWORD", "")
	cfg.Gateway.Secure = isTruthy(getEnv("CLICKATELL_SECURE", "false"))
	cfg.Gateway.Timeout = getDuration("CLICKATELL_TIMEOUT", 10*time.Second)

	return cfg
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
