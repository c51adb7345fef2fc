package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string
	LogLevel    string

	AuthCookieSecure bool
	AdminEmails      []string
	SessionTTLHours  int

	DefaultsPath string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	return Config{
		AppName:           getenv("APP_SERVICE", "aurum"),
		AppVersion:        getenv("APP_VERSION", "0.1.0"),
		Environment:       environment,
		HTTPAddr:          getenv("HTTP_ADDR", ":8080"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		AuthCookieSecure:  authCookieSecure,
		AdminEmails:       splitList(getenv("ADMIN_EMAILS", "")),
		SessionTTLHours:   getenvInt("SESSION_TTL_HOURS", 168),
		DefaultsPath:      getenv("DEFAULTS_PATH", ""),
		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "aurum"),
		DBUser:            getenv("DATABASE_USER", "postgres"),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 2),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 10),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME_MINUTES", 60),
		RedisAddr:         strings.TrimSpace(getenv("REDIS_ADDR", "")),
		RedisPassword:     getenv("REDIS_PASSWORD", ""),
		RedisDB:           getenvInt("REDIS_DB", 0),
	}
}

// IsAdminEmail reports whether the email belongs to a back-office administrator.
func (c Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, admin := range c.AdminEmails {
		if strings.ToLower(strings.TrimSpace(admin)) == email {
			return true
		}
	}
	return false
}

var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewDefaultsHolder),
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
