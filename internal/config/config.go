package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// JWT
	JWTSecret       string
	JWTAccessExpiry time.Duration

	// Redis backs the rate limiter when set; otherwise counters stay in memory.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Server
	Port             string
	CORSOrigins      string
	RateLimitMax     int
	AuthRateLimitMax int
	MetricsEnabled   bool

	// Observability
	SentryDSN        string
	AppEnv           string
	LogRetentionDays int
}

// Load reads configuration from the environment, optionally layered over the
// file named by CONFIG_FILE.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		DBDriver:   v.GetString("DB_DRIVER"),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),
		DBPath:     v.GetString("DB_PATH"),

		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTAccessExpiry: parseDuration(v.GetString("JWT_ACCESS_EXPIRY")),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		Port:             v.GetString("PORT"),
		CORSOrigins:      v.GetString("CORS_ORIGINS"),
		RateLimitMax:     v.GetInt("RATE_LIMIT_MAX"),
		AuthRateLimitMax: v.GetInt("AUTH_RATE_LIMIT_MAX"),
		MetricsEnabled:   v.GetBool("METRICS_ENABLED"),

		SentryDSN:        v.GetString("SENTRY_DSN"),
		AppEnv:           v.GetString("APP_ENV"),
		LogRetentionDays: v.GetInt("LOG_RETENTION_DAYS"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "devconnector")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_PATH", "devconnector.db")

	v.SetDefault("JWT_ACCESS_EXPIRY", "1h")

	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("PORT", "5003")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_MAX", 60)
	v.SetDefault("AUTH_RATE_LIMIT_MAX", 10)
	v.SetDefault("METRICS_ENABLED", true)

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_RETENTION_DAYS", 30)
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}
	switch c.DBDriver {
	case "postgres":
		if c.DBPassword == "" {
			return errors.New("DB_PASSWORD environment variable is required")
		}
	case "sqlite":
		if c.DBPath == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.RateLimitMax <= 0 || c.AuthRateLimitMax <= 0 {
		return errors.New("rate limits must be positive")
	}
	if c.LogRetentionDays <= 0 {
		return errors.New("LOG_RETENTION_DAYS must be positive")
	}
	return nil
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Hour
	}
	return d
}
