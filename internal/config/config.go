// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	JWT struct {
		Secret         string        `json:"secret"`
		ExpiryPeriod   time.Duration `json:"expiry_period"`
		ExternalSecret string        `json:"external_secret"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	}
	RateLimit struct {
		PerSecond int `json:"per_second"`
		Burst     int `json:"burst"`
	} `json:"rate_limit"`
	Redis struct {
		Addr      string        `json:"addr"`
		Password  string        `json:"password"`
		DB        int           `json:"db"`
		ResultTTL time.Duration `json:"result_ttl"`
	} `json:"redis"`
	AMQP struct {
		URL      string `json:"url"`
		Exchange string `json:"exchange"`
	} `json:"amqp"`
	Reminder struct {
		Interval  time.Duration `json:"interval"`
		BatchSize int           `json:"batch_size"`
	} `json:"reminder"`
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`
	ExportDir string `json:"export_dir"`
}

func Load() *Config {
	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "quizzes")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.JWT.ExpiryPeriod = getDuration("JWT_EXPIRY", time.Hour)
	cfg.JWT.ExternalSecret = getEnv("EXTERNAL_JWT_SECRET", "")

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8000")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15

	cfg.RateLimit.PerSecond = getInt("RATE_LIMIT_RPS", 20)
	cfg.RateLimit.Burst = getInt("RATE_LIMIT_BURST", 40)

	// Result staging
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)
	cfg.Redis.ResultTTL = getDuration("RESULT_TTL", 48*time.Hour)

	// Events are disabled when no broker URL is given
	cfg.AMQP.URL = getEnv("AMQP_URL", "")
	cfg.AMQP.Exchange = getEnv("AMQP_EXCHANGE", "quiz.events")

	cfg.Reminder.Interval = getDuration("REMINDER_INTERVAL", 24*time.Hour)
	cfg.Reminder.BatchSize = getInt("REMINDER_BATCH_SIZE", 100)

	// Mail configuration
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "")
	cfg.SMTP.Host = getEnv("SMTP_HOST", "")
	cfg.SMTP.Port = getInt("SMTP_PORT", 587)
	cfg.SMTP.Username = getEnv("SMTP_USERNAME", "")
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", "")
	cfg.SMTP.From = getEnv("SMTP_FROM", "")

	cfg.ExportDir = getEnv("EXPORT_DIR", "exports")

	return cfg
}

// MailEnabled reports whether any mail provider is configured.
func (c *Config) MailEnabled() bool {
	return c.Sendgrid.APIKey != "" || c.SMTP.Host != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
