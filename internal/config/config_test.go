package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RESULT_TTL", "1h")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Redis.ResultTTL)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 24*time.Hour, cfg.Reminder.Interval)
	assert.Equal(t, "quiz.events", cfg.AMQP.Exchange)
}

func TestMailEnabled(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.MailEnabled())

	cfg.SMTP.Host = "smtp.example.com"
	assert.True(t, cfg.MailEnabled())
}
