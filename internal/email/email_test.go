package email

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/Ar-Dante/Quiz-platform/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderQuizReminder(t *testing.T) {
	cfg := &config.Config{}
	cfg.SMTP.Host = "localhost"

	s, err := FromConfig(cfg)
	require.NoError(t, err)
	require.NotNil(t, s)

	html, text, err := s.Render("quiz_reminder", map[string]any{
		"FirstName":   "Ada",
		"QuizName":    "Go basics",
		"CompanyName": "Acme",
		"Frequency":   7,
		"DaysSince":   8,
	})
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>Go basics</strong>")
	assert.Contains(t, text, "It has been 8 days")

	_, _, err = s.Render("missing", nil)
	assert.Error(t, err)
}

func TestFromConfigDisabled(t *testing.T) {
	s, err := FromConfig(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestBuildMIME(t *testing.T) {
	msg := string(buildMIME(EmailData{
		To:       "user@example.com",
		From:     "noreply@example.com",
		FromName: "Quiz Platform",
		Subject:  "Hello",
	}, "<p>hi</p>", "hi", "B"))

	assert.True(t, strings.HasPrefix(msg, "From: Quiz Platform <noreply@example.com>\r\n"))
	assert.Contains(t, msg, "Content-Type: multipart/alternative; boundary=B")
	assert.Contains(t, msg, base64.StdEncoding.EncodeToString([]byte("<p>hi</p>")))
	assert.True(t, strings.HasSuffix(msg, "--B--\r\n"))
}
