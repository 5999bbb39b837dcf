// internal/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	quizplatform "github.com/Ar-Dante/Quiz-platform"
	"github.com/Ar-Dante/Quiz-platform/internal/config"
	"github.com/sendgrid/sendgrid-go"
)

var templateFS = quizplatform.EmailFS

// Provider identifies supported email providers
type Provider string

const (
	ProviderSMTP     Provider = "smtp"
	ProviderSendgrid Provider = "sendgrid"

	DefaultTemplatePath = "templates/emails"
)

// EmailData contains all necessary information for sending an email
type EmailData struct {
	To           string
	From         string
	FromName     string
	Subject      string
	TemplateName string
	TemplateData interface{}
}

//go:generate mockgen -source=./service.go -destination=../mocks/mock_email_sender.go -package=mocks Sender

// Sender delivers a rendered template mail.
type Sender interface {
	SendEmail(ctx context.Context, data EmailData) error
}

// Service handles email operations
type Service struct {
	config         *config.Config
	provider       Provider
	sendgridClient *sendgrid.Client
	Templates      map[string]*Template
}

type Template struct {
	HTML      *template.Template
	Plaintext *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(config *config.Config, provider Provider) (*Service, error) {
	s := &Service{
		config:    config,
		provider:  provider,
		Templates: make(map[string]*Template),
	}

	if provider == ProviderSendgrid {
		s.sendgridClient = sendgrid.NewSendClient(config.Sendgrid.APIKey)
	}

	if err := s.loadTemplates(); err != nil {
		return nil, fmt.Errorf("loading email templates: %w", err)
	}

	return s, nil
}

// FromConfig picks SendGrid when an API key is set and SMTP when a host is
// set. It returns nil when mail is not configured.
func FromConfig(cfg *config.Config) (*Service, error) {
	switch {
	case cfg.Sendgrid.APIKey != "":
		return NewEmailService(cfg, ProviderSendgrid)
	case cfg.SMTP.Host != "":
		return NewEmailService(cfg, ProviderSMTP)
	default:
		slog.Info("mail delivery disabled, no provider configured")
		return nil, nil
	}
}

// loadTemplates loads all email templates from the embedded filesystem
func (s *Service) loadTemplates() error {
	groups, err := templateFS.ReadDir(DefaultTemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read email templates directory: %w", err)
	}

	for _, group := range groups {
		if !group.IsDir() {
			continue
		}

		groupPath := DefaultTemplatePath + "/" + group.Name()
		html, err := template.ParseFS(templateFS, groupPath+"/html.tmpl")
		if err != nil {
			return fmt.Errorf("parsing %s html template: %w", group.Name(), err)
		}
		text, err := template.ParseFS(templateFS, groupPath+"/plaintext.tmpl")
		if err != nil {
			return fmt.Errorf("parsing %s plaintext template: %w", group.Name(), err)
		}

		s.Templates[group.Name()] = &Template{HTML: html, Plaintext: text}
	}

	if len(s.Templates) == 0 {
		return fmt.Errorf("no email templates found")
	}
	return nil
}

// SendEmail sends an email using the configured provider
func (s *Service) SendEmail(ctx context.Context, data EmailData) error {
	htmlContent, textContent, err := s.Render(data.TemplateName, data.TemplateData)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", data.TemplateName, err)
	}

	switch s.provider {
	case ProviderSendgrid:
		if data.From == "" {
			data.From = s.config.Sendgrid.From
		}
		return s.sendWithSendgrid(ctx, data, htmlContent, textContent)
	case ProviderSMTP:
		if data.From == "" {
			data.From = s.config.SMTP.From
		}
		if data.From == "" {
			return fmt.Errorf("missing sender email address (From)")
		}
		return s.sendWithSMTP(data, htmlContent, textContent)
	default:
		return fmt.Errorf("unsupported email provider: %s", s.provider)
	}
}

// Render executes both versions of a named template.
func (s *Service) Render(name string, data interface{}) (string, string, error) {
	tmpl, exists := s.Templates[name]
	if !exists {
		return "", "", fmt.Errorf("template %s not found", name)
	}

	var htmlbuf bytes.Buffer
	if err := tmpl.HTML.Execute(&htmlbuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute html template: %w", err)
	}

	var textbuf bytes.Buffer
	if err := tmpl.Plaintext.Execute(&textbuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute plaintext template: %w", err)
	}

	return htmlbuf.String(), textbuf.String(), nil
}
