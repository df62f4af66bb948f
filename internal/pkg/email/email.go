package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/SonyFebri/hris-backend/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService delivers transactional mail. Only password reset is needed by
// the HR flows; everything else notifies in-app.
type EmailService interface {
	SendPasswordReset(to, resetLink, expiresAt string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type passwordResetEmailData struct {
	ResetLink string
	ExpiresAt string
}

func (s *emailServiceImpl) SendPasswordReset(to, resetLink, expiresAt string) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "password_reset.html", passwordResetEmailData{
		ResetLink: resetLink,
		ExpiresAt: expiresAt,
	}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.send(to, "Reset your password", body.String())
}

func (s *emailServiceImpl) send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := []byte("From: " + s.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody)

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err == nil {
			return nil
		}
		slog.Warn("email send failed", "to", to, "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, err)
}
