package mailer

import (
	"fmt"
	"net/smtp"

	"lab-recruitment-backend/config"
)

// Mailer sends notification emails via SMTP
type Mailer struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// NewMailer creates a mailer from the SMTP configuration
func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// Send delivers a single HTML email to the given recipient
func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		m.fromEmail,
		to,
		subject,
		htmlBody,
	))

	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	if err := smtp.SendMail(addr, auth, m.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the mailer has valid SMTP configuration
func (m *Mailer) IsConfigured() bool {
	return m.host != "" && m.username != "" && m.password != ""
}
