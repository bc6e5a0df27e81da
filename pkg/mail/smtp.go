// Package mail provides SMTP sending and structural HTML lint utilities.
package mail

import (
	"fmt"
	"net/smtp"
	"os"
)

// Config holds configuration for sending emails via SMTP.
type Config struct {
	SMTPHost  string
	SMTPPort  string
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Send sends an HTML email with a List-Unsubscribe header, which mailbox
// providers expect from bulk senders.
func Send(config Config, toEmail, subject, htmlBody string) error {
	message := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"List-Unsubscribe: <mailto:%s?subject=unsubscribe>\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		config.FromName, config.FromEmail,
		toEmail,
		subject,
		config.FromEmail,
		htmlBody,
	)

	auth := smtp.PlainAuth("", config.Username, config.Password, config.SMTPHost)

	return smtp.SendMail(
		config.SMTPHost+":"+config.SMTPPort,
		auth,
		config.FromEmail,
		[]string{toEmail},
		[]byte(message),
	)
}

// ConfigFromEnv returns a Config populated from SMTP_* environment
// variables, for the CLI send command.
func ConfigFromEnv() Config {
	return Config{
		SMTPHost:  envOr("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:  envOr("SMTP_PORT", "587"),
		Username:  os.Getenv("SMTP_USERNAME"),
		Password:  os.Getenv("SMTP_PASSWORD"),
		FromEmail: envOr("SMTP_FROM_EMAIL", os.Getenv("SMTP_USERNAME")),
		FromName:  envOr("SMTP_FROM_NAME", "plat-campaign"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
