package utils

import (
	"MediCare/config"
	"context"
	"log"

	"gopkg.in/gomail.v2"
)

// Email is a rendered message with a plain-text and an HTML body.
type Email struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// SMTPMailer delivers mail through the configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Text)
	if email.HTML != "" {
		msg.AddAlternative("text/html", email.HTML)
	}
	return m.dialer.DialAndSend(msg)
}

// LogMailer prints mail instead of sending it. Used when no SMTP relay is
// configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, email Email) error {
	log.Printf("mail to=%s subject=%q body=%q", email.To, email.Subject, email.Text)
	return nil
}

// NewMailer picks the SMTP mailer when a relay is configured.
func NewMailer(cfg config.SMTPConfig) Mailer {
	if cfg.Enabled() {
		return NewSMTPMailer(cfg)
	}
	log.Println("SMTP_HOST not set, mail will be logged instead of sent")
	return LogMailer{}
}
