package notifications

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/mail.v2"
)

const (
	DefaultSMTPHost = "email-smtp.us-east-1.amazonaws.com"
	DefaultSMTPPort = 587
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// SMTPMailer sends mail through an SMTP relay, upgrading the connection
// with STARTTLS before authenticating.
type SMTPMailer struct {
	dialer dialer
}

// NewSMTPMailer builds the transport. A zero Host or Port selects
// DefaultSMTPHost or DefaultSMTPPort.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Host == "" {
		cfg.Host = DefaultSMTPHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultSMTPPort
	}

	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = false
	d.StartTLSPolicy = mail.MandatoryStartTLS

	return &SMTPMailer{dialer: d}
}

func (s *SMTPMailer) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := newMessageID(msg.From)

	m := mail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("sending mail via smtp: %w", err)
	}

	return messageID, nil
}

func newMessageID(from string) string {
	domain := "localhost"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = strings.TrimSuffix(from[at+1:], ">")
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
