package main

import (
	"errors"
	"fmt"

	"github.com/ardanlabs/conf"
)

// AppConfig is read from APP_* variables or command line flags. An empty
// SMTP host or port falls back to the notifications defaults.
type AppConfig struct {
	Port            string `conf:"default:8080,env:PORT"`
	SMTPHost        string `conf:"env:SMTP_HOST"`
	SMTPPort        int    `conf:"env:SMTP_PORT"`
	Mailer          string `conf:"default:smtp,env:MAILER"`
	SendGridAPIKey  string `conf:"noprint,env:SENDGRID_API_KEY"`
	NewRelicAppName string `conf:"default:cc-details-portal,env:NEWRELIC_APP_NAME"`
	NewRelicLicense string `conf:"noprint,env:NEWRELIC_LICENSE"`
}

// EmailConfig is read from the EMAIL_* variables.
type EmailConfig struct {
	FromVerified string `conf:"required,env:FROM_VERIFIED"`
	ToAny        string `conf:"required,env:TO_ANY"`
	User         string `conf:"env:USER"`
	Pass         string `conf:"noprint,env:PASS"`
}

type Config struct {
	App   AppConfig
	Email EmailConfig
}

func ReadConfig() (*Config, error) {
	var cfg Config
	help, err := conf.ParseOSArgs("APP", &cfg.App)

	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := conf.Parse(nil, "EMAIL", &cfg.Email); err != nil {
		return nil, fmt.Errorf("parsing email config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.App.Mailer {
	case mailerSMTP:
		if c.Email.User == "" || c.Email.Pass == "" {
			return errors.New("EMAIL_USER and EMAIL_PASS are required for the smtp mailer")
		}
	case mailerSendGrid:
		if c.App.SendGridAPIKey == "" {
			return errors.New("APP_SENDGRID_API_KEY is required for the sendgrid mailer")
		}
	default:
		return fmt.Errorf("unknown mailer %q", c.App.Mailer)
	}
	return nil
}
