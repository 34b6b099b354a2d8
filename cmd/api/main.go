package main

import (
	"fmt"
	"strconv"

	"cc-details-portal/internal/notifications"
	"github.com/newrelic/go-agent/v3/newrelic"
	log "github.com/sirupsen/logrus"
)

const (
	mailerSMTP     = "smtp"
	mailerSendGrid = "sendgrid"
)

func main() {
	log.Println("starting card details portal")

	cfg, err := ReadConfig()
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}

	port, err := strconv.Atoi(cfg.App.Port)
	if err != nil {
		log.Fatalf("converting port to integer: %v", err)
	}

	mailer, err := newMailer(cfg)
	if err != nil {
		log.Fatalf("creating mailer: %v", err)
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.NewRelicAppName),
		newrelic.ConfigLicense(cfg.App.NewRelicLicense),
		newrelic.ConfigEnabled(cfg.App.NewRelicLicense != ""),
	)
	if err != nil {
		log.Fatalf("creating newrelic application: %v", err)
	}

	sender := notifications.NewSender(mailer, cfg.Email.FromVerified, cfg.Email.ToAny)

	server := NewServer(port, sender, nrApp)

	log.Fatal(server.Run())
}

func newMailer(cfg *Config) (notifications.Mailer, error) {
	switch cfg.App.Mailer {
	case mailerSMTP:
		return notifications.NewSMTPMailer(notifications.SMTPConfig{
			Host:     cfg.App.SMTPHost,
			Port:     cfg.App.SMTPPort,
			Username: cfg.Email.User,
			Password: cfg.Email.Pass,
		}), nil
	case mailerSendGrid:
		return notifications.NewSendGridMailer(cfg.App.SendGridAPIKey), nil
	}
	return nil, fmt.Errorf("unknown mailer %q", cfg.App.Mailer)
}
