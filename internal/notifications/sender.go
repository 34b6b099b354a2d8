package notifications

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"cc-details-portal/internal/model"
	log "github.com/sirupsen/logrus"
)

//go:embed templates/card_details.html
var templatesFS embed.FS

var cardDetailsTemplate = template.Must(template.ParseFS(templatesFS, "templates/card_details.html"))

// Sender relays card details to the back-office mailbox.
type Sender struct {
	mailer Mailer
	from   string
	to     string
}

func NewSender(mailer Mailer, from, to string) *Sender {
	return &Sender{
		mailer: mailer,
		from:   from,
		to:     to,
	}
}

// Subject returns the subject line for a booking reference.
func Subject(refNumber string) string {
	return "CC Web - Ref: " + refNumber
}

// ComposeCardDetails renders the submission into the back-office email.
// Field values are HTML-escaped.
func ComposeCardDetails(submission model.CardSubmission) (Message, error) {
	var html bytes.Buffer
	err := cardDetailsTemplate.Execute(&html, submission)
	if err != nil {
		return Message{}, fmt.Errorf("rendering card details email: %w", err)
	}

	text := fmt.Sprintf("Card Details\n\nBooking Ref: %s\nCard Name: %s\nCard Number: %s\nCard Expiration (MM/YY): %s\n",
		submission.RefNumber, submission.CardName, submission.CardNumber, submission.Expiration())

	return Message{
		Subject: Subject(submission.RefNumber),
		HTML:    html.String(),
		Text:    text,
	}, nil
}

// SendCardDetails composes and sends one email. It makes a single attempt.
func (s *Sender) SendCardDetails(ctx context.Context, submission model.CardSubmission) error {
	message, err := ComposeCardDetails(submission)
	if err != nil {
		return err
	}
	message.From = s.from
	message.To = s.to

	messageID, err := s.mailer.Send(ctx, message)
	if err != nil {
		return err
	}

	log.WithField("ref", submission.RefNumber).Infof("card details email sent: %v", messageID)

	return nil
}
