package notifications

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

// SendGridMailer sends mail through the SendGrid Web API.
type SendGridMailer struct {
	client sendgridClient
}

func NewSendGridMailer(apiKey string) *SendGridMailer {
	return &SendGridMailer{client: sendgrid.NewSendClient(apiKey)}
}

func (s *SendGridMailer) Send(ctx context.Context, msg Message) (string, error) {
	from := sgmail.NewEmail("", msg.From)
	to := sgmail.NewEmail("", msg.To)
	message := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return "", fmt.Errorf("sending mail via sendgrid: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return "", fmt.Errorf("sendgrid responded with status %d: %s", response.StatusCode, response.Body)
	}

	var messageID string
	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		messageID = ids[0]
	}

	return messageID, nil
}
