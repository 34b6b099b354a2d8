package notifications

import (
	"context"
	"errors"
	"testing"

	"cc-details-portal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg Message) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.sent = append(m.sent, msg)
	return "<id@example.com>", nil
}

var submission = model.CardSubmission{
	RefNumber:           "ABC123",
	CardNumber:          "4111111111111111",
	CardName:            "John Smith",
	CardExpirationMonth: "09",
	CardExpirationYear:  "27",
}

func TestComposeCardDetails(t *testing.T) {
	msg, err := ComposeCardDetails(submission)
	require.NoError(t, err)

	assert.Equal(t, "CC Web - Ref: ABC123", msg.Subject)
	assert.Contains(t, msg.HTML, "<p><b>Booking Ref: ABC123</b></p>")
	assert.Contains(t, msg.HTML, "<td>4111111111111111</td>")
	assert.Contains(t, msg.HTML, "<td>John Smith</td>")
	assert.Contains(t, msg.HTML, "<td>09/27</td>")
	assert.Contains(t, msg.Text, "Card Expiration (MM/YY): 09/27")
}

func TestComposeCardDetailsEscapesValues(t *testing.T) {
	s := submission
	s.CardName = `<script>alert("x")</script>`
	s.RefNumber = "A&B"

	msg, err := ComposeCardDetails(s)
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
	assert.Contains(t, msg.HTML, "Booking Ref: A&amp;B")
	assert.Equal(t, "CC Web - Ref: A&B", msg.Subject)
}

func TestComposeCardDetailsEmptyFields(t *testing.T) {
	msg, err := ComposeCardDetails(model.CardSubmission{})
	require.NoError(t, err)

	assert.Equal(t, "CC Web - Ref: ", msg.Subject)
	assert.Contains(t, msg.HTML, "<td>/</td>")
}

func TestSendCardDetails(t *testing.T) {
	mailer := &fakeMailer{}
	sender := NewSender(mailer, "from@example.com", "office@example.com")

	err := sender.SendCardDetails(context.Background(), submission)
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "from@example.com", mailer.sent[0].From)
	assert.Equal(t, "office@example.com", mailer.sent[0].To)
	assert.Equal(t, "CC Web - Ref: ABC123", mailer.sent[0].Subject)
}

func TestSendCardDetailsMailerError(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("relay unavailable")}
	sender := NewSender(mailer, "from@example.com", "office@example.com")

	err := sender.SendCardDetails(context.Background(), submission)

	assert.ErrorIs(t, err, mailer.err)
}
