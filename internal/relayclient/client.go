package relayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"cc-details-portal/internal/model"
)

// SubmitPath is where the relay endpoint is mounted.
const SubmitPath = "/ect/cc-det/api"

var ErrUnexpectedStatus = errors.New("unexpected response status")

// Client posts card submissions to the relay endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New returns a client for the endpoint URL, e.g. http://localhost:8080/ect/cc-det/api.
// A nil httpClient means http.DefaultClient.
func New(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Post sends the submission once. Any status outside 2xx is an error
// wrapping ErrUnexpectedStatus.
func (c *Client) Post(ctx context.Context, submission model.CardSubmission) error {
	body, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("encoding submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var relayResp model.RelayResponse
	if err := json.NewDecoder(resp.Body).Decode(&relayResp); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
