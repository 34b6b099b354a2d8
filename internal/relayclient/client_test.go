package relayclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cc-details-portal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submission = model.CardSubmission{
	RefNumber:           "ABC123",
	CardNumber:          "4111111111111111",
	CardName:            "John Smith",
	CardExpirationMonth: "09",
	CardExpirationYear:  "27",
}

func TestPostSendsJSON(t *testing.T) {
	var gotBody map[string]string
	var gotMethod, gotContentType, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()

	err := New(srv.URL+SubmitPath, srv.Client()).Post(context.Background(), submission)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, SubmitPath, gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]string{
		"refNumber":           "ABC123",
		"cardNumber":          "4111111111111111",
		"cardName":            "John Smith",
		"cardExpirationMonth": "09",
		"cardExpirationYear":  "27",
	}, gotBody)
}

func TestPostServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error"}`))
	}))
	defer srv.Close()

	err := New(srv.URL, srv.Client()).Post(context.Background(), submission)

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestPostUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := New(url, nil).Post(context.Background(), submission)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnexpectedStatus)
}

func TestPostMalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	err := New(srv.URL, srv.Client()).Post(context.Background(), submission)

	assert.Error(t, err)
}
