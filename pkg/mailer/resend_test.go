package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmail() *Email {
	return &Email{
		From:    "sender@example.com",
		To:      []string{"recipient@example.com"},
		Subject: "Hello",
		HTML:    "<p>Hello</p>",
		Text:    "Hello",
	}
}

func TestResendProvider_Send(t *testing.T) {
	var captured map[string]interface{}
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		authHeader = r.Header.Get("Authorization")

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email-123"}`))
	}))
	defer server.Close()

	provider := NewResendProvider(ResendConfig{APIKey: "re_test", APIURL: server.URL})

	result, err := provider.Send(context.Background(), testEmail())
	require.NoError(t, err)

	assert.Equal(t, "email-123", result.MessageID)
	assert.Equal(t, "resend", result.Provider)
	assert.Equal(t, "Bearer re_test", authHeader)
	assert.Equal(t, "sender@example.com", captured["from"])
	assert.Equal(t, "Hello", captured["subject"])
	assert.Equal(t, "Hello", captured["text"])
}

func TestResendProvider_Send_OmitsEmptyText(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"id":"email-124"}`))
	}))
	defer server.Close()

	provider := NewResendProvider(ResendConfig{APIKey: "re_test", APIURL: server.URL})

	email := testEmail()
	email.Text = ""
	_, err := provider.Send(context.Background(), email)
	require.NoError(t, err)

	assert.NotContains(t, captured, "text")
}

func TestResendProvider_Send_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	provider := NewResendProvider(ResendConfig{APIKey: "re_test", APIURL: server.URL})

	_, err := provider.Send(context.Background(), testEmail())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid from address")
}

func TestResendProvider_Send_RequiresAPIKey(t *testing.T) {
	provider := NewResendProvider(ResendConfig{})

	_, err := provider.Send(context.Background(), testEmail())
	assert.ErrorIs(t, err, ErrAPIKeyRequired)
}
