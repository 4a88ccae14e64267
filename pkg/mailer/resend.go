package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	providerResend   = "resend"
	resendAPIURL     = "https://api.resend.com"
	resendPathEmails = "/emails"

	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	authBearerPrefix    = "Bearer "
	mimeApplicationJSON = "application/json"

	resendSendTimeout = 10 * time.Second

	errFailedMarshalPayloadFmt = "failed to marshal email payload: %w"
	errFailedCreateRequestFmt  = "failed to create request: %w"
	errRequestFailedFmt        = "request to Resend failed: %w"
	errResendAPIStatusFmt      = "Resend API returned status %d: %s"
	errFailedParseResponseFmt  = "failed to parse Resend response: %w"
)

var ErrAPIKeyRequired = errors.New("API key is required")

// ResendProvider sends mail through the Resend HTTP API.
type ResendProvider struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

type ResendConfig struct {
	APIKey string
	// APIURL overrides the production endpoint, used by tests.
	APIURL string
}

func NewResendProvider(cfg ResendConfig) *ResendProvider {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = resendAPIURL
	}

	return &ResendProvider{
		apiKey:     cfg.APIKey,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: resendSendTimeout},
	}
}

func (p *ResendProvider) Name() string {
	return providerResend
}

func (p *ResendProvider) Send(ctx context.Context, email *Email) (*SendResult, error) {
	if p.apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	payload := map[string]interface{}{
		"from":    email.From,
		"to":      email.To,
		"subject": email.Subject,
		"html":    email.HTML,
	}
	if email.Text != "" {
		payload["text"] = email.Text
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf(errFailedMarshalPayloadFmt, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL+resendPathEmails, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf(errFailedCreateRequestFmt, err)
	}
	req.Header.Set(headerAuthorization, authBearerPrefix+p.apiKey)
	req.Header.Set(headerContentType, mimeApplicationJSON)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf(errRequestFailedFmt, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf(errResendAPIStatusFmt, resp.StatusCode, string(respBody))
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf(errFailedParseResponseFmt, err)
	}

	return &SendResult{MessageID: result.ID, Provider: providerResend}, nil
}
