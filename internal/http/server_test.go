package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"client-hub/internal/config"
	"client-hub/internal/domain/client"
	"client-hub/internal/events"
	"client-hub/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopNotifier struct{}

func (noopNotifier) ClientSignedUp(context.Context, *client.Client) {}

func newTestServer() *Server {
	return NewServer(&ServerDependencies{
		Config: &config.Config{
			Server: config.ServerConfig{
				Port:         "0",
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 5 * time.Second,
			},
			Mongo: config.MongoConfig{URI: "mongodb://localhost:27017/test"},
		},
		ClientRepo: memory.NewClientRepository(),
		Events:     events.NoopPublisher{},
		Notifier:   noopNotifier{},
	})
}

func serve(s *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestHealthRoute(t *testing.T) {
	s := newTestServer()

	rec := serve(s, stdhttp.MethodGet, "/health", "")

	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestMetricsRoute(t *testing.T) {
	s := newTestServer()

	rec := serve(s, stdhttp.MethodGet, "/metrics", "")

	assert.Equal(t, stdhttp.StatusOK, rec.Code)
}

func TestSignupThenList(t *testing.T) {
	s := newTestServer()

	rec := serve(s, stdhttp.MethodPost, "/api/signup", `{
		"name": "Jo",
		"email": "jo@x.com",
		"phone": "5551234567",
		"projectType": "SEO",
		"budget": "1000"
	}`)
	require.Equal(t, stdhttp.StatusCreated, rec.Code)

	var created struct {
		Client  client.Client `json:"client"`
		Message string        `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, client.StatusNew, created.Client.Status)
	assert.NotEmpty(t, created.Message)

	rec = serve(s, stdhttp.MethodGet, "/api/clients", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var listed struct {
		Clients []client.Client `json:"clients"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Clients, 1)
	assert.Equal(t, created.Client.ID, listed.Clients[0].ID)
}

func TestUnknownRouteShape(t *testing.T) {
	s := newTestServer()

	rec := serve(s, stdhttp.MethodGet, "/nope", "")

	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
	assert.Contains(t, body, "request_id")
}

func TestSecurityHeadersApplied(t *testing.T) {
	s := newTestServer()

	rec := serve(s, stdhttp.MethodGet, "/health", "")

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
