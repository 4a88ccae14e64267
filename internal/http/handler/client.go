package handler

import (
	"context"
	"errors"
	"net/http"

	"client-hub/internal/domain/client"
	"client-hub/internal/observe"
	"client-hub/internal/validation"
	apperrors "client-hub/pkg/errors"

	"github.com/labstack/echo/v4"
)

// ClientHandler implements the client CRUD operations plus the public
// signup path. Each operation is a thin composition of validator and
// repository; post-commit hooks fire detached after successful writes.
type ClientHandler struct {
	repo     ClientRepository
	cache    ListCache // nil when no cache is configured
	events   EventPublisher
	notifier SignupNotifier
}

func NewClientHandler(repo ClientRepository, cache ListCache, events EventPublisher, notifier SignupNotifier) *ClientHandler {
	return &ClientHandler{
		repo:     repo,
		cache:    cache,
		events:   events,
		notifier: notifier,
	}
}

// ListClients returns every record, most recent first. The read path
// deliberately degrades to an empty list when the store is unreachable:
// the dashboard stays usable and the failure is visible in logs and
// Sentry instead.
func (h *ClientHandler) ListClients(c echo.Context) error {
	ctx := c.Request().Context()

	if h.cache != nil {
		if clients, ok := h.cache.Get(ctx); ok {
			return c.JSON(http.StatusOK, map[string]interface{}{jsonKeyClients: clients})
		}
	}

	clients, err := h.repo.List(ctx)
	if err != nil {
		c.Logger().Errorf("Failed to fetch clients: %v", err)
		observe.CaptureError(err, map[string]interface{}{
			"operation": "list_clients",
			"endpoint":  c.Request().URL.Path,
		})
		return c.JSON(http.StatusOK, map[string]interface{}{jsonKeyClients: []*client.Client{}})
	}

	if h.cache != nil {
		h.cache.Set(ctx, clients)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{jsonKeyClients: clients})
}

// CreateClient handles dashboard creation: the dashboard profile applies
// and the caller supplies the status.
func (h *ClientHandler) CreateClient(c echo.Context) error {
	in, errs := validation.ParseClient(decodePayload(c), validation.ProfileDashboard)
	if errs != nil {
		return respondFieldErrors(c, http.StatusBadRequest, errs)
	}

	record := client.New(in)

	if err := h.repo.Insert(c.Request().Context(), record); err != nil {
		c.Logger().Errorf("Failed to create client: %v", err)
		observe.CaptureError(err, map[string]interface{}{
			"operation": "create_client",
			"endpoint":  c.Request().URL.Path,
		})
		return respondError(c, http.StatusInternalServerError, msgCreateClientFail)
	}

	h.afterWrite(c)
	go h.events.ClientCreated(context.Background(), record)

	return c.JSON(http.StatusCreated, map[string]interface{}{jsonKeyClient: record})
}

// PublicSignup handles the landing-page form: the contact profile
// applies, status is forced to New, and the notification email fires
// only after the insert has succeeded.
func (h *ClientHandler) PublicSignup(c echo.Context) error {
	in, errs := validation.ParseClient(decodePayload(c), validation.ProfileContact)
	if errs != nil {
		return respondFieldErrors(c, http.StatusBadRequest, errs)
	}

	in.Status = client.StatusNew
	record := client.New(in)

	if err := h.repo.Insert(c.Request().Context(), record); err != nil {
		c.Logger().Errorf("Failed to persist client signup: %v", err)
		observe.CaptureError(err, map[string]interface{}{
			"operation": "public_signup",
			"endpoint":  c.Request().URL.Path,
		})
		return respondError(c, http.StatusInternalServerError, msgSignupFail)
	}

	h.afterWrite(c)
	go h.notifier.ClientSignedUp(context.Background(), record)
	go h.events.ClientCreated(context.Background(), record)

	return c.JSON(http.StatusCreated, map[string]interface{}{
		jsonKeyClient:  record,
		jsonKeyMessage: msgSignupThanks,
	})
}

// UpdateClient validates the payload first and only then touches storage,
// so an invalid payload against an unknown id still reports the payload's
// problems.
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	id := c.Param(paramID)

	in, errs := validation.ParseClient(decodePayload(c), validation.ProfileDashboard)
	if errs != nil {
		return respondFieldErrors(c, http.StatusBadRequest, errs)
	}

	updated, err := h.repo.UpdateByID(c.Request().Context(), id, in)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, msgClientNotFound)
		}
		c.Logger().Errorf("Failed to update client %s: %v", id, err)
		observe.CaptureError(err, map[string]interface{}{
			"operation": "update_client",
			"endpoint":  c.Request().URL.Path,
		})
		return respondError(c, http.StatusInternalServerError, msgUpdateClientFail)
	}

	h.afterWrite(c)
	go h.events.ClientUpdated(context.Background(), updated)

	return c.JSON(http.StatusOK, map[string]interface{}{jsonKeyClient: updated})
}

func (h *ClientHandler) DeleteClient(c echo.Context) error {
	id := c.Param(paramID)

	if err := h.repo.DeleteByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, msgClientNotFound)
		}
		c.Logger().Errorf("Failed to delete client %s: %v", id, err)
		observe.CaptureError(err, map[string]interface{}{
			"operation": "delete_client",
			"endpoint":  c.Request().URL.Path,
		})
		return respondError(c, http.StatusInternalServerError, msgDeleteClientFail)
	}

	h.afterWrite(c)
	go h.events.ClientDeleted(context.Background(), id)

	return c.JSON(http.StatusOK, map[string]bool{jsonKeySuccess: true})
}

// afterWrite drops the cached list so the next List reflects the write.
func (h *ClientHandler) afterWrite(c echo.Context) {
	if h.cache != nil {
		h.cache.Invalidate(c.Request().Context())
	}
}
