// Package memory provides an in-memory client repository with the same
// contract as the Mongo-backed one. It exists so the HTTP layer can be
// exercised in tests without a running store.
package memory

import (
	"context"
	"sort"
	"sync"

	"client-hub/internal/domain/client"
	apperrors "client-hub/pkg/errors"
)

const errClientNotFound = "client not found"

type ClientRepository struct {
	mu      sync.RWMutex
	clients map[string]*client.Client
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{clients: make(map[string]*client.Client)}
}

func (r *ClientRepository) List(_ context.Context) ([]*client.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*client.Client, 0, len(r.clients))
	for _, c := range r.clients {
		copied := *c
		clients = append(clients, &copied)
	}

	// RFC 3339 UTC strings sort lexically in chronological order.
	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].CreatedAt > clients[j].CreatedAt
	})

	return clients, nil
}

func (r *ClientRepository) Insert(_ context.Context, c *client.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *c
	r.clients[c.ID] = &copied
	return nil
}

func (r *ClientRepository) UpdateByID(_ context.Context, id string, in client.Input) (*client.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.clients[id]
	if !ok {
		return nil, apperrors.NotFound(errClientNotFound)
	}

	existing.Name = in.Name
	existing.Email = in.Email
	existing.Phone = in.Phone
	existing.ProjectType = in.ProjectType
	existing.Budget = in.Budget
	existing.Status = in.Status

	copied := *existing
	return &copied, nil
}

func (r *ClientRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[id]; !ok {
		return apperrors.NotFound(errClientNotFound)
	}

	delete(r.clients, id)
	return nil
}
