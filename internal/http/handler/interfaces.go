package handler

import (
	"context"

	"client-hub/internal/domain/client"
)

// Consumer-side interfaces defined by the handlers. Each contains only
// what the handlers actually call, so stores, caches, and hooks can all
// be substituted in tests.

// ClientRepository is the persistence gateway scoped to the clients
// collection.
type ClientRepository interface {
	List(ctx context.Context) ([]*client.Client, error)
	Insert(ctx context.Context, c *client.Client) error
	UpdateByID(ctx context.Context, id string, in client.Input) (*client.Client, error)
	DeleteByID(ctx context.Context, id string) error
}

// ListCache fronts the List read path. Implementations treat their own
// failures as misses.
type ListCache interface {
	Get(ctx context.Context) ([]*client.Client, bool)
	Set(ctx context.Context, clients []*client.Client)
	Invalidate(ctx context.Context)
}

// SignupNotifier is the post-commit hook fired after a public signup is
// persisted. Its outcome never affects the signup result.
type SignupNotifier interface {
	ClientSignedUp(ctx context.Context, c *client.Client)
}

// EventPublisher is the post-commit hook fired after every successful
// write.
type EventPublisher interface {
	ClientCreated(ctx context.Context, c *client.Client)
	ClientUpdated(ctx context.Context, c *client.Client)
	ClientDeleted(ctx context.Context, id string)
}
