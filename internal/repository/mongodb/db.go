package mongodb

import (
	"context"

	"client-hub/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB owns the single mongo.Client for the process. The driver multiplexes
// concurrent operations over its internal pool, so one DB is constructed
// at startup and shared by every repository.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

func New(cfg *config.MongoConfig) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errFailedConnectDatabase(err)
	}

	pingCtx, cancelPing := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancelPing()

	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		_ = mongoClient.Disconnect(context.Background())
		return nil, errFailedPingDatabase(err)
	}

	return &DB{
		client:   mongoClient,
		database: mongoClient.Database(cfg.DatabaseName()),
	}, nil
}

// Collection resolves a named logical collection in the configured database.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

func (db *DB) Close(ctx context.Context) error {
	if db.client == nil {
		return nil
	}
	return db.client.Disconnect(ctx)
}
