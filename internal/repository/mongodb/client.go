package mongodb

import (
	"context"
	"errors"

	"client-hub/internal/domain/client"
	apperrors "client-hub/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClientRepository struct {
	collection *mongo.Collection
}

func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{collection: db.Collection(clientsCollection)}
}

// List returns every client record ordered by creation time, most recent
// first. CreatedAt is stored as an RFC 3339 UTC string, so the lexical
// sort the store performs matches chronological order.
func (r *ClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	opts := options.Find().SetSort(bson.D{{Key: fieldCreatedAt, Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errFailedListClients(err)
	}

	clients := []*client.Client{}
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, errFailedDecodeClients(err)
	}

	return clients, nil
}

func (r *ClientRepository) Insert(ctx context.Context, c *client.Client) error {
	if _, err := r.collection.InsertOne(ctx, c); err != nil {
		return errFailedCreateClient(err)
	}
	return nil
}

// UpdateByID applies the validated fields to the record with the given
// public id and returns the post-update document. The id and createdAt
// fields are never part of the update.
func (r *ClientRepository) UpdateByID(ctx context.Context, id string, in client.Input) (*client.Client, error) {
	update := bson.M{"$set": bson.M{
		"name":        in.Name,
		"email":       in.Email,
		"phone":       in.Phone,
		"projectType": in.ProjectType,
		"budget":      in.Budget,
		"status":      in.Status,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	updated := &client.Client{}
	err := r.collection.FindOneAndUpdate(ctx, bson.M{fieldID: id}, update, opts).Decode(updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(errClientNotFound)
		}
		return nil, errFailedUpdateClient(err)
	}

	return updated, nil
}

func (r *ClientRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{fieldID: id})
	if err != nil {
		return errFailedDeleteClient(err)
	}

	if result.DeletedCount == 0 {
		return apperrors.NotFound(errClientNotFound)
	}

	return nil
}
