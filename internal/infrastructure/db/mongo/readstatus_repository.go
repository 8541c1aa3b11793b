package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const readStatusCollection = "read_status"

// ReadStatusRepository persists acknowledgment timestamps. The combination
// of the unique (project_id, user_email) index and the upsert write is what
// makes concurrent acknowledgments duplicate-free; no application locking
// is involved.
type ReadStatusRepository struct {
	coll *mongo.Collection
}

func NewReadStatusRepository(db *mongo.Database) *ReadStatusRepository {
	return &ReadStatusRepository{coll: db.Collection(readStatusCollection)}
}

func (r *ReadStatusRepository) Upsert(ctx context.Context, projectID, userEmail string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"project_id": projectID, "user_email": userEmail}
	update := bson.M{"$set": bson.M{"last_read_at": at}}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert read status: %w", err)
	}
	return nil
}

func (r *ReadStatusRepository) DeleteByProject(ctx context.Context, projectID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"project_id": projectID}); err != nil {
		return fmt.Errorf("delete read statuses: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique compound index the upsert depends on.
func (r *ReadStatusRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: "project_id", Value: 1},
			{Key: "user_email", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}

	_, err := r.coll.Indexes().CreateOne(ctx, index)
	return err
}
