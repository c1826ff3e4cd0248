// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent
(CreateMany is a no-op for an index that already exists with the same keys
and options). Errors are aggregated so every problem is visible and startup
can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureAnnouncements(ctx, db); err != nil {
		problems = append(problems, "announcements: "+err.Error())
	}

	// teachers needs no secondary indexes: every lookup is by _id.

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureAnnouncements(ctx context.Context, db *mongo.Database) error {
	indexModels := []mongo.IndexModel{
		// List ordering (newest first)
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_announcements_created"),
		},
		// Active-window query: is_active + expiration bound, start bound last
		{
			Keys: bson.D{
				{Key: "is_active", Value: 1},
				{Key: "expiration_date", Value: 1},
				{Key: "start_date", Value: 1},
			},
			Options: options.Index().SetName("idx_announcements_window"),
		},
	}

	_, err := db.Collection("announcements").Indexes().CreateMany(ctx, indexModels)
	return err
}
