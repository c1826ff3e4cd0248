// internal/app/store/teachers/teacherstore.go
package teacherstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the teachers collection. Usernames are the
// document keys, so every lookup is a direct _id match.
//
// Store satisfies the announcement service's TeacherDirectory: a username
// that resolves to a teacher document is treated as an authenticated
// teacher. Swapping in real credential checks later replaces this type,
// not its callers.
type Store struct {
	c *mongo.Collection
}

// New creates a new teacher Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("teachers")}
}

// Exists reports whether a teacher with the given username is on record.
func (s *Store) Exists(ctx context.Context, username string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"_id": username})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
