// internal/app/store/announcement/store.go
package announcement

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the announcements collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new announcement Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("announcements")}
}

// ActiveFilter matches announcements visible at the given instant: the
// active flag is set, the expiration has not passed, and the start date is
// either unset or already reached. It mirrors Announcement.ActiveAt, but
// evaluated server-side so the collection is filtered before transfer.
func ActiveFilter(now time.Time) bson.M {
	return bson.M{
		"is_active": true,
		"$and": bson.A{
			bson.M{"expiration_date": bson.M{"$gte": now}},
			bson.M{"$or": bson.A{
				bson.M{"start_date": bson.M{"$lte": now}},
				bson.M{"start_date": nil},
			}},
		},
	}
}

// List returns announcements newest-first. When onlyActive is true, the
// result is restricted to announcements visible at the given instant.
func (s *Store) List(ctx context.Context, onlyActive bool, now time.Time) ([]models.Announcement, error) {
	filter := bson.M{}
	if onlyActive {
		filter = ActiveFilter(now)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var anns []models.Announcement
	if err := cur.All(ctx, &anns); err != nil {
		return nil, err
	}
	return anns, nil
}

// GetByID retrieves a single announcement. Returns mongo.ErrNoDocuments
// when no announcement has the given id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Announcement, error) {
	var ann models.Announcement
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ann)
	return ann, err
}

// Insert stores a new announcement and returns its assigned id.
func (s *Store) Insert(ctx context.Context, ann models.Announcement) (primitive.ObjectID, error) {
	res, err := s.c.InsertOne(ctx, ann)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// Update applies the present patch fields to one announcement and reports
// how many documents were modified. Fields absent from the patch keep their
// stored values; _id, created_by, and created_at are never touched.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, patch models.AnnouncementPatch) (int64, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Message != nil {
		set["message"] = *patch.Message
	}
	if patch.StartDate != nil {
		set["start_date"] = *patch.StartDate
	}
	if patch.ExpirationDate != nil {
		set["expiration_date"] = *patch.ExpirationDate
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}
	if len(set) == 0 {
		return 0, nil
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// Delete removes one announcement and reports how many documents were
// deleted (0 when the id matched nothing).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
