package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateTeacher inserts a teacher directory record.
func (f *Fixtures) CreateTeacher(ctx context.Context, username, displayName string) models.Teacher {
	f.t.Helper()

	teacher := models.Teacher{
		Username:    username,
		DisplayName: displayName,
	}

	_, err := f.db.Collection("teachers").InsertOne(ctx, teacher)
	if err != nil {
		f.t.Fatalf("failed to create test teacher: %v", err)
	}

	return teacher
}

// CreateAnnouncement inserts an announcement document and returns it with
// the id the store assigned. start may be nil for an open-ended window.
func (f *Fixtures) CreateAnnouncement(ctx context.Context, title string, start *time.Time, expiration time.Time, active bool, createdBy string) models.Announcement {
	f.t.Helper()

	ann := models.Announcement{
		Title:          title,
		Message:        "Test message for " + title,
		StartDate:      start,
		ExpirationDate: expiration,
		IsActive:       active,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now().UTC(),
	}

	res, err := f.db.Collection("announcements").InsertOne(ctx, ann)
	if err != nil {
		f.t.Fatalf("failed to create test announcement: %v", err)
	}
	ann.ID = res.InsertedID.(primitive.ObjectID)

	return ann
}

// TimePtr returns a pointer to t. Convenient for optional timestamp fields.
func TimePtr(t time.Time) *time.Time {
	return &t
}
