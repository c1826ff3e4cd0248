package announcements

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeStore is an in-memory Store. It reproduces the store contract the
// service relies on: newest-first ordering, the active-window filter, and
// modified/deleted counts.
type fakeStore struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]models.Announcement

	insertErr error
	listErr   error
	updateErr error
	deleteErr error

	// forceZeroModified makes Update report no modifications, simulating a
	// lost write.
	forceZeroModified bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[primitive.ObjectID]models.Announcement)}
}

func (f *fakeStore) List(ctx context.Context, onlyActive bool, now time.Time) ([]models.Announcement, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	var anns []models.Announcement
	for _, ann := range f.docs {
		if onlyActive && !ann.ActiveAt(now) {
			continue
		}
		anns = append(anns, ann)
	}
	sort.Slice(anns, func(i, j int) bool {
		return anns[i].CreatedAt.After(anns[j].CreatedAt)
	})
	return anns, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ann, ok := f.docs[id]
	if !ok {
		return models.Announcement{}, mongo.ErrNoDocuments
	}
	return ann, nil
}

func (f *fakeStore) Insert(ctx context.Context, ann models.Announcement) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	ann.ID = primitive.NewObjectID()
	f.docs[ann.ID] = ann
	return ann.ID, nil
}

func (f *fakeStore) Update(ctx context.Context, id primitive.ObjectID, patch models.AnnouncementPatch) (int64, error) {
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.forceZeroModified {
		return 0, nil
	}
	ann, ok := f.docs[id]
	if !ok {
		return 0, nil
	}
	if patch.Title != nil {
		ann.Title = *patch.Title
	}
	if patch.Message != nil {
		ann.Message = *patch.Message
	}
	if patch.StartDate != nil {
		ann.StartDate = patch.StartDate
	}
	if patch.ExpirationDate != nil {
		ann.ExpirationDate = *patch.ExpirationDate
	}
	if patch.IsActive != nil {
		ann.IsActive = *patch.IsActive
	}
	f.docs[id] = ann
	return 1, nil
}

func (f *fakeStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.docs[id]; !ok {
		return 0, nil
	}
	delete(f.docs, id)
	return 1, nil
}

// get returns the stored document for assertions.
func (f *fakeStore) get(id primitive.ObjectID) (models.Announcement, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ann, ok := f.docs[id]
	return ann, ok
}

// put seeds a document with a fixed id.
func (f *fakeStore) put(ann models.Announcement) models.Announcement {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ann.ID.IsZero() {
		ann.ID = primitive.NewObjectID()
	}
	f.docs[ann.ID] = ann
	return ann
}

// fakeDirectory is an in-memory TeacherDirectory.
type fakeDirectory struct {
	teachers map[string]bool
	err      error
}

func newFakeDirectory(usernames ...string) *fakeDirectory {
	d := &fakeDirectory{teachers: make(map[string]bool)}
	for _, u := range usernames {
		d.teachers[u] = true
	}
	return d
}

func (d *fakeDirectory) Exists(ctx context.Context, username string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.teachers[username], nil
}
