// internal/domain/models/announcement.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field length limits enforced on create and update.
const (
	AnnouncementTitleMaxLen   = 200
	AnnouncementMessageMaxLen = 1000
)

// Announcement is a time-bounded message shown to everyone on the platform.
// The visibility window runs from StartDate (open-ended when nil) up to and
// including ExpirationDate, gated by the IsActive flag.
//
// StartDate deliberately has no omitempty: an absent start date is stored as
// an explicit null so the active-window query can match it, and clients can
// tell "no start date" apart from "field missing".
type Announcement struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Message        string             `bson:"message" json:"message"`
	StartDate      *time.Time         `bson:"start_date" json:"start_date"`
	ExpirationDate time.Time          `bson:"expiration_date" json:"expiration_date"`
	IsActive       bool               `bson:"is_active" json:"is_active"`
	CreatedBy      string             `bson:"created_by" json:"created_by"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// ActiveAt reports whether the announcement is visible at the given instant:
// the active flag is set, the expiration has not passed, and the start date
// is either unset or already reached. Both bounds are inclusive.
func (a Announcement) ActiveAt(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.ExpirationDate.Before(now) {
		return false
	}
	if a.StartDate != nil && a.StartDate.After(now) {
		return false
	}
	return true
}

// AnnouncementPatch carries the fields of a partial update. A nil field is
// not part of the patch and keeps its stored value; there is no way to unset
// a stored start date.
type AnnouncementPatch struct {
	Title          *string
	Message        *string
	StartDate      *time.Time
	ExpirationDate *time.Time
	IsActive       *bool
}

// IsEmpty reports whether the patch carries no fields at all.
func (p AnnouncementPatch) IsEmpty() bool {
	return p.Title == nil &&
		p.Message == nil &&
		p.StartDate == nil &&
		p.ExpirationDate == nil &&
		p.IsActive == nil
}
