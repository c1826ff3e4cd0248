// internal/app/features/announcements/types.go
package announcements

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/schoolhub/internal/domain/models"
)

// createRequest is the JSON body for POST /announcements. ExpirationDate is
// a pointer only to detect absence; it is required.
type createRequest struct {
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	StartDate      *time.Time `json:"start_date"`
	ExpirationDate *time.Time `json:"expiration_date"`
	IsActive       *bool      `json:"is_active"`
}

// updateRequest is the JSON body for PUT /announcements/{id}. Every field is
// optional; absent fields keep their stored values.
type updateRequest struct {
	Title          *string    `json:"title"`
	Message        *string    `json:"message"`
	StartDate      *time.Time `json:"start_date"`
	ExpirationDate *time.Time `json:"expiration_date"`
	IsActive       *bool      `json:"is_active"`
}

func (u updateRequest) patch() models.AnnouncementPatch {
	return models.AnnouncementPatch{
		Title:          u.Title,
		Message:        u.Message,
		StartDate:      u.StartDate,
		ExpirationDate: u.ExpirationDate,
		IsActive:       u.IsActive,
	}
}

// announcementResponse is the JSON shape of a single announcement. The id
// is the hex form of the store id; timestamps are RFC 3339 in UTC.
// StartDate has no omitempty so an absent start date surfaces as an
// explicit null rather than a missing key.
type announcementResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Message        string  `json:"message"`
	StartDate      *string `json:"start_date"`
	ExpirationDate string  `json:"expiration_date"`
	IsActive       bool    `json:"is_active"`
	CreatedBy      string  `json:"created_by"`
	CreatedAt      string  `json:"created_at"`
}

func toResponse(a models.Announcement) announcementResponse {
	resp := announcementResponse{
		ID:             a.ID.Hex(),
		Title:          a.Title,
		Message:        a.Message,
		ExpirationDate: a.ExpirationDate.UTC().Format(time.RFC3339),
		IsActive:       a.IsActive,
		CreatedBy:      a.CreatedBy,
		CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.StartDate != nil {
		start := a.StartDate.UTC().Format(time.RFC3339)
		resp.StartDate = &start
	}
	return resp
}

// createResponse is returned by a successful create.
type createResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// messageResponse is returned by successful update and delete.
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
