// internal/app/features/announcements/announcements.go
package announcements

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dalemusser/schoolhub/internal/app/system/apierror"
	"github.com/dalemusser/schoolhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// List handles GET /announcements.
//
// active_only (default true) restricts the result to announcements inside
// their visibility window at query time. active_only=false is the
// management view and checks teacher_username against the directory.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if v := r.URL.Query().Get("active_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			apierror.Render(w, r, h.Log, apierror.InvalidInput("active_only must be a boolean"))
			return
		}
		activeOnly = b
	}
	requester := r.URL.Query().Get("teacher_username")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	anns, err := h.Service.List(ctx, activeOnly, requester)
	if err != nil {
		apierror.Render(w, r, h.Log, err)
		return
	}

	resp := make([]announcementResponse, 0, len(anns))
	for _, ann := range anns {
		resp = append(resp, toResponse(ann))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /announcements.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.Render(w, r, h.Log, apierror.InvalidInput("Invalid request body"))
		return
	}
	if req.ExpirationDate == nil {
		apierror.Render(w, r, h.Log, apierror.InvalidInput("Expiration date is required"))
		return
	}
	requester := r.URL.Query().Get("teacher_username")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	in := CreateInput{
		Title:          req.Title,
		Message:        req.Message,
		StartDate:      req.StartDate,
		ExpirationDate: *req.ExpirationDate,
		IsActive:       req.IsActive,
	}
	id, err := h.Service.Create(ctx, in, requester)
	if err != nil {
		apierror.Render(w, r, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, createResponse{
		Message: fmt.Sprintf("Announcement %q created successfully", in.Title),
		ID:      id.Hex(),
	})
}

// Update handles PUT /announcements/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.Render(w, r, h.Log, apierror.InvalidInput("Invalid request body"))
		return
	}
	requester := r.URL.Query().Get("teacher_username")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Service.Update(ctx, chi.URLParam(r, "id"), req.patch(), requester); err != nil {
		apierror.Render(w, r, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Announcement updated successfully"})
}

// Delete handles DELETE /announcements/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	requester := r.URL.Query().Get("teacher_username")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Service.Delete(ctx, chi.URLParam(r, "id"), requester); err != nil {
		apierror.Render(w, r, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Announcement deleted successfully"})
}
