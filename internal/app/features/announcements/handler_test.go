package announcements

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/schoolhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newTestRouter mounts a Handler over fakes on a real chi router so URL
// params and methods are exercised the same way as in production.
func newTestRouter(store *fakeStore, dir *fakeDirectory) http.Handler {
	h := &Handler{
		Service: func() *Service {
			svc := NewService(store, dir)
			svc.now = func() time.Time { return testNow }
			return svc
		}(),
		Log: zap.NewNop(),
	}
	r := chi.NewRouter()
	r.Route("/announcements", h.MountRoutes)
	return r
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse error body: %v", err)
	}
	return body.Detail
}

func TestHandler_List_DefaultsToActiveOnly(t *testing.T) {
	store := newFakeStore()
	store.put(models.Announcement{Title: "active", IsActive: true, ExpirationDate: testNow.Add(time.Hour), CreatedAt: testNow})
	store.put(models.Announcement{Title: "expired", IsActive: true, ExpirationDate: testNow.Add(-time.Hour), CreatedAt: testNow})
	router := newTestRouter(store, newFakeDirectory())

	req := httptest.NewRequest("GET", "/announcements/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 active announcement, got %d", len(items))
	}
	if items[0]["title"] != "active" {
		t.Errorf("title: got %v, want %q", items[0]["title"], "active")
	}
}

func TestHandler_List_NullStartDateIsExplicit(t *testing.T) {
	store := newFakeStore()
	store.put(models.Announcement{Title: "open start", IsActive: true, ExpirationDate: testNow.Add(time.Hour), CreatedAt: testNow})
	router := newTestRouter(store, newFakeDirectory())

	req := httptest.NewRequest("GET", "/announcements/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Clients distinguish "no start date" from "field missing", so the key
	// must be present with a null value.
	if !strings.Contains(rec.Body.String(), `"start_date":null`) {
		t.Errorf("expected explicit null start_date, body: %s", rec.Body.String())
	}
}

func TestHandler_List_ManagementUnauthorized(t *testing.T) {
	router := newTestRouter(newFakeStore(), newFakeDirectory("mr_chips"))

	req := httptest.NewRequest("GET", "/announcements/?active_only=false&teacher_username=impostor", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if got := decodeDetail(t, rec); got != "Authentication required for management access" {
		t.Errorf("detail: got %q", got)
	}
}

func TestHandler_List_BadActiveOnly(t *testing.T) {
	router := newTestRouter(newFakeStore(), newFakeDirectory())

	req := httptest.NewRequest("GET", "/announcements/?active_only=maybe", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandler_Create_RoundTrip(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store, newFakeDirectory("mr_chips"))

	expiration := testNow.Add(72 * time.Hour).Format(time.RFC3339)
	start := testNow.Add(-time.Hour).Format(time.RFC3339)
	body := `{"title":"Picture day","message":"Wear your uniform","start_date":"` + start + `","expiration_date":"` + expiration + `"}`

	req := httptest.NewRequest("POST", "/announcements/?teacher_username=mr_chips", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(created.ID) != 24 {
		t.Errorf("expected 24-hex id, got %q", created.ID)
	}

	// The management list returns the record with the server-assigned fields.
	req = httptest.NewRequest("GET", "/announcements/?active_only=false&teacher_username=mr_chips", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var items []struct {
		ID             string  `json:"id"`
		Title          string  `json:"title"`
		Message        string  `json:"message"`
		StartDate      *string `json:"start_date"`
		ExpirationDate string  `json:"expiration_date"`
		IsActive       bool    `json:"is_active"`
		CreatedBy      string  `json:"created_by"`
		CreatedAt      string  `json:"created_at"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to parse list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 announcement, got %d", len(items))
	}
	got := items[0]
	if got.ID != created.ID {
		t.Errorf("id: got %q, want %q", got.ID, created.ID)
	}
	if got.Title != "Picture day" || got.Message != "Wear your uniform" {
		t.Errorf("fields did not round-trip: %+v", got)
	}
	if got.StartDate == nil || *got.StartDate != start {
		t.Errorf("start_date: got %v, want %q", got.StartDate, start)
	}
	if got.ExpirationDate != expiration {
		t.Errorf("expiration_date: got %q, want %q", got.ExpirationDate, expiration)
	}
	if !got.IsActive {
		t.Error("expected is_active default true")
	}
	if got.CreatedBy != "mr_chips" {
		t.Errorf("created_by: got %q", got.CreatedBy)
	}
	if _, err := time.Parse(time.RFC3339, got.CreatedAt); err != nil {
		t.Errorf("created_at is not RFC 3339: %q", got.CreatedAt)
	}
}

func TestHandler_Create_MissingExpiration(t *testing.T) {
	router := newTestRouter(newFakeStore(), newFakeDirectory("mr_chips"))

	req := httptest.NewRequest("POST", "/announcements/?teacher_username=mr_chips",
		strings.NewReader(`{"title":"t","message":"m"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandler_Create_Unauthorized(t *testing.T) {
	router := newTestRouter(newFakeStore(), newFakeDirectory("mr_chips"))

	expiration := testNow.Add(time.Hour).Format(time.RFC3339)
	req := httptest.NewRequest("POST", "/announcements/?teacher_username=impostor",
		strings.NewReader(`{"title":"t","message":"m","expiration_date":"`+expiration+`"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if got := decodeDetail(t, rec); got != "Authentication required for this action" {
		t.Errorf("detail: got %q", got)
	}
}

func TestHandler_Update_NotFound(t *testing.T) {
	router := newTestRouter(newFakeStore(), newFakeDirectory("mr_chips"))

	req := httptest.NewRequest("PUT", "/announcements/64a0b1c2d3e4f5a6b7c8d9e0?teacher_username=mr_chips",
		strings.NewReader(`{"title":"renamed"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandler_Update_OK(t *testing.T) {
	store := newFakeStore()
	existing := store.put(models.Announcement{
		Title:          "original",
		Message:        "body",
		IsActive:       true,
		ExpirationDate: testNow.Add(24 * time.Hour),
		CreatedAt:      testNow,
	})
	router := newTestRouter(store, newFakeDirectory("mr_chips"))

	req := httptest.NewRequest("PUT", "/announcements/"+existing.ID.Hex()+"?teacher_username=mr_chips",
		strings.NewReader(`{"title":"renamed"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body: %s", rec.Code, rec.Body.String())
	}
	if ann, _ := store.get(existing.ID); ann.Title != "renamed" {
		t.Errorf("title: got %q, want %q", ann.Title, "renamed")
	}
}

func TestHandler_Delete_MalformedID(t *testing.T) {
	router := newTestRouter(newFakeStore(), newFakeDirectory("mr_chips"))

	req := httptest.NewRequest("DELETE", "/announcements/not-hex?teacher_username=mr_chips", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if got := decodeDetail(t, rec); got != "Invalid announcement ID" {
		t.Errorf("detail: got %q", got)
	}
}

func TestHandler_Delete_OK(t *testing.T) {
	store := newFakeStore()
	existing := store.put(models.Announcement{
		Title:          "gone soon",
		IsActive:       true,
		ExpirationDate: testNow.Add(time.Hour),
		CreatedAt:      testNow,
	})
	router := newTestRouter(store, newFakeDirectory("mr_chips"))

	req := httptest.NewRequest("DELETE", "/announcements/"+existing.ID.Hex()+"?teacher_username=mr_chips", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body: %s", rec.Code, rec.Body.String())
	}
	if _, ok := store.get(existing.ID); ok {
		t.Error("announcement still present after delete")
	}
}
