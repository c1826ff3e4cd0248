package apierror

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// detailBody matches the error shape the platform's clients already parse.
type detailBody struct {
	Detail string `json:"detail"`
}

// Status maps an error to its HTTP status code. Errors that are not
// apierrors count as server errors.
func Status(err error) int {
	switch KindOf(err) {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Render writes err to w as a JSON error response. Server errors are logged
// with their cause; the client only ever sees the detail message.
func Render(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	status := Status(err)
	detail := http.StatusText(http.StatusInternalServerError)

	var e *Error
	if errors.As(err, &e) {
		detail = e.Detail
	}

	if status == http.StatusInternalServerError && log != nil {
		log.Error("request failed", zap.Error(err), zap.String("path", r.URL.Path))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(detailBody{Detail: detail})
}
