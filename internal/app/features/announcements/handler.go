// internal/app/features/announcements/handler.go
package announcements

import (
	"github.com/dalemusser/schoolhub/internal/app/store/announcement"
	teacherstore "github.com/dalemusser/schoolhub/internal/app/store/teachers"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Announcements handlers.
type Handler struct {
	Service *Service
	Log     *zap.Logger
}

// NewHandler constructs an Announcements Handler backed by the Mongo stores.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Service: NewService(announcement.New(db), teacherstore.New(db)),
		Log:     logger,
	}
}
