// internal/app/features/posts/handler.go
package posts

import (
	poststore "github.com/inkwelldev/inkwell/internal/app/store/posts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides HTTP handlers for posts. Every handler runs behind the
// tenant guard, so the organization scope is always present in context.
type Handler struct {
	Posts *poststore.Store
	Log   *zap.Logger
}

// NewHandler creates a new posts Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Posts: poststore.New(db),
		Log:   logger,
	}
}
