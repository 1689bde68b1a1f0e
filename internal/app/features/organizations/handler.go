// internal/app/features/organizations/handler.go
package organizations

import (
	organizationstore "github.com/inkwelldev/inkwell/internal/app/store/organizations"
	memberstore "github.com/inkwelldev/inkwell/internal/app/store/orgmembers"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides HTTP handlers for organization management.
type Handler struct {
	Client  *mongo.Client
	Orgs    *organizationstore.Store
	Members *memberstore.Store
	Log     *zap.Logger
}

// NewHandler creates a new organizations Handler. The Mongo client is kept
// so creates can run org + membership writes in one transaction.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Client:  db.Client(),
		Orgs:    organizationstore.New(db),
		Members: memberstore.New(db),
		Log:     logger,
	}
}
