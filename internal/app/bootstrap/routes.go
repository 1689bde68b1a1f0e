// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authfeature "github.com/inkwelldev/inkwell/internal/app/features/auth"
	authgooglefeature "github.com/inkwelldev/inkwell/internal/app/features/authgoogle"
	healthfeature "github.com/inkwelldev/inkwell/internal/app/features/health"
	organizationsfeature "github.com/inkwelldev/inkwell/internal/app/features/organizations"
	postsfeature "github.com/inkwelldev/inkwell/internal/app/features/posts"
	memberstore "github.com/inkwelldev/inkwell/internal/app/store/orgmembers"
	sysauth "github.com/inkwelldev/inkwell/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := sysauth.InitSessionStore(appCfg.SessionKey, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sysauth.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	authHandler := authfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/auth", authfeature.Routes(authHandler))

	googleHandler := authgooglefeature.NewHandler(
		deps.MongoDatabase,
		appCfg.GoogleClientID,
		appCfg.GoogleClientSecret,
		appCfg.BaseURL,
		logger,
	)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	// Organization management and discovery
	orgHandler := organizationsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/organizations", organizationsfeature.Routes(orgHandler))

	// Tenant-scoped content
	members := memberstore.New(deps.MongoDatabase)
	postsHandler := postsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/posts", postsfeature.Routes(postsHandler, members, logger))

	return r, nil
}
