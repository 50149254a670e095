// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	healthfeature "github.com/dalemusser/scholarhub/internal/app/features/health"
	homefeature "github.com/dalemusser/scholarhub/internal/app/features/home"
	loginfeature "github.com/dalemusser/scholarhub/internal/app/features/login"
	scholarshipsfeature "github.com/dalemusser/scholarhub/internal/app/features/scholarships"
	sponsorsfeature "github.com/dalemusser/scholarhub/internal/app/features/sponsors"
	typesfeature "github.com/dalemusser/scholarhub/internal/app/features/types"
	adminstore "github.com/dalemusser/scholarhub/internal/app/store/admins"
	sponsorstore "github.com/dalemusser/scholarhub/internal/app/store/sponsors"
	typestore "github.com/dalemusser/scholarhub/internal/app/store/types"
	"github.com/dalemusser/scholarhub/internal/app/system/auth"
	"github.com/dalemusser/scholarhub/internal/app/system/respond"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. The login and logout routes are
// public; everything else under /admin sits behind the bearer-token gate.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	tokens := auth.NewTokenManager(appCfg.JWTSecret, appCfg.TokenTTL)
	logger.Info("token manager ready", zap.Duration("ttl", tokens.TTL()))

	admins := adminstore.New(db)
	errLog := respond.NewErrorLogger(logger)

	loginHandler := loginfeature.NewHandler(admins, tokens, errLog, logger)
	sponsorHandler := sponsorsfeature.NewHandler(sponsorstore.New(db), errLog, logger)
	typeHandler := typesfeature.NewHandler(typestore.New(db), errLog, logger)
	scholarshipHandler := scholarshipsfeature.NewHandler(db, errLog, logger)

	r := chi.NewRouter()

	allowedOrigins := []string{"*"}
	if appCfg.AllowedOrigin != "" {
		allowedOrigins = []string{appCfg.AllowedOrigin}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: appCfg.AllowedOrigin != "",
		MaxAge:           300,
	}))

	r.Get("/", homefeature.Serve)

	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/healthz", healthfeature.Routes(healthHandler))

	r.Route("/admin", func(ar chi.Router) {
		loginfeature.Register(ar, loginHandler)

		ar.Group(func(pr chi.Router) {
			pr.Use(auth.RequireAdmin(tokens, admins, logger))
			sponsorsfeature.Register(pr, sponsorHandler)
			typesfeature.Register(pr, typeHandler)
			scholarshipsfeature.Register(pr, scholarshipHandler)
		})
	})

	return r, nil
}
