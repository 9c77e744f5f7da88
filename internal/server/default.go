package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"

	"github.com/claimdesk/claimdesk/pkg/application"
	"github.com/claimdesk/claimdesk/pkg/configuration"
	"github.com/claimdesk/claimdesk/pkg/constants"
	"github.com/claimdesk/claimdesk/pkg/httpapi"
	"github.com/claimdesk/claimdesk/pkg/middleware"
	"github.com/claimdesk/claimdesk/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.Cors(options.Configuration.AllowedOrigins...),
	}

	if options.Configuration.RateLimit.Enabled {
		var store limiter.Store
		var err error
		switch options.Configuration.RateLimit.Storage {
		case "redis":
			store, err = middleware.NewRedisStore(options.Configuration.RateLimit.RedisURL)
			if err != nil {
				options.Logger.WithError(err).Warn("redis rate limit store unavailable, falling back to memory")
				store = middleware.NewMemoryStore()
			}
		default:
			store = middleware.NewMemoryStore()
		}
		middlewares = append(middlewares, middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerPeriod: options.Configuration.RateLimit.GlobalRPS,
			Store:             store,
		}))
	}

	middlewares = append(middlewares,
		middleware.RequestParams(),
		middleware.ActorFromHeaders(),
	)

	app.RegisterMiddleware(middlewares...)
	app.RegisterControllers(newHealthController(options.Pool))

	return server.NewHTTPServer(app, notFound(), methodNotAllowed()), nil
}

func notFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteFailure(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
}

func methodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteFailure(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})
}
