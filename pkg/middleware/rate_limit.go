package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	libredis "github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/claimdesk/claimdesk/pkg/composables"
)

type RateLimitConfig struct {
	RequestsPerPeriod int
	Period            time.Duration
	Store             limiter.Store
	// KeyFunc derives the counter key for a request; defaults to client IP.
	KeyFunc func(r *http.Request) string
}

// NewMemoryStore returns an in-process limiter store. Increments are atomic
// and stale keys expire on their own.
func NewMemoryStore() limiter.Store {
	return memory.NewStore()
}

// NewRedisStore returns a limiter store backed by Redis, for deployments
// where the counter must be shared across instances.
func NewRedisStore(redisURL string) (limiter.Store, error) {
	opts, err := libredis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := libredis.NewClient(opts)
	return sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: "claimdesk:ratelimit",
	})
}

// RateLimit enforces a per-key request budget using an atomic
// increment-and-expire store.
func RateLimit(config RateLimitConfig) mux.MiddlewareFunc {
	period := config.Period
	if period == 0 {
		period = time.Second
	}
	store := config.Store
	if store == nil {
		store = NewMemoryStore()
	}
	keyFunc := config.KeyFunc
	if keyFunc == nil {
		keyFunc = ClientIP
	}

	instance := limiter.New(store, limiter.Rate{
		Period: period,
		Limit:  int64(config.RequestsPerPeriod),
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiterCtx, err := instance.Get(r.Context(), keyFunc(r))
			if err != nil {
				logger := composables.UseLogger(r.Context())
				logger.WithError(err).Error("rate limiter store failure")
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(limiterCtx.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(limiterCtx.Remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(limiterCtx.Reset, 10))

			if limiterCtx.Reached {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
