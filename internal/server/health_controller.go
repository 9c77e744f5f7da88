package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/claimdesk/claimdesk/pkg/application"
	"github.com/claimdesk/claimdesk/pkg/httpapi"
)

type healthController struct {
	pool *pgxpool.Pool
}

func newHealthController(pool *pgxpool.Pool) application.Controller {
	return &healthController{pool: pool}
}

func (c *healthController) Key() string {
	return "/health"
}

func (c *healthController) Register(r *mux.Router) {
	r.HandleFunc("/health", c.Get).Methods(http.MethodGet)
}

func (c *healthController) Get(w http.ResponseWriter, r *http.Request) {
	if err := c.pool.Ping(r.Context()); err != nil {
		_ = httpapi.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
