package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/claimdesk/claimdesk/modules/cases/presentation/controllers/dtos"
	"github.com/claimdesk/claimdesk/modules/cases/services"
	"github.com/claimdesk/claimdesk/pkg/application"
	"github.com/claimdesk/claimdesk/pkg/httpapi"
)

type FeedController struct {
	app         application.Application
	feedService *services.FeedService
	basePath    string
}

func NewFeedController(app application.Application) application.Controller {
	return &FeedController{
		app:         app,
		feedService: app.Service(services.FeedService{}).(*services.FeedService),
		basePath:    "/cases/feed",
	}
}

func (c *FeedController) Key() string {
	return c.basePath
}

func (c *FeedController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
}

// List serves one page of the interaction feed for the calling actor.
func (c *FeedController) List(w http.ResponseWriter, r *http.Request) {
	dto := dtos.ParseFeedQuery(r)
	if err := dto.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	page, err := c.feedService.GetFeed(r.Context(), dto.ToFindParams())
	if err != nil {
		writeError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, page)
}
