package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/claimdesk/claimdesk/modules/cases/presentation/controllers/dtos"
	"github.com/claimdesk/claimdesk/modules/cases/services"
	"github.com/claimdesk/claimdesk/pkg/application"
	"github.com/claimdesk/claimdesk/pkg/httpapi"
	"github.com/claimdesk/claimdesk/pkg/serrors"
)

type InteractionsController struct {
	app      application.Application
	service  *services.InteractionService
	basePath string
}

func NewInteractionsController(app application.Application) application.Controller {
	return &InteractionsController{
		app:      app,
		service:  app.Service(services.InteractionService{}).(*services.InteractionService),
		basePath: "/interactions",
	}
}

func (c *InteractionsController) Key() string {
	return c.basePath
}

func (c *InteractionsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}", c.Update).Methods(http.MethodPatch)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}", c.Delete).Methods(http.MethodDelete)
}

func (c *InteractionsController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	entity, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewInteractionResponse(entity))
}

func (c *InteractionsController) Create(w http.ResponseWriter, r *http.Request) {
	var dto dtos.CreateInteractionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, r, serrors.NewValidationError("invalid JSON body"))
		return
	}
	if err := dto.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := c.service.Create(r.Context(), dto.ToEntity())
	if err != nil {
		writeError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dtos.NewInteractionResponse(created))
}

func (c *InteractionsController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var dto dtos.UpdateInteractionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, r, serrors.NewValidationError("invalid JSON body"))
		return
	}
	if err := dto.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	entity, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	dto.Apply(entity)

	updated, err := c.service.Update(r.Context(), entity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewInteractionResponse(updated))
}

func (c *InteractionsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, serrors.NewValidationError("id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
