package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/claimdesk/claimdesk/modules/cases/domain/aggregates/casefile"
	"github.com/claimdesk/claimdesk/modules/cases/presentation/controllers/dtos"
	"github.com/claimdesk/claimdesk/modules/cases/services"
	"github.com/claimdesk/claimdesk/pkg/application"
	"github.com/claimdesk/claimdesk/pkg/composables"
	"github.com/claimdesk/claimdesk/pkg/httpapi"
	"github.com/claimdesk/claimdesk/pkg/serrors"
)

type CasesController struct {
	app      application.Application
	service  *services.CaseFileService
	basePath string
}

func NewCasesController(app application.Application) application.Controller {
	return &CasesController{
		app:      app,
		service:  app.Service(services.CaseFileService{}).(*services.CaseFileService),
		basePath: "/cases",
	}
}

func (c *CasesController) Key() string {
	return c.basePath
}

func (c *CasesController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}", c.Update).Methods(http.MethodPatch)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}", c.Delete).Methods(http.MethodDelete)
}

// List returns the cases visible to the calling actor.
func (c *CasesController) List(w http.ResponseWriter, r *http.Request) {
	pagination := composables.UsePaginated(r)
	params := &casefile.FindParams{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Limit:  pagination.Limit(),
		Offset: pagination.Offset(),
	}

	cases, total, err := c.service.GetPaginated(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"items":      dtos.NewCaseResponses(cases),
		"totalCount": total,
	})
}

func (c *CasesController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	entity, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewCaseResponse(entity))
}

func (c *CasesController) Create(w http.ResponseWriter, r *http.Request) {
	var dto dtos.CreateCaseDTO
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
	_ = httpapi.WriteJSON(w, http.StatusCreated, dtos.NewCaseResponse(created))
}

func (c *CasesController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var dto dtos.UpdateCaseDTO
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
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewCaseResponse(updated))
}

// Delete removes the case; its interactions remain in the feed with empty
// case context.
func (c *CasesController) Delete(w http.ResponseWriter, r *http.Request) {
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
