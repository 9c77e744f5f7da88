package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/contact"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/workspace"
	"github.com/claimdesk/claimdesk/modules/cases/presentation/controllers/dtos"
	"github.com/claimdesk/claimdesk/modules/cases/services"
	"github.com/claimdesk/claimdesk/pkg/application"
	"github.com/claimdesk/claimdesk/pkg/httpapi"
	"github.com/claimdesk/claimdesk/pkg/serrors"
)

// DirectoryController serves the lookup entities cases are assigned
// against.
type DirectoryController struct {
	app     application.Application
	service *services.DirectoryService
}

func NewDirectoryController(app application.Application) application.Controller {
	return &DirectoryController{
		app:     app,
		service: app.Service(services.DirectoryService{}).(*services.DirectoryService),
	}
}

func (c *DirectoryController) Key() string {
	return "/directory"
}

func (c *DirectoryController) Register(r *mux.Router) {
	workspaces := r.PathPrefix("/workspaces").Subrouter()
	workspaces.HandleFunc("", c.ListWorkspaces).Methods(http.MethodGet)
	workspaces.HandleFunc("", c.CreateWorkspace).Methods(http.MethodPost)
	workspaces.HandleFunc("/{id:[0-9a-fA-F-]+}", c.DeleteWorkspace).Methods(http.MethodDelete)

	contacts := r.PathPrefix("/contacts").Subrouter()
	contacts.HandleFunc("", c.ListContacts).Methods(http.MethodGet)
	contacts.HandleFunc("", c.CreateContact).Methods(http.MethodPost)
	contacts.HandleFunc("/{id:[0-9a-fA-F-]+}", c.DeleteContact).Methods(http.MethodDelete)
}

func (c *DirectoryController) ListWorkspaces(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.Workspaces(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewWorkspaceResponses(items))
}

func (c *DirectoryController) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var dto dtos.WorkspaceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, r, serrors.NewValidationError("invalid JSON body"))
		return
	}
	if err := dto.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	if err := c.service.CreateWorkspace(r.Context(), &workspace.Workspace{Name: dto.Name}); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (c *DirectoryController) DeleteWorkspace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.service.DeleteWorkspace(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListContacts optionally filters by type via the "type" query parameter.
func (c *DirectoryController) ListContacts(w http.ResponseWriter, r *http.Request) {
	contactType := strings.TrimSpace(r.URL.Query().Get("type"))

	var (
		items []*contact.Contact
		err   error
	)
	if contactType != "" {
		items, err = c.service.ContactsByType(r.Context(), contact.Type(contactType))
	} else {
		items, err = c.service.Contacts(r.Context())
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewContactResponses(items))
}

func (c *DirectoryController) CreateContact(w http.ResponseWriter, r *http.Request) {
	var dto dtos.ContactDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, r, serrors.NewValidationError("invalid JSON body"))
		return
	}
	if err := dto.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	if err := c.service.CreateContact(r.Context(), dto.ToEntity()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (c *DirectoryController) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.service.DeleteContact(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
