package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/auditlog"
	"github.com/claimdesk/claimdesk/modules/cases/services"
	"github.com/claimdesk/claimdesk/pkg/application"
	"github.com/claimdesk/claimdesk/pkg/composables"
	"github.com/claimdesk/claimdesk/pkg/httpapi"
	"github.com/claimdesk/claimdesk/pkg/types"
)

type AuditLogsController struct {
	app      application.Application
	service  *services.AuditLogService
	basePath string
}

func NewAuditLogsController(app application.Application) application.Controller {
	return &AuditLogsController{
		app:      app,
		service:  app.Service(services.AuditLogService{}).(*services.AuditLogService),
		basePath: "/audit-logs",
	}
}

func (c *AuditLogsController) Key() string {
	return c.basePath
}

func (c *AuditLogsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
}

// List is restricted to admins and developers.
func (c *AuditLogsController) List(w http.ResponseWriter, r *http.Request) {
	actor, err := composables.UseActor(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if actor.Role != types.RoleAdmin && actor.Role != types.RoleDeveloper {
		_ = httpapi.WriteFailure(w, http.StatusForbidden, "FORBIDDEN", "insufficient privileges")
		return
	}

	pagination := composables.UsePaginated(r)
	params := buildAuditLogParams(r, pagination.Limit(), pagination.Offset())

	logs, total, err := c.service.List(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"items":      auditLogItems(logs),
		"totalCount": total,
	})
}

func buildAuditLogParams(r *http.Request, limit, offset int) *auditlog.FindParams {
	q := r.URL.Query()
	params := &auditlog.FindParams{
		TargetType: strings.TrimSpace(q.Get("targetType")),
		Limit:      limit,
		Offset:     offset,
	}
	if id, err := uuid.Parse(strings.TrimSpace(q.Get("actorId"))); err == nil {
		params.ActorID = &id
	}
	if ts, err := time.Parse(time.DateOnly, strings.TrimSpace(q.Get("from"))); err == nil {
		params.From = &ts
	}
	if ts, err := time.Parse(time.DateOnly, strings.TrimSpace(q.Get("to"))); err == nil {
		params.To = &ts
	}
	return params
}

func auditLogItems(logs []*auditlog.AuditLog) []map[string]any {
	items := make([]map[string]any, 0, len(logs))
	for _, l := range logs {
		items = append(items, map[string]any{
			"id":         l.ID,
			"actorId":    l.ActorID,
			"action":     l.Action,
			"targetType": l.TargetType,
			"targetId":   l.TargetID,
			"status":     string(l.Status),
			"ip":         l.IP,
			"userAgent":  l.UserAgent,
			"createdAt":  l.CreatedAt,
		})
	}
	return items
}
