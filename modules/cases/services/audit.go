package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/auditlog"
	"github.com/claimdesk/claimdesk/pkg/composables"
)

// auditRecorder writes one audit entry per write-path action. Recording runs
// after the action's transaction so a failed insert can never roll back the
// action itself; failures are logged and swallowed.
type auditRecorder struct {
	repo auditlog.Repository
}

func (a *auditRecorder) record(ctx context.Context, action, targetType string, targetID uuid.UUID, actionErr error) {
	if a.repo == nil {
		return
	}
	status := auditlog.StatusSuccess
	if actionErr != nil {
		status = auditlog.StatusFailure
	}
	entry := &auditlog.AuditLog{
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Status:     status,
	}
	if actor, err := composables.UseActor(ctx); err == nil {
		entry.ActorID = actor.ID
	}
	if ip, ok := composables.UseIP(ctx); ok {
		entry.IP = ip
	}
	if ua, ok := composables.UseUserAgent(ctx); ok {
		entry.UserAgent = ua
	}
	if err := a.repo.Create(ctx, entry); err != nil {
		composables.UseLogger(ctx).WithError(err).
			WithField("action", action).
			Warn("failed to write audit log entry")
	}
}
