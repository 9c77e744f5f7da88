package services

import (
	"context"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/auditlog"
)

type AuditLogService struct {
	repo auditlog.Repository
}

func NewAuditLogService(repo auditlog.Repository) *AuditLogService {
	return &AuditLogService{repo: repo}
}

func (s *AuditLogService) List(ctx context.Context, params *auditlog.FindParams) ([]*auditlog.AuditLog, int64, error) {
	logs, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
