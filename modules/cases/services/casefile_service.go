package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/access"
	"github.com/claimdesk/claimdesk/modules/cases/domain/aggregates/casefile"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/auditlog"
	"github.com/claimdesk/claimdesk/pkg/composables"
)

const caseTargetType = "case"

type CaseFileService struct {
	repo  casefile.Repository
	audit auditRecorder
}

func NewCaseFileService(repo casefile.Repository, auditLogs auditlog.Repository) *CaseFileService {
	return &CaseFileService{
		repo:  repo,
		audit: auditRecorder{repo: auditLogs},
	}
}

// GetPaginated lists the cases visible to the context actor.
func (s *CaseFileService) GetPaginated(ctx context.Context, params *casefile.FindParams) ([]*casefile.CaseFile, int64, error) {
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return nil, 0, err
	}
	if params != nil {
		params.Search = strings.TrimSpace(params.Search)
	}
	return s.repo.GetPaginated(ctx, access.ScopeFor(actor), params)
}

func (s *CaseFileService) GetByID(ctx context.Context, id uuid.UUID) (*casefile.CaseFile, error) {
	scope, err := useScope(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, scope, id)
}

func (s *CaseFileService) GetByCaseNumber(ctx context.Context, caseNumber string) (*casefile.CaseFile, error) {
	scope, err := useScope(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByCaseNumber(ctx, scope, caseNumber)
}

func (s *CaseFileService) Create(ctx context.Context, entity *casefile.CaseFile) (*casefile.CaseFile, error) {
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Create(txCtx, entity)
	})
	s.audit.record(ctx, "case.create", caseTargetType, entity.ID(), err)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *CaseFileService) Update(ctx context.Context, entity *casefile.CaseFile) (*casefile.CaseFile, error) {
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Update(txCtx, entity)
	})
	s.audit.record(ctx, "case.update", caseTargetType, entity.ID(), err)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// Delete removes the case only. Its interactions stay behind and keep
// appearing in the feed with empty case context.
func (s *CaseFileService) Delete(ctx context.Context, id uuid.UUID) error {
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	})
	s.audit.record(ctx, "case.delete", caseTargetType, id, err)
	return err
}
