package casefile

import (
	"context"

	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/access"
)

type FindParams struct {
	Search string // substring over case number and client name
	Limit  int
	Offset int
}

type Repository interface {
	GetPaginated(ctx context.Context, scope access.Scope, params *FindParams) ([]*CaseFile, int64, error)
	// Single-case lookups carry the visibility scope too; a case outside
	// the scope reads as not found.
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*CaseFile, error)
	GetByCaseNumber(ctx context.Context, scope access.Scope, caseNumber string) (*CaseFile, error)
	Create(ctx context.Context, entity *CaseFile) error
	Update(ctx context.Context, entity *CaseFile) error
	// Delete removes the case only. Interactions owned by it are left in
	// place and surface in the feed with empty case context.
	Delete(ctx context.Context, id uuid.UUID) error
}
