package workspace

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Workspace struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository interface {
	GetAll(ctx context.Context) ([]*Workspace, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Workspace, error)
	Create(ctx context.Context, entity *Workspace) error
	Update(ctx context.Context, entity *Workspace) error
	Delete(ctx context.Context, id uuid.UUID) error
}
