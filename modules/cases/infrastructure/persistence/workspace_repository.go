package persistence

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/workspace"
	"github.com/claimdesk/claimdesk/modules/cases/infrastructure/persistence/models"
	"github.com/claimdesk/claimdesk/pkg/composables"
)

var ErrWorkspaceNotFound = errors.New("workspace not found")

const (
	workspaceFindQuery   = `SELECT id, name, created_at, updated_at FROM workspaces`
	workspaceInsertQuery = `INSERT INTO workspaces (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	workspaceUpdateQuery = `UPDATE workspaces SET name = $1, updated_at = $2 WHERE id = $3`
	workspaceDeleteQuery = `DELETE FROM workspaces WHERE id = $1`
)

type PgWorkspaceRepository struct{}

func NewWorkspaceRepository() workspace.Repository {
	return &PgWorkspaceRepository{}
}

func (r *PgWorkspaceRepository) GetAll(ctx context.Context) ([]*workspace.Workspace, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, workspaceFindQuery+" ORDER BY name")
	if err != nil {
		return nil, errors.Wrap(err, "failed to query workspaces")
	}
	defer rows.Close()

	var results []*workspace.Workspace
	for rows.Next() {
		var row models.Workspace
		if err := rows.Scan(&row.ID, &row.Name, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan workspace row")
		}
		results = append(results, toDomainWorkspace(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read workspace rows")
	}
	return results, nil
}

func (r *PgWorkspaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*workspace.Workspace, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	var row models.Workspace
	if err := tx.QueryRow(ctx, workspaceFindQuery+" WHERE id = $1", id).Scan(
		&row.ID, &row.Name, &row.CreatedAt, &row.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, errors.Wrap(err, "failed to get workspace")
	}
	return toDomainWorkspace(&row), nil
}

func (r *PgWorkspaceRepository) Create(ctx context.Context, entity *workspace.Workspace) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}

	if entity.ID == uuid.Nil {
		entity.ID = uuid.New()
	}
	now := time.Now()
	entity.CreatedAt = now
	entity.UpdatedAt = now

	if _, err := tx.Exec(ctx, workspaceInsertQuery, entity.ID, entity.Name, entity.CreatedAt, entity.UpdatedAt); err != nil {
		return errors.Wrap(err, "failed to create workspace")
	}
	return nil
}

func (r *PgWorkspaceRepository) Update(ctx context.Context, entity *workspace.Workspace) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}

	entity.UpdatedAt = time.Now()
	tag, err := tx.Exec(ctx, workspaceUpdateQuery, entity.Name, entity.UpdatedAt, entity.ID)
	if err != nil {
		return errors.Wrap(err, "failed to update workspace")
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkspaceNotFound
	}
	return nil
}

func (r *PgWorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}

	tag, err := tx.Exec(ctx, workspaceDeleteQuery, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete workspace")
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkspaceNotFound
	}
	return nil
}
