package persistence

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/claimdesk/claimdesk/modules/cases/domain/access"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/interaction"
	"github.com/claimdesk/claimdesk/modules/cases/infrastructure/persistence/models"
	"github.com/claimdesk/claimdesk/pkg/composables"
	"github.com/claimdesk/claimdesk/pkg/repo"
)

var ErrInteractionNotFound = errors.New("interaction not found")

const (
	// Interactions are left-joined to their parent case so a deleted case
	// neutralizes the case-derived columns instead of hiding the row.
	interactionFeedQuery = `
        SELECT
            i.id,
            i.case_id,
            i.case_number,
            i.type,
            i.priority,
            i.status,
            i.tags,
            i.situation,
            i.action_taken,
            i.outcome,
            i.occurred_at,
            i.created_by,
            i.created_at,
            i.updated_at,
            COALESCE(c.client_name, ''),
            COALESCE(c.insurance_company, ''),
            COALESCE(lc.name, ''),
            COALESCE(rc.name, ''),
            COALESCE(c.status, '')
        FROM interactions i
        LEFT JOIN cases c ON c.id = i.case_id
        LEFT JOIN contacts lc ON lc.id = c.assigned_lawyer_contact_id
        LEFT JOIN contacts rc ON rc.id = c.assigned_rental_company_contact_id`

	interactionFeedCountQuery = `
        SELECT COUNT(i.id)
        FROM interactions i
        LEFT JOIN cases c ON c.id = i.case_id
        LEFT JOIN contacts lc ON lc.id = c.assigned_lawyer_contact_id
        LEFT JOIN contacts rc ON rc.id = c.assigned_rental_company_contact_id`

	// Lookups join the parent case so the visibility scope's case columns
	// resolve; an out-of-scope row reads as not found.
	interactionFindQuery = `
        SELECT
            i.id, i.case_id, i.case_number, i.type, i.priority, i.status,
            i.tags, i.situation, i.action_taken, i.outcome, i.occurred_at,
            i.created_by, i.created_at, i.updated_at
        FROM interactions i
        LEFT JOIN cases c ON c.id = i.case_id`

	interactionInsertQuery = `
        INSERT INTO interactions (
            id, case_id, case_number, type, priority, status, tags,
            situation, action_taken, outcome, occurred_at, created_by,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	interactionUpdateQuery = `
        UPDATE interactions
        SET priority = $1, status = $2, tags = $3, updated_at = $4
        WHERE id = $5`

	interactionDeleteQuery = `DELETE FROM interactions WHERE id = $1`
)

const defaultFeedPageSize = 20

type PgInteractionRepository struct{}

func NewInteractionRepository() interaction.Repository {
	return &PgInteractionRepository{}
}

// GetPaginated runs the feed fetch: an over-fetch of pageSize+1 rows to
// detect further pages, then an independent count query with the same
// predicate. Both run sequentially on the caller's connection; a failure of
// either fails the whole page request.
func (r *PgInteractionRepository) GetPaginated(
	ctx context.Context,
	scope access.Scope,
	params *interaction.FindParams,
) (*interaction.PageResult, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = defaultFeedPageSize
	}
	offset := (page - 1) * pageSize

	where, args, err := buildFeedWhere(scope, params.Filter).Build(1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile feed predicate")
	}

	query := repo.Join(
		interactionFeedQuery,
		repo.JoinWhere(where...),
		feedOrderClause(params.Sort),
		repo.FormatLimitOffset(pageSize+1, offset),
	)

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query interaction feed")
	}
	defer rows.Close()

	var feedRows []interaction.FeedRow
	for rows.Next() {
		var row models.FeedRow
		if err := rows.Scan(
			&row.ID,
			&row.CaseID,
			&row.CaseNumber,
			&row.Type,
			&row.Priority,
			&row.Status,
			&row.Tags,
			&row.Situation,
			&row.ActionTaken,
			&row.Outcome,
			&row.OccurredAt,
			&row.CreatedBy,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.ClientName,
			&row.InsuranceCompany,
			&row.LawyerName,
			&row.RentalCompanyName,
			&row.CaseStatus,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan feed row")
		}
		feedRows = append(feedRows, toDomainFeedRow(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read feed rows")
	}

	hasMore := len(feedRows) > pageSize
	if hasMore {
		feedRows = feedRows[:pageSize]
	}

	total, err := r.Count(ctx, scope, params.Filter)
	if err != nil {
		return nil, err
	}

	return &interaction.PageResult{
		Rows:       feedRows,
		TotalCount: total,
		HasMore:    hasMore,
	}, nil
}

func (r *PgInteractionRepository) Count(
	ctx context.Context,
	scope access.Scope,
	filter interaction.Filter,
) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get transaction")
	}

	where, args, err := buildFeedWhere(scope, filter).Build(1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to compile feed predicate")
	}

	query := repo.Join(interactionFeedCountQuery, repo.JoinWhere(where...))

	var count int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count interactions")
	}
	return count, nil
}

func (r *PgInteractionRepository) GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*interaction.Interaction, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	where, args, err := buildLookupWhere(scope, "i.id", id).Build(1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile lookup predicate")
	}
	query := repo.Join(interactionFindQuery, repo.JoinWhere(where...))

	var row models.Interaction
	if err := tx.QueryRow(ctx, query, args...).Scan(
		&row.ID,
		&row.CaseID,
		&row.CaseNumber,
		&row.Type,
		&row.Priority,
		&row.Status,
		&row.Tags,
		&row.Situation,
		&row.ActionTaken,
		&row.Outcome,
		&row.OccurredAt,
		&row.CreatedBy,
		&row.CreatedAt,
		&row.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInteractionNotFound
		}
		return nil, errors.Wrap(err, "failed to get interaction")
	}
	return toDomainInteraction(&row), nil
}

func (r *PgInteractionRepository) Create(ctx context.Context, entity *interaction.Interaction) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}

	now := time.Now()
	if entity.ID == uuid.Nil {
		entity.ID = uuid.New()
	}
	if entity.OccurredAt.IsZero() {
		entity.OccurredAt = now
	}
	entity.CreatedAt = now
	entity.UpdatedAt = now

	if _, err := tx.Exec(ctx, interactionInsertQuery,
		entity.ID,
		entity.CaseID,
		entity.CaseNumber,
		string(entity.Type),
		string(entity.Priority),
		string(entity.Status),
		entity.Tags,
		entity.Situation,
		entity.ActionTaken,
		entity.Outcome,
		entity.OccurredAt,
		entity.CreatedBy,
		entity.CreatedAt,
		entity.UpdatedAt,
	); err != nil {
		return errors.Wrap(err, "failed to create interaction")
	}
	return nil
}

// Update touches only the mutable fields; content fields are immutable
// after creation.
func (r *PgInteractionRepository) Update(ctx context.Context, entity *interaction.Interaction) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}

	entity.UpdatedAt = time.Now()
	tag, err := tx.Exec(ctx, interactionUpdateQuery,
		string(entity.Priority),
		string(entity.Status),
		entity.Tags,
		entity.UpdatedAt,
		entity.ID,
	)
	if err != nil {
		return errors.Wrap(err, "failed to update interaction")
	}
	if tag.RowsAffected() == 0 {
		return ErrInteractionNotFound
	}
	return nil
}

func (r *PgInteractionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}

	tag, err := tx.Exec(ctx, interactionDeleteQuery, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete interaction")
	}
	if tag.RowsAffected() == 0 {
		return ErrInteractionNotFound
	}
	return nil
}
