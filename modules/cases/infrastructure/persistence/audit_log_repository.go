package persistence

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/auditlog"
	"github.com/claimdesk/claimdesk/modules/cases/infrastructure/persistence/models"
	"github.com/claimdesk/claimdesk/pkg/composables"
	"github.com/claimdesk/claimdesk/pkg/repo"
)

const (
	auditLogSelectQuery = `
        SELECT id, actor_id, action, target_type, target_id, status, ip, user_agent, created_at
        FROM audit_logs`
	auditLogCountQuery  = `SELECT COUNT(*) FROM audit_logs`
	auditLogInsertQuery = `
        INSERT INTO audit_logs (id, actor_id, action, target_type, target_id, status, ip, user_agent, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
)

type PgAuditLogRepository struct{}

func NewAuditLogRepository() auditlog.Repository {
	return &PgAuditLogRepository{}
}

func buildAuditLogWhere(params *auditlog.FindParams) *repo.WhereBuilder {
	where := repo.NewWhere(repo.All())
	if params.ActorID != nil {
		where.Add(repo.Eq("actor_id", *params.ActorID))
	}
	if params.TargetType != "" {
		where.Add(repo.Eq("target_type", params.TargetType))
	}
	if params.From != nil {
		where.Add(repo.Gte("created_at", *params.From))
	}
	if params.To != nil {
		where.Add(repo.Lte("created_at", *params.To))
	}
	return where
}

func (r *PgAuditLogRepository) List(ctx context.Context, params *auditlog.FindParams) ([]*auditlog.AuditLog, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	exprs, args, err := buildAuditLogWhere(params).Build(1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build audit log filters")
	}

	query := repo.Join(
		auditLogSelectQuery,
		repo.JoinWhere(exprs...),
		"ORDER BY created_at DESC",
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query audit logs")
	}
	defer rows.Close()

	var logs []*auditlog.AuditLog
	for rows.Next() {
		var row models.AuditLog
		if err := rows.Scan(
			&row.ID, &row.ActorID, &row.Action, &row.TargetType, &row.TargetID,
			&row.Status, &row.IP, &row.UserAgent, &row.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan audit log row")
		}
		logs = append(logs, toDomainAuditLog(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read audit log rows")
	}
	return logs, nil
}

func (r *PgAuditLogRepository) Count(ctx context.Context, params *auditlog.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get transaction")
	}

	exprs, args, err := buildAuditLogWhere(params).Build(1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to build audit log filters")
	}

	var count int64
	query := repo.Join(auditLogCountQuery, repo.JoinWhere(exprs...))
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count audit logs")
	}
	return count, nil
}

func (r *PgAuditLogRepository) Create(ctx context.Context, log *auditlog.AuditLog) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}

	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	if _, err := tx.Exec(ctx, auditLogInsertQuery,
		log.ID, log.ActorID, log.Action, log.TargetType, log.TargetID,
		string(log.Status), log.IP, log.UserAgent, log.CreatedAt,
	); err != nil {
		return errors.Wrap(err, "failed to create audit log")
	}
	return nil
}
