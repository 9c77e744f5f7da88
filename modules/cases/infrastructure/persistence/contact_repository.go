package persistence

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/contact"
	"github.com/claimdesk/claimdesk/modules/cases/infrastructure/persistence/models"
	"github.com/claimdesk/claimdesk/pkg/composables"
)

var ErrContactNotFound = errors.New("contact not found")

const (
	contactFindQuery   = `SELECT id, type, name, email, phone, created_at, updated_at FROM contacts`
	contactInsertQuery = `
        INSERT INTO contacts (id, type, name, email, phone, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`
	contactUpdateQuery = `
        UPDATE contacts SET type = $1, name = $2, email = $3, phone = $4, updated_at = $5
        WHERE id = $6`
	contactDeleteQuery = `DELETE FROM contacts WHERE id = $1`
)

type PgContactRepository struct{}

func NewContactRepository() contact.Repository {
	return &PgContactRepository{}
}

func (r *PgContactRepository) GetAll(ctx context.Context) ([]*contact.Contact, error) {
	return r.queryContacts(ctx, contactFindQuery+" ORDER BY name")
}

func (r *PgContactRepository) GetByType(ctx context.Context, contactType contact.Type) ([]*contact.Contact, error) {
	return r.queryContacts(ctx, contactFindQuery+" WHERE type = $1 ORDER BY name", string(contactType))
}

func (r *PgContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	var row models.Contact
	if err := tx.QueryRow(ctx, contactFindQuery+" WHERE id = $1", id).Scan(
		&row.ID, &row.Type, &row.Name, &row.Email, &row.Phone, &row.CreatedAt, &row.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContactNotFound
		}
		return nil, errors.Wrap(err, "failed to get contact")
	}
	return toDomainContact(&row), nil
}

func (r *PgContactRepository) Create(ctx context.Context, entity *contact.Contact) error {
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

	if _, err := tx.Exec(ctx, contactInsertQuery,
		entity.ID, string(entity.Type), entity.Name, entity.Email, entity.Phone,
		entity.CreatedAt, entity.UpdatedAt,
	); err != nil {
		return errors.Wrap(err, "failed to create contact")
	}
	return nil
}

func (r *PgContactRepository) Update(ctx context.Context, entity *contact.Contact) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}

	entity.UpdatedAt = time.Now()
	tag, err := tx.Exec(ctx, contactUpdateQuery,
		string(entity.Type), entity.Name, entity.Email, entity.Phone, entity.UpdatedAt, entity.ID,
	)
	if err != nil {
		return errors.Wrap(err, "failed to update contact")
	}
	if tag.RowsAffected() == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *PgContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}

	tag, err := tx.Exec(ctx, contactDeleteQuery, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete contact")
	}
	if tag.RowsAffected() == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *PgContactRepository) queryContacts(ctx context.Context, query string, args ...any) ([]*contact.Contact, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query contacts")
	}
	defer rows.Close()

	var results []*contact.Contact
	for rows.Next() {
		var row models.Contact
		if err := rows.Scan(
			&row.ID, &row.Type, &row.Name, &row.Email, &row.Phone, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan contact row")
		}
		results = append(results, toDomainContact(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read contact rows")
	}
	return results, nil
}
