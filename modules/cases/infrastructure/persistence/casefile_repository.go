package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/access"
	"github.com/claimdesk/claimdesk/modules/cases/domain/aggregates/casefile"
	"github.com/claimdesk/claimdesk/modules/cases/infrastructure/persistence/models"
	"github.com/claimdesk/claimdesk/pkg/composables"
	"github.com/claimdesk/claimdesk/pkg/repo"
)

var ErrCaseNotFound = errors.New("case not found")

const (
	caseFindQuery = `
        SELECT
            c.id,
            c.case_number,
            c.workspace_id,
            c.assigned_lawyer_contact_id,
            c.assigned_rental_company_contact_id,
            c.status,
            c.insurance_company,
            c.insurance_policy_number,
            c.client_name,
            c.client_phone,
            c.at_fault_party_name,
            c.created_at,
            c.updated_at
        FROM cases c`

	caseCountQuery = `SELECT COUNT(c.id) FROM cases c`

	caseInsertQuery = `
        INSERT INTO cases (
            id, case_number, workspace_id, assigned_lawyer_contact_id,
            assigned_rental_company_contact_id, status, insurance_company,
            insurance_policy_number, client_name, client_phone,
            at_fault_party_name, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	caseUpdateQuery = `
        UPDATE cases
        SET workspace_id = $1,
            assigned_lawyer_contact_id = $2,
            assigned_rental_company_contact_id = $3,
            status = $4,
            insurance_company = $5,
            insurance_policy_number = $6,
            client_name = $7,
            client_phone = $8,
            at_fault_party_name = $9,
            updated_at = $10
        WHERE id = $11`

	// Interactions deliberately survive case deletion; the feed neutralizes
	// their case context instead.
	caseDeleteQuery = `DELETE FROM cases WHERE id = $1`
)

type PgCaseFileRepository struct{}

func NewCaseFileRepository() casefile.Repository {
	return &PgCaseFileRepository{}
}

func (r *PgCaseFileRepository) GetPaginated(
	ctx context.Context,
	scope access.Scope,
	params *casefile.FindParams,
) ([]*casefile.CaseFile, int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to get transaction")
	}

	b := repo.NewWhere(scope.Clause())
	if params.Search != "" {
		b.Add(repo.Or(
			repo.Contains("c.case_number", params.Search),
			repo.Contains("c.client_name", params.Search),
		))
	}
	where, args, err := b.Build(1)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to compile case predicate")
	}

	query := repo.Join(
		caseFindQuery,
		repo.JoinWhere(where...),
		"ORDER BY c.created_at DESC",
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)

	cases, err := r.queryCases(ctx, tx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	countQuery := repo.Join(caseCountQuery, repo.JoinWhere(where...))
	var total int64
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "failed to count cases")
	}
	return cases, total, nil
}

func (r *PgCaseFileRepository) GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*casefile.CaseFile, error) {
	return r.getOne(ctx, scope, "c.id", id)
}

func (r *PgCaseFileRepository) GetByCaseNumber(ctx context.Context, scope access.Scope, caseNumber string) (*casefile.CaseFile, error) {
	return r.getOne(ctx, scope, "c.case_number", caseNumber)
}

// getOne fetches a single case under the visibility scope. An existing but
// out-of-scope case reads as not found.
func (r *PgCaseFileRepository) getOne(ctx context.Context, scope access.Scope, column string, value any) (*casefile.CaseFile, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	where, args, err := buildLookupWhere(scope, column, value).Build(1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile lookup predicate")
	}
	query := repo.Join(caseFindQuery, repo.JoinWhere(where...))

	cases, err := r.queryCases(ctx, tx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, ErrCaseNotFound
	}
	return cases[0], nil
}

func (r *PgCaseFileRepository) Create(ctx context.Context, entity *casefile.CaseFile) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}

	row := toDBCaseFile(entity)
	now := time.Now()
	if _, err := tx.Exec(ctx, caseInsertQuery,
		row.ID,
		row.CaseNumber,
		row.WorkspaceID,
		row.AssignedLawyerContactID,
		row.AssignedRentalCompanyContactID,
		row.Status,
		row.InsuranceCompany,
		row.InsurancePolicyNumber,
		row.ClientName,
		row.ClientPhone,
		row.AtFaultPartyName,
		now,
		now,
	); err != nil {
		return errors.Wrap(err, fmt.Sprintf("failed to create case %s", row.CaseNumber))
	}
	return nil
}

func (r *PgCaseFileRepository) Update(ctx context.Context, entity *casefile.CaseFile) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}

	row := toDBCaseFile(entity)
	tag, err := tx.Exec(ctx, caseUpdateQuery,
		row.WorkspaceID,
		row.AssignedLawyerContactID,
		row.AssignedRentalCompanyContactID,
		row.Status,
		row.InsuranceCompany,
		row.InsurancePolicyNumber,
		row.ClientName,
		row.ClientPhone,
		row.AtFaultPartyName,
		time.Now(),
		row.ID,
	)
	if err != nil {
		return errors.Wrap(err, "failed to update case")
	}
	if tag.RowsAffected() == 0 {
		return ErrCaseNotFound
	}
	return nil
}

func (r *PgCaseFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get transaction")
	}

	tag, err := tx.Exec(ctx, caseDeleteQuery, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete case")
	}
	if tag.RowsAffected() == 0 {
		return ErrCaseNotFound
	}
	return nil
}

func (r *PgCaseFileRepository) queryCases(
	ctx context.Context,
	tx repo.Tx,
	query string,
	args ...any,
) ([]*casefile.CaseFile, error) {
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query cases")
	}
	defer rows.Close()

	var results []*casefile.CaseFile
	for rows.Next() {
		var row models.CaseFile
		if err := rows.Scan(
			&row.ID,
			&row.CaseNumber,
			&row.WorkspaceID,
			&row.AssignedLawyerContactID,
			&row.AssignedRentalCompanyContactID,
			&row.Status,
			&row.InsuranceCompany,
			&row.InsurancePolicyNumber,
			&row.ClientName,
			&row.ClientPhone,
			&row.AtFaultPartyName,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan case row")
		}
		results = append(results, toDomainCaseFile(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read case rows")
	}
	return results, nil
}
