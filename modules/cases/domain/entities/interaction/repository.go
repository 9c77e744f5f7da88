package interaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/access"
)

// Filter holds the recognized feed filters. Zero values mean "not set" and
// contribute nothing to the compiled query; there is no pass-through for
// unrecognized keys.
type Filter struct {
	CaseNumber       string // substring, case-insensitive
	CaseID           *uuid.UUID
	Types            []Type
	Priorities       []Priority
	Statuses         []Status
	DateFrom         *time.Time
	DateTo           *time.Time
	SearchQuery      string // full-text over situation, action taken, outcome
	Tags             []string
	InsuranceCompany string // substring on joined case fields
	LawyerAssigned   string
	RentalCompany    string
}

type SortField string

const (
	SortByTimestamp  SortField = "timestamp"
	SortByCaseNumber SortField = "caseNumber"
	SortByPriority   SortField = "priority"
	SortByStatus     SortField = "status"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type Sort struct {
	Field     SortField
	Direction SortDirection
}

// Normalize replaces any field outside the allow-list with the default
// timestamp sort and any unknown direction with descending. It never
// errors.
func (s Sort) Normalize() Sort {
	switch s.Field {
	case SortByTimestamp, SortByCaseNumber, SortByPriority, SortByStatus:
	default:
		s.Field = SortByTimestamp
	}
	switch s.Direction {
	case SortAsc, SortDesc:
	default:
		s.Direction = SortDesc
	}
	return s
}

type FindParams struct {
	Filter   Filter
	Sort     Sort
	Page     int
	PageSize int
}

type Repository interface {
	// GetPaginated fetches one feed page under the given visibility scope.
	// The scope is not optional; callers that want everything pass an
	// unrestricted scope explicitly.
	GetPaginated(ctx context.Context, scope access.Scope, params *FindParams) (*PageResult, error)
	Count(ctx context.Context, scope access.Scope, filter Filter) (int64, error)
	// GetByID applies the same visibility scope as the feed; a row outside
	// the scope reads as not found.
	GetByID(ctx context.Context, scope access.Scope, id uuid.UUID) (*Interaction, error)
	Create(ctx context.Context, entity *Interaction) error
	Update(ctx context.Context, entity *Interaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}
