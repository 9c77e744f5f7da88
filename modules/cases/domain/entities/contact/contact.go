package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeLawyer        Type = "Lawyer"
	TypeRentalCompany Type = "Rental Company"
	TypeInsurer       Type = "Insurer"
	TypeOther         Type = "Other"
)

// Contact is an external party that can be the assignment target of cases
// and the identity anchor of a workspace-user actor.
type Contact struct {
	ID        uuid.UUID
	Type      Type
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository interface {
	GetAll(ctx context.Context) ([]*Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Contact, error)
	GetByType(ctx context.Context, contactType Type) ([]*Contact, error)
	Create(ctx context.Context, entity *Contact) error
	Update(ctx context.Context, entity *Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
}
