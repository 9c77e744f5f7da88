package auditlog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// AuditLog records one write-path action against a target entity.
type AuditLog struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	Action     string
	TargetType string
	TargetID   uuid.UUID
	Status     Status
	IP         string
	UserAgent  string
	CreatedAt  time.Time
}

type FindParams struct {
	ActorID    *uuid.UUID
	TargetType string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]*AuditLog, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	Create(ctx context.Context, log *AuditLog) error
}
