package interaction

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeCall    Type = "call"
	TypeEmail   Type = "email"
	TypeMeeting Type = "meeting"
	TypeNote    Type = "note"
	TypeSMS     Type = "sms"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type Status string

const (
	StatusOpen     Status = "open"
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
	StatusClosed   Status = "closed"
)

// Interaction is a single logged event on a case. Content fields are written
// once at creation; status, priority and tags stay mutable. Deletion is a
// hard delete.
type Interaction struct {
	ID          uuid.UUID
	CaseID      uuid.UUID
	CaseNumber  string // denormalized from the owning case
	Type        Type
	Priority    Priority
	Status      Status
	Tags        []string
	Situation   string
	ActionTaken string
	Outcome     string
	OccurredAt  time.Time
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CaseContext carries the denormalized parent-case fields attached to a feed
// row. When the parent case has been deleted all fields are empty rather
// than the row being dropped.
type CaseContext struct {
	ClientName        string
	InsuranceCompany  string
	LawyerName        string
	RentalCompanyName string
	CaseStatus        string
}

// FeedRow is one interaction joined with its parent-case context.
type FeedRow struct {
	Interaction Interaction
	Case        CaseContext
}

// PageResult is one page of the interaction feed.
type PageResult struct {
	Rows       []FeedRow
	TotalCount int64
	HasMore    bool
}
