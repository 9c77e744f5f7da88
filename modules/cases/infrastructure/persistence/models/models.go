package models

import (
	"time"

	"github.com/google/uuid"
)

type CaseFile struct {
	ID                             uuid.UUID
	CaseNumber                     string
	WorkspaceID                    *uuid.UUID
	AssignedLawyerContactID        *uuid.UUID
	AssignedRentalCompanyContactID *uuid.UUID
	Status                         string
	InsuranceCompany               string
	InsurancePolicyNumber          string
	ClientName                     string
	ClientPhone                    string
	AtFaultPartyName               string
	CreatedAt                      time.Time
	UpdatedAt                      time.Time
}

type Interaction struct {
	ID          uuid.UUID
	CaseID      uuid.UUID
	CaseNumber  string
	Type        string
	Priority    string
	Status      string
	Tags        []string
	Situation   string
	ActionTaken string
	Outcome     string
	OccurredAt  time.Time
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FeedRow is an interaction row with its COALESCEd parent-case columns.
// The case columns are empty strings when the case no longer exists.
type FeedRow struct {
	Interaction
	ClientName        string
	InsuranceCompany  string
	LawyerName        string
	RentalCompanyName string
	CaseStatus        string
}

type Workspace struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Contact struct {
	ID        uuid.UUID
	Type      string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AuditLog struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	Action     string
	TargetType string
	TargetID   uuid.UUID
	Status     string
	IP         string
	UserAgent  string
	CreatedAt  time.Time
}
