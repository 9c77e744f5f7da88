package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/aggregates/casefile"
)

type CaseResponse struct {
	ID                    uuid.UUID  `json:"id"`
	CaseNumber            string     `json:"caseNumber"`
	WorkspaceID           *uuid.UUID `json:"workspaceId,omitempty"`
	LawyerContactID       *uuid.UUID `json:"lawyerContactId,omitempty"`
	RentalContactID       *uuid.UUID `json:"rentalContactId,omitempty"`
	Status                string     `json:"status"`
	InsuranceCompany      string     `json:"insuranceCompany"`
	InsurancePolicyNumber string     `json:"insurancePolicyNumber"`
	ClientName            string     `json:"clientName"`
	ClientPhone           string     `json:"clientPhone"`
	AtFaultPartyName      string     `json:"atFaultPartyName"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

func NewCaseResponse(entity *casefile.CaseFile) *CaseResponse {
	return &CaseResponse{
		ID:                    entity.ID(),
		CaseNumber:            entity.CaseNumber(),
		WorkspaceID:           entity.WorkspaceID(),
		LawyerContactID:       entity.AssignedLawyerContactID(),
		RentalContactID:       entity.AssignedRentalCompanyContactID(),
		Status:                string(entity.Status()),
		InsuranceCompany:      entity.InsuranceCompany(),
		InsurancePolicyNumber: entity.InsurancePolicyNumber(),
		ClientName:            entity.ClientName(),
		ClientPhone:           entity.ClientPhone(),
		AtFaultPartyName:      entity.AtFaultPartyName(),
		CreatedAt:             entity.CreatedAt(),
		UpdatedAt:             entity.UpdatedAt(),
	}
}

func NewCaseResponses(entities []*casefile.CaseFile) []*CaseResponse {
	out := make([]*CaseResponse, 0, len(entities))
	for _, e := range entities {
		out = append(out, NewCaseResponse(e))
	}
	return out
}
