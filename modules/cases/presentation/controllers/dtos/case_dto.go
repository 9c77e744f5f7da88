package dtos

import (
	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/aggregates/casefile"
)

type CreateCaseDTO struct {
	CaseNumber            string `json:"caseNumber" validate:"required,max=100"`
	WorkspaceID           string `json:"workspaceId" validate:"omitempty,uuid"`
	Status                string `json:"status" validate:"omitempty,oneof=new active on_hold settled closed"`
	InsuranceCompany      string `json:"insuranceCompany" validate:"omitempty,max=255"`
	InsurancePolicyNumber string `json:"insurancePolicyNumber" validate:"omitempty,max=100"`
	ClientName            string `json:"clientName" validate:"omitempty,max=255"`
	ClientPhone           string `json:"clientPhone" validate:"omitempty,max=50"`
	AtFaultPartyName      string `json:"atFaultPartyName" validate:"omitempty,max=255"`
}

func (d *CreateCaseDTO) Validate() error {
	return validateStruct(d)
}

func (d *CreateCaseDTO) ToEntity() *casefile.CaseFile {
	entity := casefile.New(d.CaseNumber, d.ClientName)
	if id, err := uuid.Parse(d.WorkspaceID); err == nil {
		entity.AssignWorkspace(&id)
	}
	if d.Status != "" {
		entity.SetStatus(casefile.Status(d.Status))
	}
	entity.SetInsurance(d.InsuranceCompany, d.InsurancePolicyNumber)
	entity.SetParties(d.ClientName, d.ClientPhone, d.AtFaultPartyName)
	return entity
}

// UpdateCaseDTO overlays present fields only; nil leaves the field as is.
type UpdateCaseDTO struct {
	WorkspaceID           *string `json:"workspaceId" validate:"omitempty,uuid"`
	LawyerContactID       *string `json:"lawyerContactId" validate:"omitempty,uuid"`
	RentalContactID       *string `json:"rentalContactId" validate:"omitempty,uuid"`
	Status                *string `json:"status" validate:"omitempty,oneof=new active on_hold settled closed"`
	InsuranceCompany      *string `json:"insuranceCompany" validate:"omitempty,max=255"`
	InsurancePolicyNumber *string `json:"insurancePolicyNumber" validate:"omitempty,max=100"`
	ClientName            *string `json:"clientName" validate:"omitempty,max=255"`
	ClientPhone           *string `json:"clientPhone" validate:"omitempty,max=50"`
	AtFaultPartyName      *string `json:"atFaultPartyName" validate:"omitempty,max=255"`
}

func (d *UpdateCaseDTO) Validate() error {
	return validateStruct(d)
}

func (d *UpdateCaseDTO) Apply(entity *casefile.CaseFile) {
	if d.WorkspaceID != nil {
		if id, err := uuid.Parse(*d.WorkspaceID); err == nil {
			entity.AssignWorkspace(&id)
		}
	}
	if d.LawyerContactID != nil {
		if id, err := uuid.Parse(*d.LawyerContactID); err == nil {
			entity.AssignLawyer(&id)
		}
	}
	if d.RentalContactID != nil {
		if id, err := uuid.Parse(*d.RentalContactID); err == nil {
			entity.AssignRentalCompany(&id)
		}
	}
	if d.Status != nil {
		entity.SetStatus(casefile.Status(*d.Status))
	}
	if d.InsuranceCompany != nil || d.InsurancePolicyNumber != nil {
		company := entity.InsuranceCompany()
		policy := entity.InsurancePolicyNumber()
		if d.InsuranceCompany != nil {
			company = *d.InsuranceCompany
		}
		if d.InsurancePolicyNumber != nil {
			policy = *d.InsurancePolicyNumber
		}
		entity.SetInsurance(company, policy)
	}
	if d.ClientName != nil || d.ClientPhone != nil || d.AtFaultPartyName != nil {
		name := entity.ClientName()
		phone := entity.ClientPhone()
		atFault := entity.AtFaultPartyName()
		if d.ClientName != nil {
			name = *d.ClientName
		}
		if d.ClientPhone != nil {
			phone = *d.ClientPhone
		}
		if d.AtFaultPartyName != nil {
			atFault = *d.AtFaultPartyName
		}
		entity.SetParties(name, phone, atFault)
	}
}
