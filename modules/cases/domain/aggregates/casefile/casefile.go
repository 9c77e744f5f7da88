package casefile

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNew        Status = "new"
	StatusActive     Status = "active"
	StatusOnHold     Status = "on_hold"
	StatusSettled    Status = "settled"
	StatusClosed     Status = "closed"
)

// CaseFile is a managed claim case. Ownership is split across three
// orthogonal relations: at most one workspace owns the case, and at most
// one lawyer contact and one rental-company contact are assigned to it.
// Status is a free enumeration; no transition graph is enforced.
type CaseFile struct {
	id                             uuid.UUID
	caseNumber                     string
	workspaceID                    *uuid.UUID
	assignedLawyerContactID        *uuid.UUID
	assignedRentalCompanyContactID *uuid.UUID
	status                         Status
	insuranceCompany               string
	insurancePolicyNumber          string
	clientName                     string
	clientPhone                    string
	atFaultPartyName               string
	createdAt                      time.Time
	updatedAt                      time.Time
}

func New(caseNumber, clientName string) *CaseFile {
	return &CaseFile{
		id:         uuid.New(),
		caseNumber: caseNumber,
		clientName: clientName,
		status:     StatusNew,
	}
}

func Hydrate(
	id uuid.UUID,
	caseNumber string,
	workspaceID *uuid.UUID,
	assignedLawyerContactID *uuid.UUID,
	assignedRentalCompanyContactID *uuid.UUID,
	status Status,
	insuranceCompany string,
	insurancePolicyNumber string,
	clientName string,
	clientPhone string,
	atFaultPartyName string,
	createdAt time.Time,
	updatedAt time.Time,
) *CaseFile {
	return &CaseFile{
		id:                             id,
		caseNumber:                     caseNumber,
		workspaceID:                    workspaceID,
		assignedLawyerContactID:        assignedLawyerContactID,
		assignedRentalCompanyContactID: assignedRentalCompanyContactID,
		status:                         status,
		insuranceCompany:               insuranceCompany,
		insurancePolicyNumber:          insurancePolicyNumber,
		clientName:                     clientName,
		clientPhone:                    clientPhone,
		atFaultPartyName:               atFaultPartyName,
		createdAt:                      createdAt,
		updatedAt:                      updatedAt,
	}
}

func (c *CaseFile) ID() uuid.UUID                             { return c.id }
func (c *CaseFile) CaseNumber() string                        { return c.caseNumber }
func (c *CaseFile) WorkspaceID() *uuid.UUID                   { return c.workspaceID }
func (c *CaseFile) AssignedLawyerContactID() *uuid.UUID       { return c.assignedLawyerContactID }
func (c *CaseFile) AssignedRentalCompanyContactID() *uuid.UUID {
	return c.assignedRentalCompanyContactID
}
func (c *CaseFile) Status() Status                { return c.status }
func (c *CaseFile) InsuranceCompany() string      { return c.insuranceCompany }
func (c *CaseFile) InsurancePolicyNumber() string { return c.insurancePolicyNumber }
func (c *CaseFile) ClientName() string            { return c.clientName }
func (c *CaseFile) ClientPhone() string           { return c.clientPhone }
func (c *CaseFile) AtFaultPartyName() string      { return c.atFaultPartyName }
func (c *CaseFile) CreatedAt() time.Time          { return c.createdAt }
func (c *CaseFile) UpdatedAt() time.Time          { return c.updatedAt }

func (c *CaseFile) SetStatus(status Status) { c.status = status }

func (c *CaseFile) AssignWorkspace(id *uuid.UUID)            { c.workspaceID = id }
func (c *CaseFile) AssignLawyer(contactID *uuid.UUID)        { c.assignedLawyerContactID = contactID }
func (c *CaseFile) AssignRentalCompany(contactID *uuid.UUID) { c.assignedRentalCompanyContactID = contactID }

func (c *CaseFile) SetInsurance(company, policyNumber string) {
	c.insuranceCompany = company
	c.insurancePolicyNumber = policyNumber
}

func (c *CaseFile) SetParties(clientName, clientPhone, atFaultPartyName string) {
	c.clientName = clientName
	c.clientPhone = clientPhone
	c.atFaultPartyName = atFaultPartyName
}
