package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/contact"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/workspace"
)

type WorkspaceDTO struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (d *WorkspaceDTO) Validate() error {
	return validateStruct(d)
}

type WorkspaceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewWorkspaceResponse(entity *workspace.Workspace) *WorkspaceResponse {
	return &WorkspaceResponse{
		ID:        entity.ID,
		Name:      entity.Name,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func NewWorkspaceResponses(entities []*workspace.Workspace) []*WorkspaceResponse {
	out := make([]*WorkspaceResponse, 0, len(entities))
	for _, e := range entities {
		out = append(out, NewWorkspaceResponse(e))
	}
	return out
}

type ContactDTO struct {
	Type  string `json:"type" validate:"required,oneof='Lawyer' 'Rental Company' 'Insurer' 'Other'"`
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=50"`
}

func (d *ContactDTO) Validate() error {
	return validateStruct(d)
}

func (d *ContactDTO) ToEntity() *contact.Contact {
	return &contact.Contact{
		Type:  contact.Type(d.Type),
		Name:  d.Name,
		Email: d.Email,
		Phone: d.Phone,
	}
}

type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewContactResponse(entity *contact.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        entity.ID,
		Type:      string(entity.Type),
		Name:      entity.Name,
		Email:     entity.Email,
		Phone:     entity.Phone,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func NewContactResponses(entities []*contact.Contact) []*ContactResponse {
	out := make([]*ContactResponse, 0, len(entities))
	for _, e := range entities {
		out = append(out, NewContactResponse(e))
	}
	return out
}
