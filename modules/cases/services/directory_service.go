package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/contact"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/workspace"
	"github.com/claimdesk/claimdesk/pkg/composables"
)

// DirectoryService manages the lookup entities cases are assigned against:
// workspaces and external contacts.
type DirectoryService struct {
	workspaces workspace.Repository
	contacts   contact.Repository
}

func NewDirectoryService(workspaces workspace.Repository, contacts contact.Repository) *DirectoryService {
	return &DirectoryService{workspaces: workspaces, contacts: contacts}
}

func (s *DirectoryService) Workspaces(ctx context.Context) ([]*workspace.Workspace, error) {
	return s.workspaces.GetAll(ctx)
}

func (s *DirectoryService) GetWorkspace(ctx context.Context, id uuid.UUID) (*workspace.Workspace, error) {
	return s.workspaces.GetByID(ctx, id)
}

func (s *DirectoryService) CreateWorkspace(ctx context.Context, entity *workspace.Workspace) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		return s.workspaces.Create(txCtx, entity)
	})
}

func (s *DirectoryService) UpdateWorkspace(ctx context.Context, entity *workspace.Workspace) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		return s.workspaces.Update(txCtx, entity)
	})
}

func (s *DirectoryService) DeleteWorkspace(ctx context.Context, id uuid.UUID) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		return s.workspaces.Delete(txCtx, id)
	})
}

func (s *DirectoryService) Contacts(ctx context.Context) ([]*contact.Contact, error) {
	return s.contacts.GetAll(ctx)
}

func (s *DirectoryService) ContactsByType(ctx context.Context, contactType contact.Type) ([]*contact.Contact, error) {
	return s.contacts.GetByType(ctx, contactType)
}

func (s *DirectoryService) GetContact(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	return s.contacts.GetByID(ctx, id)
}

func (s *DirectoryService) CreateContact(ctx context.Context, entity *contact.Contact) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		return s.contacts.Create(txCtx, entity)
	})
}

func (s *DirectoryService) UpdateContact(ctx context.Context, entity *contact.Contact) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		return s.contacts.Update(txCtx, entity)
	})
}

func (s *DirectoryService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		return s.contacts.Delete(txCtx, id)
	})
}
