package types

import "github.com/google/uuid"

// Role is the coarse access role carried by an authenticated actor.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleDeveloper     Role = "developer"
	RoleLawyer        Role = "lawyer"
	RoleRentalCompany Role = "rental_company"
	RoleWorkspaceUser Role = "workspace_user"
)

// Actor is the authenticated identity making a request. It is resolved by
// the session layer once per request and treated as immutable afterwards.
// WorkspaceID and ContactID are optional scoping anchors; either or both
// may be absent.
type Actor struct {
	ID          uuid.UUID
	Role        Role
	WorkspaceID *uuid.UUID
	ContactID   *uuid.UUID
}
