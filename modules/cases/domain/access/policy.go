package access

import (
	"github.com/claimdesk/claimdesk/pkg/repo"
	"github.com/claimdesk/claimdesk/pkg/types"
)

// Scope is the base visibility predicate derived from an actor. Every feed
// query takes a Scope as a required argument, so no code path can compile a
// query without it.
type Scope struct {
	clause repo.Clause
}

func (s Scope) Clause() repo.Clause { return s.clause }

// Unrestricted reports whether the scope matches every case.
func (s Scope) Unrestricted() bool { return s.clause.Fragment() == repo.All().Fragment() }

// Empty reports whether the scope can never match a case.
func (s Scope) Empty() bool { return s.clause.Fragment() == repo.None().Fragment() }

// ScopeFor translates an actor into its base case-visibility predicate. It
// is an ordered decision table; the first matching rule wins:
//
//  1. Admins and developers see every case.
//  2. A workspace user anchored to a contact sees only cases assigned to
//     that contact as lawyer or rental company, regardless of workspace.
//  3. Any remaining actor with a workspace sees that workspace's cases.
//  4. Without contact and workspace the scope matches nothing. Fail-closed
//     is the deliberate default here, not an error.
//
// Column names reference the joined case alias "c".
func ScopeFor(actor types.Actor) Scope {
	switch {
	case actor.Role == types.RoleAdmin || actor.Role == types.RoleDeveloper:
		return Scope{clause: repo.All()}
	case actor.Role == types.RoleWorkspaceUser && actor.ContactID != nil:
		return Scope{clause: repo.Or(
			repo.Eq("c.assigned_lawyer_contact_id", *actor.ContactID),
			repo.Eq("c.assigned_rental_company_contact_id", *actor.ContactID),
		)}
	case actor.WorkspaceID != nil:
		return Scope{clause: repo.Eq("c.workspace_id", *actor.WorkspaceID)}
	default:
		return Scope{clause: repo.None()}
	}
}
