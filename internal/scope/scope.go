// Package scope holds the acting identity and the access-scoping policy:
// admins see every record, everyone else sees only records they own.
package scope

import "github.com/siddhivinayaka18/afh-crm/internal/domain"

// Identity is the per-request actor resolved by the auth middleware.
type Identity struct {
	UserID string
	Role   domain.Role
}

func (id Identity) IsAdmin() bool {
	return id.Role == domain.RoleAdmin
}

// CanAccess reports whether the actor may observe or mutate a record
// owned by ownerUserID.
func (id Identity) CanAccess(ownerUserID string) bool {
	return id.IsAdmin() || ownerUserID == id.UserID
}
