package actor

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

var roleLevel = map[Role]int{
	RoleCustomer: 1,
	RoleVendor:   2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevel[r]
	return ok
}

func (r Role) AtLeast(min Role) bool {
	return roleLevel[r] >= roleLevel[min]
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanActFor reports whether the actor may act on a resource owned by ownerID.
func (a Actor) CanActFor(ownerID uuid.UUID) bool {
	return a.IsAdmin() || a.ID == ownerID
}
