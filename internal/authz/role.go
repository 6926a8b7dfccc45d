package authz

import (
	"strings"

	"github.com/google/uuid"
)

// Role is the coarse capability level of an account. The external store
// keeps it as a string; it is parsed into this enum at the boundary and
// stringly-typed values never travel further in.
type Role int

const (
	RoleUser Role = iota
	RoleMember
	RoleLead
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleLead:
		return "lead"
	case RoleMember:
		return "member"
	default:
		return "user"
	}
}

// ParseRole maps a stored role string to a Role. Unknown or empty values
// degrade to RoleUser rather than failing.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "lead":
		return RoleLead
	case "member":
		return RoleMember
	default:
		return RoleUser
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsTeamMember() bool {
	return r == RoleAdmin || r == RoleLead || r == RoleMember
}

// Resolve determines the effective role for an account. The bootstrap email
// is treated as admin whenever its stored role parses to plain user, which
// covers an absent role, an unrecognized value, and a literal "user". A
// bootstrap account explicitly stored as member or lead keeps that role.
func Resolve(email, storedRole, bootstrapEmail string) Role {
	role := ParseRole(storedRole)
	if role == RoleUser && bootstrapEmail != "" && email == bootstrapEmail {
		return RoleAdmin
	}
	return role
}

// Principal is an authenticated actor with its role already resolved.
// Authorization decisions take it explicitly; nothing in this package reads
// ambient session state.
type Principal struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  Role
}

// DisplayIdentity is the name posts are signed with: the profile name when
// set, otherwise the local part of the email address.
func (p *Principal) DisplayIdentity() string {
	if p.Name != "" {
		return p.Name
	}
	if at := strings.Index(p.Email, "@"); at >= 0 {
		return p.Email[:at]
	}
	return p.Email
}
