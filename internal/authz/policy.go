package authz

import "github.com/google/uuid"

// PostKind discriminates the two flat content types the policy knows about.
type PostKind string

const (
	PostKindDevNotes PostKind = "dev_notes"
	PostKindNews     PostKind = "news"
)

func ParsePostKind(s string) (PostKind, bool) {
	switch PostKind(s) {
	case PostKindDevNotes, PostKindNews:
		return PostKind(s), true
	}
	return "", false
}

// CanWrite reports whether a role may create posts of the given kind.
// Dev notes are open to the whole team; news is restricted to leads and
// admins.
func CanWrite(role Role, kind PostKind) bool {
	switch kind {
	case PostKindDevNotes:
		return role.IsTeamMember()
	case PostKindNews:
		return role == RoleLead || role == RoleAdmin
	}
	return false
}

// CanEditPost reports whether the principal may edit an existing post.
// Admins edit anything. Members and leads edit their own dev notes, where
// ownership is the author_id link when present and otherwise an exact match
// of the author label against the principal's display identity. Leads edit
// any news item.
func CanEditPost(p *Principal, kind PostKind, author string, authorID *uuid.UUID) bool {
	if p == nil {
		return false
	}
	if p.Role.IsAdmin() {
		return true
	}
	switch kind {
	case PostKindDevNotes:
		if !p.Role.IsTeamMember() {
			return false
		}
		if authorID != nil {
			return *authorID == p.ID
		}
		return author == p.DisplayIdentity()
	case PostKindNews:
		return p.Role == RoleLead
	}
	return false
}

// CanDelete reports whether a role may delete posts. Uniform across kinds;
// ownership does not matter.
func CanDelete(role Role) bool {
	return role.IsAdmin()
}
