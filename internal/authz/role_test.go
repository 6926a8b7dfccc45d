package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const bootstrapEmail = "sayberrygames@gmail.com"

func TestParseRole_KnownValues(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleLead, ParseRole("lead"))
	assert.Equal(t, RoleMember, ParseRole("member"))
	assert.Equal(t, RoleUser, ParseRole("user"))
}

func TestParseRole_UnknownDegradesToUser(t *testing.T) {
	assert.Equal(t, RoleUser, ParseRole(""))
	assert.Equal(t, RoleUser, ParseRole("superuser"))
	assert.Equal(t, RoleUser, ParseRole("Admin"))
}

func TestResolve_StoredRoleWins(t *testing.T) {
	assert.Equal(t, RoleLead, Resolve("someone@example.com", "lead", bootstrapEmail))
	assert.Equal(t, RoleMember, Resolve("someone@example.com", "member", bootstrapEmail))
	assert.Equal(t, RoleUser, Resolve("someone@example.com", "", bootstrapEmail))
}

func TestResolve_BootstrapEmailIsAdmin(t *testing.T) {
	// Absent, garbage, or explicit "user" roles all promote the bootstrap
	// address to admin.
	assert.Equal(t, RoleAdmin, Resolve(bootstrapEmail, "", bootstrapEmail))
	assert.Equal(t, RoleAdmin, Resolve(bootstrapEmail, "user", bootstrapEmail))
	assert.Equal(t, RoleAdmin, Resolve(bootstrapEmail, "garbage", bootstrapEmail))
}

func TestResolve_BootstrapKeepsExplicitRole(t *testing.T) {
	assert.Equal(t, RoleMember, Resolve(bootstrapEmail, "member", bootstrapEmail))
	assert.Equal(t, RoleAdmin, Resolve(bootstrapEmail, "admin", bootstrapEmail))
}

func TestResolve_EmptyBootstrapNeverPromotes(t *testing.T) {
	assert.Equal(t, RoleUser, Resolve("", "", ""))
}

func TestRole_DerivedBooleans(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleLead.IsAdmin())

	assert.True(t, RoleAdmin.IsTeamMember())
	assert.True(t, RoleLead.IsTeamMember())
	assert.True(t, RoleMember.IsTeamMember())
	assert.False(t, RoleUser.IsTeamMember())
}

func TestRole_DerivedBooleansStable(t *testing.T) {
	// Resolving a role, reading the derived booleans, and rebuilding a
	// principal with the same role yields the same booleans.
	for _, stored := range []string{"admin", "lead", "member", "user", ""} {
		role := Resolve("a@b.com", stored, bootstrapEmail)
		p := Principal{ID: uuid.New(), Email: "a@b.com", Role: role}
		assert.Equal(t, role.IsAdmin(), p.Role.IsAdmin())
		assert.Equal(t, role.IsTeamMember(), p.Role.IsTeamMember())
	}
}

func TestPrincipal_DisplayIdentity(t *testing.T) {
	withName := Principal{Email: "alice@sayberry.games", Name: "Alice Kim"}
	assert.Equal(t, "Alice Kim", withName.DisplayIdentity())

	noName := Principal{Email: "alice@sayberry.games"}
	assert.Equal(t, "alice", noName.DisplayIdentity())

	noAt := Principal{Email: "alice"}
	assert.Equal(t, "alice", noAt.DisplayIdentity())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "admin", RoleAdmin.String())
	assert.Equal(t, "lead", RoleLead.String())
	assert.Equal(t, "member", RoleMember.String())
	assert.Equal(t, "user", RoleUser.String())
}
