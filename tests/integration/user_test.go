package integration

import (
	"context"
	"testing"

	"github.com/sayberrygames/studio-api/internal/authz"
	"github.com/sayberrygames/studio-api/internal/oauth"
	"github.com/sayberrygames/studio-api/internal/services"
	"github.com/sayberrygames/studio-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Integration_PasswordSignupAndLogin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	user, err := svc.CreateWithPassword(ctx, "alice@example.com", "Alice", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "user", user.Role)

	_, err = svc.CreateWithPassword(ctx, "alice@example.com", "Imposter", "whatever-pw")
	assert.ErrorIs(t, err, services.ErrEmailTaken)

	got, err := svc.Authenticate(ctx, "alice@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestUserService_Integration_FindOrCreateFromOAuth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	info := &oauth.UserInfo{
		Email:     "newuser@example.com",
		Name:      "New User",
		AvatarURL: "https://example.com/avatar.png",
		ID:        "github-12345",
		Provider:  "github",
	}

	user1, err := svc.FindOrCreateFromOAuth(ctx, info)
	require.NoError(t, err)
	assert.NotEmpty(t, user1.ID)

	user2, err := svc.FindOrCreateFromOAuth(ctx, info)
	require.NoError(t, err)
	assert.Equal(t, user1.ID, user2.ID)
}

func TestUserService_Integration_RoleLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	fixtures := testutil.NewFixtures(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t)
	assert.Equal(t, "user", user.Role)

	promoted, err := svc.UpdateRole(ctx, user.ID, "lead")
	require.NoError(t, err)
	assert.Equal(t, "lead", promoted.Role)

	_, err = svc.UpdateRole(ctx, user.ID, "owner")
	assert.ErrorIs(t, err, services.ErrInvalidRole)

	// Unknown stored values degrade to plain user at resolution time.
	assert.Equal(t, authz.RoleUser, authz.Resolve(user.Email, "banana", ""))

	// The bootstrap account resolves to admin while stored as plain user.
	boot := fixtures.CreateUser(t, testutil.WithEmail("sayberrygames@gmail.com"))
	assert.Equal(t, authz.RoleAdmin, authz.Resolve(boot.Email, boot.Role, "sayberrygames@gmail.com"))
	// An explicit lower role sticks.
	assert.Equal(t, authz.RoleMember, authz.Resolve(boot.Email, "member", "sayberrygames@gmail.com"))
}
