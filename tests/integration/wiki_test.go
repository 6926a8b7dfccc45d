package integration

import (
	"context"
	"testing"

	"github.com/sayberrygames/studio-api/internal/authz"
	"github.com/sayberrygames/studio-api/internal/services"
	"github.com/sayberrygames/studio-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWikiService_Integration_UpdateKeepsHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewWikiService(tdb.DB)
	fixtures := testutil.NewFixtures(tdb.DB)
	ctx := context.Background()

	editor := fixtures.CreateUser(t)
	page := fixtures.CreateWikiPage(t)

	page.Title = "Second Title"
	page.Content = "second revision"
	updated, err := svc.Update(ctx, page, editor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second Title", updated.Title)

	revisions, err := svc.History(ctx, page.ID)
	require.NoError(t, err)
	require.Len(t, revisions, 1)
	assert.Equal(t, "test content", revisions[0].Content)
}

func TestWikiService_Integration_CycleRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewWikiService(tdb.DB)
	fixtures := testutil.NewFixtures(tdb.DB)
	ctx := context.Background()

	editor := fixtures.CreateUser(t)
	root := fixtures.CreateWikiPage(t)
	child := fixtures.CreateWikiPage(t, testutil.WithParent(root.ID))
	grandchild := fixtures.CreateWikiPage(t, testutil.WithParent(child.ID))

	root.ParentID = &grandchild.ID
	_, err := svc.Update(ctx, root, editor.ID)
	assert.ErrorIs(t, err, services.ErrParentCycle)
}

func TestWikiService_Integration_ProjectGate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	wikiSvc := services.NewWikiService(tdb.DB)
	teamSvc := services.NewTeamService(tdb.DB)
	fixtures := testutil.NewFixtures(tdb.DB)
	ctx := context.Background()

	gate := authz.NewPageGate(teamSvc, wikiSvc)

	assigned := fixtures.CreateUser(t, testutil.WithRole("member"))
	outsider := fixtures.CreateUser(t, testutil.WithRole("member"))
	project := fixtures.CreateProject(t)
	member := fixtures.CreateTeamMember(t, &assigned.ID)
	fixtures.AssignToProject(t, member.ID, project.ID)

	page := fixtures.CreateWikiPage(t, testutil.WithProject(project.ID))

	assignedPrincipal := &authz.Principal{ID: assigned.ID, Email: assigned.Email, Role: authz.RoleMember}
	outsiderPrincipal := &authz.Principal{ID: outsider.ID, Email: outsider.Email, Role: authz.RoleMember}

	ok, err := gate.CanView(ctx, assignedPrincipal, page)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gate.CanView(ctx, outsiderPrincipal, page)
	require.NoError(t, err)
	assert.False(t, ok)

	// Admins bypass project scoping.
	adminPrincipal := &authz.Principal{ID: outsider.ID, Email: outsider.Email, Role: authz.RoleAdmin}
	ok, err = gate.CanView(ctx, adminPrincipal, page)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWikiService_Integration_EditGrant(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	wikiSvc := services.NewWikiService(tdb.DB)
	teamSvc := services.NewTeamService(tdb.DB)
	fixtures := testutil.NewFixtures(tdb.DB)
	ctx := context.Background()

	gate := authz.NewPageGate(teamSvc, wikiSvc)

	visitor := fixtures.CreateUser(t)
	page := fixtures.CreateWikiPage(t, testutil.PublicPage())
	principal := &authz.Principal{ID: visitor.ID, Email: visitor.Email, Role: authz.RoleUser}

	ok, err := gate.CanEdit(ctx, principal, page)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, wikiSvc.GrantEdit(ctx, page.ID, visitor.ID))

	ok, err = gate.CanEdit(ctx, principal, page)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, wikiSvc.RevokeGrant(ctx, page.ID, visitor.ID))

	ok, err = gate.CanEdit(ctx, principal, page)
	require.NoError(t, err)
	assert.False(t, ok)
}
