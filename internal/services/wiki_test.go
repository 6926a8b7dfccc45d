package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/sayberrygames/studio-api/internal/database"
	"github.com/sayberrygames/studio-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWikiService(t *testing.T) (*WikiService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewWikiService(db), mock
}

var wikiCols = []string{
	"id", "slug", "title", "content", "parent_id", "project_id", "is_public",
	"author_id", "last_edited_by", "views", "created_at", "updated_at",
}

func TestWikiService_Update_SelfParentRejected(t *testing.T) {
	svc, mock := setupWikiService(t)
	ctx := context.Background()

	pageID := uuid.New()
	page := &models.WikiPage{ID: pageID, Slug: "a", Title: "A", ParentID: &pageID}

	_, err := svc.Update(ctx, page, uuid.New())

	assert.ErrorIs(t, err, ErrParentCycle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWikiService_Update_AncestorCycleRejected(t *testing.T) {
	svc, mock := setupWikiService(t)
	ctx := context.Background()

	// a -> b -> a: reparenting a under b closes the loop.
	pageA := uuid.New()
	pageB := uuid.New()

	mock.ExpectQuery(`SELECT parent_id FROM wiki_pages`).
		WithArgs(pageB).
		WillReturnRows(pgxmock.NewRows([]string{"parent_id"}).AddRow(&pageA))

	page := &models.WikiPage{ID: pageA, Slug: "a", Title: "A", ParentID: &pageB}
	_, err := svc.Update(ctx, page, uuid.New())

	assert.ErrorIs(t, err, ErrParentCycle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWikiService_Update_SnapshotsHistory(t *testing.T) {
	svc, mock := setupWikiService(t)
	ctx := context.Background()

	pageID := uuid.New()
	editorID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO wiki_page_history`).
		WithArgs(pageID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(`UPDATE wiki_pages SET title`).
		WithArgs("New Title", "new content", (*uuid.UUID)(nil), (*uuid.UUID)(nil), true, editorID, pageID).
		WillReturnRows(pgxmock.NewRows(wikiCols).
			AddRow(pageID, "page", "New Title", "new content", nil, nil, true, nil, &editorID, 0, now, now))
	mock.ExpectCommit()

	page := &models.WikiPage{ID: pageID, Slug: "page", Title: "New Title", Content: "new content", IsPublic: true}
	updated, err := svc.Update(ctx, page, editorID)

	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, &editorID, updated.LastEditedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWikiService_HasEditGrant(t *testing.T) {
	svc, mock := setupWikiService(t)
	ctx := context.Background()

	pageID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(pageID, userID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := svc.HasEditGrant(ctx, pageID, userID)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWikiService_Create_DuplicateSlug(t *testing.T) {
	svc, mock := setupWikiService(t)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO wiki_pages`).
		WithArgs("dup", "Dup", "", (*uuid.UUID)(nil), (*uuid.UUID)(nil), false, (*uuid.UUID)(nil)).
		WillReturnError(&pgconnUniqueViolation)

	_, err := svc.Create(ctx, &models.WikiPage{Slug: "dup", Title: "Dup"})

	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestWikiService_List_SearchFiltersApplied(t *testing.T) {
	svc, mock := setupWikiService(t)
	ctx := context.Background()

	projectID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM wiki_pages WHERE project_id = \$1 AND \(title ILIKE \$2 OR content ILIKE \$2\)`).
		WithArgs(projectID, "%design%").
		WillReturnRows(pgxmock.NewRows(wikiCols).
			AddRow(uuid.New(), "design-doc", "Design Doc", "", nil, &projectID, false, nil, nil, 0, now, now))

	pages, err := svc.List(ctx, &projectID, "design")

	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "design-doc", pages[0].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}
