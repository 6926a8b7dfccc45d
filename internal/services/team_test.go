package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/sayberrygames/studio-api/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTeamService(t *testing.T) (*TeamService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewTeamService(db), mock
}

func TestTeamService_IsAssignedToProject(t *testing.T) {
	svc, mock := setupTeamService(t)
	ctx := context.Background()
	userID := uuid.New()
	projectID := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(userID, projectID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := svc.IsAssignedToProject(ctx, userID, projectID)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_IsAssignedToProject_NotAssigned(t *testing.T) {
	svc, mock := setupTeamService(t)
	ctx := context.Background()
	userID := uuid.New()
	projectID := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(userID, projectID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := svc.IsAssignedToProject(ctx, userID, projectID)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTeamService_List_ActiveOnly(t *testing.T) {
	svc, mock := setupTeamService(t)
	ctx := context.Background()
	now := time.Now()

	cols := []string{"id", "user_id", "name", "position", "bio", "image_url", "active", "sort_order", "created_at", "updated_at"}
	mock.ExpectQuery(`SELECT .+ FROM team_members WHERE active = TRUE`).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(uuid.New(), nil, "Alice", "Programmer", "", nil, true, 0, now, now))

	members, err := svc.List(ctx, true)

	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Alice", members[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamService_AssignProject_Upsert(t *testing.T) {
	svc, mock := setupTeamService(t)
	ctx := context.Background()
	memberID := uuid.New()
	projectID := uuid.New()

	mock.ExpectExec(`INSERT INTO team_member_projects`).
		WithArgs(memberID, projectID, "Art Director", true).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, svc.AssignProject(ctx, memberID, projectID, "Art Director", true))
	assert.NoError(t, mock.ExpectationsWereMet())
}
