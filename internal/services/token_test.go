package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/sayberrygames/studio-api/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shared across service tests for simulating unique constraint failures
var pgconnUniqueViolation = pgconn.PgError{Code: "23505"}

func setupTokenService(t *testing.T) (*TokenService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewTokenService(db), mock
}

func TestTokenService_ConsumePasswordReset_SingleUse(t *testing.T) {
	svc, mock := setupTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectQuery(`DELETE FROM password_resets`).
		WithArgs("hash-1").
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(userID))

	got, err := svc.ConsumePasswordReset(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	// A second consume finds nothing.
	mock.ExpectQuery(`DELETE FROM password_resets`).
		WithArgs("hash-1").
		WillReturnError(pgx.ErrNoRows)

	_, err = svc.ConsumePasswordReset(ctx, "hash-1")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenService_ValidateRefreshToken_Expired(t *testing.T) {
	svc, mock := setupTokenService(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT user_id FROM refresh_tokens`).
		WithArgs("stale-hash").
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.ValidateRefreshToken(ctx, "stale-hash")
	assert.Error(t, err)
}

func TestTokenService_CleanupExpired_CoversBothTables(t *testing.T) {
	svc, mock := setupTokenService(t)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE expires_at`).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec(`DELETE FROM password_resets WHERE expires_at`).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := svc.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenService_StoreAndRevoke(t *testing.T) {
	svc, mock := setupTokenService(t)
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(24 * time.Hour)

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(userID, "hash-2", expiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE user_id`).
		WithArgs(userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, svc.StoreRefreshToken(ctx, userID, "hash-2", expiresAt))
	require.NoError(t, svc.RevokeAllUserTokens(ctx, userID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
