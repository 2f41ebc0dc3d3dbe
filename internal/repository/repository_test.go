package repository

import (
	"database/sql"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/skyless/internal/errs"
	"github.com/deppfellow/skyless/internal/sqlerr"
)

var (
	userCols    = []string{"id", "email", "wallet_address", "anonymous_id", "connection_type", "identity_vector", "preferred_mood", "last_login_at", "created_at", "updated_at"}
	sessionCols = []string{"id", "user_id", "vector_at_start", "vector_at_end", "started_at", "ended_at"}
	whisperCols = []string{"id", "source_reflection_id", "content", "resonance_count", "is_active", "created_at"}
	fixedTime   = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func q(s string) string {
	return regexp.QuoteMeta(s)
}

func requireNotFound(t *testing.T, err error, message string) {
	t.Helper()
	require.ErrorIs(t, err, sql.ErrNoRows)
	var httpErr *errs.HTTPError
	require.True(t, errors.As(sqlerr.HandleError(err), &httpErr))
	require.Equal(t, http.StatusNotFound, httpErr.Status)
	require.Equal(t, message, httpErr.Message)
}
