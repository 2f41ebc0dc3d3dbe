package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/skyless/internal/model"
)

func TestSessionRepository_Latest(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSessionRepository(db)

	latest := q("FROM user_sessions") + ".*" + q("ORDER BY started_at DESC, id DESC")
	mock.ExpectQuery(latest).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(sessionCols).
			AddRow(int64(4), int64(1), []byte(`[0.5,0.5,0.5,0.5]`), []byte(`[0.5,0.5,0.5,0.7]`), fixedTime, fixedTime))
	mock.ExpectQuery(latest).WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(sessionCols))

	session, err := repo.Latest(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, int64(4), session.ID)
	assert.Equal(t, model.Vector{0.5, 0.5, 0.5, 0.7}, session.VectorAtEnd)
	require.NotNil(t, session.EndedAt)

	none, err := repo.Latest(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestSessionRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSessionRepository(db)

	vector := model.DefaultVector()
	mock.ExpectQuery(q("INSERT INTO user_sessions (user_id, vector_at_start)")).
		WithArgs(int64(1), vector).
		WillReturnRows(sqlmock.NewRows(sessionCols).
			AddRow(int64(5), int64(1), []byte(`[0.5,0.5,0.5,0.5]`), nil, fixedTime, nil))

	session, err := repo.Create(context.Background(), 1, vector)
	require.NoError(t, err)
	assert.Equal(t, int64(5), session.ID)
	assert.Nil(t, session.EndedAt)
	assert.Nil(t, session.VectorAtEnd)
}

func TestSessionRepository_CloseOpen(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSessionRepository(db)

	closeOpen := q("UPDATE user_sessions") + ".*" + q("WHERE user_id = $1 AND ended_at IS NULL")
	vector := model.Vector{0.5, 0.5, 0.5, 0.6}

	mock.ExpectQuery(closeOpen).WithArgs(int64(1), vector).
		WillReturnRows(sqlmock.NewRows(sessionCols).
			AddRow(int64(5), int64(1), []byte(`[0.5,0.5,0.5,0.5]`), []byte(`[0.5,0.5,0.5,0.6]`), fixedTime, fixedTime))
	mock.ExpectQuery(closeOpen).WithArgs(int64(1), vector).
		WillReturnRows(sqlmock.NewRows(sessionCols))

	session, err := repo.CloseOpen(context.Background(), 1, vector)
	require.NoError(t, err)
	assert.Equal(t, vector, session.VectorAtEnd)

	_, err = repo.CloseOpen(context.Background(), 1, vector)
	requireNotFound(t, err, "Session not found")
}
