package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/skyless/internal/model"
)

const wallet = "0x52908400098527886e0f7030069857d2e4169ee7"

func walletRow(inserted bool) *sqlmock.Rows {
	return sqlmock.NewRows(append(userCols, "inserted")).
		AddRow(int64(7), nil, wallet, nil, "wallet", nil, "contemplative", fixedTime, fixedTime, fixedTime, inserted)
}

func TestUserRepository_UpsertWallet(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	upsert := q("INSERT INTO users (wallet_address, connection_type)") +
		".*" + q("ON CONFLICT (wallet_address) DO UPDATE SET last_login_at = CURRENT_TIMESTAMP") +
		".*" + q("(xmax = 0) AS inserted")

	mock.ExpectQuery(upsert).WithArgs(wallet, "wallet").WillReturnRows(walletRow(true))
	mock.ExpectQuery(upsert).WithArgs(wallet, "wallet").WillReturnRows(walletRow(false))

	first, created, err := repo.UpsertWallet(context.Background(), wallet)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(7), first.ID)
	require.NotNil(t, first.WalletAddress)
	assert.Equal(t, wallet, *first.WalletAddress)
	assert.Nil(t, first.Email)
	assert.Nil(t, first.AnonymousID)
	assert.Nil(t, first.IdentityVector)
	assert.Equal(t, model.ConnectionWallet, first.ConnectionType)
	assert.Equal(t, model.MoodContemplative, first.PreferredMood)

	second, created, err := repo.UpsertWallet(context.Background(), wallet)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestUserRepository_UpsertEmail_Error(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(q("INSERT INTO users (email, connection_type)")).
		WithArgs("sky@example.com", "email").
		WillReturnError(errors.New("db down"))

	_, _, err := repo.UpsertEmail(context.Background(), "sky@example.com")
	assert.ErrorContains(t, err, "upsert user by email: db down")
}

func TestUserRepository_CreateAnonymous(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	mock.ExpectQuery(q("INSERT INTO users (anonymous_id, connection_type)")).
		WithArgs(id, "anonymous").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(int64(3), nil, nil, id.String(), "anonymous", nil, "contemplative", fixedTime, fixedTime, fixedTime))

	user, err := repo.CreateAnonymous(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, user.AnonymousID)
	assert.Equal(t, id, *user.AnonymousID)
	assert.Equal(t, model.ConnectionAnonymous, user.ConnectionType)
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(q("FROM users WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(int64(9), "sky@example.com", nil, nil, "email", []byte(`[0.1,0.2,0.3,0.4]`), "hopeful", fixedTime, fixedTime, fixedTime))

	user, err := repo.GetByID(context.Background(), 9)
	require.NoError(t, err)
	require.NotNil(t, user.Email)
	assert.Equal(t, "sky@example.com", *user.Email)
	assert.Equal(t, model.Vector{0.1, 0.2, 0.3, 0.4}, user.IdentityVector)
	assert.Equal(t, model.MoodHopeful, user.PreferredMood)
}

func TestUserRepository_LockByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(q("FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err := repo.LockByID(context.Background(), 404)
	requireNotFound(t, err, "User not found")
}

func TestUserRepository_GetByWallet_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(q("FROM users WHERE wallet_address = $1")).
		WithArgs(wallet).
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err := repo.GetByWallet(context.Background(), wallet)
	requireNotFound(t, err, "User not found")
}

func TestUserRepository_UpdateIdentityVector(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	vector := model.Vector{0.5, 0.5, 0.5, 0.6}
	mock.ExpectExec(q("UPDATE users SET identity_vector = $2 WHERE id = $1")).
		WithArgs(int64(1), vector).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateIdentityVector(context.Background(), 1, vector))
}

func TestUserRepository_UpdateMood(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mood := q("UPDATE users SET preferred_mood = $2 WHERE id = $1")
	mock.ExpectExec(mood).WithArgs(int64(1), "curious").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(mood).WithArgs(int64(2), "curious").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateMood(context.Background(), 1, model.MoodCurious))
	requireNotFound(t, repo.UpdateMood(context.Background(), 2, model.MoodCurious), "User not found")
}
