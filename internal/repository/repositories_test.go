package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositories_WithTx(t *testing.T) {
	db, mock := newMock(t)
	store := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(q("DELETE FROM whisper_resonances")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(q("SET resonance_count = GREATEST")).
		WillReturnRows(sqlmock.NewRows([]string{"resonance_count"}).AddRow(4))
	mock.ExpectCommit()

	err := store.WithTx(context.Background(), func(ctx context.Context, tx Store) error {
		deleted, err := tx.Resonances().Delete(ctx, 1, 2)
		if err != nil || !deleted {
			return errors.New("expected delete")
		}
		_, err = tx.Whispers().AdjustResonanceCount(ctx, 2, -1)
		return err
	})
	require.NoError(t, err)
}

func TestRepositories_WithTx_RollbackAndNesting(t *testing.T) {
	db, mock := newMock(t)
	store := New(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	nestedRan := false
	err := store.WithTx(context.Background(), func(ctx context.Context, tx Store) error {
		// nested call must not open a second transaction
		return tx.WithTx(ctx, func(ctx context.Context, inner Store) error {
			nestedRan = true
			assert.Same(t, tx, inner)
			return boom
		})
	})

	assert.ErrorIs(t, err, boom)
	assert.True(t, nestedRan)
}
