package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/skyless/internal/database"
)

type ResonanceRepository struct {
	db database.DBTX
}

func NewResonanceRepository(db database.DBTX) *ResonanceRepository {
	return &ResonanceRepository{db: db}
}

func (r *ResonanceRepository) Create(ctx context.Context, userID, whisperID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO whisper_resonances (user_id, whisper_id) VALUES ($1, $2)`, userID, whisperID)
	if err != nil {
		return fmt.Errorf("create resonance: %w", err)
	}
	return nil
}

func (r *ResonanceRepository) Delete(ctx context.Context, userID, whisperID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM whisper_resonances WHERE user_id = $1 AND whisper_id = $2`, userID, whisperID)
	if err != nil {
		return false, fmt.Errorf("delete resonance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
