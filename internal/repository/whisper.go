package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/skyless/internal/database"
	"github.com/deppfellow/skyless/internal/model"
	"github.com/deppfellow/skyless/internal/sqlerr"
)

const whisperColumns = `w.id, w.source_reflection_id, w.content, w.resonance_count, w.is_active, w.created_at`

type WhisperRepository struct {
	db database.DBTX
}

func NewWhisperRepository(db database.DBTX) *WhisperRepository {
	return &WhisperRepository{db: db}
}

func scanWhisper(row rowScanner, extra ...any) (*model.Whisper, error) {
	var w model.Whisper
	dest := append([]any{
		&w.ID, &w.SourceReflectionID, &w.Content, &w.ResonanceCount, &w.IsActive, &w.CreatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &w, nil
}

// Create inserts whisper and fills in its ID, CreatedAt and IsActive.
func (r *WhisperRepository) Create(ctx context.Context, whisper *model.Whisper) error {
	query := `INSERT INTO network_whispers (source_reflection_id, content)
		VALUES ($1, $2)
		RETURNING id, resonance_count, is_active, created_at`

	err := r.db.QueryRowContext(ctx, query, whisper.SourceReflectionID, whisper.Content).
		Scan(&whisper.ID, &whisper.ResonanceCount, &whisper.IsActive, &whisper.CreatedAt)
	if err != nil {
		return fmt.Errorf("create whisper: %w", err)
	}
	return nil
}

func (r *WhisperRepository) ListActive(ctx context.Context, limit int) ([]model.Whisper, error) {
	query := `SELECT ` + whisperColumns + `
		FROM network_whispers w
		WHERE w.is_active
		ORDER BY w.created_at DESC, w.id DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list whispers: %w", err)
	}
	defer rows.Close()

	whispers := make([]model.Whisper, 0, limit)
	for rows.Next() {
		w, err := scanWhisper(rows)
		if err != nil {
			return nil, fmt.Errorf("scan whisper: %w", err)
		}
		whispers = append(whispers, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate whispers: %w", err)
	}
	return whispers, nil
}

func (r *WhisperRepository) ListActiveForUser(ctx context.Context, userID int64, limit int) ([]model.Whisper, error) {
	query := `SELECT ` + whisperColumns + `,
			EXISTS (
				SELECT 1 FROM whisper_resonances wr
				WHERE wr.whisper_id = w.id AND wr.user_id = $1
			) AS user_has_resonated
		FROM network_whispers w
		WHERE w.is_active
		ORDER BY w.created_at DESC, w.id DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list whispers for user: %w", err)
	}
	defer rows.Close()

	whispers := make([]model.Whisper, 0, limit)
	for rows.Next() {
		var resonated bool
		w, err := scanWhisper(rows, &resonated)
		if err != nil {
			return nil, fmt.Errorf("scan whisper: %w", err)
		}
		w.UserHasResonated = &resonated
		whispers = append(whispers, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate whispers: %w", err)
	}
	return whispers, nil
}

func (r *WhisperRepository) LockByID(ctx context.Context, id int64) (*model.Whisper, error) {
	query := `SELECT ` + whisperColumns + `, r.user_id
		FROM network_whispers w
		JOIN reflections r ON r.id = w.source_reflection_id
		WHERE w.id = $1
		FOR UPDATE OF w`

	var authorID int64
	w, err := scanWhisper(r.db.QueryRowContext(ctx, query, id), &authorID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sqlerr.NotFound("whispers")
	}
	if err != nil {
		return nil, fmt.Errorf("lock whisper: %w", err)
	}
	w.AuthorID = authorID
	return w, nil
}

func (r *WhisperRepository) AdjustResonanceCount(ctx context.Context, id int64, delta int) (int, error) {
	query := `UPDATE network_whispers
		SET resonance_count = GREATEST(resonance_count + $2, 0)
		WHERE id = $1
		RETURNING resonance_count`

	var count int
	err := r.db.QueryRowContext(ctx, query, id, delta).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, sqlerr.NotFound("whispers")
	}
	if err != nil {
		return 0, fmt.Errorf("adjust resonance count: %w", err)
	}
	return count, nil
}

func (r *WhisperRepository) Deactivate(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE network_whispers SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate whisper: %w", err)
	}
	return requireOneRow(res, "whispers")
}

func (r *WhisperRepository) ReconcileResonanceCounts(ctx context.Context) (int64, error) {
	query := `UPDATE network_whispers w
		SET resonance_count = c.total
		FROM (
			SELECT nw.id, COUNT(wr.id) AS total
			FROM network_whispers nw
			LEFT JOIN whisper_resonances wr ON wr.whisper_id = nw.id
			GROUP BY nw.id
		) c
		WHERE w.id = c.id AND w.resonance_count <> c.total`

	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("reconcile resonance counts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
