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

const sessionColumns = `id, user_id, vector_at_start, vector_at_end, started_at, ended_at`

type SessionRepository struct {
	db database.DBTX
}

func NewSessionRepository(db database.DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

func scanSession(row rowScanner) (*model.Session, error) {
	var (
		s       model.Session
		endedAt sql.NullTime
	)
	if err := row.Scan(&s.ID, &s.UserID, &s.VectorAtStart, &s.VectorAtEnd, &s.StartedAt, &endedAt); err != nil {
		return nil, err
	}
	if endedAt.Valid {
		s.EndedAt = &endedAt.Time
	}
	return &s, nil
}

func (r *SessionRepository) Latest(ctx context.Context, userID int64) (*model.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM user_sessions
		WHERE user_id = $1
		ORDER BY started_at DESC, id DESC
		LIMIT 1`

	session, err := scanSession(r.db.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest session: %w", err)
	}
	return session, nil
}

func (r *SessionRepository) Create(ctx context.Context, userID int64, vectorAtStart model.Vector) (*model.Session, error) {
	query := `INSERT INTO user_sessions (user_id, vector_at_start)
		VALUES ($1, $2)
		RETURNING ` + sessionColumns

	session, err := scanSession(r.db.QueryRowContext(ctx, query, userID, vectorAtStart))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func (r *SessionRepository) CloseOpen(ctx context.Context, userID int64, vectorAtEnd model.Vector) (*model.Session, error) {
	query := `WITH closed AS (
			UPDATE user_sessions
			SET ended_at = CURRENT_TIMESTAMP, vector_at_end = $2
			WHERE user_id = $1 AND ended_at IS NULL
			RETURNING ` + sessionColumns + `
		)
		SELECT ` + sessionColumns + ` FROM closed
		ORDER BY started_at DESC, id DESC
		LIMIT 1`

	session, err := scanSession(r.db.QueryRowContext(ctx, query, userID, vectorAtEnd))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sqlerr.NotFound("sessions")
	}
	if err != nil {
		return nil, fmt.Errorf("close open sessions: %w", err)
	}
	return session, nil
}
