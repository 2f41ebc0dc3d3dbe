package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/skyless/internal/database"
	"github.com/deppfellow/skyless/internal/model"
)

type ReflectionRepository struct {
	db database.DBTX
}

func NewReflectionRepository(db database.DBTX) *ReflectionRepository {
	return &ReflectionRepository{db: db}
}

// Create inserts reflection and fills in its ID and CreatedAt.
func (r *ReflectionRepository) Create(ctx context.Context, reflection *model.Reflection) error {
	query := `INSERT INTO reflections (user_id, content, is_anonymous, vector_delta)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		reflection.UserID, reflection.Content, reflection.IsAnonymous, reflection.VectorDelta,
	).Scan(&reflection.ID, &reflection.CreatedAt)
	if err != nil {
		return fmt.Errorf("create reflection: %w", err)
	}
	return nil
}
