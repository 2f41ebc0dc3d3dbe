package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/deppfellow/skyless/internal/metrics"
	"github.com/deppfellow/skyless/internal/model"
	"github.com/deppfellow/skyless/internal/repository"
)

type SubmitReflectionInput struct {
	UserID      int64
	Content     string
	IsAnonymous bool
}

type ReflectionService struct {
	store repository.Store
}

func NewReflectionService(store repository.Store) *ReflectionService {
	return &ReflectionService{store: store}
}

// Submit stores a reflection, shares it as a whisper and moves the author's
// identity vector, all in one transaction. The author row stays locked until
// commit so concurrent reflections apply their deltas one after another.
func (s *ReflectionService) Submit(ctx context.Context, in SubmitReflectionInput) (*model.Reflection, error) {
	content := strings.TrimSpace(in.Content)
	if n := utf8.RuneCountInString(content); n < model.MinReflectionLength || n > model.MaxReflectionLength {
		return nil, fieldError("content", fmt.Sprintf(
			"must be between %d and %d characters", model.MinReflectionLength, model.MaxReflectionLength))
	}

	reflection := &model.Reflection{
		UserID:      in.UserID,
		Content:     content,
		IsAnonymous: in.IsAnonymous,
		VectorDelta: model.ReflectionDelta,
	}

	err := s.store.WithTx(ctx, func(ctx context.Context, tx repository.Store) error {
		author, err := tx.Users().LockByID(ctx, in.UserID)
		if err != nil {
			return actingUser(err)
		}

		if err := tx.Reflections().Create(ctx, reflection); err != nil {
			return fmt.Errorf("create reflection: %w", err)
		}

		whisper := &model.Whisper{
			SourceReflectionID: reflection.ID,
			Content:            reflection.Content,
			AuthorID:           author.ID,
		}
		if err := tx.Whispers().Create(ctx, whisper); err != nil {
			return fmt.Errorf("create whisper: %w", err)
		}

		next := author.IdentityVector.Add(reflection.VectorDelta)
		if err := tx.Users().UpdateIdentityVector(ctx, author.ID, next); err != nil {
			return fmt.Errorf("update identity vector: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordReflection()
	zerolog.Ctx(ctx).Info().
		Int64("user_id", in.UserID).
		Int64("reflection_id", reflection.ID).
		Msg("reflection shared")

	return reflection, nil
}
