package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deppfellow/skyless/internal/errs"
	"github.com/deppfellow/skyless/internal/metrics"
	"github.com/deppfellow/skyless/internal/model"
	"github.com/deppfellow/skyless/internal/repository"
	"github.com/deppfellow/skyless/internal/sqlerr"
)

type WhisperService struct {
	store repository.Store
}

func NewWhisperService(store repository.Store) *WhisperService {
	return &WhisperService{store: store}
}

func (s *WhisperService) List(ctx context.Context, limit int, userID *int64) ([]model.Whisper, error) {
	limit = model.ClampWhisperLimit(limit)
	if userID != nil {
		return s.store.Whispers().ListActiveForUser(ctx, *userID, limit)
	}
	return s.store.Whispers().ListActive(ctx, limit)
}

// ToggleResonance adds the user's resonance to the whisper, or removes it
// when one exists. The whisper row is locked so the counter always matches
// the resonance rows written alongside it.
func (s *WhisperService) ToggleResonance(ctx context.Context, userID, whisperID int64) (*model.ResonanceResult, error) {
	var result model.ResonanceResult

	err := s.store.WithTx(ctx, func(ctx context.Context, tx repository.Store) error {
		if _, err := tx.Users().GetByID(ctx, userID); err != nil {
			return actingUser(err)
		}

		whisper, err := tx.Whispers().LockByID(ctx, whisperID)
		if err != nil {
			return err
		}
		if !whisper.IsActive {
			return sqlerr.NotFound("whispers")
		}

		removed, err := tx.Resonances().Delete(ctx, userID, whisperID)
		if err != nil {
			return fmt.Errorf("delete resonance: %w", err)
		}

		delta := -1
		if !removed {
			if err := tx.Resonances().Create(ctx, userID, whisperID); err != nil {
				return fmt.Errorf("create resonance: %w", err)
			}
			delta = 1
		}

		count, err := tx.Whispers().AdjustResonanceCount(ctx, whisperID, delta)
		if err != nil {
			return fmt.Errorf("adjust resonance count: %w", err)
		}

		result = model.ResonanceResult{Resonated: !removed, NewCount: count}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordResonanceToggle(result.Resonated)
	return &result, nil
}

// Withdraw hides a whisper from the network. Only its author may do so.
func (s *WhisperService) Withdraw(ctx context.Context, userID, whisperID int64) error {
	return s.store.WithTx(ctx, func(ctx context.Context, tx repository.Store) error {
		whisper, err := tx.Whispers().LockByID(ctx, whisperID)
		if err != nil {
			return err
		}
		if !whisper.IsActive {
			return sqlerr.NotFound("whispers")
		}
		if whisper.AuthorID != userID {
			return errs.NewForbiddenError("Only the author can withdraw this whisper", true)
		}

		if err := tx.Whispers().Deactivate(ctx, whisperID); err != nil {
			return fmt.Errorf("deactivate whisper: %w", err)
		}

		zerolog.Ctx(ctx).Info().
			Int64("user_id", userID).
			Int64("whisper_id", whisperID).
			Msg("whisper withdrawn")
		return nil
	})
}

func (s *WhisperService) ReconcileResonanceCounts(ctx context.Context) (int64, error) {
	fixed, err := s.store.Whispers().ReconcileResonanceCounts(ctx)
	if err != nil {
		return 0, fmt.Errorf("reconcile resonance counts: %w", err)
	}
	return fixed, nil
}
