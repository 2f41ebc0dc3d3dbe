package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/skyless/internal/model"
	"github.com/deppfellow/skyless/internal/repository"
)

type DashboardService struct {
	store repository.Store
}

func NewDashboardService(store repository.Store) *DashboardService {
	return &DashboardService{store: store}
}

// Get assembles the dashboard. Growth is measured from the latest session's
// baseline to the user's current vector.
func (s *DashboardService) Get(ctx context.Context, userID int64) (*model.Dashboard, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	last, err := s.store.Sessions().Latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("latest session: %w", err)
	}

	whispers, err := s.store.Whispers().ListActiveForUser(ctx, userID, model.DashboardWhisperLimit)
	if err != nil {
		return nil, fmt.Errorf("list whispers: %w", err)
	}

	dashboard := &model.Dashboard{
		User:            user,
		GrowthSinceLast: model.GrowthPercent(user.IdentityVector, last.BaselineVector()),
		Whispers:        whispers,
	}
	if last != nil {
		startedAt := last.StartedAt
		dashboard.LastVisit = &startedAt
	}

	return dashboard, nil
}

// StartSession closes whatever session is still open and opens a new one,
// both stamped with the user's current vector.
func (s *DashboardService) StartSession(ctx context.Context, userID int64) (*model.Session, error) {
	var session *model.Session

	err := s.store.WithTx(ctx, func(ctx context.Context, tx repository.Store) error {
		user, err := tx.Users().LockByID(ctx, userID)
		if err != nil {
			return err
		}
		current := user.IdentityVector.Normalize()

		if _, err := tx.Sessions().CloseOpen(ctx, userID, current); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("close open session: %w", err)
		}

		session, err = tx.Sessions().Create(ctx, userID, current)
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// EndSession closes the open session. It fails with a not-found error when
// nothing is open.
func (s *DashboardService) EndSession(ctx context.Context, userID int64) (*model.Session, error) {
	var session *model.Session

	err := s.store.WithTx(ctx, func(ctx context.Context, tx repository.Store) error {
		user, err := tx.Users().LockByID(ctx, userID)
		if err != nil {
			return err
		}

		session, err = tx.Sessions().CloseOpen(ctx, userID, user.IdentityVector.Normalize())
		return err
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (s *DashboardService) UpdateMood(ctx context.Context, userID int64, mood model.Mood) error {
	if !mood.Valid() {
		return fieldError("mood", "must be one of: "+model.MoodOneOf())
	}
	return s.store.Users().UpdateMood(ctx, userID, mood)
}
