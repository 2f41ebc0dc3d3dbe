// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// input, enforces the domain rules and runs repository calls, inside a single
// transaction whenever an operation writes more than one row.
package service

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

import (
	"context"

	"github.com/deppfellow/skyless/internal/lib/job"
	"github.com/deppfellow/skyless/internal/model"
	"github.com/deppfellow/skyless/internal/repository"
	"github.com/deppfellow/skyless/internal/server"
)

type Registration interface {
	ConnectWallet(ctx context.Context, address string) (user *model.User, created bool, err error)
	SignupEmail(ctx context.Context, email string) (user *model.User, created bool, err error)
	CreateAnonymous(ctx context.Context) (*model.User, error)
	GetByWallet(ctx context.Context, address string) (*model.User, error)
}

type Reflections interface {
	Submit(ctx context.Context, in SubmitReflectionInput) (*model.Reflection, error)
}

type Whispers interface {
	// List returns the newest active whispers. userID, when set, annotates
	// each whisper with that user's resonance.
	List(ctx context.Context, limit int, userID *int64) ([]model.Whisper, error)
	ToggleResonance(ctx context.Context, userID, whisperID int64) (*model.ResonanceResult, error)
	Withdraw(ctx context.Context, userID, whisperID int64) error
	ReconcileResonanceCounts(ctx context.Context) (int64, error)
}

type Dashboards interface {
	Get(ctx context.Context, userID int64) (*model.Dashboard, error)
	StartSession(ctx context.Context, userID int64) (*model.Session, error)
	EndSession(ctx context.Context, userID int64) (*model.Session, error)
	UpdateMood(ctx context.Context, userID int64, mood model.Mood) error
}

type Services struct {
	Registration Registration
	Reflection   Reflections
	Whisper      Whispers
	Dashboard    Dashboards
	Job          *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Registration: NewRegistrationService(repos, s.Job),
		Reflection:   NewReflectionService(repos),
		Whisper:      NewWhisperService(repos),
		Dashboard:    NewDashboardService(repos),
		Job:          s.Job,
	}, nil
}
