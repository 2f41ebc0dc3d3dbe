package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/deppfellow/skyless/internal/metrics"
	"github.com/deppfellow/skyless/internal/model"
	"github.com/deppfellow/skyless/internal/repository"
	"github.com/deppfellow/skyless/internal/validation"
)

// WelcomeEnqueuer schedules the welcome email. Satisfied by *job.JobService.
type WelcomeEnqueuer interface {
	EnqueueWelcomeEmail(ctx context.Context, to string) error
}

type RegistrationService struct {
	store   repository.Store
	welcome WelcomeEnqueuer
}

func NewRegistrationService(store repository.Store, welcome WelcomeEnqueuer) *RegistrationService {
	return &RegistrationService{store: store, welcome: welcome}
}

// ConnectWallet registers a wallet address, or logs the existing owner back in.
// Addresses are compared lower-cased.
func (s *RegistrationService) ConnectWallet(ctx context.Context, address string) (*model.User, bool, error) {
	address = normalizeIdentifier(address)
	if !model.IsWalletAddress(address) {
		return nil, false, fieldError("walletAddress", "must be a valid wallet address")
	}

	user, created, err := s.store.Users().UpsertWallet(ctx, address)
	if err != nil {
		return nil, false, fmt.Errorf("upsert wallet user: %w", err)
	}

	metrics.RecordRegistration(string(model.ConnectionWallet), created)
	zerolog.Ctx(ctx).Info().
		Int64("user_id", user.ID).
		Bool("created", created).
		Msg("wallet connected")

	return user, created, nil
}

// SignupEmail registers an email address. New users get a welcome email;
// failing to queue it never fails the signup.
func (s *RegistrationService) SignupEmail(ctx context.Context, email string) (*model.User, bool, error) {
	email = normalizeIdentifier(email)
	if err := validation.Var(email, "required,email"); err != nil {
		return nil, false, fieldError("email", "must be a valid email address")
	}

	user, created, err := s.store.Users().UpsertEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("upsert email user: %w", err)
	}

	metrics.RecordRegistration(string(model.ConnectionEmail), created)
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Int64("user_id", user.ID).
		Bool("created", created).
		Msg("email registered")

	if created && s.welcome != nil {
		if err := s.welcome.EnqueueWelcomeEmail(ctx, email); err != nil {
			logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to enqueue welcome email")
		}
	}

	return user, created, nil
}

func (s *RegistrationService) CreateAnonymous(ctx context.Context) (*model.User, error) {
	user, err := s.store.Users().CreateAnonymous(ctx, uuid.New())
	if err != nil {
		return nil, fmt.Errorf("create anonymous user: %w", err)
	}

	metrics.RecordRegistration(string(model.ConnectionAnonymous), true)
	zerolog.Ctx(ctx).Info().Int64("user_id", user.ID).Msg("anonymous session created")

	return user, nil
}

func (s *RegistrationService) GetByWallet(ctx context.Context, address string) (*model.User, error) {
	return s.store.Users().GetByWallet(ctx, normalizeIdentifier(address))
}

func normalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
