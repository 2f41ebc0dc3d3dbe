package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/skyless/internal/metrics"
)

// WelcomeSender delivers the welcome email. Satisfied by *email.Client.
type WelcomeSender interface {
	SendWelcomeEmail(ctx context.Context, to string) error
}

// ResonanceReconciler recomputes the denormalized resonance counters.
type ResonanceReconciler interface {
	ReconcileResonanceCounts(ctx context.Context) (int64, error)
}

// Handlers processes the tasks this service enqueues.
type Handlers struct {
	email      WelcomeSender
	reconciler ResonanceReconciler
	logger     *zerolog.Logger
}

func NewHandlers(email WelcomeSender, reconciler ResonanceReconciler, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		email:      email,
		reconciler: reconciler,
		logger:     logger,
	}
}

// Register binds every task type to its handler.
func (h *Handlers) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TaskWelcome, h.handleWelcomeEmailTask)
	mux.HandleFunc(TaskReconcileResonance, h.handleReconcileResonanceTask)
}

func (h *Handlers) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		metrics.RecordJobRun(TaskWelcome, false)
		// retrying a malformed payload cannot succeed
		return fmt.Errorf("failed to unmarshal welcome email payload: %v: %w", err, asynq.SkipRetry)
	}

	logger := h.logger.With().
		Str("task", TaskWelcome).
		Str("to", p.To).
		Logger()

	logger.Info().Msg("processing welcome email task")

	if err := h.email.SendWelcomeEmail(ctx, p.To); err != nil {
		metrics.RecordJobRun(TaskWelcome, false)
		logger.Error().Err(err).Msg("failed to send welcome email")
		return err
	}

	metrics.RecordJobRun(TaskWelcome, true)
	logger.Info().Msg("sent welcome email")
	return nil
}

func (h *Handlers) handleReconcileResonanceTask(ctx context.Context, _ *asynq.Task) error {
	fixed, err := h.reconciler.ReconcileResonanceCounts(ctx)
	if err != nil {
		metrics.RecordJobRun(TaskReconcileResonance, false)
		h.logger.Error().Err(err).Str("task", TaskReconcileResonance).Msg("failed to reconcile resonance counts")
		return err
	}

	metrics.RecordJobRun(TaskReconcileResonance, true)
	h.logger.Info().
		Str("task", TaskReconcileResonance).
		Int64("fixed", fixed).
		Msg("reconciled resonance counts")
	return nil
}
