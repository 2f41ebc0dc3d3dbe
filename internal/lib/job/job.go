// Package job runs background work on asynq.
//
// The JobService owns the asynq client used to enqueue tasks, the worker
// server that processes them and the scheduler that enqueues periodic ones.
package job

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/skyless/internal/config"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type JobService struct {
	Client *asynq.Client

	enqueuer  Enqueuer
	server    *asynq.Server
	scheduler *asynq.Scheduler
	cfg       *config.Config
	logger    *zerolog.Logger
}

// NewJobService connects the client, worker and scheduler to Redis.
// Nothing runs until Start is called.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}
	asynqLog := newAsynqLogger(logger)

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: cfg.Jobs.Concurrency,
			Queues: map[string]int{
				QueueCritical: 6,
				QueueDefault:  3,
				QueueLow:      1,
			},
			Logger: asynqLog,
		},
	)

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Location: time.UTC,
		Logger:   asynqLog,
	})

	return &JobService{
		Client:    client,
		enqueuer:  client,
		server:    server,
		scheduler: scheduler,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start registers h on the worker, schedules the periodic tasks and starts
// both. It does not block.
func (j *JobService) Start(h *Handlers) error {
	mux := asynq.NewServeMux()
	h.Register(mux)

	j.logger.Info().Msg("starting background job server")
	if err := j.server.Start(mux); err != nil {
		return fmt.Errorf("start job server: %w", err)
	}

	scheduled, err := j.schedule()
	if err != nil {
		return err
	}
	if scheduled {
		if err := j.scheduler.Start(); err != nil {
			return fmt.Errorf("start job scheduler: %w", err)
		}
	}

	return nil
}

func (j *JobService) schedule() (bool, error) {
	cronExpr := j.cfg.Jobs.ReconcileCron
	if cronExpr == "" || cronExpr == "off" {
		j.logger.Info().Msg("resonance reconciliation disabled")
		return false, nil
	}

	entryID, err := j.scheduler.Register(cronExpr, NewReconcileResonanceTask())
	if err != nil {
		return false, fmt.Errorf("schedule %s with %q: %w", TaskReconcileResonance, cronExpr, err)
	}

	j.logger.Info().
		Str("task", TaskReconcileResonance).
		Str("cron", cronExpr).
		Str("entry_id", entryID).
		Msg("scheduled periodic task")
	return true, nil
}

// EnqueueWelcomeEmail queues the welcome email for a new email user.
func (j *JobService) EnqueueWelcomeEmail(ctx context.Context, to string) error {
	task, err := NewWelcomeEmailTask(to)
	if err != nil {
		return err
	}

	info, err := j.enqueuer.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TaskWelcome, err)
	}

	j.logger.Debug().
		Str("task", TaskWelcome).
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("enqueued task")
	return nil
}

// Stop shuts down the scheduler and the worker and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.scheduler.Shutdown()
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// asynqLogger routes asynq's internal logs through zerolog.
type asynqLogger struct {
	logger zerolog.Logger
}

func newAsynqLogger(logger *zerolog.Logger) *asynqLogger {
	return &asynqLogger{logger: logger.With().Str("component", "asynq").Logger()}
}

func (l *asynqLogger) Debug(args ...any) { l.logger.Debug().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Info(args ...any)  { l.logger.Info().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Warn(args ...any)  { l.logger.Warn().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Error(args ...any) { l.logger.Error().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Fatal(args ...any) { l.logger.Fatal().Msg(fmt.Sprint(args...)) }
