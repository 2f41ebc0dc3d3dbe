package job

import (
	"time"

	"github.com/hibiken/asynq"
)

const TaskReconcileResonance = "whisper:reconcile_resonance"

// NewReconcileResonanceTask builds the periodic counter reconciliation task.
// Unique keeps overlapping schedules from queueing it twice.
func NewReconcileResonanceTask() *asynq.Task {
	return asynq.NewTask(
		TaskReconcileResonance,
		nil,
		asynq.MaxRetry(1),
		asynq.Queue(QueueLow),
		asynq.Timeout(2*time.Minute),
		asynq.Unique(10*time.Minute),
	)
}
