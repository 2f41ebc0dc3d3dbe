package job

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TaskWelcome = "email:welcome"

type WelcomeEmailPayload struct {
	To string `json:"to"`
}

// NewWelcomeEmailTask builds the welcome email task. It is retried three
// times and must finish within 30 seconds.
func NewWelcomeEmailTask(to string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{To: to})
	if err != nil {
		return nil, fmt.Errorf("marshal welcome email payload: %w", err)
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueDefault),
		asynq.Timeout(30*time.Second),
	), nil
}
