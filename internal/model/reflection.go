package model

import "time"

const (
	MinReflectionLength = 1
	MaxReflectionLength = 500
)

type Reflection struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Content     string    `json:"content"`
	IsAnonymous bool      `json:"isAnonymous"`
	VectorDelta Vector    `json:"vectorDelta"`
	CreatedAt   time.Time `json:"createdAt"`
}
