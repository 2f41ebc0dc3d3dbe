package model

import "time"

const (
	DefaultWhisperLimit   = 5
	MaxWhisperLimit       = 50
	DashboardWhisperLimit = 3
)

// Whisper is the public copy of a reflection.
//
// UserHasResonated is set only when the listing was made on behalf of a user.
type Whisper struct {
	ID                 int64     `json:"id"`
	SourceReflectionID int64     `json:"sourceReflectionId"`
	Content            string    `json:"content"`
	ResonanceCount     int       `json:"resonanceCount"`
	IsActive           bool      `json:"-"`
	CreatedAt          time.Time `json:"createdAt"`
	UserHasResonated   *bool     `json:"userHasResonated,omitempty"`

	// AuthorID is the user behind the source reflection. Never exposed.
	AuthorID int64 `json:"-"`
}

// ResonanceResult is the outcome of a resonance toggle.
type ResonanceResult struct {
	Resonated bool
	NewCount  int
}

// ClampWhisperLimit maps a requested page size onto [1, MaxWhisperLimit];
// zero or negative means DefaultWhisperLimit.
func ClampWhisperLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultWhisperLimit
	case limit > MaxWhisperLimit:
		return MaxWhisperLimit
	default:
		return limit
	}
}
