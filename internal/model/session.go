package model

import "time"

// Session is a single dashboard visit.
type Session struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"userId"`
	VectorAtStart Vector     `json:"vectorAtStart"`
	VectorAtEnd   Vector     `json:"vectorAtEnd"`
	StartedAt     time.Time  `json:"startedAt"`
	EndedAt       *time.Time `json:"endedAt"`
}

// BaselineVector is the vector growth is measured against: the end of the
// session when it was closed, else its start, else the default.
func (s *Session) BaselineVector() Vector {
	switch {
	case s == nil:
		return DefaultVector()
	case s.VectorAtEnd != nil:
		return s.VectorAtEnd
	case s.VectorAtStart != nil:
		return s.VectorAtStart
	default:
		return DefaultVector()
	}
}

// Dashboard is the aggregated view shown when a user opens the app.
type Dashboard struct {
	User            *User
	GrowthSinceLast int
	Whispers        []Whisper
	LastVisit       *time.Time
}
