// Package repository holds the SQL behind every domain operation.
//
// Each repository runs against a database.DBTX, so the same code serves a
// plain connection and a transaction. Store is what the service layer
// depends on; missing rows are reported through sqlerr.NotFound.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/deppfellow/skyless/internal/model"
)

type UserRepo interface {
	// UpsertWallet creates a wallet user or touches last_login_at of the
	// existing one. created is true when the row was inserted.
	UpsertWallet(ctx context.Context, address string) (user *model.User, created bool, err error)
	UpsertEmail(ctx context.Context, email string) (user *model.User, created bool, err error)
	CreateAnonymous(ctx context.Context, anonymousID uuid.UUID) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// LockByID reads the user with SELECT ... FOR UPDATE.
	LockByID(ctx context.Context, id int64) (*model.User, error)
	GetByWallet(ctx context.Context, address string) (*model.User, error)
	UpdateIdentityVector(ctx context.Context, id int64, vector model.Vector) error
	UpdateMood(ctx context.Context, id int64, mood model.Mood) error
}

type SessionRepo interface {
	// Latest returns the most recent session, or nil when the user has none.
	Latest(ctx context.Context, userID int64) (*model.Session, error)
	Create(ctx context.Context, userID int64, vectorAtStart model.Vector) (*model.Session, error)
	// CloseOpen stamps ended_at and vector_at_end on the user's open
	// sessions and returns the newest of them.
	CloseOpen(ctx context.Context, userID int64, vectorAtEnd model.Vector) (*model.Session, error)
}

type ReflectionRepo interface {
	Create(ctx context.Context, reflection *model.Reflection) error
}

type WhisperRepo interface {
	Create(ctx context.Context, whisper *model.Whisper) error
	ListActive(ctx context.Context, limit int) ([]model.Whisper, error)
	// ListActiveForUser sets UserHasResonated on every whisper.
	ListActiveForUser(ctx context.Context, userID int64, limit int) ([]model.Whisper, error)
	// LockByID reads the whisper and its author with SELECT ... FOR UPDATE,
	// active or not.
	LockByID(ctx context.Context, id int64) (*model.Whisper, error)
	// AdjustResonanceCount adds delta to the counter, flooring it at zero.
	AdjustResonanceCount(ctx context.Context, id int64, delta int) (int, error)
	Deactivate(ctx context.Context, id int64) error
	// ReconcileResonanceCounts rewrites every counter that drifted from the
	// number of resonance rows and returns how many were fixed.
	ReconcileResonanceCounts(ctx context.Context) (int64, error)
}

type ResonanceRepo interface {
	Create(ctx context.Context, userID, whisperID int64) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, userID, whisperID int64) (bool, error)
}

// Store groups the repositories and runs them inside transactions.
type Store interface {
	Users() UserRepo
	Sessions() SessionRepo
	Reflections() ReflectionRepo
	Whispers() WhisperRepo
	Resonances() ResonanceRepo

	// WithTx runs fn against a Store bound to a single transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

type rowScanner interface {
	Scan(dest ...any) error
}
