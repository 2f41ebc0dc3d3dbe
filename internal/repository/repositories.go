package repository

import (
	"context"
	"database/sql"

	"github.com/deppfellow/skyless/internal/database"
	"github.com/deppfellow/skyless/internal/server"
)

// Repositories is the Postgres Store.
type Repositories struct {
	users       *UserRepository
	sessions    *SessionRepository
	reflections *ReflectionRepository
	whispers    *WhisperRepository
	resonances  *ResonanceRepository

	// db is nil when the container is bound to a transaction.
	db *sql.DB
}

var _ Store = (*Repositories)(nil)

// NewRepositories builds the Store on the server's database.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.SQL)
}

// New builds a Store on db.
func New(db *sql.DB) *Repositories {
	r := bind(db)
	r.db = db
	return r
}

func bind(db database.DBTX) *Repositories {
	return &Repositories{
		users:       NewUserRepository(db),
		sessions:    NewSessionRepository(db),
		reflections: NewReflectionRepository(db),
		whispers:    NewWhisperRepository(db),
		resonances:  NewResonanceRepository(db),
	}
}

func (r *Repositories) Users() UserRepo             { return r.users }
func (r *Repositories) Sessions() SessionRepo       { return r.sessions }
func (r *Repositories) Reflections() ReflectionRepo { return r.reflections }
func (r *Repositories) Whispers() WhisperRepo       { return r.whispers }
func (r *Repositories) Resonances() ResonanceRepo   { return r.resonances }

// WithTx runs fn in a new transaction. Nested calls reuse the current one.
func (r *Repositories) WithTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	if r.db == nil {
		return fn(ctx, r)
	}
	return database.WithTx(ctx, r.db, func(ctx context.Context, tx database.DBTX) error {
		return fn(ctx, bind(tx))
	})
}
