package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/skyless/internal/errs"
	"github.com/deppfellow/skyless/internal/model"
	"github.com/deppfellow/skyless/internal/repository"
	"github.com/deppfellow/skyless/internal/sqlerr"
)

// memStore is an in-memory repository.Store. WithTx restores a snapshot
// when fn fails.
type memStore struct {
	nextID      int64
	now         time.Time
	users       map[int64]*model.User
	sessions    []*model.Session
	reflections []*model.Reflection
	whispers    []*model.Whisper
	resonances  map[[2]int64]bool

	// failWhisperCreate makes Whispers().Create fail.
	failWhisperCreate error
}

var _ repository.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		now:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		users:      map[int64]*model.User{},
		resonances: map[[2]int64]bool{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) tick() time.Time {
	s.now = s.now.Add(time.Minute)
	return s.now
}

func (s *memStore) Users() repository.UserRepo             { return memUsers{s} }
func (s *memStore) Sessions() repository.SessionRepo       { return memSessions{s} }
func (s *memStore) Reflections() repository.ReflectionRepo { return memReflections{s} }
func (s *memStore) Whispers() repository.WhisperRepo       { return memWhispers{s} }
func (s *memStore) Resonances() repository.ResonanceRepo   { return memResonances{s} }

func (s *memStore) WithTx(ctx context.Context, fn func(ctx context.Context, tx repository.Store) error) error {
	snapshot := s.clone()
	if err := fn(ctx, s); err != nil {
		failWhisperCreate := s.failWhisperCreate
		*s = *snapshot
		s.failWhisperCreate = failWhisperCreate
		return err
	}
	return nil
}

func (s *memStore) clone() *memStore {
	c := *s
	c.users = make(map[int64]*model.User, len(s.users))
	for id, u := range s.users {
		cu := *u
		cu.IdentityVector = append(model.Vector(nil), u.IdentityVector...)
		c.users[id] = &cu
	}
	c.sessions = make([]*model.Session, len(s.sessions))
	for i, sess := range s.sessions {
		cs := *sess
		c.sessions[i] = &cs
	}
	c.reflections = append([]*model.Reflection(nil), s.reflections...)
	c.whispers = make([]*model.Whisper, len(s.whispers))
	for i, w := range s.whispers {
		cw := *w
		c.whispers[i] = &cw
	}
	c.resonances = make(map[[2]int64]bool, len(s.resonances))
	for k, v := range s.resonances {
		c.resonances[k] = v
	}
	return &c
}

func (s *memStore) addUser(ct model.ConnectionType) *model.User {
	now := s.tick()
	u := &model.User{
		ID:             s.id(),
		ConnectionType: ct,
		IdentityVector: model.DefaultVector(),
		PreferredMood:  model.DefaultMood,
		LastLoginAt:    now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.users[u.ID] = u
	return u
}

func (s *memStore) whisper(id int64) *model.Whisper {
	for _, w := range s.whispers {
		if w.ID == id {
			return w
		}
	}
	return nil
}

type memUsers struct{ s *memStore }

func (r memUsers) find(match func(*model.User) bool) *model.User {
	for _, u := range r.s.users {
		if match(u) {
			return u
		}
	}
	return nil
}

func (r memUsers) UpsertWallet(_ context.Context, address string) (*model.User, bool, error) {
	if u := r.find(func(u *model.User) bool { return u.WalletAddress != nil && *u.WalletAddress == address }); u != nil {
		u.LastLoginAt = r.s.tick()
		cp := *u
		return &cp, false, nil
	}
	u := r.s.addUser(model.ConnectionWallet)
	u.WalletAddress = &address
	cp := *u
	return &cp, true, nil
}

func (r memUsers) UpsertEmail(_ context.Context, email string) (*model.User, bool, error) {
	if u := r.find(func(u *model.User) bool { return u.Email != nil && *u.Email == email }); u != nil {
		u.LastLoginAt = r.s.tick()
		cp := *u
		return &cp, false, nil
	}
	u := r.s.addUser(model.ConnectionEmail)
	u.Email = &email
	cp := *u
	return &cp, true, nil
}

func (r memUsers) CreateAnonymous(_ context.Context, anonymousID uuid.UUID) (*model.User, error) {
	u := r.s.addUser(model.ConnectionAnonymous)
	u.AnonymousID = &anonymousID
	cp := *u
	return &cp, nil
}

func (r memUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, sqlerr.NotFound("users")
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) LockByID(ctx context.Context, id int64) (*model.User, error) {
	return r.GetByID(ctx, id)
}

func (r memUsers) GetByWallet(_ context.Context, address string) (*model.User, error) {
	u := r.find(func(u *model.User) bool { return u.WalletAddress != nil && *u.WalletAddress == address })
	if u == nil {
		return nil, sqlerr.NotFound("users")
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) UpdateIdentityVector(_ context.Context, id int64, vector model.Vector) error {
	u, ok := r.s.users[id]
	if !ok {
		return sqlerr.NotFound("users")
	}
	u.IdentityVector = append(model.Vector(nil), vector...)
	return nil
}

func (r memUsers) UpdateMood(_ context.Context, id int64, mood model.Mood) error {
	u, ok := r.s.users[id]
	if !ok {
		return sqlerr.NotFound("users")
	}
	u.PreferredMood = mood
	return nil
}

type memSessions struct{ s *memStore }

func (r memSessions) Latest(_ context.Context, userID int64) (*model.Session, error) {
	for i := len(r.s.sessions) - 1; i >= 0; i-- {
		if sess := r.s.sessions[i]; sess.UserID == userID {
			cp := *sess
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memSessions) Create(_ context.Context, userID int64, vectorAtStart model.Vector) (*model.Session, error) {
	sess := &model.Session{
		ID:            r.s.id(),
		UserID:        userID,
		VectorAtStart: vectorAtStart,
		StartedAt:     r.s.tick(),
	}
	r.s.sessions = append(r.s.sessions, sess)
	cp := *sess
	return &cp, nil
}

func (r memSessions) CloseOpen(_ context.Context, userID int64, vectorAtEnd model.Vector) (*model.Session, error) {
	var newest *model.Session
	for _, sess := range r.s.sessions {
		if sess.UserID != userID || sess.EndedAt != nil {
			continue
		}
		endedAt := r.s.tick()
		sess.EndedAt = &endedAt
		sess.VectorAtEnd = vectorAtEnd
		newest = sess
	}
	if newest == nil {
		return nil, sqlerr.NotFound("sessions")
	}
	cp := *newest
	return &cp, nil
}

type memReflections struct{ s *memStore }

func (r memReflections) Create(_ context.Context, reflection *model.Reflection) error {
	reflection.ID = r.s.id()
	reflection.CreatedAt = r.s.tick()
	r.s.reflections = append(r.s.reflections, reflection)
	return nil
}

type memWhispers struct{ s *memStore }

func (r memWhispers) Create(_ context.Context, whisper *model.Whisper) error {
	if r.s.failWhisperCreate != nil {
		return r.s.failWhisperCreate
	}
	whisper.ID = r.s.id()
	whisper.IsActive = true
	whisper.CreatedAt = r.s.tick()
	cp := *whisper
	r.s.whispers = append(r.s.whispers, &cp)
	return nil
}

func (r memWhispers) list(limit int, annotate func(*model.Whisper)) []model.Whisper {
	out := []model.Whisper{}
	for i := len(r.s.whispers) - 1; i >= 0 && len(out) < limit; i-- {
		w := *r.s.whispers[i]
		if !w.IsActive {
			continue
		}
		if annotate != nil {
			annotate(&w)
		}
		out = append(out, w)
	}
	return out
}

func (r memWhispers) ListActive(_ context.Context, limit int) ([]model.Whisper, error) {
	return r.list(limit, nil), nil
}

func (r memWhispers) ListActiveForUser(_ context.Context, userID int64, limit int) ([]model.Whisper, error) {
	return r.list(limit, func(w *model.Whisper) {
		resonated := r.s.resonances[[2]int64{userID, w.ID}]
		w.UserHasResonated = &resonated
	}), nil
}

func (r memWhispers) LockByID(_ context.Context, id int64) (*model.Whisper, error) {
	w := r.s.whisper(id)
	if w == nil {
		return nil, sqlerr.NotFound("whispers")
	}
	cp := *w
	return &cp, nil
}

func (r memWhispers) AdjustResonanceCount(_ context.Context, id int64, delta int) (int, error) {
	w := r.s.whisper(id)
	if w == nil {
		return 0, sqlerr.NotFound("whispers")
	}
	w.ResonanceCount = max(w.ResonanceCount+delta, 0)
	return w.ResonanceCount, nil
}

func (r memWhispers) Deactivate(_ context.Context, id int64) error {
	w := r.s.whisper(id)
	if w == nil {
		return sqlerr.NotFound("whispers")
	}
	w.IsActive = false
	return nil
}

func (r memWhispers) ReconcileResonanceCounts(context.Context) (int64, error) {
	var fixed int64
	for _, w := range r.s.whispers {
		count := 0
		for key := range r.s.resonances {
			if key[1] == w.ID {
				count++
			}
		}
		if w.ResonanceCount != count {
			w.ResonanceCount = count
			fixed++
		}
	}
	return fixed, nil
}

type memResonances struct{ s *memStore }

func (r memResonances) Create(_ context.Context, userID, whisperID int64) error {
	key := [2]int64{userID, whisperID}
	if r.s.resonances[key] {
		return errors.New("duplicate resonance")
	}
	r.s.resonances[key] = true
	return nil
}

func (r memResonances) Delete(_ context.Context, userID, whisperID int64) (bool, error) {
	key := [2]int64{userID, whisperID}
	if !r.s.resonances[key] {
		return false, nil
	}
	delete(r.s.resonances, key)
	return true, nil
}

func requireStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	require.Error(t, err)

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		require.Equal(t, status, httpErr.Status)
		return httpErr
	}

	// repository errors surface through sqlerr like in the error handler
	mapped := sqlerr.HandleError(err)
	require.True(t, errors.As(mapped, &httpErr), "unexpected error %v", err)
	require.Equal(t, status, httpErr.Status)
	return httpErr
}
