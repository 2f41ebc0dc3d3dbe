package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/deppfellow/skyless/internal/database"
	"github.com/deppfellow/skyless/internal/model"
	"github.com/deppfellow/skyless/internal/sqlerr"
)

const userColumns = `id, email, wallet_address, anonymous_id, connection_type, identity_vector,
	preferred_mood, last_login_at, created_at, updated_at`

type UserRepository struct {
	db database.DBTX
}

func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row rowScanner, extra ...any) (*model.User, error) {
	var (
		u              model.User
		email, wallet  sql.NullString
		anonymousID    uuid.NullUUID
		connectionType string
		mood           string
	)

	dest := append([]any{
		&u.ID, &email, &wallet, &anonymousID, &connectionType, &u.IdentityVector,
		&mood, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	}, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if email.Valid {
		u.Email = &email.String
	}
	if wallet.Valid {
		u.WalletAddress = &wallet.String
	}
	if anonymousID.Valid {
		u.AnonymousID = &anonymousID.UUID
	}
	u.ConnectionType = model.ConnectionType(connectionType)
	u.PreferredMood = model.Mood(mood)

	return &u, nil
}

func (r *UserRepository) upsert(ctx context.Context, column string, value string, connectionType model.ConnectionType) (*model.User, bool, error) {
	query := fmt.Sprintf(`INSERT INTO users (%[1]s, connection_type)
		VALUES ($1, $2)
		ON CONFLICT (%[1]s) DO UPDATE SET last_login_at = CURRENT_TIMESTAMP
		RETURNING %[2]s, (xmax = 0) AS inserted`, column, userColumns)

	var created bool
	user, err := scanUser(r.db.QueryRowContext(ctx, query, value, string(connectionType)), &created)
	if err != nil {
		return nil, false, fmt.Errorf("upsert user by %s: %w", column, err)
	}
	return user, created, nil
}

func (r *UserRepository) UpsertWallet(ctx context.Context, address string) (*model.User, bool, error) {
	return r.upsert(ctx, "wallet_address", address, model.ConnectionWallet)
}

func (r *UserRepository) UpsertEmail(ctx context.Context, email string) (*model.User, bool, error) {
	return r.upsert(ctx, "email", email, model.ConnectionEmail)
}

func (r *UserRepository) CreateAnonymous(ctx context.Context, anonymousID uuid.UUID) (*model.User, error) {
	query := `INSERT INTO users (anonymous_id, connection_type)
		VALUES ($1, $2)
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query, anonymousID, string(model.ConnectionAnonymous)))
	if err != nil {
		return nil, fmt.Errorf("create anonymous user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sqlerr.NotFound("users")
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) LockByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
}

func (r *UserRepository) GetByWallet(ctx context.Context, address string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE wallet_address = $1`, address)
}

func (r *UserRepository) UpdateIdentityVector(ctx context.Context, id int64, vector model.Vector) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET identity_vector = $2 WHERE id = $1`, id, vector)
	if err != nil {
		return fmt.Errorf("update identity vector: %w", err)
	}
	return requireOneRow(res, "users")
}

func (r *UserRepository) UpdateMood(ctx context.Context, id int64, mood model.Mood) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET preferred_mood = $2 WHERE id = $1`, id, string(mood))
	if err != nil {
		return fmt.Errorf("update mood: %w", err)
	}
	return requireOneRow(res, "users")
}

func requireOneRow(res sql.Result, table string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sqlerr.NotFound(table)
	}
	return nil
}
