// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/AaryaRajwade/SE-RMS/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	SetApproved(ctx context.Context, id string) error
	SetBanned(ctx context.Context, username string, banned bool) error
	ListPending(ctx context.Context) ([]User, error)
	ListAll(ctx context.Context) ([]User, error)
	ResetAdmin(ctx context.Context, username, passwordHash string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (
			id, name, username, email, password_hash, default_pincode,
			role, is_approved, is_banned
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, user, query,
		user.ID,
		user.Name,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.DefaultPincode,
		user.Role,
		user.IsApproved,
		user.IsBanned,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, name, username, email, password_hash, default_pincode,
		       role, is_approved, is_banned, created_at, updated_at
		FROM users
		WHERE id = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	query := `
		SELECT id, name, username, email, password_hash, default_pincode,
		       role, is_approved, is_banned, created_at, updated_at
		FROM users
		WHERE username = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by username: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	return &user, nil
}

// SetApproved is idempotent: approving an already-approved user still
// matches the row and succeeds.
func (r *repository) SetApproved(ctx context.Context, id string) error {
	query := `
		UPDATE users
		SET is_approved = true, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("approve user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("approve user: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("approve user: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) SetBanned(
	ctx context.Context,
	username string,
	banned bool,
) error {
	query := `
		UPDATE users
		SET is_banned = $2, updated_at = NOW()
		WHERE username = $1`

	result, err := r.db.ExecContext(ctx, query, username, banned)
	if err != nil {
		return fmt.Errorf("set banned: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set banned: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("set banned: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ListPending(ctx context.Context) ([]User, error) {
	query := `
		SELECT id, name, username, email, password_hash, default_pincode,
		       role, is_approved, is_banned, created_at, updated_at
		FROM users
		WHERE is_approved = false
		ORDER BY created_at DESC`

	var users []User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list pending users: %w", err)
	}

	return users, nil
}

func (r *repository) ListAll(ctx context.Context) ([]User, error) {
	query := `
		SELECT id, name, username, email, password_hash, default_pincode,
		       role, is_approved, is_banned, created_at, updated_at
		FROM users
		ORDER BY created_at DESC`

	var users []User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// ResetAdmin force-promotes an account to an approved, unbanned admin with a
// fresh password hash. Used only by the maintenance CLI.
func (r *repository) ResetAdmin(
	ctx context.Context,
	username, passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $2, role = 'admin', is_approved = true,
		    is_banned = false, updated_at = NOW()
		WHERE username = $1`

	result, err := r.db.ExecContext(ctx, query, username, passwordHash)
	if err != nil {
		return fmt.Errorf("reset admin: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reset admin: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("reset admin: %w", core.ErrNotFound)
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
