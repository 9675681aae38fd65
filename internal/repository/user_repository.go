package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"bilhete-backend/internal/database"
	"bilhete-backend/internal/models"
)

// Queryable is satisfied by *pgxpool.Pool and pgx.Tx.
type Queryable interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository persists users in Postgres.
type UserRepository struct {
	q Queryable
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// Create inserts a user. Nil fields are written as NULL; balance and
// created_at come from column defaults.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordDigest *string) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, password_digest)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password_digest, balance::text, created_at`

	return r.scanUser(r.q.QueryRow(ctx, query, name, email, passwordDigest))
}

// GetByEmail returns nil, nil when no user has the given email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_digest, balance::text, created_at
		FROM users
		WHERE email = $1`

	user, err := r.scanUser(r.q.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

func (r *UserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = $1`, email).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var balance string
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordDigest,
		&balance,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance %q: %w", balance, err)
	}
	return &user, nil
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
