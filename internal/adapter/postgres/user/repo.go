// Package user implements the user repository using PostgreSQL.
// The balance write is guarded: the UPDATE carries the non-negativity
// condition so an insufficient balance can never go negative, even under
// concurrent spends.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/closetswap/closetswap-backend/internal/adapter/postgres"
	"github.com/closetswap/closetswap-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, name, role, points, created_at, updated_at`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const insertSQL = `
INSERT INTO users (id, email, name, role, points, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const adjustPointsSQL = `
UPDATE users
SET points = points + $2, updated_at = $3
WHERE id = $1 AND points + $2 >= 0`

const existsSQL = `
SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

const balanceSQL = `
SELECT points FROM users WHERE id = $1`

const topByPointsSQL = `
SELECT ` + userColumns + `
FROM users
ORDER BY points DESC, created_at ASC
LIMIT $1`

const countSQL = `
SELECT count(*) FROM users`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, userID)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	return u, nil
}

// GetBalance returns the user's current point balance.
func (r *Repo) GetBalance(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var points int
	if err := querier.QueryRow(ctx, balanceSQL, userID).Scan(&points); err != nil {
		return 0, postgres.MapError(err, "user", userID)
	}

	return points, nil
}

// TopByPoints returns the highest-balance users, for platform stats.
func (r *Repo) TopByPoints(ctx context.Context, limit int) ([]*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, topByPointsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("top users by points: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("top users by points: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top users by points: %w", err)
	}

	if users == nil {
		users = []*domain.User{}
	}

	return users, nil
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	stored := *u
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.Role == "" {
		stored.Role = domain.UserRoleUser
	}
	stored.CreatedAt = now
	stored.UpdatedAt = now

	_, err := querier.Exec(ctx, insertSQL,
		stored.ID, stored.Email, stored.Name, stored.Role,
		stored.Points, stored.CreatedAt, stored.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", stored.ID)
	}

	return &stored, nil
}

// AdjustPoints applies a signed delta to the user's balance. The write is
// conditional on the result staying non-negative: zero rows affected means
// either the user is absent (domain.ErrNotFound) or the balance is too low
// (domain.ErrInsufficientPoints).
//
// Must be called inside the same transaction as the paired ledger append.
func (r *Repo) AdjustPoints(ctx context.Context, userID uuid.UUID, delta int) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	tag, err := querier.Exec(ctx, adjustPointsSQL, userID, delta, now)
	if err != nil {
		return postgres.MapError(err, "user", userID)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := querier.QueryRow(ctx, existsSQL, userID).Scan(&exists); err != nil {
			return postgres.MapError(err, "user", userID)
		}
		if !exists {
			return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
		}
		return fmt.Errorf("user %s: %w", userID, domain.ErrInsufficientPoints)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)

	err := row.Scan(&u.ID, &u.Email, &u.Name, &role, &u.Points,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}

	u.Role = domain.UserRole(role)
	return &u, nil
}
