// Package swap implements the swap request repository using PostgreSQL.
// Status writes use the same compare-and-swap guard as the item repository:
// the UPDATE is conditioned on the expected prior status, so concurrent
// completes of one swap admit exactly one winner.
package swap

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

// Repo provides swap request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new swap repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const swapColumns = `id, item_id, offered_item_id, requester_id, owner_id, message, status,
       created_at, updated_at`

const getByIDSQL = `
SELECT ` + swapColumns + `
FROM swaps
WHERE id = $1`

const insertSQL = `
INSERT INTO swaps (id, item_id, offered_item_id, requester_id, owner_id, message, status,
                   created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const updateStatusSQL = `
UPDATE swaps
SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2`

const currentStatusSQL = `
SELECT status FROM swaps WHERE id = $1`

const listByOwnerSQL = `
SELECT ` + swapColumns + `
FROM swaps
WHERE owner_id = $1
ORDER BY created_at DESC`

const listByRequesterSQL = `
SELECT ` + swapColumns + `
FROM swaps
WHERE requester_id = $1
ORDER BY created_at DESC`

const countGroupedSQL = `
SELECT status, count(*) FROM swaps GROUP BY status`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a swap request by primary key.
func (r *Repo) GetByID(ctx context.Context, swapID uuid.UUID) (*domain.SwapRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, swapID)
	sw, err := scanSwap(row)
	if err != nil {
		return nil, postgres.MapError(err, "swap", swapID)
	}

	return sw, nil
}

// ListByOwner returns swaps targeting the user's items, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.SwapRequest, error) {
	return r.list(ctx, listByOwnerSQL, ownerID)
}

// ListByRequester returns swaps the user initiated, newest first.
func (r *Repo) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*domain.SwapRequest, error) {
	return r.list(ctx, listByRequesterSQL, requesterID)
}

func (r *Repo) list(ctx context.Context, sql string, userID uuid.UUID) ([]*domain.SwapRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("list swaps: %w", err)
	}
	defer rows.Close()

	swaps, err := scanSwaps(rows)
	if err != nil {
		return nil, fmt.Errorf("list swaps: %w", err)
	}

	return swaps, nil
}

// CountByStatus returns swap counts grouped by status.
// Only non-zero groups are returned.
func (r *Repo) CountByStatus(ctx context.Context) ([]domain.SwapStatusCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countGroupedSQL)
	if err != nil {
		return nil, fmt.Errorf("count swaps by status: %w", err)
	}
	defer rows.Close()

	var counts []domain.SwapStatusCount
	for rows.Next() {
		var sc domain.SwapStatusCount
		var status string
		if err := rows.Scan(&status, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		sc.Status = domain.SwapStatus(status)
		counts = append(counts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}

	if counts == nil {
		counts = []domain.SwapStatusCount{}
	}

	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new swap request in the pending status.
func (r *Repo) Create(ctx context.Context, sw *domain.SwapRequest) (*domain.SwapRequest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	stored := *sw
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.Status = domain.SwapStatusPending
	stored.CreatedAt = now
	stored.UpdatedAt = now

	_, err := querier.Exec(ctx, insertSQL,
		stored.ID, stored.ItemID, stored.OfferedItemID,
		stored.RequesterID, stored.OwnerID, stored.Message,
		stored.Status, stored.CreatedAt, stored.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "swap", stored.ID)
	}

	return &stored, nil
}

// UpdateStatus transitions the swap from the expected status to the next one.
// Zero rows affected means the status changed underneath the caller (or the
// swap is gone): absent → domain.ErrNotFound, otherwise
// domain.ErrInvalidTransition: the losing side of a race on the same swap
// observes the same error as a plainly illegal transition.
func (r *Repo) UpdateStatus(ctx context.Context, swapID uuid.UUID, from, to domain.SwapStatus) error {
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("swap %s: %s → %s: %w", swapID, from, to, domain.ErrInvalidTransition)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	tag, err := querier.Exec(ctx, updateStatusSQL, swapID, from, to, now)
	if err != nil {
		return postgres.MapError(err, "swap", swapID)
	}

	if tag.RowsAffected() == 0 {
		var current string
		err := querier.QueryRow(ctx, currentStatusSQL, swapID).Scan(&current)
		if err != nil {
			return postgres.MapError(err, "swap", swapID)
		}
		return fmt.Errorf("swap %s: status is %s, expected %s: %w",
			swapID, current, from, domain.ErrInvalidTransition)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanSwap(row pgx.Row) (*domain.SwapRequest, error) {
	var (
		sw     domain.SwapRequest
		status string
	)

	err := row.Scan(&sw.ID, &sw.ItemID, &sw.OfferedItemID,
		&sw.RequesterID, &sw.OwnerID, &sw.Message,
		&status, &sw.CreatedAt, &sw.UpdatedAt)
	if err != nil {
		return nil, err
	}

	sw.Status = domain.SwapStatus(status)
	return &sw, nil
}

func scanSwaps(rows pgx.Rows) ([]*domain.SwapRequest, error) {
	var swaps []*domain.SwapRequest
	for rows.Next() {
		sw, err := scanSwap(rows)
		if err != nil {
			return nil, err
		}
		swaps = append(swaps, sw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if swaps == nil {
		swaps = []*domain.SwapRequest{}
	}

	return swaps, nil
}
