// Package item implements the item repository using PostgreSQL.
// Every status write is a compare-and-swap: the UPDATE is conditioned on the
// current status matching the expected prior value, so concurrent swap
// requests racing to reserve the same item serialize without a global lock.
package item

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

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const itemColumns = `id, uploader_id, title, description, category, size, condition,
       tags, image_urls, point_value, status, created_at, updated_at`

const getByIDSQL = `
SELECT ` + itemColumns + `
FROM items
WHERE id = $1`

const insertSQL = `
INSERT INTO items (id, uploader_id, title, description, category, size, condition,
                   tags, image_urls, point_value, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

const updateStatusSQL = `
UPDATE items
SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2`

const currentStatusSQL = `
SELECT status FROM items WHERE id = $1`

const listByStatusSQL = `
SELECT ` + itemColumns + `
FROM items
WHERE status = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

const countByStatusSQL = `
SELECT count(*) FROM items WHERE status = $1`

const countGroupedSQL = `
SELECT status, count(*) FROM items GROUP BY status`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an item by primary key.
func (r *Repo) GetByID(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, itemID)
	item, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}

	return item, nil
}

// ListByStatus returns items with the given status ordered by creation time
// descending, with the total count for pagination.
func (r *Repo) ListByStatus(ctx context.Context, status domain.ItemStatus, limit, offset int) ([]*domain.Item, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countByStatusSQL, status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	rows, err := querier.Query(ctx, listByStatusSQL, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}

	return items, total, nil
}

// CountByStatus returns item counts grouped by status.
// Only non-zero groups are returned.
func (r *Repo) CountByStatus(ctx context.Context) ([]domain.ItemStatusCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countGroupedSQL)
	if err != nil {
		return nil, fmt.Errorf("count items by status: %w", err)
	}
	defer rows.Close()

	var counts []domain.ItemStatusCount
	for rows.Next() {
		var sc domain.ItemStatusCount
		var status string
		if err := rows.Scan(&status, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		sc.Status = domain.ItemStatus(status)
		counts = append(counts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}

	if counts == nil {
		counts = []domain.ItemStatusCount{}
	}

	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new item in the pending status.
func (r *Repo) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	stored := *item
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.Status = domain.ItemStatusPending
	stored.CreatedAt = now
	stored.UpdatedAt = now

	_, err := querier.Exec(ctx, insertSQL,
		stored.ID, stored.UploaderID, stored.Title, stored.Description,
		stored.Category, stored.Size, stored.Condition,
		stored.Tags, stored.ImageURLs, stored.PointValue,
		stored.Status, stored.CreatedAt, stored.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "item", stored.ID)
	}

	return &stored, nil
}

// UpdateStatus transitions the item from the expected status to the next one.
// The write is conditional on the current status still being `from`: when zero
// rows are affected the current status is re-read to distinguish
// domain.ErrNotFound (item absent) from domain.ErrConflict (race lost).
func (r *Repo) UpdateStatus(ctx context.Context, itemID uuid.UUID, from, to domain.ItemStatus) error {
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("item %s: %s → %s: %w", itemID, from, to, domain.ErrInvalidTransition)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	tag, err := querier.Exec(ctx, updateStatusSQL, itemID, from, to, now)
	if err != nil {
		return postgres.MapError(err, "item", itemID)
	}

	if tag.RowsAffected() == 0 {
		var current string
		err := querier.QueryRow(ctx, currentStatusSQL, itemID).Scan(&current)
		if err != nil {
			return postgres.MapError(err, "item", itemID)
		}
		return fmt.Errorf("item %s: status is %s, expected %s: %w",
			itemID, current, from, domain.ErrConflict)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		item   domain.Item
		status string
	)

	err := row.Scan(&item.ID, &item.UploaderID, &item.Title, &item.Description,
		&item.Category, &item.Size, &item.Condition,
		&item.Tags, &item.ImageURLs, &item.PointValue,
		&status, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}

	item.Status = domain.ItemStatus(status)
	return &item, nil
}

func scanItems(rows pgx.Rows) ([]*domain.Item, error) {
	var items []*domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if items == nil {
		items = []*domain.Item{}
	}

	return items, nil
}
