// Package ledger implements the append-only points ledger using PostgreSQL.
// Entries are inserted, never updated or deleted; the seq column gives
// monotonic creation order.
package ledger

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/closetswap/closetswap-backend/internal/adapter/postgres"
	"github.com/closetswap/closetswap-backend/internal/domain"
)

// Repo provides ledger entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ledger repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const insertSQL = `
INSERT INTO points_ledger (id, user_id, type, amount, reason, item_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING seq`

const sumByUserSQL = `
SELECT COALESCE(SUM(CASE WHEN type = 'spent' THEN -amount ELSE amount END), 0)
FROM points_ledger
WHERE user_id = $1`

// Append inserts a new ledger entry and returns it with its assigned seq.
// Must be called inside the same transaction as the paired balance write.
func (r *Repo) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	stored := *entry
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	err := querier.QueryRow(ctx, insertSQL,
		stored.ID, stored.UserID, stored.Type, stored.Amount,
		stored.Reason, stored.ItemID, stored.CreatedAt,
	).Scan(&stored.Seq)
	if err != nil {
		return nil, postgres.MapError(err, "ledger_entry", stored.ID)
	}

	return &stored, nil
}

// ListByUser returns a page of the user's ledger entries, newest first,
// optionally filtered by type and reason, with the total matching count.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.LedgerFilter, limit, offset int) ([]domain.LedgerEntry, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.Eq{"user_id": userID}
	countQ := psql.Select("count(*)").From("points_ledger").Where(where)
	listQ := psql.Select("id", "seq", "user_id", "type", "amount", "reason", "item_id", "created_at").
		From("points_ledger").
		Where(where).
		OrderBy("seq DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if filter.Type != nil {
		countQ = countQ.Where(sq.Eq{"type": *filter.Type})
		listQ = listQ.Where(sq.Eq{"type": *filter.Type})
	}
	if filter.Reason != nil {
		countQ = countQ.Where(sq.Eq{"reason": *filter.Reason})
		listQ = listQ.Where(sq.Eq{"reason": *filter.Reason})
	}

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ledger entries: %w", err)
	}

	listSQL, listArgs, err := listQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list ledger entries: %w", err)
	}

	return entries, total, nil
}

// SumByUser returns the signed sum of the user's ledger entries.
// It must always equal the user's stored balance; used by invariant checks
// and tests, not by the hot path.
func (r *Repo) SumByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var sum int
	if err := querier.QueryRow(ctx, sumByUserSQL, userID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum ledger entries: %w", err)
	}

	return sum, nil
}

func scanEntries(rows pgx.Rows) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry
	for rows.Next() {
		var (
			e      domain.LedgerEntry
			typ    string
			reason string
		)
		if err := rows.Scan(&e.ID, &e.Seq, &e.UserID, &typ, &e.Amount,
			&reason, &e.ItemID, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Type = domain.LedgerEntryType(typ)
		e.Reason = domain.LedgerReason(reason)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []domain.LedgerEntry{}
	}

	return entries, nil
}
