// Package points implements the points economy: every balance change is
// written in the same transaction as its append-only ledger entry, so the
// stored balance always equals the signed sum of the user's entries.
package points

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
)

// ledgerRepo defines the ledger repository interface needed by the points service.
type ledgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter domain.LedgerFilter, limit, offset int) ([]domain.LedgerEntry, int, error)
	SumByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// userRepo defines the user repository interface needed by the points service.
type userRepo interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (int, error)
	AdjustPoints(ctx context.Context, userID uuid.UUID, delta int) error
}

// itemRepo defines the item repository interface needed by the points service.
type itemRepo interface {
	GetByID(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	UpdateStatus(ctx context.Context, itemID uuid.UUID, from, to domain.ItemStatus) error
}

// txManager defines the transaction manager interface needed by the points service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements ledger-backed point movements and reads.
type Service struct {
	log             *slog.Logger
	ledger          ledgerRepo
	users           userRepo
	items           itemRepo
	tx              txManager
	historyPageSize int
}

// NewService creates a new points service.
func NewService(
	logger *slog.Logger,
	ledger ledgerRepo,
	users userRepo,
	items itemRepo,
	tx txManager,
	historyPageSize int,
) *Service {
	return &Service{
		log:             logger.With("service", "points"),
		ledger:          ledger,
		users:           users,
		items:           items,
		tx:              tx,
		historyPageSize: historyPageSize,
	}
}
