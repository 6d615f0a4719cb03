package swap

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
)

// itemRepo defines the item repository interface needed by the swap service.
type itemRepo interface {
	GetByID(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	UpdateStatus(ctx context.Context, itemID uuid.UUID, from, to domain.ItemStatus) error
}

// swapRepo defines the swap repository interface needed by the swap service.
type swapRepo interface {
	GetByID(ctx context.Context, swapID uuid.UUID) (*domain.SwapRequest, error)
	Create(ctx context.Context, sw *domain.SwapRequest) (*domain.SwapRequest, error)
	UpdateStatus(ctx context.Context, swapID uuid.UUID, from, to domain.SwapStatus) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.SwapRequest, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*domain.SwapRequest, error)
}

// ledgerRepo defines the ledger repository interface needed by the swap service.
type ledgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
}

// userRepo defines the user repository interface needed by the swap service.
type userRepo interface {
	AdjustPoints(ctx context.Context, userID uuid.UUID, delta int) error
}

// txManager defines the transaction manager interface needed by the swap service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// notifier delivers best-effort user notifications after a commit.
type notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, event domain.NotificationEvent, payload any) error
}

// Service coordinates the swap request lifecycle: creation reserves the
// involved items, rejection releases them, completion finalizes them and
// awards points to both parties in one transaction.
type Service struct {
	log             *slog.Logger
	items           itemRepo
	swaps           swapRepo
	ledger          ledgerRepo
	users           userRepo
	tx              txManager
	notify          notifier
	completionAward int
}

// NewService creates a new swap service. completionAward is the flat number
// of points each party earns when a swap completes.
func NewService(
	logger *slog.Logger,
	items itemRepo,
	swaps swapRepo,
	ledger ledgerRepo,
	users userRepo,
	tx txManager,
	notify notifier,
	completionAward int,
) *Service {
	return &Service{
		log:             logger.With("service", "swap"),
		items:           items,
		swaps:           swaps,
		ledger:          ledger,
		users:           users,
		tx:              tx,
		notify:          notify,
		completionAward: completionAward,
	}
}

// sendNotification publishes an event outside any transaction. Failures are
// logged and swallowed: notification delivery never affects the outcome of
// the operation that triggered it.
func (s *Service) sendNotification(ctx context.Context, userID uuid.UUID, event domain.NotificationEvent, payload any) {
	if err := s.notify.Notify(ctx, userID, event, payload); err != nil {
		s.log.WarnContext(ctx, "notification delivery failed",
			slog.String("event", string(event)),
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}
}
