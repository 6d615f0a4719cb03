// Package moderation implements the admin gate that stands between an
// uploaded item and the public catalog, plus the platform statistics the
// admin dashboard reads.
package moderation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
)

// itemRepo defines the item repository interface needed by the moderation service.
type itemRepo interface {
	GetByID(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	UpdateStatus(ctx context.Context, itemID uuid.UUID, from, to domain.ItemStatus) error
	ListByStatus(ctx context.Context, status domain.ItemStatus, limit, offset int) ([]*domain.Item, int, error)
	CountByStatus(ctx context.Context) ([]domain.ItemStatusCount, error)
}

// swapRepo defines the swap repository interface needed by the moderation service.
type swapRepo interface {
	CountByStatus(ctx context.Context) ([]domain.SwapStatusCount, error)
}

// ledgerRepo defines the ledger repository interface needed by the moderation service.
type ledgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
}

// userRepo defines the user repository interface needed by the moderation service.
type userRepo interface {
	AdjustPoints(ctx context.Context, userID uuid.UUID, delta int) error
	TopByPoints(ctx context.Context, limit int) ([]*domain.User, error)
	Count(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by the moderation service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// notifier delivers best-effort user notifications after a commit.
type notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, event domain.NotificationEvent, payload any) error
}

// Service implements the moderation operations. All of them require the
// admin role.
type Service struct {
	log         *slog.Logger
	items       itemRepo
	swaps       swapRepo
	ledger      ledgerRepo
	users       userRepo
	tx          txManager
	notify      notifier
	uploadAward int
}

// NewService creates a new moderation service. uploadAward is the flat
// number of points an uploader earns when their item is approved.
func NewService(
	logger *slog.Logger,
	items itemRepo,
	swaps swapRepo,
	ledger ledgerRepo,
	users userRepo,
	tx txManager,
	notify notifier,
	uploadAward int,
) *Service {
	return &Service{
		log:         logger.With("service", "moderation"),
		items:       items,
		swaps:       swaps,
		ledger:      ledger,
		users:       users,
		tx:          tx,
		notify:      notify,
		uploadAward: uploadAward,
	}
}

// asTransitionErr maps the item repo's stale-status signal to
// ErrInvalidTransition. An already-moderated item cannot be decided again,
// so reporting a retryable conflict would be wrong: retrying can never
// succeed.
func asTransitionErr(err error) error {
	if errors.Is(err, domain.ErrConflict) {
		return domain.ErrInvalidTransition
	}
	return err
}

// sendNotification publishes an event outside any transaction. Failures are
// logged and swallowed.
func (s *Service) sendNotification(ctx context.Context, userID uuid.UUID, event domain.NotificationEvent, payload any) {
	if err := s.notify.Notify(ctx, userID, event, payload); err != nil {
		s.log.WarnContext(ctx, "notification delivery failed",
			slog.String("event", string(event)),
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}
}
