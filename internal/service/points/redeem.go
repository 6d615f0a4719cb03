package points

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
	"github.com/closetswap/closetswap-backend/pkg/ctxutil"
)

// Redeem purchases an available item outright with points. In one
// transaction the item is reserved and the caller spends the item's point
// value. The item stays reserved; physical fulfillment happens outside the
// system. Redeeming one's own listing is rejected.
func (s *Service) Redeem(ctx context.Context, itemID uuid.UUID) (*domain.LedgerEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var entry *domain.LedgerEntry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		item, err := s.items.GetByID(ctx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item.OwnedBy(userID) {
			return fmt.Errorf("item %s: %w", itemID, domain.ErrSelfSwap)
		}

		// Reservation doubles as the availability check.
		if err := s.items.UpdateStatus(ctx, itemID, domain.ItemStatusAvailable, domain.ItemStatusReserved); err != nil {
			return fmt.Errorf("reserve item: %w", err)
		}

		entry, err = s.ledger.Append(ctx, &domain.LedgerEntry{
			UserID: userID,
			Type:   domain.LedgerEntrySpent,
			Amount: item.PointValue,
			Reason: domain.ReasonItemRedemption,
			ItemID: &item.ID,
		})
		if err != nil {
			return fmt.Errorf("append redemption entry: %w", err)
		}

		if err := s.users.AdjustPoints(ctx, userID, -item.PointValue); err != nil {
			return fmt.Errorf("debit redemption: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item redeemed",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
		slog.Int("cost", entry.Amount),
	)

	return entry, nil
}
