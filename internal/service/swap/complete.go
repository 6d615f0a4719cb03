package swap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
	"github.com/closetswap/closetswap-backend/pkg/ctxutil"
)

// Complete finishes an accepted swap. In one transaction: the swap moves to
// completed, every involved item moves to swapped, and both parties earn the
// flat completion award with a ledger entry paired to each balance write.
//
// The swap-status write is the race arbiter: of two concurrent completes,
// exactly one passes the guard. The loser's transaction rolls back with
// ErrInvalidTransition and leaves no ledger or balance effect.
func (s *Service) Complete(ctx context.Context, swapID uuid.UUID) (*domain.SwapRequest, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var sw *domain.SwapRequest
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		sw, err = s.swaps.GetByID(ctx, swapID)
		if err != nil {
			return fmt.Errorf("get swap: %w", err)
		}
		if !sw.IsParticipant(userID) {
			return fmt.Errorf("swap %s: %w", swapID, domain.ErrForbidden)
		}

		if err := s.swaps.UpdateStatus(ctx, swapID, domain.SwapStatusAccepted, domain.SwapStatusCompleted); err != nil {
			return fmt.Errorf("complete swap: %w", err)
		}

		if err := s.items.UpdateStatus(ctx, sw.ItemID, domain.ItemStatusReserved, domain.ItemStatusSwapped); err != nil {
			return fmt.Errorf("finalize target item: %w", err)
		}
		if sw.HasOffer() {
			if err := s.items.UpdateStatus(ctx, *sw.OfferedItemID, domain.ItemStatusReserved, domain.ItemStatusSwapped); err != nil {
				return fmt.Errorf("finalize offered item: %w", err)
			}
		}

		for _, party := range []uuid.UUID{sw.OwnerID, sw.RequesterID} {
			if err := s.awardCompletion(ctx, party, sw.ItemID); err != nil {
				return err
			}
		}

		sw.Status = domain.SwapStatusCompleted
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "swap completed",
		slog.String("swap_id", swapID.String()),
		slog.String("owner_id", sw.OwnerID.String()),
		slog.String("requester_id", sw.RequesterID.String()),
		slog.Int("award", s.completionAward),
	)

	payload := map[string]any{"swap_id": sw.ID, "item_id": sw.ItemID}
	s.sendNotification(ctx, sw.OwnerID, domain.EventSwapCompleted, payload)
	s.sendNotification(ctx, sw.RequesterID, domain.EventSwapCompleted, payload)

	return sw, nil
}

// awardCompletion appends one earned ledger entry and applies the matching
// balance increment for a single party. Caller must hold the transaction.
func (s *Service) awardCompletion(ctx context.Context, userID, itemID uuid.UUID) error {
	_, err := s.ledger.Append(ctx, &domain.LedgerEntry{
		UserID: userID,
		Type:   domain.LedgerEntryEarned,
		Amount: s.completionAward,
		Reason: domain.ReasonSwapCompletion,
		ItemID: &itemID,
	})
	if err != nil {
		return fmt.Errorf("append completion entry for %s: %w", userID, err)
	}
	if err := s.users.AdjustPoints(ctx, userID, s.completionAward); err != nil {
		return fmt.Errorf("credit completion award to %s: %w", userID, err)
	}
	return nil
}
