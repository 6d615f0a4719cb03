package swap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
	"github.com/closetswap/closetswap-backend/pkg/ctxutil"
)

// Reject declines a pending swap and releases the reserved items back to
// available, all in one transaction. Only the owner of the requested item
// may reject. No points move.
func (s *Service) Reject(ctx context.Context, swapID uuid.UUID) (*domain.SwapRequest, error) {
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
		if sw.OwnerID != userID {
			return fmt.Errorf("swap %s: %w", swapID, domain.ErrForbidden)
		}

		if err := s.swaps.UpdateStatus(ctx, swapID, domain.SwapStatusPending, domain.SwapStatusRejected); err != nil {
			return fmt.Errorf("reject swap: %w", err)
		}

		if err := s.items.UpdateStatus(ctx, sw.ItemID, domain.ItemStatusReserved, domain.ItemStatusAvailable); err != nil {
			return fmt.Errorf("release target item: %w", err)
		}
		if sw.HasOffer() {
			if err := s.items.UpdateStatus(ctx, *sw.OfferedItemID, domain.ItemStatusReserved, domain.ItemStatusAvailable); err != nil {
				return fmt.Errorf("release offered item: %w", err)
			}
		}

		sw.Status = domain.SwapStatusRejected
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "swap request rejected",
		slog.String("swap_id", swapID.String()),
		slog.String("owner_id", userID.String()),
	)

	s.sendNotification(ctx, sw.RequesterID, domain.EventSwapRejected, map[string]any{
		"swap_id": sw.ID,
		"item_id": sw.ItemID,
	})

	return sw, nil
}
