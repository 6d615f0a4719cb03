package swap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
	"github.com/closetswap/closetswap-backend/pkg/ctxutil"
)

// Accept moves a pending swap to accepted. Only the owner of the requested
// item may accept. The items stay reserved until completion.
func (s *Service) Accept(ctx context.Context, swapID uuid.UUID) (*domain.SwapRequest, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sw, err := s.swaps.GetByID(ctx, swapID)
	if err != nil {
		return nil, fmt.Errorf("get swap: %w", err)
	}
	if sw.OwnerID != userID {
		return nil, fmt.Errorf("swap %s: %w", swapID, domain.ErrForbidden)
	}

	if err := s.swaps.UpdateStatus(ctx, swapID, domain.SwapStatusPending, domain.SwapStatusAccepted); err != nil {
		return nil, fmt.Errorf("accept swap: %w", err)
	}
	sw.Status = domain.SwapStatusAccepted

	s.log.InfoContext(ctx, "swap request accepted",
		slog.String("swap_id", swapID.String()),
		slog.String("owner_id", userID.String()),
	)

	s.sendNotification(ctx, sw.RequesterID, domain.EventSwapAccepted, map[string]any{
		"swap_id": sw.ID,
		"item_id": sw.ItemID,
	})

	return sw, nil
}
