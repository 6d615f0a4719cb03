package swap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
	"github.com/closetswap/closetswap-backend/pkg/ctxutil"
)

// Create opens a new swap request for the target item, optionally offering
// one of the requester's own items in exchange. Both items are reserved in
// the same transaction that inserts the pending request, so a second
// requester racing for the same item loses on the item's status guard.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.SwapRequest, error) {
	requesterID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.SwapRequest
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		target, err := s.items.GetByID(ctx, input.ItemID)
		if err != nil {
			return fmt.Errorf("get target item: %w", err)
		}
		if target.OwnedBy(requesterID) {
			return fmt.Errorf("item %s: %w", target.ID, domain.ErrSelfSwap)
		}

		if input.OfferedItemID != nil {
			offered, err := s.items.GetByID(ctx, *input.OfferedItemID)
			if err != nil {
				return fmt.Errorf("get offered item: %w", err)
			}
			if !offered.OwnedBy(requesterID) {
				return fmt.Errorf("item %s: %w", offered.ID, domain.ErrNotOwner)
			}
			if err := s.items.UpdateStatus(ctx, offered.ID, domain.ItemStatusAvailable, domain.ItemStatusReserved); err != nil {
				return fmt.Errorf("reserve offered item: %w", err)
			}
		}

		// The reserve doubles as the availability check: anything other
		// than available fails the guard.
		if err := s.items.UpdateStatus(ctx, target.ID, domain.ItemStatusAvailable, domain.ItemStatusReserved); err != nil {
			return fmt.Errorf("reserve target item: %w", err)
		}

		created, err = s.swaps.Create(ctx, &domain.SwapRequest{
			ID:            uuid.New(),
			ItemID:        target.ID,
			OfferedItemID: input.OfferedItemID,
			RequesterID:   requesterID,
			OwnerID:       target.UploaderID,
			Message:       trimOrNil(input.Message),
		})
		if err != nil {
			return fmt.Errorf("create swap request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "swap request created",
		slog.String("swap_id", created.ID.String()),
		slog.String("item_id", created.ItemID.String()),
		slog.String("requester_id", requesterID.String()),
	)

	s.sendNotification(ctx, created.OwnerID, domain.EventSwapRequest, map[string]any{
		"swap_id":      created.ID,
		"item_id":      created.ItemID,
		"requester_id": created.RequesterID,
	})

	return created, nil
}

// trimOrNil trims whitespace. Returns nil if the result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
