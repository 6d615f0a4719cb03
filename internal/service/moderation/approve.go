package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
	"github.com/closetswap/closetswap-backend/pkg/ctxutil"
)

// Approve publishes a pending item and credits the flat upload award to its
// uploader, committed together: either the item is available and the
// uploader earned the points, or neither happened.
func (s *Service) Approve(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminFromCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	var item *domain.Item
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.items.GetByID(ctx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		if err := s.items.UpdateStatus(ctx, itemID, domain.ItemStatusPending, domain.ItemStatusAvailable); err != nil {
			return fmt.Errorf("approve item: %w", asTransitionErr(err))
		}

		if _, err := s.ledger.Append(ctx, &domain.LedgerEntry{
			UserID: item.UploaderID,
			Type:   domain.LedgerEntryEarned,
			Amount: s.uploadAward,
			Reason: domain.ReasonItemUploadApproved,
			ItemID: &item.ID,
		}); err != nil {
			return fmt.Errorf("append approval entry: %w", err)
		}
		if err := s.users.AdjustPoints(ctx, item.UploaderID, s.uploadAward); err != nil {
			return fmt.Errorf("credit approval award: %w", err)
		}

		item.Status = domain.ItemStatusAvailable
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item approved",
		slog.String("item_id", itemID.String()),
		slog.String("uploader_id", item.UploaderID.String()),
		slog.String("admin_id", adminID.String()),
		slog.Int("award", s.uploadAward),
	)

	s.sendNotification(ctx, item.UploaderID, domain.EventItemApproved, map[string]any{
		"item_id": item.ID,
		"award":   s.uploadAward,
	})

	return item, nil
}
