package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
	"github.com/closetswap/closetswap-backend/pkg/ctxutil"
)

// Reject declines a pending item. Terminal: a rejected item never re-enters
// the catalog. No points move; the reason travels only in the notification.
func (s *Service) Reject(ctx context.Context, itemID uuid.UUID, reason string) (*domain.Item, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminFromCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if err := s.items.UpdateStatus(ctx, itemID, domain.ItemStatusPending, domain.ItemStatusRejected); err != nil {
		return nil, fmt.Errorf("reject item: %w", asTransitionErr(err))
	}
	item.Status = domain.ItemStatusRejected

	s.log.InfoContext(ctx, "item rejected",
		slog.String("item_id", itemID.String()),
		slog.String("admin_id", adminID.String()),
	)

	payload := map[string]any{"item_id": item.ID}
	if r := strings.TrimSpace(reason); r != "" {
		payload["reason"] = r
	}
	s.sendNotification(ctx, item.UploaderID, domain.EventItemRejected, payload)

	return item, nil
}
