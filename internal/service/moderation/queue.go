package moderation

import (
	"context"
	"fmt"

	"github.com/closetswap/closetswap-backend/internal/domain"
	"github.com/closetswap/closetswap-backend/pkg/ctxutil"
)

// DefaultQueuePageSize bounds one page of the moderation queue.
const DefaultQueuePageSize = 20

// QueuePage is one page of items awaiting moderation, newest first.
type QueuePage struct {
	Items []*domain.Item
	Total int
}

// Queue returns a page of pending items for admin review, newest first.
// A non-positive limit falls back to DefaultQueuePageSize.
func (s *Service) Queue(ctx context.Context, limit, offset int) (*QueuePage, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminFromCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if limit <= 0 {
		limit = DefaultQueuePageSize
	}
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must be non-negative")
	}

	items, total, err := s.items.ListByStatus(ctx, domain.ItemStatusPending, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pending items: %w", err)
	}

	return &QueuePage{Items: items, Total: total}, nil
}
