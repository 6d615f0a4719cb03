package moderation

import (
	"context"
	"fmt"

	"github.com/closetswap/closetswap-backend/internal/domain"
	"github.com/closetswap/closetswap-backend/pkg/ctxutil"
)

// topUsersLimit bounds the leaderboard in the platform stats.
const topUsersLimit = 5

// PlatformStats aggregates counters for the admin dashboard.
type PlatformStats struct {
	TotalUsers   int
	ItemsByState []domain.ItemStatusCount
	SwapsByState []domain.SwapStatusCount
	TopUsers     []*domain.User
}

// Stats returns platform-wide totals: users, items and swaps grouped by
// status, and the highest-balance users. Admin only.
func (s *Service) Stats(ctx context.Context) (*PlatformStats, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminFromCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	itemCounts, err := s.items.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}

	swapCounts, err := s.swaps.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count swaps: %w", err)
	}

	topUsers, err := s.users.TopByPoints(ctx, topUsersLimit)
	if err != nil {
		return nil, fmt.Errorf("top users: %w", err)
	}

	return &PlatformStats{
		TotalUsers:   totalUsers,
		ItemsByState: itemCounts,
		SwapsByState: swapCounts,
		TopUsers:     topUsers,
	}, nil
}
