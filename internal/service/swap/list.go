package swap

import (
	"context"
	"fmt"

	"github.com/closetswap/closetswap-backend/internal/domain"
	"github.com/closetswap/closetswap-backend/pkg/ctxutil"
)

// UserSwaps groups the acting user's swap requests by direction.
type UserSwaps struct {
	// Incoming are requests targeting the user's items.
	Incoming []*domain.SwapRequest
	// Outgoing are requests the user initiated.
	Outgoing []*domain.SwapRequest
}

// ListForUser returns all swap requests the acting user participates in,
// newest first within each direction.
func (s *Service) ListForUser(ctx context.Context) (*UserSwaps, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	incoming, err := s.swaps.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list incoming swaps: %w", err)
	}

	outgoing, err := s.swaps.ListByRequester(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list outgoing swaps: %w", err)
	}

	return &UserSwaps{Incoming: incoming, Outgoing: outgoing}, nil
}
