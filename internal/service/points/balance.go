package points

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
	"github.com/closetswap/closetswap-backend/pkg/ctxutil"
)

// Balance returns a user's current point balance. Users may read their own
// balance; reading another user's requires the admin role.
func (s *Service) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	if userID == uuid.Nil {
		userID = actorID
	}
	if userID != actorID && !ctxutil.IsAdminFromCtx(ctx) {
		return 0, domain.ErrForbidden
	}

	balance, err := s.users.GetBalance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// Reconciliation compares a stored balance against the ledger.
type Reconciliation struct {
	UserID    uuid.UUID
	Balance   int
	LedgerSum int
}

// Consistent reports whether the stored balance matches the ledger sum.
func (r Reconciliation) Consistent() bool { return r.Balance == r.LedgerSum }

// Reconcile verifies that a user's stored balance equals the signed sum of
// their ledger entries. Admin only. A mismatch indicates a write that
// bypassed the paired-entry rule and is logged at error level.
func (s *Service) Reconcile(ctx context.Context, userID uuid.UUID) (*Reconciliation, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminFromCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	balance, err := s.users.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	sum, err := s.ledger.SumByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sum ledger: %w", err)
	}

	rec := &Reconciliation{UserID: userID, Balance: balance, LedgerSum: sum}
	if !rec.Consistent() {
		s.log.ErrorContext(ctx, "balance does not match ledger",
			slog.String("user_id", userID.String()),
			slog.Int("balance", balance),
			slog.Int("ledger_sum", sum),
		)
	}

	return rec, nil
}
