package points

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
	"github.com/closetswap/closetswap-backend/pkg/ctxutil"
)

// Adjust applies a signed correction to a user's balance. Admin only.
// A positive amount credits, a negative amount debits; debits below zero
// fail with ErrInsufficientPoints like any other spend.
func (s *Service) Adjust(ctx context.Context, targetUserID uuid.UUID, amount int) (*domain.LedgerEntry, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminFromCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if amount == 0 {
		return nil, domain.NewValidationError("amount", "must be non-zero")
	}

	var (
		entry *domain.LedgerEntry
		err   error
	)
	if amount > 0 {
		entry, err = s.Award(ctx, targetUserID, amount, domain.ReasonAdminAdjustment, nil)
	} else {
		entry, err = s.Spend(ctx, targetUserID, -amount, domain.ReasonAdminAdjustment, nil)
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "admin balance adjustment",
		slog.String("admin_id", adminID.String()),
		slog.String("user_id", targetUserID.String()),
		slog.Int("amount", amount),
	)

	return entry, nil
}
