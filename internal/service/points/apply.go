package points

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
)

// Award credits points to a user: one earned ledger entry plus the matching
// balance increment, committed together. Crediting is always legal.
func (s *Service) Award(ctx context.Context, userID uuid.UUID, amount int, reason domain.LedgerReason, itemID *uuid.UUID) (*domain.LedgerEntry, error) {
	if err := validateMovement(userID, amount, reason); err != nil {
		return nil, err
	}
	return s.apply(ctx, userID, domain.LedgerEntryEarned, amount, reason, itemID)
}

// Spend debits points from a user: one spent ledger entry plus a guarded
// balance decrement. A balance too low fails the whole transaction with
// ErrInsufficientPoints and leaves no partial effect.
func (s *Service) Spend(ctx context.Context, userID uuid.UUID, amount int, reason domain.LedgerReason, itemID *uuid.UUID) (*domain.LedgerEntry, error) {
	if err := validateMovement(userID, amount, reason); err != nil {
		return nil, err
	}
	return s.apply(ctx, userID, domain.LedgerEntrySpent, amount, reason, itemID)
}

func (s *Service) apply(ctx context.Context, userID uuid.UUID, typ domain.LedgerEntryType, amount int, reason domain.LedgerReason, itemID *uuid.UUID) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.ledger.Append(ctx, &domain.LedgerEntry{
			UserID: userID,
			Type:   typ,
			Amount: amount,
			Reason: reason,
			ItemID: itemID,
		})
		if err != nil {
			return fmt.Errorf("append ledger entry: %w", err)
		}

		delta := entry.SignedAmount()
		if err := s.users.AdjustPoints(ctx, userID, delta); err != nil {
			return fmt.Errorf("adjust balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "points applied",
		slog.String("user_id", userID.String()),
		slog.String("type", string(typ)),
		slog.Int("amount", amount),
		slog.String("reason", string(reason)),
	)

	return entry, nil
}

func validateMovement(userID uuid.UUID, amount int, reason domain.LedgerReason) error {
	var errs []domain.FieldError
	if userID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if amount <= 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if !reason.IsValid() {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "unknown reason"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
