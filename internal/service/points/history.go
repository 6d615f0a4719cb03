package points

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
	"github.com/closetswap/closetswap-backend/pkg/ctxutil"
)

// HistoryInput holds the parameters for a ledger history query.
// Page is 1-based; zero means the first page. A zero UserID means the
// acting user's own ledger.
type HistoryInput struct {
	UserID uuid.UUID
	Page   int
	Type   *domain.LedgerEntryType
	Reason *domain.LedgerReason
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be non-negative"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown type"})
	}
	if i.Reason != nil && !i.Reason.IsValid() {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "unknown reason"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HistoryPage is one page of a user's ledger, newest first.
type HistoryPage struct {
	Entries    []domain.LedgerEntry
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// History returns a page of a user's ledger entries, newest first,
// optionally filtered by entry type and reason. Same visibility rule as
// Balance: users read their own ledger, other users' ledgers require the
// admin role.
func (s *Service) History(ctx context.Context, input HistoryInput) (*HistoryPage, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	userID := input.UserID
	if userID == uuid.Nil {
		userID = actorID
	}
	if userID != actorID && !ctxutil.IsAdminFromCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * s.historyPageSize

	entries, total, err := s.ledger.ListByUser(ctx, userID,
		domain.LedgerFilter{Type: input.Type, Reason: input.Reason},
		s.historyPageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}

	totalPages := (total + s.historyPageSize - 1) / s.historyPageSize

	return &HistoryPage{
		Entries:    entries,
		Total:      total,
		Page:       page,
		PageSize:   s.historyPageSize,
		TotalPages: totalPages,
	}, nil
}
