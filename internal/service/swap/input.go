package swap

import (
	"strings"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
)

const maxMessageLen = 500

// CreateInput holds the parameters for creating a swap request.
type CreateInput struct {
	ItemID        uuid.UUID
	OfferedItemID *uuid.UUID
	Message       *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.OfferedItemID != nil && *i.OfferedItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "offered_item_id", Message: "must be a valid id when set"})
	}
	if i.OfferedItemID != nil && *i.OfferedItemID == i.ItemID {
		errs = append(errs, domain.FieldError{Field: "offered_item_id", Message: "cannot offer the requested item"})
	}
	if i.Message != nil && len(strings.TrimSpace(*i.Message)) > maxMessageLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
