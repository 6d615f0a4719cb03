package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntry is an immutable record of one point movement. Entries are
// never updated or deleted; a user's balance must always equal the sum of
// their signed entry amounts.
type LedgerEntry struct {
	ID        uuid.UUID
	Seq       int64 // monotonic creation order, assigned by the store
	UserID    uuid.UUID
	Type      LedgerEntryType
	Amount    int // always positive; Type carries the sign
	Reason    LedgerReason
	ItemID    *uuid.UUID
	CreatedAt time.Time
}

// SignedAmount returns the amount with its sign applied:
// positive for earned, negative for spent.
func (e *LedgerEntry) SignedAmount() int {
	if e.Type == LedgerEntrySpent {
		return -e.Amount
	}
	return e.Amount
}

// SumSigned folds entries into a net balance delta.
func SumSigned(entries []LedgerEntry) int {
	total := 0
	for i := range entries {
		total += entries[i].SignedAmount()
	}
	return total
}

// LedgerFilter narrows a ledger history query.
type LedgerFilter struct {
	Type   *LedgerEntryType
	Reason *LedgerReason
}
