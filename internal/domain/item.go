package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item represents a physical good listed for exchange.
// PointValue is assigned by the lister at creation and never changes.
// Status is written exclusively through compare-and-swap guarded repository
// operations; it must never be assigned directly.
type Item struct {
	ID          uuid.UUID
	UploaderID  uuid.UUID
	Title       string
	Description string
	Category    string
	Size        string
	Condition   string
	Tags        []string
	ImageURLs   []string
	PointValue  int
	Status      ItemStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy reports whether the item belongs to the given user.
func (i *Item) OwnedBy(userID uuid.UUID) bool {
	return i.UploaderID == userID
}

// IsAvailable reports whether the item can be targeted by a new swap
// request or redemption.
func (i *Item) IsAvailable() bool {
	return i.Status == ItemStatusAvailable
}

// ItemStatusCount holds an item status and how many items are in it.
type ItemStatusCount struct {
	Status ItemStatus
	Count  int
}
