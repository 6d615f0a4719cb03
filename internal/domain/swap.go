package domain

import (
	"time"

	"github.com/google/uuid"
)

// SwapRequest represents one user's request to take another user's item,
// optionally offering one of their own items in exchange.
// Invariants: RequesterID != OwnerID; status only advances along
// pending→{accepted,rejected} and accepted→completed.
type SwapRequest struct {
	ID            uuid.UUID
	ItemID        uuid.UUID
	OfferedItemID *uuid.UUID
	RequesterID   uuid.UUID
	OwnerID       uuid.UUID
	Message       *string
	Status        SwapStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsParticipant reports whether the user is the owner or the requester.
func (s *SwapRequest) IsParticipant(userID uuid.UUID) bool {
	return s.OwnerID == userID || s.RequesterID == userID
}

// HasOffer reports whether the requester offered a counter-item.
func (s *SwapRequest) HasOffer() bool {
	return s.OfferedItemID != nil
}

// SwapStatusCount holds a swap status and how many swaps are in it.
type SwapStatusCount struct {
	Status SwapStatus
	Count  int
}
