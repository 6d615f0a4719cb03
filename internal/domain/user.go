package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered member of the exchange.
// Points is governed exclusively by the points engine: every change is
// paired 1:1 with a new LedgerEntry in the same transaction, and the value
// never goes negative.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      UserRole
	Points    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user may call moderation operations.
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}
