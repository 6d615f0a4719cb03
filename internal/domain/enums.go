package domain

// ItemStatus represents the lifecycle state of a listed item.
//
// Transition graph:
//
//	pending   → available (moderation approve)
//	pending   → rejected  (moderation reject)
//	available → reserved  (swap creation / redemption)
//	reserved  → available (swap rejection / cancellation)
//	reserved  → swapped   (swap completion, terminal)
type ItemStatus string

const (
	ItemStatusPending   ItemStatus = "pending"
	ItemStatusAvailable ItemStatus = "available"
	ItemStatusReserved  ItemStatus = "reserved"
	ItemStatusRejected  ItemStatus = "rejected"
	ItemStatusSwapped   ItemStatus = "swapped"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPending, ItemStatusAvailable, ItemStatusReserved,
		ItemStatusRejected, ItemStatusSwapped:
		return true
	}
	return false
}

// itemTransitions is the legal edge set of the item state machine.
var itemTransitions = map[ItemStatus][]ItemStatus{
	ItemStatusPending:   {ItemStatusAvailable, ItemStatusRejected},
	ItemStatusAvailable: {ItemStatusReserved},
	ItemStatusReserved:  {ItemStatusAvailable, ItemStatusSwapped},
}

// CanTransitionTo reports whether the status may legally change to next.
func (s ItemStatus) CanTransitionTo(next ItemStatus) bool {
	for _, t := range itemTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted.
func (s ItemStatus) IsTerminal() bool {
	return len(itemTransitions[s]) == 0
}

// SwapStatus represents the negotiation state of a swap request.
//
// Transition graph: pending → {accepted, rejected}; accepted → completed.
// rejected and completed are terminal.
type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCompleted SwapStatus = "completed"
)

func (s SwapStatus) String() string { return string(s) }

func (s SwapStatus) IsValid() bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCompleted:
		return true
	}
	return false
}

var swapTransitions = map[SwapStatus][]SwapStatus{
	SwapStatusPending:  {SwapStatusAccepted, SwapStatusRejected},
	SwapStatusAccepted: {SwapStatusCompleted},
}

// CanTransitionTo reports whether the status may legally change to next.
func (s SwapStatus) CanTransitionTo(next SwapStatus) bool {
	for _, t := range swapTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted.
func (s SwapStatus) IsTerminal() bool {
	return len(swapTransitions[s]) == 0
}

// LedgerEntryType is the sign of a ledger entry: earned adds, spent removes.
type LedgerEntryType string

const (
	LedgerEntryEarned LedgerEntryType = "earned"
	LedgerEntrySpent  LedgerEntryType = "spent"
)

func (t LedgerEntryType) String() string { return string(t) }

func (t LedgerEntryType) IsValid() bool {
	return t == LedgerEntryEarned || t == LedgerEntrySpent
}

// LedgerReason classifies why points moved.
type LedgerReason string

const (
	ReasonItemUploadApproved LedgerReason = "item_upload_approved"
	ReasonItemRedemption     LedgerReason = "item_redemption"
	ReasonSwapCompletion     LedgerReason = "swap_completion"
	ReasonAdminAdjustment    LedgerReason = "admin_adjustment"
)

func (r LedgerReason) String() string { return string(r) }

func (r LedgerReason) IsValid() bool {
	switch r {
	case ReasonItemUploadApproved, ReasonItemRedemption,
		ReasonSwapCompletion, ReasonAdminAdjustment:
		return true
	}
	return false
}

// NotificationEvent names the user-facing events emitted after successful
// state transitions. Delivery is fire-and-forget and out of transaction.
type NotificationEvent string

const (
	EventSwapRequest   NotificationEvent = "swap_request"
	EventSwapAccepted  NotificationEvent = "swap_accepted"
	EventSwapRejected  NotificationEvent = "swap_rejected"
	EventSwapCompleted NotificationEvent = "swap_completed"
	EventItemApproved  NotificationEvent = "item_approved"
	EventItemRejected  NotificationEvent = "item_rejected"
)

func (e NotificationEvent) String() string { return string(e) }

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
