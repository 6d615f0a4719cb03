package swap

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc      func(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	UpdateStatusFunc func(ctx context.Context, itemID uuid.UUID, from, to domain.ItemStatus) error

	calls struct {
		GetByID []struct {
			ItemID uuid.UUID
		}
		UpdateStatus []struct {
			ItemID uuid.UUID
			From   domain.ItemStatus
			To     domain.ItemStatus
		}
	}
	lockGetByID      sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ItemID uuid.UUID }{ItemID: itemID})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, itemID)
}

func (mock *itemRepoMock) GetByIDCalls() []struct{ ItemID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) UpdateStatus(ctx context.Context, itemID uuid.UUID, from, to domain.ItemStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("itemRepoMock.UpdateStatusFunc: method is nil but itemRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		ItemID uuid.UUID
		From   domain.ItemStatus
		To     domain.ItemStatus
	}{ItemID: itemID, From: from, To: to}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, itemID, from, to)
}

func (mock *itemRepoMock) UpdateStatusCalls() []struct {
	ItemID uuid.UUID
	From   domain.ItemStatus
	To     domain.ItemStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

var _ swapRepo = &swapRepoMock{}

type swapRepoMock struct {
	GetByIDFunc         func(ctx context.Context, swapID uuid.UUID) (*domain.SwapRequest, error)
	CreateFunc          func(ctx context.Context, sw *domain.SwapRequest) (*domain.SwapRequest, error)
	UpdateStatusFunc    func(ctx context.Context, swapID uuid.UUID, from, to domain.SwapStatus) error
	ListByOwnerFunc     func(ctx context.Context, ownerID uuid.UUID) ([]*domain.SwapRequest, error)
	ListByRequesterFunc func(ctx context.Context, requesterID uuid.UUID) ([]*domain.SwapRequest, error)

	calls struct {
		GetByID []struct {
			SwapID uuid.UUID
		}
		Create []struct {
			Swap *domain.SwapRequest
		}
		UpdateStatus []struct {
			SwapID uuid.UUID
			From   domain.SwapStatus
			To     domain.SwapStatus
		}
		ListByOwner []struct {
			OwnerID uuid.UUID
		}
		ListByRequester []struct {
			RequesterID uuid.UUID
		}
	}
	lockGetByID         sync.RWMutex
	lockCreate          sync.RWMutex
	lockUpdateStatus    sync.RWMutex
	lockListByOwner     sync.RWMutex
	lockListByRequester sync.RWMutex
}

func (mock *swapRepoMock) GetByID(ctx context.Context, swapID uuid.UUID) (*domain.SwapRequest, error) {
	if mock.GetByIDFunc == nil {
		panic("swapRepoMock.GetByIDFunc: method is nil but swapRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ SwapID uuid.UUID }{SwapID: swapID})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, swapID)
}

func (mock *swapRepoMock) GetByIDCalls() []struct{ SwapID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *swapRepoMock) Create(ctx context.Context, sw *domain.SwapRequest) (*domain.SwapRequest, error) {
	if mock.CreateFunc == nil {
		panic("swapRepoMock.CreateFunc: method is nil but swapRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Swap *domain.SwapRequest }{Swap: sw})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, sw)
}

func (mock *swapRepoMock) CreateCalls() []struct{ Swap *domain.SwapRequest } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *swapRepoMock) UpdateStatus(ctx context.Context, swapID uuid.UUID, from, to domain.SwapStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("swapRepoMock.UpdateStatusFunc: method is nil but swapRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		SwapID uuid.UUID
		From   domain.SwapStatus
		To     domain.SwapStatus
	}{SwapID: swapID, From: from, To: to}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, swapID, from, to)
}

func (mock *swapRepoMock) UpdateStatusCalls() []struct {
	SwapID uuid.UUID
	From   domain.SwapStatus
	To     domain.SwapStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *swapRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.SwapRequest, error) {
	if mock.ListByOwnerFunc == nil {
		panic("swapRepoMock.ListByOwnerFunc: method is nil but swapRepo.ListByOwner was just called")
	}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, struct{ OwnerID uuid.UUID }{OwnerID: ownerID})
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *swapRepoMock) ListByOwnerCalls() []struct{ OwnerID uuid.UUID } {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *swapRepoMock) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*domain.SwapRequest, error) {
	if mock.ListByRequesterFunc == nil {
		panic("swapRepoMock.ListByRequesterFunc: method is nil but swapRepo.ListByRequester was just called")
	}
	mock.lockListByRequester.Lock()
	mock.calls.ListByRequester = append(mock.calls.ListByRequester, struct{ RequesterID uuid.UUID }{RequesterID: requesterID})
	mock.lockListByRequester.Unlock()
	return mock.ListByRequesterFunc(ctx, requesterID)
}

func (mock *swapRepoMock) ListByRequesterCalls() []struct{ RequesterID uuid.UUID } {
	mock.lockListByRequester.RLock()
	calls := mock.calls.ListByRequester
	mock.lockListByRequester.RUnlock()
	return calls
}

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	AppendFunc func(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)

	calls struct {
		Append []struct {
			Entry *domain.LedgerEntry
		}
	}
	lockAppend sync.RWMutex
}

func (mock *ledgerRepoMock) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	if mock.AppendFunc == nil {
		panic("ledgerRepoMock.AppendFunc: method is nil but ledgerRepo.Append was just called")
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, struct{ Entry *domain.LedgerEntry }{Entry: entry})
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, entry)
}

func (mock *ledgerRepoMock) AppendCalls() []struct{ Entry *domain.LedgerEntry } {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	AdjustPointsFunc func(ctx context.Context, userID uuid.UUID, delta int) error

	calls struct {
		AdjustPoints []struct {
			UserID uuid.UUID
			Delta  int
		}
	}
	lockAdjustPoints sync.RWMutex
}

func (mock *userRepoMock) AdjustPoints(ctx context.Context, userID uuid.UUID, delta int) error {
	if mock.AdjustPointsFunc == nil {
		panic("userRepoMock.AdjustPointsFunc: method is nil but userRepo.AdjustPoints was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Delta  int
	}{UserID: userID, Delta: delta}
	mock.lockAdjustPoints.Lock()
	mock.calls.AdjustPoints = append(mock.calls.AdjustPoints, callInfo)
	mock.lockAdjustPoints.Unlock()
	return mock.AdjustPointsFunc(ctx, userID, delta)
}

func (mock *userRepoMock) AdjustPointsCalls() []struct {
	UserID uuid.UUID
	Delta  int
} {
	mock.lockAdjustPoints.RLock()
	calls := mock.calls.AdjustPoints
	mock.lockAdjustPoints.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly: unit tests exercise the service
// logic, not transaction semantics.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyFunc func(ctx context.Context, userID uuid.UUID, event domain.NotificationEvent, payload any) error

	calls struct {
		Notify []struct {
			UserID uuid.UUID
			Event  domain.NotificationEvent
		}
	}
	lockNotify sync.RWMutex
}

func (mock *notifierMock) Notify(ctx context.Context, userID uuid.UUID, event domain.NotificationEvent, payload any) error {
	callInfo := struct {
		UserID uuid.UUID
		Event  domain.NotificationEvent
	}{UserID: userID, Event: event}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	if mock.NotifyFunc == nil {
		return nil
	}
	return mock.NotifyFunc(ctx, userID, event, payload)
}

func (mock *notifierMock) NotifyCalls() []struct {
	UserID uuid.UUID
	Event  domain.NotificationEvent
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}
