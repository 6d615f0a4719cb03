package moderation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc       func(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)
	UpdateStatusFunc  func(ctx context.Context, itemID uuid.UUID, from, to domain.ItemStatus) error
	ListByStatusFunc  func(ctx context.Context, status domain.ItemStatus, limit, offset int) ([]*domain.Item, int, error)
	CountByStatusFunc func(ctx context.Context) ([]domain.ItemStatusCount, error)

	calls struct {
		GetByID []struct {
			ItemID uuid.UUID
		}
		UpdateStatus []struct {
			ItemID uuid.UUID
			From   domain.ItemStatus
			To     domain.ItemStatus
		}
		ListByStatus []struct {
			Status domain.ItemStatus
			Limit  int
			Offset int
		}
		CountByStatus []struct{}
	}
	lockGetByID       sync.RWMutex
	lockUpdateStatus  sync.RWMutex
	lockListByStatus  sync.RWMutex
	lockCountByStatus sync.RWMutex
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

func (mock *itemRepoMock) ListByStatus(ctx context.Context, status domain.ItemStatus, limit, offset int) ([]*domain.Item, int, error) {
	if mock.ListByStatusFunc == nil {
		panic("itemRepoMock.ListByStatusFunc: method is nil but itemRepo.ListByStatus was just called")
	}
	callInfo := struct {
		Status domain.ItemStatus
		Limit  int
		Offset int
	}{Status: status, Limit: limit, Offset: offset}
	mock.lockListByStatus.Lock()
	mock.calls.ListByStatus = append(mock.calls.ListByStatus, callInfo)
	mock.lockListByStatus.Unlock()
	return mock.ListByStatusFunc(ctx, status, limit, offset)
}

func (mock *itemRepoMock) ListByStatusCalls() []struct {
	Status domain.ItemStatus
	Limit  int
	Offset int
} {
	mock.lockListByStatus.RLock()
	calls := mock.calls.ListByStatus
	mock.lockListByStatus.RUnlock()
	return calls
}

func (mock *itemRepoMock) CountByStatus(ctx context.Context) ([]domain.ItemStatusCount, error) {
	if mock.CountByStatusFunc == nil {
		panic("itemRepoMock.CountByStatusFunc: method is nil but itemRepo.CountByStatus was just called")
	}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, struct{}{})
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx)
}

func (mock *itemRepoMock) CountByStatusCalls() []struct{} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

var _ swapRepo = &swapRepoMock{}

type swapRepoMock struct {
	CountByStatusFunc func(ctx context.Context) ([]domain.SwapStatusCount, error)

	calls struct {
		CountByStatus []struct{}
	}
	lockCountByStatus sync.RWMutex
}

func (mock *swapRepoMock) CountByStatus(ctx context.Context) ([]domain.SwapStatusCount, error) {
	if mock.CountByStatusFunc == nil {
		panic("swapRepoMock.CountByStatusFunc: method is nil but swapRepo.CountByStatus was just called")
	}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, struct{}{})
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx)
}

func (mock *swapRepoMock) CountByStatusCalls() []struct{} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
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
	TopByPointsFunc  func(ctx context.Context, limit int) ([]*domain.User, error)
	CountFunc        func(ctx context.Context) (int, error)

	calls struct {
		AdjustPoints []struct {
			UserID uuid.UUID
			Delta  int
		}
		TopByPoints []struct {
			Limit int
		}
		Count []struct{}
	}
	lockAdjustPoints sync.RWMutex
	lockTopByPoints  sync.RWMutex
	lockCount        sync.RWMutex
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

func (mock *userRepoMock) TopByPoints(ctx context.Context, limit int) ([]*domain.User, error) {
	if mock.TopByPointsFunc == nil {
		panic("userRepoMock.TopByPointsFunc: method is nil but userRepo.TopByPoints was just called")
	}
	mock.lockTopByPoints.Lock()
	mock.calls.TopByPoints = append(mock.calls.TopByPoints, struct{ Limit int }{Limit: limit})
	mock.lockTopByPoints.Unlock()
	return mock.TopByPointsFunc(ctx, limit)
}

func (mock *userRepoMock) TopByPointsCalls() []struct{ Limit int } {
	mock.lockTopByPoints.RLock()
	calls := mock.calls.TopByPoints
	mock.lockTopByPoints.RUnlock()
	return calls
}

func (mock *userRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("userRepoMock.CountFunc: method is nil but userRepo.Count was just called")
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, struct{}{})
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *userRepoMock) CountCalls() []struct{} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
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
			UserID  uuid.UUID
			Event   domain.NotificationEvent
			Payload any
		}
	}
	lockNotify sync.RWMutex
}

func (mock *notifierMock) Notify(ctx context.Context, userID uuid.UUID, event domain.NotificationEvent, payload any) error {
	callInfo := struct {
		UserID  uuid.UUID
		Event   domain.NotificationEvent
		Payload any
	}{UserID: userID, Event: event, Payload: payload}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	if mock.NotifyFunc == nil {
		return nil
	}
	return mock.NotifyFunc(ctx, userID, event, payload)
}

func (mock *notifierMock) NotifyCalls() []struct {
	UserID  uuid.UUID
	Event   domain.NotificationEvent
	Payload any
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}
