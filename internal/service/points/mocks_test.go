package points

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/closetswap/closetswap-backend/internal/domain"
)

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	AppendFunc     func(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, filter domain.LedgerFilter, limit, offset int) ([]domain.LedgerEntry, int, error)
	SumByUserFunc  func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Append []struct {
			Entry *domain.LedgerEntry
		}
		ListByUser []struct {
			UserID uuid.UUID
			Filter domain.LedgerFilter
			Limit  int
			Offset int
		}
		SumByUser []struct {
			UserID uuid.UUID
		}
	}
	lockAppend     sync.RWMutex
	lockListByUser sync.RWMutex
	lockSumByUser  sync.RWMutex
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

func (mock *ledgerRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.LedgerFilter, limit, offset int) ([]domain.LedgerEntry, int, error) {
	if mock.ListByUserFunc == nil {
		panic("ledgerRepoMock.ListByUserFunc: method is nil but ledgerRepo.ListByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Filter domain.LedgerFilter
		Limit  int
		Offset int
	}{UserID: userID, Filter: filter, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, filter, limit, offset)
}

func (mock *ledgerRepoMock) ListByUserCalls() []struct {
	UserID uuid.UUID
	Filter domain.LedgerFilter
	Limit  int
	Offset int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *ledgerRepoMock) SumByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.SumByUserFunc == nil {
		panic("ledgerRepoMock.SumByUserFunc: method is nil but ledgerRepo.SumByUser was just called")
	}
	mock.lockSumByUser.Lock()
	mock.calls.SumByUser = append(mock.calls.SumByUser, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lockSumByUser.Unlock()
	return mock.SumByUserFunc(ctx, userID)
}

func (mock *ledgerRepoMock) SumByUserCalls() []struct{ UserID uuid.UUID } {
	mock.lockSumByUser.RLock()
	calls := mock.calls.SumByUser
	mock.lockSumByUser.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetBalanceFunc   func(ctx context.Context, userID uuid.UUID) (int, error)
	AdjustPointsFunc func(ctx context.Context, userID uuid.UUID, delta int) error

	calls struct {
		GetBalance []struct {
			UserID uuid.UUID
		}
		AdjustPoints []struct {
			UserID uuid.UUID
			Delta  int
		}
	}
	lockGetBalance   sync.RWMutex
	lockAdjustPoints sync.RWMutex
}

func (mock *userRepoMock) GetBalance(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.GetBalanceFunc == nil {
		panic("userRepoMock.GetBalanceFunc: method is nil but userRepo.GetBalance was just called")
	}
	mock.lockGetBalance.Lock()
	mock.calls.GetBalance = append(mock.calls.GetBalance, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lockGetBalance.Unlock()
	return mock.GetBalanceFunc(ctx, userID)
}

func (mock *userRepoMock) GetBalanceCalls() []struct{ UserID uuid.UUID } {
	mock.lockGetBalance.RLock()
	calls := mock.calls.GetBalance
	mock.lockGetBalance.RUnlock()
	return calls
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
