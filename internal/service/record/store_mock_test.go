package record

import (
	"context"
	"sync"

	"github.com/heartmarshall/records-api/internal/domain"
)

var _ store = &storeMock{}

type storeMock struct {
	LoadFunc   func(ctx context.Context, schema domain.Schema, lookup domain.Record) (domain.Record, error)
	InsertFunc func(ctx context.Context, schema domain.Schema, rec domain.Record) (domain.Record, error)
	UpdateFunc func(ctx context.Context, schema domain.Schema, identity string, rec domain.Record) (domain.Record, error)
	ListFunc   func(ctx context.Context, schema domain.Schema, filter domain.Record, page domain.Page) ([]domain.Record, error)

	calls struct {
		Load []struct {
			Lookup domain.Record
		}
		Insert []struct {
			Rec domain.Record
		}
		Update []struct {
			Identity string
			Rec      domain.Record
		}
		List []struct {
			Filter domain.Record
			Page   domain.Page
		}
	}
	lockLoad   sync.RWMutex
	lockInsert sync.RWMutex
	lockUpdate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *storeMock) Load(ctx context.Context, schema domain.Schema, lookup domain.Record) (domain.Record, error) {
	if mock.LoadFunc == nil {
		panic("storeMock.LoadFunc: method is nil but store.Load was just called")
	}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, struct{ Lookup domain.Record }{Lookup: lookup})
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx, schema, lookup)
}

func (mock *storeMock) LoadCalls() []struct{ Lookup domain.Record } {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *storeMock) Insert(ctx context.Context, schema domain.Schema, rec domain.Record) (domain.Record, error) {
	if mock.InsertFunc == nil {
		panic("storeMock.InsertFunc: method is nil but store.Insert was just called")
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct{ Rec domain.Record }{Rec: rec})
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, schema, rec)
}

func (mock *storeMock) InsertCalls() []struct{ Rec domain.Record } {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *storeMock) Update(ctx context.Context, schema domain.Schema, identity string, rec domain.Record) (domain.Record, error) {
	if mock.UpdateFunc == nil {
		panic("storeMock.UpdateFunc: method is nil but store.Update was just called")
	}
	callInfo := struct {
		Identity string
		Rec      domain.Record
	}{Identity: identity, Rec: rec}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, schema, identity, rec)
}

func (mock *storeMock) UpdateCalls() []struct {
	Identity string
	Rec      domain.Record
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *storeMock) List(ctx context.Context, schema domain.Schema, filter domain.Record, page domain.Page) ([]domain.Record, error) {
	if mock.ListFunc == nil {
		panic("storeMock.ListFunc: method is nil but store.List was just called")
	}
	callInfo := struct {
		Filter domain.Record
		Page   domain.Page
	}{Filter: filter, Page: page}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, schema, filter, page)
}

func (mock *storeMock) ListCalls() []struct {
	Filter domain.Record
	Page   domain.Page
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ auditSink = &auditSinkMock{}

type auditSinkMock struct {
	EmitFunc func(ctx context.Context, event domain.AuditEvent) error

	calls struct {
		Emit []struct {
			Event domain.AuditEvent
		}
	}
	lockEmit sync.RWMutex
}

func (mock *auditSinkMock) Emit(ctx context.Context, event domain.AuditEvent) error {
	if mock.EmitFunc == nil {
		panic("auditSinkMock.EmitFunc: method is nil but auditSink.Emit was just called")
	}
	mock.lockEmit.Lock()
	mock.calls.Emit = append(mock.calls.Emit, struct{ Event domain.AuditEvent }{Event: event})
	mock.lockEmit.Unlock()
	return mock.EmitFunc(ctx, event)
}

func (mock *auditSinkMock) EmitCalls() []struct{ Event domain.AuditEvent } {
	mock.lockEmit.RLock()
	calls := mock.calls.Emit
	mock.lockEmit.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
