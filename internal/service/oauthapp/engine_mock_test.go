package oauthapp

import (
	"context"
	"sync"

	"github.com/heartmarshall/records-api/internal/domain"
	"github.com/heartmarshall/records-api/internal/service/record"
)

var _ recordEngine = &recordEngineMock{}

type recordEngineMock struct {
	MergeAndSaveFunc func(ctx context.Context, req record.MergeRequest) (record.Result, error)
	GetFunc          func(ctx context.Context, lookup domain.Record) (domain.Record, error)
	ListFunc         func(ctx context.Context, filter domain.Record, page domain.Page) ([]domain.Record, error)

	calls struct {
		MergeAndSave []struct {
			Req record.MergeRequest
		}
		Get []struct {
			Lookup domain.Record
		}
		List []struct {
			Filter domain.Record
			Page   domain.Page
		}
	}
	lockMergeAndSave sync.RWMutex
	lockGet          sync.RWMutex
	lockList         sync.RWMutex
}

func (mock *recordEngineMock) MergeAndSave(ctx context.Context, req record.MergeRequest) (record.Result, error) {
	if mock.MergeAndSaveFunc == nil {
		panic("recordEngineMock.MergeAndSaveFunc: method is nil but recordEngine.MergeAndSave was just called")
	}
	mock.lockMergeAndSave.Lock()
	mock.calls.MergeAndSave = append(mock.calls.MergeAndSave, struct{ Req record.MergeRequest }{Req: req})
	mock.lockMergeAndSave.Unlock()
	return mock.MergeAndSaveFunc(ctx, req)
}

func (mock *recordEngineMock) MergeAndSaveCalls() []struct{ Req record.MergeRequest } {
	mock.lockMergeAndSave.RLock()
	calls := mock.calls.MergeAndSave
	mock.lockMergeAndSave.RUnlock()
	return calls
}

func (mock *recordEngineMock) Get(ctx context.Context, lookup domain.Record) (domain.Record, error) {
	if mock.GetFunc == nil {
		panic("recordEngineMock.GetFunc: method is nil but recordEngine.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ Lookup domain.Record }{Lookup: lookup})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, lookup)
}

func (mock *recordEngineMock) GetCalls() []struct{ Lookup domain.Record } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *recordEngineMock) List(ctx context.Context, filter domain.Record, page domain.Page) ([]domain.Record, error) {
	if mock.ListFunc == nil {
		panic("recordEngineMock.ListFunc: method is nil but recordEngine.List was just called")
	}
	callInfo := struct {
		Filter domain.Record
		Page   domain.Page
	}{Filter: filter, Page: page}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter, page)
}

func (mock *recordEngineMock) ListCalls() []struct {
	Filter domain.Record
	Page   domain.Page
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
