package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/records-api/internal/service/oauthapp"
	"github.com/heartmarshall/records-api/internal/service/record"
)

var _ oauthAppService = &oauthAppServiceMock{}

type oauthAppServiceMock struct {
	CreateFunc func(ctx context.Context, in oauthapp.WriteInput) (oauthapp.Output, error)
	PatchFunc  func(ctx context.Context, clientID string, in oauthapp.WriteInput) (oauthapp.Output, error)
	PutFunc    func(ctx context.Context, clientID string, in oauthapp.WriteInput) (oauthapp.Output, error)
	GetFunc    func(ctx context.Context, clientID string, view record.ViewOptions) (map[string]any, error)
	ListFunc   func(ctx context.Context, in oauthapp.ListInput) ([]map[string]any, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			In  oauthapp.WriteInput
		}
		Patch []struct {
			Ctx      context.Context
			ClientID string
			In       oauthapp.WriteInput
		}
		Put []struct {
			Ctx      context.Context
			ClientID string
			In       oauthapp.WriteInput
		}
		Get []struct {
			Ctx      context.Context
			ClientID string
			View     record.ViewOptions
		}
		List []struct {
			Ctx context.Context
			In  oauthapp.ListInput
		}
	}
	lockCreate sync.RWMutex
	lockPatch  sync.RWMutex
	lockPut    sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *oauthAppServiceMock) Create(ctx context.Context, in oauthapp.WriteInput) (oauthapp.Output, error) {
	if mock.CreateFunc == nil {
		panic("oauthAppServiceMock.CreateFunc: method is nil but oauthAppService.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  oauthapp.WriteInput
	}{Ctx: ctx, In: in}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *oauthAppServiceMock) CreateCalls() []struct {
	Ctx context.Context
	In  oauthapp.WriteInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *oauthAppServiceMock) Patch(ctx context.Context, clientID string, in oauthapp.WriteInput) (oauthapp.Output, error) {
	if mock.PatchFunc == nil {
		panic("oauthAppServiceMock.PatchFunc: method is nil but oauthAppService.Patch was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ClientID string
		In       oauthapp.WriteInput
	}{Ctx: ctx, ClientID: clientID, In: in}
	mock.lockPatch.Lock()
	mock.calls.Patch = append(mock.calls.Patch, callInfo)
	mock.lockPatch.Unlock()
	return mock.PatchFunc(ctx, clientID, in)
}

func (mock *oauthAppServiceMock) PatchCalls() []struct {
	Ctx      context.Context
	ClientID string
	In       oauthapp.WriteInput
} {
	mock.lockPatch.RLock()
	calls := mock.calls.Patch
	mock.lockPatch.RUnlock()
	return calls
}

func (mock *oauthAppServiceMock) Put(ctx context.Context, clientID string, in oauthapp.WriteInput) (oauthapp.Output, error) {
	if mock.PutFunc == nil {
		panic("oauthAppServiceMock.PutFunc: method is nil but oauthAppService.Put was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ClientID string
		In       oauthapp.WriteInput
	}{Ctx: ctx, ClientID: clientID, In: in}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, clientID, in)
}

func (mock *oauthAppServiceMock) PutCalls() []struct {
	Ctx      context.Context
	ClientID string
	In       oauthapp.WriteInput
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *oauthAppServiceMock) Get(ctx context.Context, clientID string, view record.ViewOptions) (map[string]any, error) {
	if mock.GetFunc == nil {
		panic("oauthAppServiceMock.GetFunc: method is nil but oauthAppService.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ClientID string
		View     record.ViewOptions
	}{Ctx: ctx, ClientID: clientID, View: view}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, clientID, view)
}

func (mock *oauthAppServiceMock) GetCalls() []struct {
	Ctx      context.Context
	ClientID string
	View     record.ViewOptions
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *oauthAppServiceMock) List(ctx context.Context, in oauthapp.ListInput) ([]map[string]any, error) {
	if mock.ListFunc == nil {
		panic("oauthAppServiceMock.ListFunc: method is nil but oauthAppService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  oauthapp.ListInput
	}{Ctx: ctx, In: in}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, in)
}

func (mock *oauthAppServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  oauthapp.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
