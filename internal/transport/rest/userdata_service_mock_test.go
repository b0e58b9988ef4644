package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/records-api/internal/service/record"
	"github.com/heartmarshall/records-api/internal/service/userdata"
)

var _ userDataService = &userDataServiceMock{}

type userDataServiceMock struct {
	PostFunc  func(ctx context.Context, ownerID string, in userdata.WriteInput) (userdata.Output, error)
	PatchFunc func(ctx context.Context, id string, in userdata.WriteInput) (userdata.Output, error)
	PutFunc   func(ctx context.Context, id string, in userdata.WriteInput) (userdata.Output, error)
	GetFunc   func(ctx context.Context, id string, view record.ViewOptions) (map[string]any, error)
	ListFunc  func(ctx context.Context, in userdata.ListInput) ([]map[string]any, error)

	calls struct {
		Post []struct {
			Ctx     context.Context
			OwnerID string
			In      userdata.WriteInput
		}
		Patch []struct {
			Ctx context.Context
			ID  string
			In  userdata.WriteInput
		}
		Put []struct {
			Ctx context.Context
			ID  string
			In  userdata.WriteInput
		}
		Get []struct {
			Ctx  context.Context
			ID   string
			View record.ViewOptions
		}
		List []struct {
			Ctx context.Context
			In  userdata.ListInput
		}
	}
	lockPost  sync.RWMutex
	lockPatch sync.RWMutex
	lockPut   sync.RWMutex
	lockGet   sync.RWMutex
	lockList  sync.RWMutex
}

func (mock *userDataServiceMock) Post(ctx context.Context, ownerID string, in userdata.WriteInput) (userdata.Output, error) {
	if mock.PostFunc == nil {
		panic("userDataServiceMock.PostFunc: method is nil but userDataService.Post was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID string
		In      userdata.WriteInput
	}{Ctx: ctx, OwnerID: ownerID, In: in}
	mock.lockPost.Lock()
	mock.calls.Post = append(mock.calls.Post, callInfo)
	mock.lockPost.Unlock()
	return mock.PostFunc(ctx, ownerID, in)
}

func (mock *userDataServiceMock) PostCalls() []struct {
	Ctx     context.Context
	OwnerID string
	In      userdata.WriteInput
} {
	mock.lockPost.RLock()
	calls := mock.calls.Post
	mock.lockPost.RUnlock()
	return calls
}

func (mock *userDataServiceMock) Patch(ctx context.Context, id string, in userdata.WriteInput) (userdata.Output, error) {
	if mock.PatchFunc == nil {
		panic("userDataServiceMock.PatchFunc: method is nil but userDataService.Patch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		In  userdata.WriteInput
	}{Ctx: ctx, ID: id, In: in}
	mock.lockPatch.Lock()
	mock.calls.Patch = append(mock.calls.Patch, callInfo)
	mock.lockPatch.Unlock()
	return mock.PatchFunc(ctx, id, in)
}

func (mock *userDataServiceMock) PatchCalls() []struct {
	Ctx context.Context
	ID  string
	In  userdata.WriteInput
} {
	mock.lockPatch.RLock()
	calls := mock.calls.Patch
	mock.lockPatch.RUnlock()
	return calls
}

func (mock *userDataServiceMock) Put(ctx context.Context, id string, in userdata.WriteInput) (userdata.Output, error) {
	if mock.PutFunc == nil {
		panic("userDataServiceMock.PutFunc: method is nil but userDataService.Put was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		In  userdata.WriteInput
	}{Ctx: ctx, ID: id, In: in}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, id, in)
}

func (mock *userDataServiceMock) PutCalls() []struct {
	Ctx context.Context
	ID  string
	In  userdata.WriteInput
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *userDataServiceMock) Get(ctx context.Context, id string, view record.ViewOptions) (map[string]any, error) {
	if mock.GetFunc == nil {
		panic("userDataServiceMock.GetFunc: method is nil but userDataService.Get was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   string
		View record.ViewOptions
	}{Ctx: ctx, ID: id, View: view}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id, view)
}

func (mock *userDataServiceMock) GetCalls() []struct {
	Ctx  context.Context
	ID   string
	View record.ViewOptions
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *userDataServiceMock) List(ctx context.Context, in userdata.ListInput) ([]map[string]any, error) {
	if mock.ListFunc == nil {
		panic("userDataServiceMock.ListFunc: method is nil but userDataService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  userdata.ListInput
	}{Ctx: ctx, In: in}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, in)
}

func (mock *userDataServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  userdata.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
