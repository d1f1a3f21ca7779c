package intake

import (
	"context"
	"sync"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

var _ submissionGuard = &submissionGuardMock{}

type submissionGuardMock struct {
	CountRecentSubmissionsFunc func(ctx context.Context, identity string, windowHours int) (int, error)

	calls struct {
		CountRecentSubmissions []struct {
			Ctx         context.Context
			Identity    string
			WindowHours int
		}
	}
	lockCountRecentSubmissions sync.RWMutex
}

func (mock *submissionGuardMock) CountRecentSubmissions(ctx context.Context, identity string, windowHours int) (int, error) {
	if mock.CountRecentSubmissionsFunc == nil {
		panic("submissionGuardMock.CountRecentSubmissionsFunc: method is nil but submissionGuard.CountRecentSubmissions was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Identity    string
		WindowHours int
	}{Ctx: ctx, Identity: identity, WindowHours: windowHours}
	mock.lockCountRecentSubmissions.Lock()
	mock.calls.CountRecentSubmissions = append(mock.calls.CountRecentSubmissions, callInfo)
	mock.lockCountRecentSubmissions.Unlock()
	return mock.CountRecentSubmissionsFunc(ctx, identity, windowHours)
}

func (mock *submissionGuardMock) CountRecentSubmissionsCalls() []struct {
	Ctx         context.Context
	Identity    string
	WindowHours int
} {
	mock.lockCountRecentSubmissions.RLock()
	calls := mock.calls.CountRecentSubmissions
	mock.lockCountRecentSubmissions.RUnlock()
	return calls
}

var _ applicationCreator = &applicationCreatorMock{}

type applicationCreatorMock struct {
	CreateFunc func(ctx context.Context, app *domain.Application) (*domain.Application, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			App *domain.Application
		}
	}
	lockCreate sync.RWMutex
}

func (mock *applicationCreatorMock) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	if mock.CreateFunc == nil {
		panic("applicationCreatorMock.CreateFunc: method is nil but applicationCreator.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		App *domain.Application
	}{Ctx: ctx, App: app}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, app)
}

func (mock *applicationCreatorMock) CreateCalls() []struct {
	Ctx context.Context
	App *domain.Application
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ eventSink = &eventSinkMock{}

type eventSinkMock struct {
	calls struct {
		Append []struct {
			Ctx   context.Context
			Entry domain.LogEntry
		}
	}
	lockAppend sync.RWMutex
}

func (mock *eventSinkMock) Append(ctx context.Context, entry domain.LogEntry) {
	callInfo := struct {
		Ctx   context.Context
		Entry domain.LogEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
}

func (mock *eventSinkMock) AppendCalls() []struct {
	Ctx   context.Context
	Entry domain.LogEntry
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
