package guard

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

var _ submissionCounter = &submissionCounterMock{}

type submissionCounterMock struct {
	CountSinceFunc func(ctx context.Context, email string, since time.Time) (int, error)

	calls struct {
		CountSince []struct {
			Ctx   context.Context
			Email string
			Since time.Time
		}
	}
	lockCountSince sync.RWMutex
}

func (mock *submissionCounterMock) CountSince(ctx context.Context, email string, since time.Time) (int, error) {
	if mock.CountSinceFunc == nil {
		panic("submissionCounterMock.CountSinceFunc: method is nil but submissionCounter.CountSince was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
		Since time.Time
	}{Ctx: ctx, Email: email, Since: since}
	mock.lockCountSince.Lock()
	mock.calls.CountSince = append(mock.calls.CountSince, callInfo)
	mock.lockCountSince.Unlock()
	return mock.CountSinceFunc(ctx, email, since)
}

func (mock *submissionCounterMock) CountSinceCalls() []struct {
	Ctx   context.Context
	Email string
	Since time.Time
} {
	mock.lockCountSince.RLock()
	calls := mock.calls.CountSince
	mock.lockCountSince.RUnlock()
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
