package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

var _ applicationRepo = &applicationRepoMock{}

type applicationRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListFunc             func(ctx context.Context, filter domain.ApplicationFilter) (domain.ApplicationPage, error)
	StatsFunc            func(ctx context.Context) (domain.ApplicationStats, error)
	UpdateStatusFunc     func(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (bool, error)
	BulkUpdateStatusFunc func(ctx context.Context, ids []uuid.UUID, status domain.ApplicationStatus) (int, error)
	AppendNoteFunc       func(ctx context.Context, id uuid.UUID, text string) (bool, error)
	AppendEmailLogFunc   func(ctx context.Context, id uuid.UUID, subject string, template *string) (bool, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ApplicationFilter
		}
		Stats []struct {
			Ctx context.Context
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.ApplicationStatus
		}
		BulkUpdateStatus []struct {
			Ctx    context.Context
			IDs    []uuid.UUID
			Status domain.ApplicationStatus
		}
		AppendNote []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Text string
		}
		AppendEmailLog []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Subject  string
			Template *string
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID          sync.RWMutex
	lockList             sync.RWMutex
	lockStats            sync.RWMutex
	lockUpdateStatus     sync.RWMutex
	lockBulkUpdateStatus sync.RWMutex
	lockAppendNote       sync.RWMutex
	lockAppendEmailLog   sync.RWMutex
	lockDelete           sync.RWMutex
}

func (mock *applicationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if mock.GetByIDFunc == nil {
		panic("applicationRepoMock.GetByIDFunc: method is nil but applicationRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *applicationRepoMock) GetByIDCalls() []struct {
		Ctx context.Context
		ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *applicationRepoMock) List(ctx context.Context, filter domain.ApplicationFilter) (domain.ApplicationPage, error) {
	if mock.ListFunc == nil {
		panic("applicationRepoMock.ListFunc: method is nil but applicationRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ApplicationFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *applicationRepoMock) ListCalls() []struct {
		Ctx    context.Context
		Filter domain.ApplicationFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Stats(ctx context.Context) (domain.ApplicationStats, error) {
	if mock.StatsFunc == nil {
		panic("applicationRepoMock.StatsFunc: method is nil but applicationRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *applicationRepoMock) StatsCalls() []struct {
		Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *applicationRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (bool, error) {
	if mock.UpdateStatusFunc == nil {
		panic("applicationRepoMock.UpdateStatusFunc: method is nil but applicationRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.ApplicationStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *applicationRepoMock) UpdateStatusCalls() []struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.ApplicationStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *applicationRepoMock) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status domain.ApplicationStatus) (int, error) {
	if mock.BulkUpdateStatusFunc == nil {
		panic("applicationRepoMock.BulkUpdateStatusFunc: method is nil but applicationRepo.BulkUpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IDs    []uuid.UUID
		Status domain.ApplicationStatus
	}{Ctx: ctx, IDs: ids, Status: status}
	mock.lockBulkUpdateStatus.Lock()
	mock.calls.BulkUpdateStatus = append(mock.calls.BulkUpdateStatus, callInfo)
	mock.lockBulkUpdateStatus.Unlock()
	return mock.BulkUpdateStatusFunc(ctx, ids, status)
}

func (mock *applicationRepoMock) BulkUpdateStatusCalls() []struct {
		Ctx    context.Context
		IDs    []uuid.UUID
		Status domain.ApplicationStatus
} {
	mock.lockBulkUpdateStatus.RLock()
	calls := mock.calls.BulkUpdateStatus
	mock.lockBulkUpdateStatus.RUnlock()
	return calls
}

func (mock *applicationRepoMock) AppendNote(ctx context.Context, id uuid.UUID, text string) (bool, error) {
	if mock.AppendNoteFunc == nil {
		panic("applicationRepoMock.AppendNoteFunc: method is nil but applicationRepo.AppendNote was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Text string
	}{Ctx: ctx, ID: id, Text: text}
	mock.lockAppendNote.Lock()
	mock.calls.AppendNote = append(mock.calls.AppendNote, callInfo)
	mock.lockAppendNote.Unlock()
	return mock.AppendNoteFunc(ctx, id, text)
}

func (mock *applicationRepoMock) AppendNoteCalls() []struct {
		Ctx  context.Context
		ID   uuid.UUID
		Text string
} {
	mock.lockAppendNote.RLock()
	calls := mock.calls.AppendNote
	mock.lockAppendNote.RUnlock()
	return calls
}

func (mock *applicationRepoMock) AppendEmailLog(ctx context.Context, id uuid.UUID, subject string, template *string) (bool, error) {
	if mock.AppendEmailLogFunc == nil {
		panic("applicationRepoMock.AppendEmailLogFunc: method is nil but applicationRepo.AppendEmailLog was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Subject  string
		Template *string
	}{Ctx: ctx, ID: id, Subject: subject, Template: template}
	mock.lockAppendEmailLog.Lock()
	mock.calls.AppendEmailLog = append(mock.calls.AppendEmailLog, callInfo)
	mock.lockAppendEmailLog.Unlock()
	return mock.AppendEmailLogFunc(ctx, id, subject, template)
}

func (mock *applicationRepoMock) AppendEmailLogCalls() []struct {
		Ctx      context.Context
		ID       uuid.UUID
		Subject  string
		Template *string
} {
	mock.lockAppendEmailLog.RLock()
	calls := mock.calls.AppendEmailLog
	mock.lockAppendEmailLog.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("applicationRepoMock.DeleteFunc: method is nil but applicationRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *applicationRepoMock) DeleteCalls() []struct {
		Ctx context.Context
		ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ logQuerier = &logQuerierMock{}

type logQuerierMock struct {
	QueryFunc func(ctx context.Context, q domain.LogQuery) ([]domain.LogEntry, error)

	calls struct {
		Query []struct {
			Ctx context.Context
			Q   domain.LogQuery
		}
	}
	lockQuery sync.RWMutex
}

func (mock *logQuerierMock) Query(ctx context.Context, q domain.LogQuery) ([]domain.LogEntry, error) {
	if mock.QueryFunc == nil {
		panic("logQuerierMock.QueryFunc: method is nil but logQuerier.Query was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.LogQuery
	}{Ctx: ctx, Q: q}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, q)
}

func (mock *logQuerierMock) QueryCalls() []struct {
		Ctx context.Context
		Q   domain.LogQuery
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
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
