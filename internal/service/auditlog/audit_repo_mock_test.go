package auditlog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/domain"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	CreateFunc        func(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error)
	ListByRecordFunc  func(ctx context.Context, table domain.AuditTable, recordID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error)
	CountByRecordFunc func(ctx context.Context, table domain.AuditTable, recordID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Record domain.AuditRecord
		}
		ListByRecord []struct {
			Table    domain.AuditTable
			RecordID uuid.UUID
			Limit    int
			Offset   int
		}
		CountByRecord []struct {
			Table    domain.AuditTable
			RecordID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *auditRepoMock) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if mock.CreateFunc == nil {
		panic("auditRepoMock.CreateFunc: method is nil but auditRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Record domain.AuditRecord
	}{Record: record})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, record)
}

func (mock *auditRepoMock) CreateCalls() []struct {
	Record domain.AuditRecord
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *auditRepoMock) ListByRecord(ctx context.Context, table domain.AuditTable, recordID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	if mock.ListByRecordFunc == nil {
		panic("auditRepoMock.ListByRecordFunc: method is nil but auditRepo.ListByRecord was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByRecord = append(mock.calls.ListByRecord, struct {
		Table    domain.AuditTable
		RecordID uuid.UUID
		Limit    int
		Offset   int
	}{Table: table, RecordID: recordID, Limit: limit, Offset: offset})
	mock.lock.Unlock()
	return mock.ListByRecordFunc(ctx, table, recordID, limit, offset)
}

func (mock *auditRepoMock) ListByRecordCalls() []struct {
	Table    domain.AuditTable
	RecordID uuid.UUID
	Limit    int
	Offset   int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByRecord
}

func (mock *auditRepoMock) CountByRecord(ctx context.Context, table domain.AuditTable, recordID uuid.UUID) (int, error) {
	if mock.CountByRecordFunc == nil {
		panic("auditRepoMock.CountByRecordFunc: method is nil but auditRepo.CountByRecord was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByRecord = append(mock.calls.CountByRecord, struct {
		Table    domain.AuditTable
		RecordID uuid.UUID
	}{Table: table, RecordID: recordID})
	mock.lock.Unlock()
	return mock.CountByRecordFunc(ctx, table, recordID)
}
