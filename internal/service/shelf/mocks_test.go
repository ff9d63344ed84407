package shelf

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/audit"
	"github.com/glibera/readlogger/internal/domain"
)

var (
	_ entryRepo  = &entryRepoMock{}
	_ bookRepo   = &bookRepoMock{}
	_ authorRepo = &authorRepoMock{}
	_ refRepo    = &refRepoMock{}
	_ txManager  = &txManagerMock{}
	_ recorder   = &recorderMock{}
)

type entryRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.UserBook, error)
	CreateFunc      func(ctx context.Context, e *domain.UserBook) (*domain.UserBook, error)
	UpdateFunc      func(ctx context.Context, e *domain.UserBook) (*domain.UserBook, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID, statusID *int, limit, offset int) ([]domain.UserBook, error)
	CountByUserFunc func(ctx context.Context, userID uuid.UUID, statusID *int) (int, error)

	calls struct {
		Create []*domain.UserBook
		Update []*domain.UserBook
		Delete []uuid.UUID
		List   []struct {
			UserID   uuid.UUID
			StatusID *int
			Limit    int
			Offset   int
		}
	}
	lock sync.RWMutex
}

func (mock *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserBook, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.UserBook) (*domain.UserBook, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, e)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []*domain.UserBook {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *entryRepoMock) Update(ctx context.Context, e *domain.UserBook) (*domain.UserBook, error) {
	if mock.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, e)
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, e)
}

func (mock *entryRepoMock) UpdateCalls() []*domain.UserBook {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *entryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, id)
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *entryRepoMock) DeleteCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *entryRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, statusID *int, limit, offset int) ([]domain.UserBook, error) {
	if mock.ListByUserFunc == nil {
		panic("entryRepoMock.ListByUserFunc: method is nil but entryRepo.ListByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		UserID   uuid.UUID
		StatusID *int
		Limit    int
		Offset   int
	}{UserID: userID, StatusID: statusID, Limit: limit, Offset: offset})
	mock.lock.Unlock()
	return mock.ListByUserFunc(ctx, userID, statusID, limit, offset)
}

func (mock *entryRepoMock) ListByUserCalls() []struct {
	UserID   uuid.UUID
	StatusID *int
	Limit    int
	Offset   int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *entryRepoMock) CountByUser(ctx context.Context, userID uuid.UUID, statusID *int) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("entryRepoMock.CountByUserFunc: method is nil but entryRepo.CountByUser was just called")
	}
	return mock.CountByUserFunc(ctx, userID, statusID)
}

type bookRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	CreateFunc           func(ctx context.Context, b *domain.Book) (*domain.Book, error)
	AuthorsByBookIDsFunc func(ctx context.Context, bookIDs []uuid.UUID) (map[uuid.UUID][]domain.Author, error)

	calls struct {
		Create []*domain.Book
	}
	lock sync.RWMutex
}

func (mock *bookRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if mock.GetByIDFunc == nil {
		panic("bookRepoMock.GetByIDFunc: method is nil but bookRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *bookRepoMock) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	if mock.CreateFunc == nil {
		panic("bookRepoMock.CreateFunc: method is nil but bookRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, b)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *bookRepoMock) CreateCalls() []*domain.Book {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *bookRepoMock) AuthorsByBookIDs(ctx context.Context, bookIDs []uuid.UUID) (map[uuid.UUID][]domain.Author, error) {
	if mock.AuthorsByBookIDsFunc == nil {
		panic("bookRepoMock.AuthorsByBookIDsFunc: method is nil but bookRepo.AuthorsByBookIDs was just called")
	}
	return mock.AuthorsByBookIDsFunc(ctx, bookIDs)
}

type authorRepoMock struct {
	CreateFunc func(ctx context.Context, a *domain.Author) (*domain.Author, error)

	calls struct {
		Create []*domain.Author
	}
	lock sync.RWMutex
}

func (mock *authorRepoMock) Create(ctx context.Context, a *domain.Author) (*domain.Author, error) {
	if mock.CreateFunc == nil {
		panic("authorRepoMock.CreateFunc: method is nil but authorRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, a)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *authorRepoMock) CreateCalls() []*domain.Author {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

type refRepoMock struct {
	GetStatusFunc   func(ctx context.Context, id int) (*domain.Status, error)
	GetFormatFunc   func(ctx context.Context, id int) (*domain.Format, error)
	GetLanguageFunc func(ctx context.Context, id int) (*domain.Language, error)
}

func (mock *refRepoMock) GetStatus(ctx context.Context, id int) (*domain.Status, error) {
	if mock.GetStatusFunc == nil {
		panic("refRepoMock.GetStatusFunc: method is nil but refRepo.GetStatus was just called")
	}
	return mock.GetStatusFunc(ctx, id)
}

func (mock *refRepoMock) GetFormat(ctx context.Context, id int) (*domain.Format, error) {
	if mock.GetFormatFunc == nil {
		panic("refRepoMock.GetFormatFunc: method is nil but refRepo.GetFormat was just called")
	}
	return mock.GetFormatFunc(ctx, id)
}

func (mock *refRepoMock) GetLanguage(ctx context.Context, id int) (*domain.Language, error) {
	if mock.GetLanguageFunc == nil {
		panic("refRepoMock.GetLanguageFunc: method is nil but refRepo.GetLanguage was just called")
	}
	return mock.GetLanguageFunc(ctx, id)
}

// txManagerMock runs the callback inline, without a real transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

type recorderMock struct {
	RecordFunc func(ctx context.Context, actorID uuid.UUID, action domain.AuditAction, table domain.AuditTable, newEntity audit.Normalizer, oldSnapshot map[string]any, exclude ...string) (uuid.UUID, error)

	calls struct {
		Record []struct {
			ActorID     uuid.UUID
			Action      domain.AuditAction
			Table       domain.AuditTable
			NewEntity   audit.Normalizer
			OldSnapshot map[string]any
			Exclude     []string
		}
	}
	lock sync.RWMutex
}

func (mock *recorderMock) Record(ctx context.Context, actorID uuid.UUID, action domain.AuditAction, table domain.AuditTable, newEntity audit.Normalizer, oldSnapshot map[string]any, exclude ...string) (uuid.UUID, error) {
	mock.lock.Lock()
	mock.calls.Record = append(mock.calls.Record, struct {
		ActorID     uuid.UUID
		Action      domain.AuditAction
		Table       domain.AuditTable
		NewEntity   audit.Normalizer
		OldSnapshot map[string]any
		Exclude     []string
	}{ActorID: actorID, Action: action, Table: table, NewEntity: newEntity, OldSnapshot: oldSnapshot, Exclude: exclude})
	mock.lock.Unlock()
	if mock.RecordFunc == nil {
		return uuid.New(), nil
	}
	return mock.RecordFunc(ctx, actorID, action, table, newEntity, oldSnapshot, exclude...)
}

func (mock *recorderMock) RecordCalls() []struct {
	ActorID     uuid.UUID
	Action      domain.AuditAction
	Table       domain.AuditTable
	NewEntity   audit.Normalizer
	OldSnapshot map[string]any
	Exclude     []string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Record
}
