package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/glibera/readlogger/internal/audit"
	"github.com/glibera/readlogger/internal/domain"
)

var (
	_ userRepo      = &userRepoMock{}
	_ txManager     = &txManagerMock{}
	_ jwtManager    = &jwtManagerMock{}
	_ recorder      = &recorderMock{}
	_ confirmMailer = &confirmMailerMock{}
)

type userRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc         func(ctx context.Context, email string) (*domain.User, error)
	GetByConfirmTokenFunc  func(ctx context.Context, token string) (*domain.User, error)
	CreateFunc             func(ctx context.Context, user *domain.User) (*domain.User, error)
	ConfirmFunc            func(ctx context.Context, id uuid.UUID) error
	UpdateConfirmTokenFunc func(ctx context.Context, id uuid.UUID, token string) error

	calls struct {
		Create             []*domain.User
		Confirm            []uuid.UUID
		UpdateConfirmToken []struct {
			ID    uuid.UUID
			Token string
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByConfirmToken(ctx context.Context, token string) (*domain.User, error) {
	if mock.GetByConfirmTokenFunc == nil {
		panic("userRepoMock.GetByConfirmTokenFunc: method is nil but userRepo.GetByConfirmToken was just called")
	}
	return mock.GetByConfirmTokenFunc(ctx, token)
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, user)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []*domain.User {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) Confirm(ctx context.Context, id uuid.UUID) error {
	if mock.ConfirmFunc == nil {
		panic("userRepoMock.ConfirmFunc: method is nil but userRepo.Confirm was just called")
	}
	mock.lock.Lock()
	mock.calls.Confirm = append(mock.calls.Confirm, id)
	mock.lock.Unlock()
	return mock.ConfirmFunc(ctx, id)
}

func (mock *userRepoMock) ConfirmCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Confirm
}

func (mock *userRepoMock) UpdateConfirmToken(ctx context.Context, id uuid.UUID, token string) error {
	if mock.UpdateConfirmTokenFunc == nil {
		panic("userRepoMock.UpdateConfirmTokenFunc: method is nil but userRepo.UpdateConfirmToken was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateConfirmToken = append(mock.calls.UpdateConfirmToken, struct {
		ID    uuid.UUID
		Token string
	}{ID: id, Token: token})
	mock.lock.Unlock()
	return mock.UpdateConfirmTokenFunc(ctx, id, token)
}

func (mock *userRepoMock) UpdateConfirmTokenCalls() []struct {
	ID    uuid.UUID
	Token string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateConfirmToken
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

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, roles []string) (string, error)
}

func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, roles []string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	return mock.GenerateAccessTokenFunc(userID, roles)
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

type confirmMailerMock struct {
	SendConfirmationFunc func(ctx context.Context, email, token, language string) error

	calls struct {
		SendConfirmation []struct {
			Email    string
			Token    string
			Language string
		}
	}
	lock sync.RWMutex
}

func (mock *confirmMailerMock) SendConfirmation(ctx context.Context, email, token, language string) error {
	mock.lock.Lock()
	mock.calls.SendConfirmation = append(mock.calls.SendConfirmation, struct {
		Email    string
		Token    string
		Language string
	}{Email: email, Token: token, Language: language})
	mock.lock.Unlock()
	if mock.SendConfirmationFunc == nil {
		return nil
	}
	return mock.SendConfirmationFunc(ctx, email, token, language)
}

func (mock *confirmMailerMock) SendConfirmationCalls() []struct {
	Email    string
	Token    string
	Language string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SendConfirmation
}
