// Package mocks holds testify mocks of the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

// ThreadRepository is a mock of domain.ThreadDBRepository, which also
// satisfies domain.ThreadRepository
type ThreadRepository struct {
	mock.Mock
}

var _ domain.ThreadDBRepository = (*ThreadRepository)(nil)

func (_m *ThreadRepository) AddThread(ctx context.Context, owner string, nt domain.NewThread) (domain.AddedThread, error) {
	ret := _m.Called(ctx, owner, nt)

	var r0 domain.AddedThread
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.NewThread) domain.AddedThread); ok {
		r0 = rf(ctx, owner, nt)
	} else {
		r0 = ret.Get(0).(domain.AddedThread)
	}
	return r0, ret.Error(1)
}

func (_m *ThreadRepository) VerifyThreadAvailability(ctx context.Context, threadID string) error {
	ret := _m.Called(ctx, threadID)
	return ret.Error(0)
}

func (_m *ThreadRepository) GetThreadByID(ctx context.Context, threadID string) (domain.Thread, error) {
	ret := _m.Called(ctx, threadID)
	return ret.Get(0).(domain.Thread), ret.Error(1)
}

func (_m *ThreadRepository) FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error) {
	ret := _m.Called(ctx, cursor, limit)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}
