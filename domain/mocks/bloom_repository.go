package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

type BloomRepository struct {
	mock.Mock
}

var _ domain.BloomRepository = (*BloomRepository)(nil)

func (_m *BloomRepository) Add(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *BloomRepository) Exists(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (_m *BloomRepository) BulkAdd(ctx context.Context, ids []string) error {
	ret := _m.Called(ctx, ids)
	return ret.Error(0)
}

func (_m *BloomRepository) MarkLoaded(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}
