// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/minwoopark/board-api/models"
	"github.com/minwoopark/board-api/repository"
)

// UserRepository is a testify mock of repository.UserRepository. Transact
// runs the callback against the mock itself, so expectations set on the mock
// cover calls made inside the transaction.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) FindByNickname(ctx context.Context, nickname string) (*models.User, error) {
	args := m.Called(ctx, nickname)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) Transact(ctx context.Context, fn func(repository.UserRepository) error) error {
	return fn(m)
}
