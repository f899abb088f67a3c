// Package repository contains hand-written testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"

	"bloom/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a testify mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) List(ctx context.Context, offset, limit int) ([]*entity.Account, error) {
	args := m.Called(ctx, offset, limit)

	var accounts []*entity.Account
	if v := args.Get(0); v != nil {
		accounts = v.([]*entity.Account)
	}

	return accounts, args.Error(1)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	args := m.Called(ctx, id)

	var account *entity.Account
	if v := args.Get(0); v != nil {
		account = v.(*entity.Account)
	}

	return account, args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)

	var account *entity.Account
	if v := args.Get(0); v != nil {
		account = v.(*entity.Account)
	}

	return account, args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, id int64, patch *entity.AccountPatch) (*entity.Account, error) {
	args := m.Called(ctx, id, patch)

	var account *entity.Account
	if v := args.Get(0); v != nil {
		account = v.(*entity.Account)
	}

	return account, args.Error(1)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id int64) (*entity.Account, error) {
	args := m.Called(ctx, id)

	var account *entity.Account
	if v := args.Get(0); v != nil {
		account = v.(*entity.Account)
	}

	return account, args.Error(1)
}
