package repository

import (
	"context"

	domainrepo "bloom/internal/domain/repository"
)

// FakeRepositoryFactory hands out fixed repositories, standing in for the
// transaction-bound factory the real TransactionManager builds.
type FakeRepositoryFactory struct {
	Accounts domainrepo.AccountRepository
	Flowers  domainrepo.FlowerRepository
}

func (f *FakeRepositoryFactory) AccountRepo() domainrepo.AccountRepository {
	return f.Accounts
}

func (f *FakeRepositoryFactory) FlowerRepo() domainrepo.FlowerRepository {
	return f.Flowers
}

// FakeTransactionManager runs the callback against a fixed factory without
// any real transaction, propagating the callback's error like a rollback
// would.
type FakeTransactionManager struct {
	Factory domainrepo.RepositoryFactory
}

func (f *FakeTransactionManager) Execute(_ context.Context, fn func(domainrepo.RepositoryFactory) error) error {
	return fn(f.Factory)
}
