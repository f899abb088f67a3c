package repository

import (
	"context"

	"bloom/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockFlowerRepository is a testify mock of repository.FlowerRepository.
type MockFlowerRepository struct {
	mock.Mock
}

func (m *MockFlowerRepository) List(ctx context.Context, offset, limit int) ([]*entity.Flower, error) {
	args := m.Called(ctx, offset, limit)

	var flowers []*entity.Flower
	if v := args.Get(0); v != nil {
		flowers = v.([]*entity.Flower)
	}

	return flowers, args.Error(1)
}

func (m *MockFlowerRepository) FindByID(ctx context.Context, id int64) (*entity.Flower, error) {
	args := m.Called(ctx, id)

	var flower *entity.Flower
	if v := args.Get(0); v != nil {
		flower = v.(*entity.Flower)
	}

	return flower, args.Error(1)
}

func (m *MockFlowerRepository) Create(ctx context.Context, flower *entity.Flower) error {
	args := m.Called(ctx, flower)

	return args.Error(0)
}

func (m *MockFlowerRepository) Update(ctx context.Context, id int64, patch *entity.FlowerPatch) (*entity.Flower, error) {
	args := m.Called(ctx, id, patch)

	var flower *entity.Flower
	if v := args.Get(0); v != nil {
		flower = v.(*entity.Flower)
	}

	return flower, args.Error(1)
}

func (m *MockFlowerRepository) Delete(ctx context.Context, id int64) (*entity.Flower, error) {
	args := m.Called(ctx, id)

	var flower *entity.Flower
	if v := args.Get(0); v != nil {
		flower = v.(*entity.Flower)
	}

	return flower, args.Error(1)
}
