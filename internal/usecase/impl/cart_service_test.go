package impl

import (
	"context"
	"testing"

	"bloom/internal/domain/cart"
	"bloom/internal/domain/entity"
	domainerrors "bloom/internal/domain/errors"
	"bloom/internal/domain/repository"
	mockrepo "bloom/internal/mocks/repository"
	"bloom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartServiceForTest(flowerRepo *mockrepo.MockFlowerRepository) usecase.CartUsecase {
	return NewCartService(CartServiceParams{
		FlowerRepo: flowerRepo,
		Logger:     discardLogger(),
	})
}

func TestCartService_AddItem(t *testing.T) {
	flowerRepo := new(mockrepo.MockFlowerRepository)
	srv := newCartServiceForTest(flowerRepo)

	flowerRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&entity.Flower{ID: 1, Name: "Rose", Count: 10, Cost: 2.5}, nil)

	items := cart.Cart{}
	updated, err := srv.AddItem(context.Background(), items, 1, 3)

	require.NoError(t, err)
	assert.Equal(t, cart.Cart{1: 3}, updated)
	// The input cart is never mutated in place.
	assert.Empty(t, items)
}

func TestCartService_AddItem_NilCart(t *testing.T) {
	flowerRepo := new(mockrepo.MockFlowerRepository)
	srv := newCartServiceForTest(flowerRepo)

	flowerRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&entity.Flower{ID: 1, Count: 10}, nil)

	updated, err := srv.AddItem(context.Background(), nil, 1, 2)

	require.NoError(t, err)
	assert.Equal(t, cart.Cart{1: 2}, updated)
}

func TestCartService_AddItem_OverwritesQuantity(t *testing.T) {
	flowerRepo := new(mockrepo.MockFlowerRepository)
	srv := newCartServiceForTest(flowerRepo)

	flowerRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&entity.Flower{ID: 1, Count: 10}, nil)

	updated, err := srv.AddItem(context.Background(), cart.Cart{1: 5}, 1, 2)

	require.NoError(t, err)
	assert.Equal(t, cart.Cart{1: 2}, updated)
}

func TestCartService_AddItem_UnknownFlower(t *testing.T) {
	flowerRepo := new(mockrepo.MockFlowerRepository)
	srv := newCartServiceForTest(flowerRepo)

	flowerRepo.On("FindByID", mock.Anything, int64(404)).
		Return(nil, repository.ErrFlowerNotFound)

	_, err := srv.AddItem(context.Background(), cart.Cart{}, 404, 1)

	assert.ErrorIs(t, err, domainerrors.ErrFlowerNotFound)
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	flowerRepo := new(mockrepo.MockFlowerRepository)
	srv := newCartServiceForTest(flowerRepo)

	flowerRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&entity.Flower{ID: 1, Count: 10}, nil)

	_, err := srv.AddItem(context.Background(), cart.Cart{}, 1, 0)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCartService_AddItem_InsufficientStock(t *testing.T) {
	flowerRepo := new(mockrepo.MockFlowerRepository)
	srv := newCartServiceForTest(flowerRepo)

	flowerRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&entity.Flower{ID: 1, Count: 2}, nil)

	_, err := srv.AddItem(context.Background(), cart.Cart{}, 1, 3)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
}

func TestCartService_GetContents(t *testing.T) {
	flowerRepo := new(mockrepo.MockFlowerRepository)
	srv := newCartServiceForTest(flowerRepo)

	flowerRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&entity.Flower{ID: 1, Name: "Rose", Cost: 2.5}, nil)
	flowerRepo.On("FindByID", mock.Anything, int64(2)).
		Return(&entity.Flower{ID: 2, Name: "Tulip", Cost: 1.0}, nil)

	contents, err := srv.GetContents(context.Background(), cart.Cart{1: 2, 2: 3})

	require.NoError(t, err)
	require.Len(t, contents.Items, 2)
	assert.Equal(t, "Rose", contents.Items[0].Name)
	assert.Equal(t, 2, contents.Items[0].Quantity)
	assert.Equal(t, "Tulip", contents.Items[1].Name)
	assert.InDelta(t, 8.0, contents.TotalCost, 1e-9)
}

func TestCartService_GetContents_SkipsMissingFlowers(t *testing.T) {
	flowerRepo := new(mockrepo.MockFlowerRepository)
	srv := newCartServiceForTest(flowerRepo)

	flowerRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&entity.Flower{ID: 1, Name: "Rose", Cost: 2.5}, nil)
	flowerRepo.On("FindByID", mock.Anything, int64(9)).
		Return(nil, repository.ErrFlowerNotFound)

	contents, err := srv.GetContents(context.Background(), cart.Cart{1: 2, 9: 4})

	require.NoError(t, err)
	require.Len(t, contents.Items, 1)
	assert.Equal(t, int64(1), contents.Items[0].ID)
	assert.InDelta(t, 5.0, contents.TotalCost, 1e-9)
}

func TestCartService_GetContents_EmptyCart(t *testing.T) {
	srv := newCartServiceForTest(new(mockrepo.MockFlowerRepository))

	contents, err := srv.GetContents(context.Background(), cart.Cart{})

	require.NoError(t, err)
	assert.Empty(t, contents.Items)
	assert.Zero(t, contents.TotalCost)
}
