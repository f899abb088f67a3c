package usecase

import (
	"context"

	"bloom/internal/domain/entity"
)

// AddFlowerInput defines the data required to create a catalog item.
// A nil Count falls back to the catalog default of one unit in stock.
type AddFlowerInput struct {
	Name  string
	Count *int
	Cost  float64
}

// CatalogUsecase defines the interface for flower catalog operations.
type CatalogUsecase interface {
	// ListFlowers returns a page of the catalog. Negative offsets are
	// clamped to zero and non-positive limits fall back to the configured
	// default page size.
	ListFlowers(ctx context.Context, offset, limit int) ([]*entity.Flower, error)

	AddFlower(ctx context.Context, input *AddFlowerInput) (*entity.Flower, error)

	// UpdateFlower applies a partial update; only non-nil patch fields change.
	UpdateFlower(ctx context.Context, id int64, patch *entity.FlowerPatch) (*entity.Flower, error)

	// DeleteFlower removes a flower and returns the deleted item.
	DeleteFlower(ctx context.Context, id int64) (*entity.Flower, error)
}
