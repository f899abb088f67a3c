package repository

import (
	"context"
	"errors"

	"bloom/internal/domain/entity"
)

// ErrFlowerNotFound is a domain-specific error returned when a catalog
// lookup misses.
var ErrFlowerNotFound = errors.New("flower not found")

// FlowerRepository defines the standard operations for catalog persistence.
type FlowerRepository interface {
	// List retrieves flowers ordered by id, skipping offset rows and
	// returning at most limit of them.
	List(ctx context.Context, offset, limit int) ([]*entity.Flower, error)

	// FindByID retrieves a single flower by its unique id.
	FindByID(ctx context.Context, id int64) (*entity.Flower, error)

	// Create persists a new flower, assigning its id.
	Create(ctx context.Context, flower *entity.Flower) error

	// Update applies the non-nil fields of the patch to the stored flower
	// and returns the updated entity. All supplied fields land in a single
	// statement or none do.
	Update(ctx context.Context, id int64, patch *entity.FlowerPatch) (*entity.Flower, error)

	// Delete removes the flower and returns the deleted entity.
	Delete(ctx context.Context, id int64) (*entity.Flower, error)
}
