package impl

import (
	"context"
	"log/slog"

	"bloom/config"
	deliverycontext "bloom/internal/delivery/context"
	"bloom/internal/domain/entity"
	domainerrors "bloom/internal/domain/errors"
	"bloom/internal/domain/repository"
	"bloom/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultFlowerCount = 1

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager        repository.TransactionManager
	flowerRepo       repository.FlowerRepository
	defaultPageLimit int
	logger           *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	FlowerRepo repository.FlowerRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	defaultPageLimit := 10
	if params.Config != nil && params.Config.Catalog != nil && params.Config.Catalog.DefaultPageLimit > 0 {
		defaultPageLimit = params.Config.Catalog.DefaultPageLimit
	}

	return &catalogService{
		txManager:        params.TxManager,
		flowerRepo:       params.FlowerRepo,
		defaultPageLimit: defaultPageLimit,
		logger:           params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFlowers returns a page of the catalog ordered by id.
func (srv *catalogService) ListFlowers(ctx context.Context, offset, limit int) ([]*entity.Flower, error) {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = srv.defaultPageLimit
	}

	flowers, err := srv.flowerRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list flowers")
	}

	return flowers, nil
}

// AddFlower creates a catalog item. An omitted count defaults to one unit.
func (srv *catalogService) AddFlower(ctx context.Context, input *usecase.AddFlowerInput) (*entity.Flower, error) {
	count := defaultFlowerCount
	if input.Count != nil {
		count = *input.Count
	}
	if count < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("count must not be negative")
	}
	if input.Cost < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cost must not be negative")
	}

	newFlower := &entity.Flower{
		Name:  input.Name,
		Count: count,
		Cost:  input.Cost,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.FlowerRepo().Create(ctx, newFlower)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create flower", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create flower")
	}

	srv.log(ctx).Debug("Flower created", slog.Int64("flowerID", newFlower.ID))

	return newFlower, nil
}

// UpdateFlower applies a partial update and returns the updated item.
func (srv *catalogService) UpdateFlower(ctx context.Context, id int64, patch *entity.FlowerPatch) (*entity.Flower, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.ErrNoFieldsProvided
	}
	if patch.Count != nil && *patch.Count < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("count must not be negative")
	}
	if patch.Cost != nil && *patch.Cost < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cost must not be negative")
	}

	var updated *entity.Flower
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		flower, err := repoFactory.FlowerRepo().Update(ctx, id, patch)
		if err != nil {
			return err
		}
		updated = flower

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrFlowerNotFound) {
			return nil, domainerrors.ErrFlowerNotFound
		}

		return nil, errors.Wrap(err, "failed to update flower")
	}

	srv.log(ctx).Debug("Flower updated", slog.Int64("flowerID", id))

	return updated, nil
}

// DeleteFlower removes a flower and returns the deleted item.
func (srv *catalogService) DeleteFlower(ctx context.Context, id int64) (*entity.Flower, error) {
	var deleted *entity.Flower
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		flower, err := repoFactory.FlowerRepo().Delete(ctx, id)
		if err != nil {
			return err
		}
		deleted = flower

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrFlowerNotFound) {
			return nil, domainerrors.ErrFlowerNotFound
		}

		return nil, errors.Wrap(err, "failed to delete flower")
	}

	srv.log(ctx).Debug("Flower deleted", slog.Int64("flowerID", id))

	return deleted, nil
}
