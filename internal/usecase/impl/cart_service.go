package impl

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	deliverycontext "bloom/internal/delivery/context"
	"bloom/internal/domain/cart"
	"bloom/internal/domain/entity"
	domainerrors "bloom/internal/domain/errors"
	"bloom/internal/domain/repository"
	"bloom/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. It holds no cart state
// of its own: every call receives the cart decoded from the client's cookie
// and, for mutations, returns the cart to encode back into it.
type cartService struct {
	flowerRepo repository.FlowerRepository
	logger     *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	FlowerRepo repository.FlowerRepository
	Logger     *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		flowerRepo: params.FlowerRepo,
		logger:     params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem validates the requested quantity against the flower's current
// stock and returns the updated cart. The stock check holds at the time of
// addition only; checkout would have to re-validate.
func (srv *cartService) AddItem(ctx context.Context, items cart.Cart, flowerID int64, quantity int) (cart.Cart, error) {
	flower, err := srv.flowerRepo.FindByID(ctx, flowerID)
	if err != nil {
		if errors.Is(err, repository.ErrFlowerNotFound) {
			return nil, domainerrors.ErrFlowerNotFound
		}

		return nil, errors.Wrap(err, "failed to look up flower for cart")
	}

	updated := maps.Clone(items)
	if updated == nil {
		updated = make(cart.Cart)
	}

	if err := updated.Add(flowerID, quantity, flower.Count); err != nil {
		srv.log(ctx).Warn("Rejected cart addition",
			slog.Int64("flowerID", flowerID),
			slog.Int("quantity", quantity),
			slog.Int("available", flower.Count),
		)

		return nil, err
	}

	srv.log(ctx).Debug("Added flower to cart", slog.Int64("flowerID", flowerID), slog.Int("quantity", quantity))

	return updated, nil
}

// GetContents resolves the cart against the catalog. Entries whose flower
// no longer exists are skipped and contribute nothing to the total.
func (srv *cartService) GetContents(ctx context.Context, items cart.Cart) (*usecase.CartContents, error) {
	found := make(map[int64]*entity.Flower, len(items))
	lines := make([]*usecase.CartLine, 0, len(items))

	for _, flowerID := range slices.Sorted(maps.Keys(items)) {
		flower, err := srv.flowerRepo.FindByID(ctx, flowerID)
		if err != nil {
			if errors.Is(err, repository.ErrFlowerNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to resolve cart item")
		}

		found[flowerID] = flower
		lines = append(lines, &usecase.CartLine{
			ID:       flower.ID,
			Name:     flower.Name,
			Cost:     flower.Cost,
			Quantity: items[flowerID],
		})
	}

	total := items.TotalCost(func(flowerID int64) (*entity.Flower, bool) {
		flower, ok := found[flowerID]

		return flower, ok
	})

	return &usecase.CartContents{Items: lines, TotalCost: total}, nil
}
