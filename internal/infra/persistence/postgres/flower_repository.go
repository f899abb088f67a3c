package postgres

import (
	"context"

	"bloom/internal/domain/entity"
	domainerrors "bloom/internal/domain/errors"
	"bloom/internal/domain/repository"
	"bloom/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// flowerRepository implements the domain FlowerRepository interface using GORM.
type flowerRepository struct {
	db *gorm.DB
}

// NewFlowerRepository is the constructor for flowerRepository.
func NewFlowerRepository(db *gorm.DB) repository.FlowerRepository {
	return &flowerRepository{db: db}
}

// List retrieves flowers ordered by id with offset/limit pagination.
func (repo *flowerRepository) List(ctx context.Context, offset, limit int) ([]*entity.Flower, error) {
	var models []*model.FlowerModel
	err := repo.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list flowers")
	}

	flowers := make([]*entity.Flower, 0, len(models))
	for _, flowerM := range models {
		flowers = append(flowers, toFlowerDomain(flowerM))
	}

	return flowers, nil
}

// FindByID retrieves a single flower by its unique id.
func (repo *flowerRepository) FindByID(ctx context.Context, id int64) (*entity.Flower, error) {
	var flowerM model.FlowerModel
	err := repo.db.WithContext(ctx).First(&flowerM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFlowerNotFound
		}

		return nil, errors.Wrap(err, "failed to find flower by id")
	}

	return toFlowerDomain(&flowerM), nil
}

// Create persists a new flower; the database assigns the id.
func (repo *flowerRepository) Create(ctx context.Context, flower *entity.Flower) error {
	flowerM := fromFlowerDomain(flower)

	if err := repo.db.WithContext(ctx).Create(flowerM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("count and cost must be non-negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required flower information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create flower")
	}

	flower.ID = flowerM.ID
	flower.CreatedAt = flowerM.CreatedAt
	flower.UpdatedAt = flowerM.UpdatedAt

	return nil
}

// Update applies the non-nil patch fields in a single UPDATE statement, so
// either every supplied field lands or none does, and returns the updated
// entity.
func (repo *flowerRepository) Update(ctx context.Context, id int64, patch *entity.FlowerPatch) (*entity.Flower, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.ErrNoFieldsProvided
	}

	changes := map[string]any{}
	if patch.Name != nil {
		changes["name"] = *patch.Name
	}
	if patch.Count != nil {
		changes["count"] = *patch.Count
	}
	if patch.Cost != nil {
		changes["cost"] = *patch.Cost
	}

	result := repo.db.WithContext(ctx).
		Model(&model.FlowerModel{}).
		Where("id = ?", id).
		Updates(changes)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("count and cost must be non-negative")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update flower")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrFlowerNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes the flower and returns the deleted entity.
func (repo *flowerRepository) Delete(ctx context.Context, id int64) (*entity.Flower, error) {
	flower, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := repo.db.WithContext(ctx).Delete(&model.FlowerModel{}, "id = ?", id).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete flower")
	}

	return flower, nil
}

// --- Mapper Functions ---

func toFlowerDomain(data *model.FlowerModel) *entity.Flower {
	if data == nil {
		return nil
	}

	return &entity.Flower{
		ID:        data.ID,
		Name:      data.Name,
		Count:     data.Count,
		Cost:      data.Cost,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromFlowerDomain(data *entity.Flower) *model.FlowerModel {
	if data == nil {
		return nil
	}

	return &model.FlowerModel{
		ID:    data.ID,
		Name:  data.Name,
		Count: data.Count,
		Cost:  data.Cost,
	}
}
