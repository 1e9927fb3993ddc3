package postgres

import (
	"context"

	"checkout/internal/domain/entity"
	domainerrors "checkout/internal/domain/errors"
	"checkout/internal/domain/repository"
	"checkout/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindItemByID retrieves a catalog item by its unique ID.
func (repo *catalogRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*entity.CatalogItem, error) {
	var itemM model.CatalogItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatalogItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find catalog item by ID")
	}

	return toCatalogItemDomain(&itemM), nil
}

// DecrementStock subtracts the sold quantities from the stock mirror, flooring at zero.
func (repo *catalogRepository) DecrementStock(ctx context.Context, decrements []entity.StockDecrement) error {
	for _, decrement := range decrements {
		if decrement.Quantity <= 0 {
			continue
		}

		if err := repo.db.WithContext(ctx).
			Model(&model.CatalogItemModel{}).
			Where("id = ?", decrement.ItemID).
			UpdateColumn("stock", gorm.Expr("GREATEST(stock - ?, 0)", decrement.Quantity)).Error; err != nil {
			if isCheckConstraintViolation(err) {
				return domainerrors.ErrTransactionFailed.WrapMessage("stock check constraint violated")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to decrement stock")
		}
	}

	return nil
}

// ListStockLevels returns the mirrored stock of the given items.
func (repo *catalogRepository) ListStockLevels(ctx context.Context, ids []uuid.UUID) ([]entity.StockLevel, error) {
	if len(ids) == 0 {
		return []entity.StockLevel{}, nil
	}

	var itemModels []*model.CatalogItemModel

	if err := repo.db.WithContext(ctx).
		Select("id", "stock").
		Where("id IN ?", ids).
		Order("id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stock levels")
	}

	levels := make([]entity.StockLevel, 0, len(itemModels))
	for _, itemM := range itemModels {
		levels = append(levels, entity.StockLevel{
			ItemID: itemM.ID,
			Stock:  itemM.Stock,
		})
	}

	return levels, nil
}

func toCatalogItemDomain(data *model.CatalogItemModel) *entity.CatalogItem {
	if data == nil {
		return nil
	}

	return &entity.CatalogItem{
		ID:        data.ID,
		Name:      data.Name,
		Code:      data.Code,
		Category:  data.Category,
		Stock:     data.Stock,
		UnitPrice: data.UnitPrice,
	}
}
