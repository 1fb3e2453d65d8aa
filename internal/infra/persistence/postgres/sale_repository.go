package postgres

import (
	"context"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// saleRepository implements the domain.SaleRepository interface using GORM.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

// CreateSale persists a new sale row bound to a customer.
func (repo *saleRepository) CreateSale(ctx context.Context, sale *entity.Sale) error {
	saleM := &model.SaleModel{
		CustomerID: sale.CustomerID,
		OccurredAt: sale.OccurredAt,
	}

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSaleCreationFailed.WrapMessage("sale references unknown customer")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrSaleCreationFailed.WrapMessage("missing required sale information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	sale.ID = saleM.ID
	sale.CreatedAt = saleM.CreatedAt

	return nil
}

// CreateLineItem persists one line item of a sale. UnitPrice was captured by
// the caller at sale time and is stored as-is.
func (repo *saleRepository) CreateLineItem(ctx context.Context, item *entity.LineItem) error {
	itemM := &model.LineItemModel{
		SaleID:    item.SaleID,
		ProductID: item.ProductID,
		UnitPrice: item.UnitPrice,
		Quantity:  item.Quantity,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSaleCreationFailed.WrapMessage("line item references unknown sale or product")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("line item quantity must be positive")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrSaleCreationFailed.WrapMessage("missing required line item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create line item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// FindSaleByID retrieves a sale together with its line items.
func (repo *saleRepository) FindSaleByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleM model.SaleModel
	err := repo.db.WithContext(ctx).
		Preload("LineItems").
		Where("id = ?", id).
		First(&saleM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by id")
	}

	return toSaleDomain(&saleM), nil
}

// toSaleDomain converts a GORM SaleModel (with line items) to a domain Sale entity.
func toSaleDomain(data *model.SaleModel) *entity.Sale {
	if data == nil {
		return nil
	}

	items := make([]*entity.LineItem, 0, len(data.LineItems))
	for i := range data.LineItems {
		itemM := &data.LineItems[i]
		items = append(items, &entity.LineItem{
			ID:        itemM.ID,
			SaleID:    itemM.SaleID,
			ProductID: itemM.ProductID,
			UnitPrice: itemM.UnitPrice,
			Quantity:  itemM.Quantity,
			CreatedAt: itemM.CreatedAt,
		})
	}

	return &entity.Sale{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		OccurredAt: data.OccurredAt,
		LineItems:  items,
		CreatedAt:  data.CreatedAt,
	}
}
