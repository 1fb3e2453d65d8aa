package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSaleNotFound is a domain-specific error returned when a sale is not found.
var ErrSaleNotFound = errors.New("sale not found")

// SaleRepository defines the operations for sale and line-item persistence.
// Line items are created only as part of sale creation and never mutated.
type SaleRepository interface {
	// CreateSale persists a new sale row bound to a customer.
	CreateSale(ctx context.Context, sale *entity.Sale) error

	// CreateLineItem persists one line item of a sale, with the unit price
	// captured at sale time.
	CreateLineItem(ctx context.Context, item *entity.LineItem) error

	// FindSaleByID retrieves a sale together with its line items.
	FindSaleByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
}
