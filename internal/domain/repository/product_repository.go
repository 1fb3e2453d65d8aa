package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalogue persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products paginated by offset/limit. Ordering is stable
	// (creation order) so that consecutive pages are disjoint and consistent.
	List(ctx context.Context, offset, limit int) ([]*entity.Product, error)

	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error
}
