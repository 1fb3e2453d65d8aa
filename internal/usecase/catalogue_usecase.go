package usecase

import (
	"context"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// ListProductsInput carries pagination parameters for browsing the catalogue.
type ListProductsInput struct {
	Offset int
	Limit  int
}

// CreateProductInput defines the data required to add a product to the catalogue.
type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
}

// BulkLoadOutput reports how many fixture products were actually inserted.
type BulkLoadOutput struct {
	Inserted int
	Products []*entity.Product
}

// CatalogueUsecase defines the interface for catalogue browsing and management.
type CatalogueUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	// BulkLoad seeds fixture products. Each product is inserted independently:
	// a failure stops the sequence but leaves prior inserts committed. The
	// output reports the inserted count alongside any error.
	BulkLoad(ctx context.Context, specs []CreateProductInput) (*BulkLoadOutput, error)
}
