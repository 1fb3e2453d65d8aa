package impl

import (
	"context"
	"log/slog"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogueService implements the CatalogueUsecase interface.
type catalogueService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogueServiceParams holds dependencies for catalogueService, injected by Fx.
type CatalogueServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogueService is the constructor for catalogueService.
func NewCatalogueService(params CatalogueServiceParams) usecase.CatalogueUsecase {
	return &catalogueService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogueService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts retrieves a stable page of the catalogue.
func (srv *catalogueService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	offset, limit := normalizePage(input.Offset, input.Limit)

	products, err := srv.productRepo.List(ctx, offset, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct retrieves a single product by its identifier.
func (srv *catalogueService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product not found")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}

// CreateProduct adds a single product to the catalogue.
func (srv *catalogueService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("product price must be non-negative")
	}

	product := &entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// BulkLoad seeds fixture products one by one. A failure stops the sequence but
// already inserted products stay committed, and the output reflects the count
// that made it in before the error.
func (srv *catalogueService) BulkLoad(ctx context.Context, specs []usecase.CreateProductInput) (*usecase.BulkLoadOutput, error) {
	srv.log(ctx).Info("Bulk loading products", slog.Int("count", len(specs)))

	output := &usecase.BulkLoadOutput{
		Products: make([]*entity.Product, 0, len(specs)),
	}

	for i := range specs {
		spec := &specs[i]

		product, err := srv.CreateProduct(ctx, spec)
		if err != nil {
			srv.log(ctx).Warn("Bulk load stopped",
				slog.Int("inserted", output.Inserted),
				slog.Int("failedIndex", i),
				slog.Any("error", err),
			)

			return output, errors.Wrapf(err, "bulk load stopped at element %d", i)
		}

		output.Inserted++
		output.Products = append(output.Products, product)
	}

	srv.log(ctx).Debug("Bulk load completed", slog.Int("inserted", output.Inserted))

	return output, nil
}
