package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	saleRepo  repository.SaleRepository
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	SaleRepo  repository.SaleRepository
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		saleRepo:  params.SaleRepo,
		logger:    params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder records a sale with one line item per requested product, capturing
// each product's current price at the point of sale.
//
// The whole order runs in a single transaction: if any referenced product does
// not exist, or any write fails, nothing is persisted.
func (srv *checkoutService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	srv.log(ctx).Info("Placing order", slog.String("email", input.CustomerEmail), slog.Int("lines", len(input.Lines)))

	if len(input.Lines) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order must contain at least one line")
	}
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("line quantity must be positive")
		}
	}

	customer, err := srv.userRepo.FindByEmail(ctx, input.CustomerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("order customer not found")
		}

		return nil, errors.Wrap(err, "failed to find order customer")
	}

	sale := &entity.Sale{
		CustomerID: customer.ID,
		// Authoritative point-of-sale timestamp, never client-supplied.
		OccurredAt: time.Now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		saleRepo := repoFactory.SaleRepo()
		productRepo := repoFactory.ProductRepo()

		if err := saleRepo.CreateSale(ctx, sale); err != nil {
			return errors.Wrap(err, "failed to create sale")
		}

		for _, line := range input.Lines {
			product, err := productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.
						WithDetails("product " + line.ProductID.String()).
						WrapMessage("order references unknown product")
				}

				return errors.Wrap(err, "failed to find order product")
			}

			item := &entity.LineItem{
				SaleID:    sale.ID,
				ProductID: product.ID,
				UnitPrice: product.Price,
				Quantity:  line.Quantity,
			}

			if err := saleRepo.CreateLineItem(ctx, item); err != nil {
				return errors.Wrap(err, "failed to create line item")
			}

			sale.LineItems = append(sale.LineItems, item)
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute order transaction", slog.String("email", input.CustomerEmail), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order transaction")
	}

	srv.log(ctx).Debug("Order placed", slog.Any("saleID", sale.ID), slog.Int("lines", len(sale.LineItems)))

	return &usecase.PlaceOrderOutput{Sale: sale}, nil
}

// GetOrder retrieves a recorded sale with its line items.
func (srv *checkoutService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := srv.saleRepo.FindSaleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, domainerrors.ErrSaleNotFound.WrapMessage("sale not found")
		}

		return nil, errors.Wrap(err, "failed to find sale by id")
	}

	return sale, nil
}
