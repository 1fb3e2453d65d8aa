package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	mockRepo "boutique/internal/mocks/repository"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	saleRepo  *mockRepo.MockSaleRepository
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	saleRepo := mockRepo.NewMockSaleRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCheckoutService(CheckoutServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		SaleRepo:  saleRepo,
		Logger:    logger,
	})

	return checkoutServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		saleRepo:  saleRepo,
	}
}

func TestCheckoutService_PlaceOrder_CapturesCurrentPrices(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	customer := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	coffee := &entity.Product{ID: uuid.New(), Name: "Café moulu", Price: 7.5}
	tea := &entity.Product{ID: uuid.New(), Name: "Thé vert", Price: 4.25}

	fx.userRepo.EXPECT().FindByEmail(ctx, customer.Email).Return(customer, nil)

	saleID := uuid.New()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockSaleRepo.EXPECT().
				CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).
				Run(func(ctx context.Context, sale *entity.Sale) {
					sale.ID = saleID
				}).
				Return(nil)

			mockProductRepo.EXPECT().FindByID(ctx, coffee.ID).Return(coffee, nil)
			mockProductRepo.EXPECT().FindByID(ctx, tea.ID).Return(tea, nil)

			mockSaleRepo.EXPECT().
				CreateLineItem(ctx, mock.AnythingOfType("*entity.LineItem")).
				Return(nil).
				Twice()

			return fn(mockFactory)
		})

	before := time.Now()
	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		CustomerEmail: customer.Email,
		Lines: []usecase.OrderLineInput{
			{ProductID: coffee.ID, Quantity: 2},
			{ProductID: tea.ID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	sale := output.Sale
	assert.Equal(t, saleID, sale.ID)
	assert.Equal(t, customer.ID, sale.CustomerID)
	assert.False(t, sale.OccurredAt.Before(before))

	require.Len(t, sale.LineItems, 2)
	assert.Equal(t, coffee.ID, sale.LineItems[0].ProductID)
	assert.InDelta(t, 7.5, sale.LineItems[0].UnitPrice, 1e-9)
	assert.Equal(t, 2, sale.LineItems[0].Quantity)
	assert.Equal(t, saleID, sale.LineItems[0].SaleID)
	assert.Equal(t, tea.ID, sale.LineItems[1].ProductID)
	assert.InDelta(t, 4.25, sale.LineItems[1].UnitPrice, 1e-9)
}

func TestCheckoutService_PlaceOrder_UnknownProductAbortsWholeOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	customer := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	known := &entity.Product{ID: uuid.New(), Price: 3}
	missing := uuid.New()

	fx.userRepo.EXPECT().FindByEmail(ctx, customer.Email).Return(customer, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSaleRepo := mockRepo.NewMockSaleRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().SaleRepo().Return(mockSaleRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockSaleRepo.EXPECT().
				CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).
				Return(nil)
			mockSaleRepo.EXPECT().
				CreateLineItem(ctx, mock.AnythingOfType("*entity.LineItem")).
				Return(nil).
				Once()

			mockProductRepo.EXPECT().FindByID(ctx, known.ID).Return(known, nil)
			mockProductRepo.EXPECT().
				FindByID(ctx, missing).
				Return(nil, repository.ErrProductNotFound)

			// The error from fn propagates so the transaction manager rolls
			// everything back, the first line item included.
			err := fn(mockFactory)
			require.Error(t, err)

			return err
		})

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		CustomerEmail: customer.Email,
		Lines: []usecase.OrderLineInput{
			{ProductID: known.ID, Quantity: 1},
			{ProductID: missing, Quantity: 1},
		},
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCheckoutService_PlaceOrder_UnknownCustomer(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		CustomerEmail: "ghost@example.com",
		Lines:         []usecase.OrderLineInput{{ProductID: uuid.New(), Quantity: 1}},
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCheckoutService_PlaceOrder_InvalidInput(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	_, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		CustomerEmail: "alice@example.com",
		Lines:         nil,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		CustomerEmail: "alice@example.com",
		Lines:         []usecase.OrderLineInput{{ProductID: uuid.New(), Quantity: 0}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestCheckoutService_GetOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	sale := &entity.Sale{ID: uuid.New(), CustomerID: uuid.New()}
	fx.saleRepo.EXPECT().FindSaleByID(ctx, sale.ID).Return(sale, nil)

	found, err := fx.service.GetOrder(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale, found)

	missing := uuid.New()
	fx.saleRepo.EXPECT().FindSaleByID(ctx, missing).Return(nil, repository.ErrSaleNotFound)

	_, err = fx.service.GetOrder(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrSaleNotFound)
}
