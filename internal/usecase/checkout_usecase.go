package usecase

import (
	"context"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderLineInput is one requested product line of an order.
type OrderLineInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// PlaceOrderInput defines the data required to place an order. CustomerEmail
// comes from the validated bearer token, never from the request body.
type PlaceOrderInput struct {
	CustomerEmail string
	Lines         []OrderLineInput
}

// PlaceOrderOutput returns the recorded sale with its captured line prices.
type PlaceOrderOutput struct {
	Sale *entity.Sale
}

// CheckoutUsecase defines the interface for order placement.
type CheckoutUsecase interface {
	// PlaceOrder records a sale atomically. If any referenced product does not
	// exist, the whole order is aborted and nothing is persisted.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*PlaceOrderOutput, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
}
