package handler

import (
	"context"
	"net/http"
	"testing"

	deliverymiddleware "boutique/internal/delivery/http/middleware"
	"boutique/internal/domain/entity"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCheckoutUsecase records the last order placed.
type fakeCheckoutUsecase struct {
	output *usecase.PlaceOrderOutput
	err    error

	lastInput *usecase.PlaceOrderInput
}

func (f *fakeCheckoutUsecase) PlaceOrder(_ context.Context, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	f.lastInput = input

	return f.output, f.err
}

func (f *fakeCheckoutUsecase) GetOrder(_ context.Context, _ uuid.UUID) (*entity.Sale, error) {
	return nil, nil
}

func TestCheckoutHandler_PlaceOrder_IdentityComesFromToken(t *testing.T) {
	productID := uuid.New()
	sale := &entity.Sale{
		ID: uuid.New(),
		LineItems: []*entity.LineItem{
			{ProductID: productID, UnitPrice: 7.5, Quantity: 2},
		},
	}
	uc := &fakeCheckoutUsecase{output: &usecase.PlaceOrderOutput{Sale: sale}}
	handler := NewCheckoutHandler(uc, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodPost, "/vente",
		`{"produits":[{"id":"`+productID.String()+`","quantite":2}]}`)
	c.Set(deliverymiddleware.ContextKeyUserEmail, "alice@example.com")

	require.NoError(t, handler.PlaceOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.lastInput)
	assert.Equal(t, "alice@example.com", uc.lastInput.CustomerEmail)
	require.Len(t, uc.lastInput.Lines, 1)
	assert.Equal(t, productID, uc.lastInput.Lines[0].ProductID)
	assert.Equal(t, 2, uc.lastInput.Lines[0].Quantity)
	assert.Contains(t, rec.Body.String(), sale.ID.String())
}

func TestCheckoutHandler_PlaceOrder_NoAuthenticatedSubject(t *testing.T) {
	uc := &fakeCheckoutUsecase{}
	handler := NewCheckoutHandler(uc, discardLogger())

	c, rec := newHandlerTestContext(t, http.MethodPost, "/vente",
		`{"produits":[{"id":"`+uuid.NewString()+`","quantite":1}]}`)

	require.NoError(t, handler.PlaceOrder(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.lastInput)
}

func TestCheckoutHandler_PlaceOrder_EmptyOrderRejected(t *testing.T) {
	uc := &fakeCheckoutUsecase{}
	handler := NewCheckoutHandler(uc, discardLogger())

	c, _ := newHandlerTestContext(t, http.MethodPost, "/vente", `{"produits":[]}`)
	c.Set(deliverymiddleware.ContextKeyUserEmail, "alice@example.com")

	err := handler.PlaceOrder(c)

	require.Error(t, err)
	assert.Nil(t, uc.lastInput)
}
