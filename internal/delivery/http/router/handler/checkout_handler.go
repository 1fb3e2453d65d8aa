package handler

import (
	"log/slog"
	"net/http"
	"time"

	"boutique/internal/delivery/http/middleware"
	"boutique/internal/delivery/http/response"
	"boutique/internal/domain/entity"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for order-related handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

type orderLineRequest struct {
	ProductID uuid.UUID `json:"id" validate:"required"`
	Quantity  int       `json:"quantite" validate:"required,gt=0"`
}

type placeOrderRequest struct {
	Lines []orderLineRequest `json:"produits" validate:"required,min=1,dive"`
}

type lineItemResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
}

type saleResponse struct {
	ID         uuid.UUID           `json:"id"`
	OccurredAt time.Time           `json:"occurred_at"`
	LineItems  []*lineItemResponse `json:"line_items"`
}

func toSaleResponse(sale *entity.Sale) *saleResponse {
	items := make([]*lineItemResponse, 0, len(sale.LineItems))
	for _, item := range sale.LineItems {
		items = append(items, &lineItemResponse{
			ProductID: item.ProductID,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return &saleResponse{
		ID:         sale.ID,
		OccurredAt: sale.OccurredAt,
		LineItems:  items,
	}
}

// PlaceOrder records a sale for the authenticated customer. The customer
// identity comes from the bearer token only, never from the request body.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	email, ok := middleware.AuthenticatedEmail(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authenticated subject")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lines := make([]usecase.OrderLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, usecase.OrderLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	output, err := h.uc.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		CustomerEmail: email,
		Lines:         lines,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSaleResponse(output.Sale), "Order placed successfully")
}

// GetOrder returns a recorded sale by id.
func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid sale id")
	}

	sale, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSaleResponse(sale), "Order retrieved successfully")
}
