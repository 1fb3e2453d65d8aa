package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"boutique/internal/delivery/http/response"
	"boutique/internal/domain/entity"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogueHandler holds dependencies for catalogue-related handlers.
type CatalogueHandler struct {
	uc     usecase.CatalogueUsecase
	logger *slog.Logger
}

// NewCatalogueHandler is the constructor for CatalogueHandler, injected by Fx.
func NewCatalogueHandler(uc usecase.CatalogueUsecase, logger *slog.Logger) *CatalogueHandler {
	return &CatalogueHandler{
		uc:     uc,
		logger: logger,
	}
}

type createProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
}

type productResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type bulkLoadResponse struct {
	Inserted int                `json:"inserted"`
	Products []*productResponse `json:"products"`
}

func toProductResponse(product *entity.Product) *productResponse {
	return &productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		CreatedAt:   product.CreatedAt,
	}
}

// pageParams reads skip/limit query parameters, tolerating absent or malformed
// values.
func pageParams(c echo.Context) (int, int) {
	offset, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return offset, limit
}

// ListCatalogue returns a page of the product catalogue.
func (h *CatalogueHandler) ListCatalogue(c echo.Context) error {
	offset, limit := pageParams(c)

	products, err := h.uc.ListProducts(c.Request().Context(), &usecase.ListProductsInput{
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*productResponse, 0, len(products))
	for _, product := range products {
		items = append(items, toProductResponse(product))
	}

	return response.Success(c, http.StatusOK, items, "Catalogue retrieved successfully")
}

// GetProduct returns a single product by id.
func (h *CatalogueHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product retrieved successfully")
}

// CreateProduct adds a product to the catalogue.
func (h *CatalogueHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product), "Product created successfully")
}

// LoadFixtures bulk-seeds the catalogue from the request body. Products are
// inserted one by one; a mid-sequence failure reports the count that made it in.
func (h *CatalogueHandler) LoadFixtures(c echo.Context) error {
	var reqs []createProductRequest
	if err := c.Bind(&reqs); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fixtures input")
	}
	if len(reqs) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Fixtures body must be a non-empty array")
	}

	specs := make([]usecase.CreateProductInput, 0, len(reqs))
	for _, req := range reqs {
		specs = append(specs, usecase.CreateProductInput{
			Name:        req.Name,
			Price:       req.Price,
			Description: req.Description,
		})
	}

	output, err := h.uc.BulkLoad(c.Request().Context(), specs)
	if err != nil {
		h.logger.Warn("Fixture load incomplete", slog.Int("inserted", output.Inserted), slog.Any("error", err))

		return errors.WithStack(err)
	}

	items := make([]*productResponse, 0, len(output.Products))
	for _, product := range output.Products {
		items = append(items, toProductResponse(product))
	}

	return response.Success(c, http.StatusCreated, bulkLoadResponse{
		Inserted: output.Inserted,
		Products: items,
	}, "Fixtures loaded successfully")
}
