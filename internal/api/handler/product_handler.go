package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vinylshop/record-store/internal/api/metrics"
	"github.com/vinylshop/record-store/internal/core/domain"
	"github.com/vinylshop/record-store/internal/core/ports"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	products ports.ProductService
	log      zerolog.Logger
}

func NewProductHandler(products ports.ProductService, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{products: products, log: log}
}

// Create adds an album to the catalog. Admin only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Album details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context, current *domain.User) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		metrics.ProductsCreatedTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.products.CreateProduct(c.Request().Context(), toCreateProductInput(req))
	if err != nil {
		metrics.ProductsCreatedTotal.WithLabelValues(createProductResult(err)).Inc()
		return err
	}

	metrics.ProductsCreatedTotal.WithLabelValues("created").Inc()
	h.log.Info().
		Str("product_id", product.ID).
		Str("album", product.AlbumName).
		Str("created_by", current.ID).
		Msg("product created")
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// List returns a page of the catalog.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 20, max 100)"
// @Param        genre   query     string  false  "Exact genre filter"
// @Param        artist  query     string  false  "Case-insensitive artist substring"
// @Success      200     {object}  listProductsResponse
// @Failure      400     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	var q listProductsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	result, err := h.products.ListProducts(c.Request().Context(), ports.ListProductsInput{
		Genre:  q.Genre,
		Artist: q.Artist,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListProductsResponse(result))
}

// Get returns a single product.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.products.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

func createProductResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrProductExists):
		return "duplicate"
	default:
		return "error"
	}
}
