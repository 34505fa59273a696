package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/basket-service/internal/domain/dto"
	"github.com/guttosm/basket-service/internal/i18n"
	"github.com/guttosm/basket-service/internal/service"
)

// CatalogReloader refreshes the pricing catalog from the product store.
type CatalogReloader interface {
	Configured() bool
	Reload(ctx context.Context, pricer service.BasketPricer) (int, error)
}

// Handler provides HTTP handlers for the basket and catalog routes.
type Handler struct {
	pricer   service.BasketPricer
	reloader CatalogReloader
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCatalogReloader enables POST /api/catalog/reload.
func WithCatalogReloader(reloader CatalogReloader) HandlerOption {
	return func(h *Handler) {
		h.reloader = reloader
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(pricer service.BasketPricer, opts ...HandlerOption) *Handler {
	h := &Handler{pricer: pricer}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// QuoteBasket handles POST /api/baskets/quote.
//
// The body lists product codes in basket order. The response carries the
// subtotal, applied offers, delivery charge and total. Any unknown code
// rejects the whole basket with 404 and details.product_code.
//
// @Summary      Quote a basket
// @Description  Prices the listed product codes in order, applying the configured offers and the delivery charge for the discounted subtotal. Amounts are strings with two decimals.
// @Tags         Baskets
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteBasketRequest true "Product codes in basket order"
// @Param        Accept-Language header string false "Locale for error messages (en, pt, nl)"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse} "Priced basket"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "Unknown product code"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Security     ApiKeyAuth
// @Router       /api/baskets/quote [post]
func (h *Handler) QuoteBasket(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.QuoteBasketRequest](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	quote, err := h.pricer.Quote(req.ProductCodes)
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(dto.NewQuoteResponse(quote))
}

// ListProducts handles GET /api/products.
//
// @Summary      List products
// @Description  Returns the catalog sorted by product code.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.ProductResponse} "Catalog products"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Security     ApiKeyAuth
// @Router       /api/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewProductsResponse(h.pricer.Products()))
}

// GetProduct handles GET /api/products/:code.
//
// @Summary      Get a product
// @Tags         Catalog
// @Produce      json
// @Param        code path string true "Product code" example(R01)
// @Success      200 {object} dto.SuccessResponse{data=dto.ProductResponse} "Catalog product"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "Unknown product code"
// @Security     ApiKeyAuth
// @Router       /api/products/{code} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	item, err := h.pricer.Product(c.Param("code"))
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(dto.NewProductResponse(item))
}

// ReloadCatalog handles POST /api/catalog/reload. The current catalog stays
// in place when the product store cannot be read.
//
// @Summary      Reload the catalog
// @Description  Reads every product from MongoDB, swaps the pricing catalog and drops cached quotes. Registered only when a product store is configured.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CatalogReloadResponse} "Catalog reloaded"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Product store unavailable"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Security     ApiKeyAuth
// @Router       /api/catalog/reload [post]
func (h *Handler) ReloadCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.reloader == nil {
		builder.Fail(service.ErrRepositoryNotConfigured)
		return
	}

	n, err := h.reloader.Reload(c.Request.Context(), h.pricer)
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(dto.CatalogReloadResponse{
		Products: n,
		Message:  i18n.GetTranslator().Translate(i18n.SuccessKeyCatalogReloaded, i18n.GetLocale(c)),
	})
}

// CanReload reports whether a product store backs the catalog.
func (h *Handler) CanReload() bool {
	return h.reloader != nil && h.reloader.Configured()
}
