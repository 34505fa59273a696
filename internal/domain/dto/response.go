package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/basket-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeProductNotFound indicates a basket referenced an unknown product.
	ErrCodeProductNotFound = "product_not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeUnavailable indicates a dependency is unavailable.
	ErrCodeUnavailable = "service_unavailable"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewSuccess wraps data in a SuccessResponse stamped with the current time.
func NewSuccess(data interface{}, requestID string) SuccessResponse {
	return SuccessResponse{
		Data:      data,
		RequestID: requestID,
		Timestamp: time.Now(),
	}
}

// ErrorResponse represents a standardized error response for the API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	// Details carries machine-readable context such as the offending product_code.
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetail adds a single detail entry to the error response.
func (e ErrorResponse) WithDetail(key, value string) ErrorResponse {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// ProductResponse is a catalog product with its price fixed to two decimals.
type ProductResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// NewProductResponse converts a catalog item for the API.
func NewProductResponse(item model.Item) ProductResponse {
	return ProductResponse{
		Code:  item.Code,
		Name:  item.Name,
		Price: item.Price.StringFixed(2),
	}
}

// NewProductsResponse converts a list of catalog items for the API.
func NewProductsResponse(items []model.Item) []ProductResponse {
	products := make([]ProductResponse, len(items))
	for i, item := range items {
		products[i] = NewProductResponse(item)
	}
	return products
}

// DiscountResponse is one applied offer.
type DiscountResponse struct {
	Offer  string `json:"offer"`
	Amount string `json:"amount"`
}

// QuoteResponse is the API view of a basket quote. Amounts are strings with
// exactly two decimals so clients never parse money as floating point.
type QuoteResponse struct {
	Items              []ProductResponse  `json:"items"`
	ItemCount          int                `json:"item_count"`
	Subtotal           string             `json:"subtotal"`
	Discounts          []DiscountResponse `json:"discounts"`
	Discount           string             `json:"discount"`
	DiscountedSubtotal string             `json:"discounted_subtotal"`
	DeliveryMethod     string             `json:"delivery_method"`
	Delivery           string             `json:"delivery"`
	Total              string             `json:"total"`
}

// NewQuoteResponse converts a quote for the API.
func NewQuoteResponse(q model.Quote) QuoteResponse {
	discounts := make([]DiscountResponse, len(q.Discounts))
	for i, d := range q.Discounts {
		discounts[i] = DiscountResponse{Offer: d.Offer, Amount: d.Amount.StringFixed(2)}
	}
	return QuoteResponse{
		Items:              NewProductsResponse(q.Items),
		ItemCount:          q.ItemCount(),
		Subtotal:           q.Subtotal.StringFixed(2),
		Discounts:          discounts,
		Discount:           q.Discount.StringFixed(2),
		DiscountedSubtotal: q.DiscountedSubtotal.StringFixed(2),
		DeliveryMethod:     q.DeliveryMethod,
		Delivery:           q.Delivery.StringFixed(2),
		Total:              q.Total.StringFixed(2),
	}
}

// CatalogReloadResponse reports the outcome of a catalog reload.
type CatalogReloadResponse struct {
	Products int    `json:"products"`
	Message  string `json:"message"`
}
