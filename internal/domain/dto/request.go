// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"
	"strings"

	"github.com/guttosm/basket-service/internal/i18n"
)

// MaxBasketItems bounds the number of product codes accepted in one quote request.
const MaxBasketItems = 1000

// QuoteBasketRequest represents the JSON request body for the basket quote endpoint.
//
// Codes are priced in the order given; repeating a code adds another unit.
type QuoteBasketRequest struct {
	// ProductCodes lists the products placed in the basket.
	ProductCodes []string `json:"product_codes"`
}

// ValidationError represents a field validation error. Message is the English
// text; Key and Args let the error handler render it in the client's locale.
type ValidationError struct {
	Field   string
	Message string
	Key     string
	Args    []any
}

var (
	// ErrEmptyBasket is returned when product_codes is missing or empty.
	ErrEmptyBasket = &ValidationError{
		Field:   "product_codes",
		Message: "must contain at least one product code",
		Key:     i18n.ErrKeyValidationEmptyBasket,
	}
	// ErrBasketTooLarge is returned when product_codes exceeds MaxBasketItems.
	ErrBasketTooLarge = &ValidationError{
		Field:   "product_codes",
		Message: fmt.Sprintf("must contain at most %d product codes", MaxBasketItems),
		Key:     i18n.ErrKeyValidationBasketTooLarge,
		Args:    []any{MaxBasketItems},
	}
)

// Validate checks the request and trims whitespace around each code.
func (r *QuoteBasketRequest) Validate() error {
	if len(r.ProductCodes) == 0 {
		return ErrEmptyBasket
	}
	if len(r.ProductCodes) > MaxBasketItems {
		return ErrBasketTooLarge
	}
	for i, code := range r.ProductCodes {
		code = strings.TrimSpace(code)
		if code == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("product_codes[%d]", i),
				Message: "must not be blank",
				Key:     i18n.ErrKeyValidationBlankCode,
			}
		}
		r.ProductCodes[i] = code
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
