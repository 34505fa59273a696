package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyProductNotFound takes the unknown product code as its argument.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyValidationEmptyBasket indicates a missing or empty product_codes list.
	ErrKeyValidationEmptyBasket = "error.validation.empty_basket"
	// ErrKeyValidationBasketTooLarge takes the item limit as its argument.
	ErrKeyValidationBasketTooLarge = "error.validation.basket_too_large"
	// ErrKeyValidationBlankCode indicates a blank entry in product_codes.
	ErrKeyValidationBlankCode = "error.validation.blank_code"
	// ErrKeyCatalogUnavailable indicates the product store could not be read.
	ErrKeyCatalogUnavailable = "error.catalog_unavailable"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyBasketQuoted indicates a basket was priced.
	SuccessKeyBasketQuoted = "success.basket_quoted"
	// SuccessKeyCatalogReloaded indicates the catalog was reloaded.
	SuccessKeyCatalogReloaded = "success.catalog_reloaded"
)
