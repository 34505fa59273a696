package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/basket-service/internal/circuitbreaker"
	"github.com/guttosm/basket-service/internal/domain/dto"
	"github.com/guttosm/basket-service/internal/i18n"
	"github.com/guttosm/basket-service/internal/logger"
	"github.com/guttosm/basket-service/internal/service"
)

// ErrorHandler renders the last error attached with c.Error as an ErrorResponse.
// Handlers report failures with c.Error and return without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		ginErr := c.Errors.Last()
		locale := i18n.GetLocale(c)
		status, errorResp := errorResponse(ginErr, locale)
		errorResp = errorResp.WithRequestID(GetRequestID(c))

		log := logger.WithRequestID(errorResp.RequestID)
		event := log.Warn()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Err(ginErr.Err).
			Int("status_code", status).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			c.JSON(status, errorResp)
		}
	}
}

func errorResponse(ginErr *gin.Error, locale string) (int, dto.ErrorResponse) {
	translator := i18n.GetTranslator()
	err := ginErr.Err

	var notFound *service.ProductNotFoundError
	var validationErr *dto.ValidationError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, dto.NewError(dto.ErrCodeProductNotFound,
			translator.Translatef(i18n.ErrKeyProductNotFound, locale, notFound.Code)).
			WithDetail("product_code", notFound.Code)
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, dto.NewError(dto.ErrCodeInvalidRequest,
			validationMessage(translator, validationErr, locale)).
			WithDetail("field", validationErr.Field)
	case ginErr.IsType(gin.ErrorTypeBind):
		return http.StatusBadRequest, dto.NewError(dto.ErrCodeInvalidRequest,
			translator.Translate(i18n.ErrKeyInvalidRequestBody, locale))
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, service.ErrCatalogUnavailable),
		errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, dto.NewError(dto.ErrCodeUnavailable,
			translator.Translate(i18n.ErrKeyCatalogUnavailable, locale))
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, dto.NewError(dto.ErrCodeTimeout,
			translator.Translate(i18n.ErrKeyTimeout, locale))
	default:
		return http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal,
			translator.Translate(i18n.ErrKeyInternalError, locale))
	}
}

// validationMessage renders "field: message" in locale, falling back to the
// English message for errors without a translation key.
func validationMessage(translator *i18n.Translator, err *dto.ValidationError, locale string) string {
	if err.Key == "" {
		return err.Error()
	}
	return err.Field + ": " + translator.Translatef(err.Key, locale, err.Args...)
}
