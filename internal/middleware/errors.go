package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/basket-service/internal/domain/dto"
	"github.com/guttosm/basket-service/internal/i18n"
)

// abortWithError writes a translated ErrorResponse and stops the chain.
func abortWithError(c *gin.Context, status int, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeFromStatus(status), message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(status, errorResp)
}
