// Package cache defines the quote cache contract used by the pricing service.
package cache

import "github.com/guttosm/basket-service/internal/domain/model"

// Cache stores computed quotes keyed by basket signature.
type Cache interface {
	Get(key string) (model.Quote, bool)
	Set(key string, value model.Quote)
	Clear()
	// Stop releases background resources held by the cache.
	Stop()
}
