//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/guttosm/basket-service/config"
	"github.com/stretchr/testify/assert"
)

func TestInitializeDatabase(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{
			name: "disabled database",
			cfg:  config.DatabaseConfig{Enabled: false, URI: "mongodb://localhost:27017"},
		},
		{
			name: "invalid URI continues without database",
			cfg: config.DatabaseConfig{
				Enabled:                        true,
				URI:                            "not-a-mongodb-uri",
				DatabaseName:                   "basket_service",
				CircuitBreakerFailureThreshold: 5,
				CircuitBreakerSuccessThreshold: 2,
				CircuitBreakerTimeout:          30 * time.Second,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, InitializeDatabase(tt.cfg))
		})
	}
}
