// Package config provides configuration management for the basket service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/basket-service/internal/domain/model"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DefaultCatalog is the product range used when CATALOG is unset.
const DefaultCatalog = "B01:Blue Widget:7.95,G01:Green Widget:24.95,R01:Red Widget:32.95"

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Pricing  PricingConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	CORSOrigins    []string
	RequestTimeout time.Duration
	// SwaggerUser and SwaggerPass put /swagger behind basic auth when both are set.
	SwaggerUser string
	SwaggerPass string
}

// PricingConfig holds the catalog, offer and delivery rules.
type PricingConfig struct {
	Catalog          []model.Item
	OffersEnabled    bool
	OfferProductCode string
	OfferFraction    decimal.Decimal
	Delivery         DeliveryConfig
}

// DeliveryConfig holds the tiered delivery thresholds and costs.
type DeliveryConfig struct {
	FreeThreshold   decimal.Decimal
	MediumThreshold decimal.Decimal
	HighCost        decimal.Decimal
	MediumCost      decimal.Decimal
	FreeCost        decimal.Decimal
}

// CacheConfig holds quote cache configuration.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// AuthConfig holds API key authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// DefaultPricingConfig returns the Acme Widget Co. pricing rules.
func DefaultPricingConfig() PricingConfig {
	catalog, _ := ParseCatalog(DefaultCatalog)
	return PricingConfig{
		Catalog:          catalog,
		OffersEnabled:    true,
		OfferProductCode: "R01",
		OfferFraction:    decimal.RequireFromString("0.5"),
		Delivery: DeliveryConfig{
			FreeThreshold:   decimal.RequireFromString("90.00"),
			MediumThreshold: decimal.RequireFromString("50.00"),
			HighCost:        decimal.RequireFromString("4.95"),
			MediumCost:      decimal.RequireFromString("2.95"),
			FreeCost:        decimal.Zero,
		},
	}
}

// Load creates a Config from environment variables. Unset variables take their
// defaults; invalid ones are logged and replaced by the default.
func Load() Config {
	pricing := DefaultPricingConfig()

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Pricing: PricingConfig{
			Catalog:          loadCatalog(pricing.Catalog),
			OffersEnabled:    getEnvBool("OFFERS_ENABLED", pricing.OffersEnabled),
			OfferProductCode: getEnv("OFFER_PRODUCT_CODE", pricing.OfferProductCode),
			OfferFraction:    getEnvDecimal("OFFER_FRACTION", pricing.OfferFraction),
			Delivery: DeliveryConfig{
				FreeThreshold:   getEnvDecimal("DELIVERY_FREE_THRESHOLD", pricing.Delivery.FreeThreshold),
				MediumThreshold: getEnvDecimal("DELIVERY_MEDIUM_THRESHOLD", pricing.Delivery.MediumThreshold),
				HighCost:        getEnvDecimal("DELIVERY_HIGH_COST", pricing.Delivery.HighCost),
				MediumCost:      getEnvDecimal("DELIVERY_MEDIUM_COST", pricing.Delivery.MediumCost),
				FreeCost:        getEnvDecimal("DELIVERY_FREE_COST", pricing.Delivery.FreeCost),
			},
		},
		Cache: CacheConfig{
			Size: getEnvInt("QUOTE_CACHE_SIZE", 1000),
			TTL:  getEnvDuration("QUOTE_CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys: parseAPIKeys(os.Getenv("API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "basket_service"),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

// loadCatalog parses CATALOG. A malformed value is reported at error level,
// naming the failing entry, before the default range is used instead.
func loadCatalog(defaults []model.Item) []model.Item {
	raw := os.Getenv("CATALOG")
	if strings.TrimSpace(raw) == "" {
		return defaults
	}

	catalog, err := ParseCatalog(raw)
	if err != nil {
		log.Error().Err(err).Str("env", "CATALOG").Str("value", raw).
			Msg("Invalid catalog configuration, using the default product range")
		return defaults
	}
	if len(catalog) == 0 {
		log.Error().Str("env", "CATALOG").Str("value", raw).
			Msg("Catalog configuration has no products, using the default product range")
		return defaults
	}
	return catalog
}

// ParseCatalog parses "CODE:Name:price" entries separated by commas.
func ParseCatalog(s string) ([]model.Item, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	entries := strings.Split(s, ",")
	items := make([]model.Item, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("catalog entry %q: want CODE:Name:price", entry)
		}
		code, name := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if code == "" {
			return nil, fmt.Errorf("catalog entry %q: empty code", entry)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", entry, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("catalog entry %q: negative price", entry)
		}
		items = append(items, model.NewItem(code, name, price))
	}
	return items, nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
		warnInvalid(key, v, err)
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
		warnInvalid(key, v, err)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
		warnInvalid(key, v, err)
	}
	return defaultValue
}

// getEnvDecimal rejects negative amounts along with unparsable ones.
func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err == nil && d.IsNegative() {
			err = fmt.Errorf("negative amount %s", d)
		}
		if err == nil {
			return d
		}
		warnInvalid(key, v, err)
	}
	return defaultValue
}

func warnInvalid(key, value string, err error) {
	log.Warn().Err(err).Str("env", key).Str("value", value).Msg("Invalid configuration value, using default")
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
