// Package i18n translates user-facing API messages.
package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Supports reports whether locale has its own message set.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Translate returns the translated message for the given key and locale.
// Unknown locales and missing keys fall back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Translatef translates key and formats the result with args.
func (t *Translator) Translatef(key, locale string, args ...any) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// GetLocale extracts the locale from the first Accept-Language entry.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// e.g. "pt-BR,pt;q=0.9,en;q=0.8"
	lang := strings.TrimSpace(strings.Split(strings.Split(acceptLang, ",")[0], ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)

	if GetTranslator().Supports(lang) {
		return lang
	}
	return DefaultLocale
}

func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:           "Invalid request",
			ErrKeyInvalidRequestBody:       "Invalid request body",
			ErrKeyInternalError:            "An unexpected error occurred",
			ErrKeyUnauthorized:             "Unauthorized",
			ErrKeyAPIKeyRequired:           "API key is required",
			ErrKeyInvalidAPIKey:            "Invalid API key",
			ErrKeyNotFound:                 "Not found",
			ErrKeyProductNotFound:          "product with code '%s' not found in catalog",
			ErrKeyRateLimitExceeded:        "Too many requests, please try again later",
			ErrKeyValidationEmptyBasket:    "must contain at least one product code",
			ErrKeyValidationBasketTooLarge: "must contain at most %d product codes",
			ErrKeyValidationBlankCode:      "must not be blank",
			ErrKeyCatalogUnavailable:       "Product catalog is unavailable",
			ErrKeyTimeout:                  "Request timed out",

			SuccessKeyBasketQuoted:    "Basket priced successfully",
			SuccessKeyCatalogReloaded: "Catalog reloaded",
		},
		"pt": {
			ErrKeyInvalidRequest:           "Requisição inválida",
			ErrKeyInvalidRequestBody:       "Corpo da requisição inválido",
			ErrKeyInternalError:            "Ocorreu um erro inesperado",
			ErrKeyUnauthorized:             "Não autorizado",
			ErrKeyAPIKeyRequired:           "Chave de API é obrigatória",
			ErrKeyInvalidAPIKey:            "Chave de API inválida",
			ErrKeyNotFound:                 "Não encontrado",
			ErrKeyProductNotFound:          "produto com código '%s' não encontrado no catálogo",
			ErrKeyRateLimitExceeded:        "Muitas requisições, tente novamente mais tarde",
			ErrKeyValidationEmptyBasket:    "deve conter pelo menos um código de produto",
			ErrKeyValidationBasketTooLarge: "deve conter no máximo %d códigos de produto",
			ErrKeyValidationBlankCode:      "não pode estar em branco",
			ErrKeyCatalogUnavailable:       "Catálogo de produtos indisponível",
			ErrKeyTimeout:                  "Tempo limite da requisição excedido",

			SuccessKeyBasketQuoted:    "Cesta calculada com sucesso",
			SuccessKeyCatalogReloaded: "Catálogo recarregado",
		},
		"nl": {
			ErrKeyInvalidRequest:           "Ongeldig verzoek",
			ErrKeyInvalidRequestBody:       "Ongeldige aanvraag body",
			ErrKeyInternalError:            "Er is een onverwachte fout opgetreden",
			ErrKeyUnauthorized:             "Niet geautoriseerd",
			ErrKeyAPIKeyRequired:           "API-sleutel is vereist",
			ErrKeyInvalidAPIKey:            "Ongeldige API-sleutel",
			ErrKeyNotFound:                 "Niet gevonden",
			ErrKeyProductNotFound:          "product met code '%s' niet gevonden in catalogus",
			ErrKeyRateLimitExceeded:        "Te veel verzoeken, probeer het later opnieuw",
			ErrKeyValidationEmptyBasket:    "moet minstens één productcode bevatten",
			ErrKeyValidationBasketTooLarge: "mag maximaal %d productcodes bevatten",
			ErrKeyValidationBlankCode:      "mag niet leeg zijn",
			ErrKeyCatalogUnavailable:       "Productcatalogus is niet beschikbaar",
			ErrKeyTimeout:                  "Verzoek is verlopen",

			SuccessKeyBasketQuoted:    "Winkelmand succesvol berekend",
			SuccessKeyCatalogReloaded: "Catalogus opnieuw geladen",
		},
	}
}
