// Package main is the entry point for the basket-service application.
//
// @title           Basket Service API
// @version         1.0.0
// @description     Prices Acme Widget Co. baskets: catalog lookup, offers and tiered delivery.
//
//	Amounts are decimal strings with two places.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/basket-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Baskets
// @tag.description Basket pricing
//
// @tag.name        Catalog
// @tag.description Product catalog operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/basket-service/docs" // swagger docs

	"github.com/guttosm/basket-service/config"
	"github.com/guttosm/basket-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port)
	server.OnShutdown(application.Close)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
