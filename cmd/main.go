// Package main is the entry point for the golden-chopsticks-service application.
//
// @title           Golden Chopsticks Storefront API
// @version         1.0.0
// @description     API for the Golden Chopsticks online ordering storefront.
//
//	This service prices combination dinners, drives combo customization
//	sessions and manages shopping carts.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/Reidvanvliet/golden-chopsticks-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT bearer token. Required for catalog administration endpoints.
//
// @tag.name        Catalog
// @tag.description Combination menu and catalog administration
//
// @tag.name        Pricing
// @tag.description Combo price quoting
//
// @tag.name        Sessions
// @tag.description Combo customization sessions
//
// @tag.name        Carts
// @tag.description Shopping cart operations
//
// @tag.name        Auth
// @tag.description Admin authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/Reidvanvliet/golden-chopsticks-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/Reidvanvliet/golden-chopsticks-service/config"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	err := server.Run()
	cleanup()
	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
