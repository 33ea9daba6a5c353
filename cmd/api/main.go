package main

import (
	"log"

	_ "buildbid/docs"
	"buildbid/internal/adapter/http/routes"
	"buildbid/internal/config"
	"buildbid/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           BuildBid Quote Service API
// @version         1.0
// @description     Builder quotes for homeowner scopes of work, backed by DynamoDB and Mercado Pago.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	if err := routes.Run(cfg, appLog); err != nil {
		appLog.Fatal("Failed to startup the application", "err", err)
	}
}
