package main

import (
	"log"
	"os"
	"time"

	"PaiDeFerro/config"
	"PaiDeFerro/controllers"
	"PaiDeFerro/repositories"
	"PaiDeFerro/repositories/impl"
	"PaiDeFerro/repositories/memory"
	"PaiDeFerro/routes"
	"PaiDeFerro/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Initialize repositories: Postgres when configured, in-memory otherwise
	var policyRepo repositories.PolicyRepository
	var pairingRepo repositories.PairingRepository
	var parentRepo repositories.ParentRepository
	if config.DatabaseConfigured() {
		config.InitDatabase()
		policyRepo = impl.NewPolicyRepository(config.DB)
		pairingRepo = impl.NewPairingRepository(config.DB)
		parentRepo = impl.NewParentRepository(config.DB)
	} else {
		log.Println("DB_HOST not set, running with in-memory stores")
		policyRepo = memory.NewPolicyStore()
		pairingRepo = memory.NewPairingStore()
		parentRepo = memory.NewParentStore()
	}

	// Initialize services
	policyService, err := services.NewPolicyService(policyRepo)
	if err != nil {
		log.Fatal("Failed to load policy configuration:", err)
	}
	filterService := services.NewFilterService(policyService)
	pairingService := services.NewPairingService(pairingRepo, time.Now)
	authService := services.NewAuthService(parentRepo)

	// Set services in controllers
	controllers.SetPolicyService(policyService)
	controllers.SetFilterService(filterService)
	controllers.SetPairingService(pairingService)
	controllers.SetAuthService(authService)

	// Initialize Gin router
	r := gin.Default()

	// Register routes
	routes.RegisterRoutes(r)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	r.Run(":" + port)
}
