package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rsjanwa/call-filter-backend/api/routes"
	"github.com/rsjanwa/call-filter-backend/internal/config"
	"github.com/rsjanwa/call-filter-backend/internal/handlers"
	"github.com/rsjanwa/call-filter-backend/internal/repositories"
	mongorepo "github.com/rsjanwa/call-filter-backend/internal/repositories/mongodb"
	"github.com/rsjanwa/call-filter-backend/internal/services"
	"github.com/rsjanwa/call-filter-backend/pkg/mongodb"
	"github.com/rsjanwa/call-filter-backend/pkg/numlookup"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to MongoDB
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Initialize repositories
	var ruleRepo repositories.RuleRepository = mongorepo.NewRuleRepository(db)
	var listRepo repositories.PhoneListRepository = mongorepo.NewPhoneListRepository(db)
	var lookupRepo repositories.LookupRepository = mongorepo.NewLookupRepository(db)
	var linkRepo repositories.AadhaarLinkRepository = mongorepo.NewAadhaarLinkRepository(db)
	var unlinkRepo repositories.UnlinkHistoryRepository = mongorepo.NewUnlinkHistoryRepository(db)

	// Initialize the NumLookup gateway
	gateway := numlookup.NewClient(
		cfg.NumLookup.BaseURL,
		cfg.NumLookup.APIKey,
		time.Duration(cfg.NumLookup.TimeoutSeconds)*time.Second,
		cfg.NumLookup.MockAPI,
	)

	// Initialize services
	filterService := services.NewFilterService(ruleRepo)
	lookupService := services.NewLookupService(gateway, listRepo, lookupRepo, filterService)
	ruleService := services.NewRuleService(ruleRepo)
	listService := services.NewListService(listRepo)
	linkService := services.NewLinkService(linkRepo, unlinkRepo)
	maintenanceService := services.NewMaintenanceService(ruleRepo, listRepo, lookupRepo)

	// Initialize handlers
	handlerDeps := routes.HandlerDependencies{
		LookupHandler:      handlers.NewLookupHandler(lookupService),
		RuleHandler:        handlers.NewRuleHandler(ruleService),
		ListHandler:        handlers.NewListHandler(listService),
		LinkHandler:        handlers.NewLinkHandler(linkService),
		MaintenanceHandler: handlers.NewMaintenanceHandler(maintenanceService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	// Run server in a goroutine so that it doesn't block
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
