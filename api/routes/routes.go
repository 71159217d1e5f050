package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rsjanwa/call-filter-backend/internal/config"
	"github.com/rsjanwa/call-filter-backend/internal/handlers"
	"github.com/rsjanwa/call-filter-backend/internal/middleware"
)

// HandlerDependencies bundles the handlers the router needs
type HandlerDependencies struct {
	LookupHandler      *handlers.LookupHandler
	RuleHandler        *handlers.RuleHandler
	ListHandler        *handlers.ListHandler
	LinkHandler        *handlers.LinkHandler
	MaintenanceHandler *handlers.MaintenanceHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	api := router.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Number checking
		api.POST("/check", deps.LookupHandler.CheckNumber)

		// Filter rules
		rules := api.Group("/rules")
		{
			rules.GET("", deps.RuleHandler.GetRules)
			rules.POST("", deps.RuleHandler.AddRule)
			rules.DELETE("/:id", deps.RuleHandler.RemoveRule)
		}

		// Phone lists
		lists := api.Group("/lists")
		{
			lists.GET("/:name", deps.ListHandler.GetList)
			lists.GET("/:name/export", deps.ListHandler.ExportList)
			lists.POST("/:name", deps.ListHandler.AddNumber)
			lists.DELETE("/:name/:number", deps.ListHandler.RemoveNumber)
		}

		// Lookup history
		lookups := api.Group("/lookups")
		{
			lookups.GET("", deps.LookupHandler.GetHistory)
			lookups.GET("/stats", deps.LookupHandler.GetStats)
			lookups.GET("/export", deps.LookupHandler.ExportHistory)
			lookups.DELETE("", deps.LookupHandler.ClearHistory)
		}

		// Aadhaar-mobile links
		links := api.Group("/links")
		{
			links.GET("", deps.LinkHandler.GetRecords)
			links.GET("/export", deps.LinkHandler.ExportRecords)
			links.POST("", deps.LinkHandler.AddRecord)
			links.POST("/reconcile", deps.LinkHandler.Reconcile)
			links.DELETE("/:aadhaar", deps.LinkHandler.DeleteRecord)
			links.DELETE("", deps.LinkHandler.ClearRecords)
		}

		// Disconnection audit log
		audit := api.Group("/audit")
		{
			audit.GET("", deps.LinkHandler.GetAudit)
			audit.GET("/export", deps.LinkHandler.ExportAudit)
			audit.DELETE("", deps.LinkHandler.ClearAudit)
		}

		// Maintenance
		api.POST("/reset", deps.MaintenanceHandler.ResetAll)
	}

	return router
}
