package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rsjanwa/call-filter-backend/internal/services"
)

// MaintenanceHandler handles the destructive maintenance HTTP requests
type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler
func NewMaintenanceHandler(maintenanceService *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// ResetAll handles POST /reset
func (h *MaintenanceHandler) ResetAll(c *gin.Context) {
	if err := h.maintenanceService.ResetAll(c.Request.Context()); err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to reset: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Filter rules, phone lists and lookup history cleared"})
}
