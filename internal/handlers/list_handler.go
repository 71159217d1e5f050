package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rsjanwa/call-filter-backend/internal/services"
)

// ListHandler handles phone list HTTP requests
type ListHandler struct {
	listService *services.ListService
}

// NewListHandler creates a new ListHandler
func NewListHandler(listService *services.ListService) *ListHandler {
	return &ListHandler{
		listService: listService,
	}
}

// AddNumberRequest is the body of POST /lists/:name
type AddNumberRequest struct {
	Number string `json:"number" binding:"required"`
}

// GetList handles GET /lists/:name
func (h *ListHandler) GetList(c *gin.Context) {
	numbers, err := h.listService.GetNumbers(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to get list: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"listName": c.Param("name"), "numbers": numbers})
}

// AddNumber handles POST /lists/:name
func (h *ListHandler) AddNumber(c *gin.Context) {
	var req AddNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.listService.AddNumber(c.Request.Context(), c.Param("name"), req.Number); err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to add number: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Number added to " + c.Param("name")})
}

// RemoveNumber handles DELETE /lists/:name/:number
func (h *ListHandler) RemoveNumber(c *gin.Context) {
	if err := h.listService.RemoveNumber(c.Request.Context(), c.Param("name"), c.Param("number")); err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to remove number: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Number removed from " + c.Param("name")})
}

// ExportList handles GET /lists/:name/export
func (h *ListHandler) ExportList(c *gin.Context) {
	name := c.Param("name")
	numbers, err := h.listService.GetNumbers(c.Request.Context(), name)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to get list: " + err.Error()})
		return
	}

	rows := make([][]string, 0, len(numbers))
	for _, number := range numbers {
		rows = append(rows, []string{number})
	}

	writeCSV(c, name+"_numbers.csv", []string{"phone_number"}, rows)
}
