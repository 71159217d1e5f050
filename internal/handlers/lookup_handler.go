package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rsjanwa/call-filter-backend/internal/services"
	"github.com/rsjanwa/call-filter-backend/internal/utils"
)

// LookupHandler handles number check and lookup history HTTP requests
type LookupHandler struct {
	lookupService *services.LookupService
}

// NewLookupHandler creates a new LookupHandler
func NewLookupHandler(lookupService *services.LookupService) *LookupHandler {
	return &LookupHandler{
		lookupService: lookupService,
	}
}

// CheckNumberRequest is the body of POST /check
type CheckNumberRequest struct {
	Number string `json:"number" binding:"required"`
}

// CheckNumber handles POST /check
func (h *LookupHandler) CheckNumber(c *gin.Context) {
	var req CheckNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.lookupService.CheckNumber(c.Request.Context(), req.Number)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHistory handles GET /lookups
func (h *LookupHandler) GetHistory(c *gin.Context) {
	records, err := h.lookupService.History(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to get lookup history: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetStats handles GET /lookups/stats
func (h *LookupHandler) GetStats(c *gin.Context) {
	stats, err := h.lookupService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to get lookup stats: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ExportHistory handles GET /lookups/export
func (h *LookupHandler) ExportHistory(c *gin.Context) {
	records, err := h.lookupService.History(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to get lookup history: " + err.Error()})
		return
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Number,
			record.Timestamp.Format(time.RFC3339),
			strconv.FormatBool(record.Response.Valid),
			record.Response.CountryCode,
			record.Response.Location,
			record.Response.Carrier,
			record.Response.LineType,
			strconv.FormatBool(record.Response.SpamStatus),
		})
	}

	writeCSV(c, "api_lookup_history.csv",
		[]string{"number", "timestamp", "valid", "country", "location", "carrier", "line_type", "spam"}, rows)
}

// ClearHistory handles DELETE /lookups
func (h *LookupHandler) ClearHistory(c *gin.Context) {
	if err := h.lookupService.ClearHistory(c.Request.Context()); err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to clear lookup history: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lookup history cleared"})
}

// writeCSV renders a tabular report as a CSV attachment.
func writeCSV(c *gin.Context, filename string, header []string, rows [][]string) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if err := utils.WriteCSV(c.Writer, header, rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV: " + err.Error()})
	}
}
