package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rsjanwa/call-filter-backend/internal/services"
	"github.com/rsjanwa/call-filter-backend/internal/utils"
)

// LinkHandler handles Aadhaar-mobile link HTTP requests
type LinkHandler struct {
	linkService *services.LinkService
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(linkService *services.LinkService) *LinkHandler {
	return &LinkHandler{
		linkService: linkService,
	}
}

// AddRecordRequest is the body of POST /links. Mobiles may arrive as a
// JSON array or with comma-separated elements.
type AddRecordRequest struct {
	Aadhaar string   `json:"aadhaar" binding:"required"`
	Mobiles []string `json:"mobiles" binding:"required"`
}

// ReconcileRequest is the body of POST /links/reconcile.
type ReconcileRequest struct {
	ActiveNumbers []string `json:"activeNumbers"`
}

// AddRecord handles POST /links
func (h *LinkHandler) AddRecord(c *gin.Context) {
	var req AddRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.linkService.AddRecord(c.Request.Context(), req.Aadhaar, splitValues(req.Mobiles))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to add record: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, link)
}

// GetRecords handles GET /links
func (h *LinkHandler) GetRecords(c *gin.Context) {
	rows, err := h.linkService.GetRecords(c.Request.Context(), strings.TrimSpace(c.Query("search")))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to get records: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ExportRecords handles GET /links/export
func (h *LinkHandler) ExportRecords(c *gin.Context) {
	rows, err := h.linkService.GetRecords(c.Request.Context(), "")
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to get records: " + err.Error()})
		return
	}

	csvRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		csvRows = append(csvRows, []string{row.Aadhaar, row.Mobile})
	}

	writeCSV(c, "aadhaar_mobile_links.csv", []string{"aadhaar_number", "mobile_number"}, csvRows)
}

// DeleteRecord handles DELETE /links/:aadhaar
func (h *LinkHandler) DeleteRecord(c *gin.Context) {
	deleted, err := h.linkService.DeleteByAadhaar(c.Request.Context(), c.Param("aadhaar"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to delete record: " + err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "No record found for that Aadhaar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted"})
}

// ClearRecords handles DELETE /links
func (h *LinkHandler) ClearRecords(c *gin.Context) {
	if err := h.linkService.ClearAll(c.Request.Context()); err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to clear records: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All records cleared"})
}

// Reconcile handles POST /links/reconcile. Entries that are not digit-only
// are dropped here; the engine treats any number missing from the snapshot
// as reassigned, so malformed entries must never reach it.
func (h *LinkHandler) Reconcile(c *gin.Context) {
	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := []string{}
	for _, number := range splitValues(req.ActiveNumbers) {
		if utils.IsDigits(number) {
			active = append(active, number)
		}
	}

	report, unlinked, err := h.linkService.Reconcile(c.Request.Context(), active, time.Now())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to reconcile: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report, "unlinked": unlinked})
}

// GetAudit handles GET /audit
func (h *LinkHandler) GetAudit(c *gin.Context) {
	records, err := h.linkService.AuditLog(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to get audit log: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// ExportAudit handles GET /audit/export
func (h *LinkHandler) ExportAudit(c *gin.Context) {
	records, err := h.linkService.AuditLog(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to get audit log: " + err.Error()})
		return
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Aadhaar,
			record.Mobile,
			record.Status,
			record.DisconnectedAt.Format("2006-01-02 15:04:05"),
		})
	}

	writeCSV(c, "aadhaar_audit_log.csv",
		[]string{"aadhaar_number", "mobile_number", "status", "disconnected_at"}, rows)
}

// ClearAudit handles DELETE /audit
func (h *LinkHandler) ClearAudit(c *gin.Context) {
	if err := h.linkService.ClearAudit(c.Request.Context()); err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to clear audit log: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Audit log cleared"})
}
