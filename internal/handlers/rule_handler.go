package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rsjanwa/call-filter-backend/internal/services"
	"github.com/rsjanwa/call-filter-backend/internal/utils"
)

// RuleHandler handles filter rule HTTP requests
type RuleHandler struct {
	ruleService *services.RuleService
}

// NewRuleHandler creates a new RuleHandler
func NewRuleHandler(ruleService *services.RuleService) *RuleHandler {
	return &RuleHandler{
		ruleService: ruleService,
	}
}

// AddRuleRequest is the body of POST /rules. Criteria may arrive as JSON
// arrays or as comma-separated strings inside array elements; both come
// from the dashboard's free-text inputs.
type AddRuleRequest struct {
	Name       string   `json:"name" binding:"required"`
	Countries  []string `json:"countries"`
	Locations  []string `json:"locations"`
	TimeRanges []string `json:"timeRanges"`
}

// AddRule handles POST /rules
func (h *RuleHandler) AddRule(c *gin.Context) {
	var req AddRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.ruleService.AddRule(
		c.Request.Context(),
		strings.TrimSpace(req.Name),
		splitValues(req.Countries),
		splitValues(req.Locations),
		splitValues(req.TimeRanges),
	)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to add rule: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// GetRules handles GET /rules
func (h *RuleHandler) GetRules(c *gin.Context) {
	rules, err := h.ruleService.GetRules(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to get rules: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, rules)
}

// RemoveRule handles DELETE /rules/:id
func (h *RuleHandler) RemoveRule(c *gin.Context) {
	if err := h.ruleService.RemoveRule(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to remove rule: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rule removed"})
}

// splitValues flattens criteria values, splitting any comma-separated
// elements and dropping blanks.
func splitValues(values []string) []string {
	return utils.SplitAndTrim(strings.Join(values, ","))
}
