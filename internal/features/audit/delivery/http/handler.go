package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	auditservice "github.com/your-org/prizedraw-backend/internal/features/audit/service"
)

type AuditHandler struct {
	service auditservice.AuditService
}

func NewAuditHandler(service auditservice.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/audit-logs", h.list)
}

func (h *AuditHandler) list(c *gin.Context) {
	entries, err := h.service.ListRecent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}
