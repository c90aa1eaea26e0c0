package v1

import (
	"net/http"
	"strconv"

	"go-cv-backend/internal/delivery/http/response"
	"go-cv-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditUC domain.RequestLogUsecase
}

func NewAuditHandler(protected *gin.RouterGroup, auditUC domain.RequestLogUsecase) {
	handler := &AuditHandler{auditUC: auditUC}

	audit := protected.Group("/audit")
	{
		audit.GET("/logs", handler.Recent)
	}
}

func (h *AuditHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	logs, err := h.auditUC.Recent(c, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recent request logs", logs)
}
