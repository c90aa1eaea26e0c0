package middleware

import (
	"context"
	"strings"
	"time"

	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger persists an audit row for every handled request. Rows are
// written after the response so logging never delays or fails a request.
func RequestLogger(auditUC domain.RequestLogUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := &domain.RequestLog{
			Timestamp:   start,
			Method:      c.Request.Method,
			Path:        c.Request.URL.Path,
			QueryString: c.Request.URL.RawQuery,
			RemoteIP:    clientIP(c),
			UserAgent:   c.Request.UserAgent(),
		}
		if v, ok := c.Get(string(domain.KeyUserID)); ok {
			if id, ok := v.(int64); ok {
				entry.UserID = &id
			}
		}

		// The request context may already be canceled at this point.
		if err := auditUC.Record(context.Background(), entry); err != nil {
			logger.Log.Error("Failed to persist request log",
				"method", entry.Method, "path", entry.Path, "error", err)
		}
	}
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the
// connection peer.
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.ClientIP()
}
