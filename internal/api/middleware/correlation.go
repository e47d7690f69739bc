package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ytgate/ytgate/internal/utils"
)

// CorrelationIDMiddleware tags every request with correlation and request
// IDs, threads them through the request context for logging, and logs the
// request/response pair.
func CorrelationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader("X-Correlation-ID")
		if correlationID == "" {
			correlationID = utils.GenerateCorrelationID()
		}
		requestID := utils.GenerateRequestID()

		c.Set("correlation_id", correlationID)
		c.Set("request_id", requestID)

		c.Header("X-Correlation-ID", correlationID)
		c.Header("X-Request-ID", requestID)

		ctx := c.Request.Context()
		ctx = utils.WithCorrelationID(ctx, correlationID)
		ctx = utils.WithRequestID(ctx, requestID)
		c.Request = c.Request.WithContext(ctx)

		utils.LogInfo(ctx, "Incoming request", utils.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		})

		c.Next()

		utils.LogInfo(ctx, "Request completed", utils.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})
	}
}
