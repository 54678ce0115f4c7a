package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/clipgrab/internal/utils"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"
	RequestIDHeader     = "X-Request-ID"
	ClientIDHeader      = "X-Client-ID"
)

// CorrelationIDMiddleware tags every request with a correlation ID (taken from
// the caller when present), a fresh request ID and the optional client ID,
// and writes one access log line per request.
func CorrelationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		correlationID := c.GetHeader(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = utils.GenerateCorrelationID()
		}
		requestID := utils.GenerateRequestID()
		clientID := c.GetHeader(ClientIDHeader)

		c.Set("correlation_id", correlationID)
		c.Set("request_id", requestID)
		c.Header(CorrelationIDHeader, correlationID)
		c.Header(RequestIDHeader, requestID)

		ctx := utils.WithRequestID(utils.WithCorrelationID(c.Request.Context(), correlationID), requestID)
		if clientID != "" {
			c.Set("client_id", clientID)
			ctx = utils.WithClientID(ctx, clientID)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := utils.Fields{
			"method":      c.Request.Method,
			"path":        path,
			"status":      c.Writer.Status(),
			"ip":          c.ClientIP(),
			"duration_ms": time.Since(started).Milliseconds(),
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			utils.LogWarn(ctx, "Request failed", fields)
		case status >= 400:
			utils.LogInfo(ctx, "Request rejected", fields)
		default:
			utils.LogInfo(ctx, "Request completed", fields)
		}
	}
}
