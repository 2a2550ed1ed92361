package transport

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs every request once and records it in metrics.
// Failed requests are logged at warn level with the handler error.
func RequestLogger(logger *zap.Logger, metrics HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			logger.Warn("request failed", append(fields, zap.String("error", errs.String()))...)
		} else {
			logger.Debug("request served", fields...)
		}

		metrics.Observe(route, c.Request.Method, status, start)
	}
}
