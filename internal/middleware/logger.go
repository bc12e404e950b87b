package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func LoggerMiddleware(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()

		fields := logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  statusCode,
			"latency": time.Since(start),
			"ip":      c.ClientIP(),
		}
		if query := c.Request.URL.RawQuery; query != "" {
			fields["query"] = query
		}

		entry := logger.WithFields(fields)
		if statusCode >= 400 {
			entry.Error("HTTP request completed with error")
		} else {
			entry.Info("HTTP request completed")
		}
	}
}
