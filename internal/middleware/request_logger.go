package middleware

import (
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sarthak-bhojane/multi-tenant-project-management/internal/logger"
)

// RequestLoggerConfig holds configuration for the request logging middleware
type RequestLoggerConfig struct {
	// SkipPaths lists paths that are not logged (health probes)
	SkipPaths []string
}

// RequestLogger logs one structured line per request: method, path, status,
// latency, client IP, and the caller's role and tenant when a verified
// identity is attached. It must run after the Identity middleware to see the
// identity.
func RequestLogger(cfg *RequestLoggerConfig) gin.HandlerFunc {
	skip := make(map[string]bool)
	if cfg != nil {
		for _, p := range cfg.SkipPaths {
			skip[p] = true
		}
	}

	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", clientIP(c)),
		}
		if identity := IdentityFrom(c); identity != nil {
			fields = append(fields, zap.String("role", string(identity.Role)))
			if identity.OrganizationID != "" {
				fields = append(fields, zap.String("organization_id", identity.OrganizationID))
			}
		}

		log := logger.Get().WithContext(c.Request.Context())
		switch {
		case c.Writer.Status() >= 500:
			log.Error("request", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// clientIP resolves the originating client address, preferring proxy headers
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}
