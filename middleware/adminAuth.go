package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	AdminKeyHeader  = "X-Admin-Key"
	adminKeyContext = "adminKey"
)

// AdminKeyMiddleware lifts the caller-supplied admin key out of the
// X-Admin-Key header, a Bearer token, or the "key" query parameter. It does
// not authorize; the service compares the key against the configured secret.
func AdminKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(AdminKeyHeader)
		if key == "" {
			if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
				key = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if key == "" {
			key = c.Query("key")
		}
		c.Set(adminKeyContext, key)
		c.Next()
	}
}

// AdminKey returns the key captured by AdminKeyMiddleware.
func AdminKey(c *gin.Context) string {
	return c.GetString(adminKeyContext)
}
