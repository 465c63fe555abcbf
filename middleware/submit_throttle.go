package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const throttleKeyPrefix = "throttle:submit:"

// SubmissionThrottle caps public form submissions per IP in a fixed window
// shared by every instance through Redis. A nil client disables it, and a
// Redis error lets the request through.
func SubmissionThrottle(client *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || limit <= 0 {
			c.Next()
			return
		}

		ip := getClientIP(c)
		key := fmt.Sprintf("%s%s:%s", throttleKeyPrefix, c.FullPath(), ip)
		ctx := c.Request.Context()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			zap.L().Warn("submission throttle unavailable", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			if err := client.Expire(ctx, key, window).Err(); err != nil {
				zap.L().Warn("failed to set throttle window", zap.Error(err))
			}
		}

		if count > int64(limit) {
			zap.L().Warn("Submission limit exceeded", zap.String("ip", ip), zap.String("route", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many submissions. Try again later."})
			return
		}
		c.Next()
	}
}
