package routes

import (
	"canteen/handlers"
	"canteen/middleware"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Options carries the transport settings routes need.
type Options struct {
	AllowedOrigins []string
	Redis          *redis.Client
	SubmitLimit    int
}

// RegisterFormRoutes registers the contact form endpoint.
func RegisterFormRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	r.POST("/submit", middleware.SubmissionThrottle(opts.Redis, opts.SubmitLimit, time.Hour), hb.SubmitFormHandler)
}

// RegisterFeedbackRoutes registers the public meal-feedback endpoints.
func RegisterFeedbackRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	api := r.Group("/feedback")
	{
		api.POST("", middleware.SubmissionThrottle(opts.Redis, opts.SubmitLimit, time.Hour), hb.SubmitFeedbackHandler)
		api.GET("", hb.ListFeedbackHandler)
		api.GET("/average", hb.AverageRatingHandler)
		api.GET("/average/meals", hb.MealBreakdownHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.DELETE("/feedback", middleware.AdminKeyMiddleware(), hb.AdminHandler.DeleteFeedbackHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.HealthHandler != nil {
		r.GET("/health", hb.HealthHandler)
		return
	}
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	origins := opts.AllowedOrigins
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", middleware.AdminKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	// Credentials cannot be combined with a wildcard origin.
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	RegisterFormRoutes(r, hb, opts)
	RegisterFeedbackRoutes(r, hb, opts)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
