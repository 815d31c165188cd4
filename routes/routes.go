package routes

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"yanails-backend/config"
	"yanails-backend/controllers"
	"yanails-backend/utils"
)

type RouterConfig struct {
	AllowedOrigins  []string
	JWTSecret       string
	LoginRatePerSec float64
	LoginBurst      int
}

// SetupRouter builds the engine. Background work it starts, the login
// rate limiter's sweeper, stops when ctx is done.
func SetupRouter(ctx context.Context, rc RouterConfig, ctl *controllers.Controller, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     rc.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(logger))

	limiter := utils.NewRateLimiter(ctx, rc.LoginRatePerSec, rc.LoginBurst)

	auth := r.Group("/auth")
	{
		auth.POST("/login", utils.RateLimit(limiter), ctl.Login)

		auth.Use(utils.AuthMiddleware(rc.JWTSecret))
		auth.GET("/me", ctl.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(rc.JWTSecret))
	{
		services := api.Group("/services")
		{
			services.GET("", ctl.GetServices)
			services.GET("/:id", ctl.GetService)
		}

		api.GET("/slots", ctl.GetSlots)

		// the booking sheet
		draft := api.Group("/draft")
		{
			draft.POST("", ctl.OpenDraft)
			draft.GET("", ctl.GetDraft)
			draft.PUT("", ctl.UpdateDraft)
			draft.DELETE("", ctl.CloseDraft)
			draft.POST("/confirm", ctl.ConfirmDraft)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", ctl.GetBookings)
			bookings.DELETE("/:id", ctl.CancelBooking)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", ctl.GetNotifications)
			notifications.GET("/ws", ctl.NotificationStream)
		}
	}

	return r
}
