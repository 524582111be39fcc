package routes

import (
	"net/http"

	"github.com/ahsan589/playspot/internal/container"
	"github.com/ahsan589/playspot/internal/handlers"
	"github.com/ahsan589/playspot/internal/helpers"
	"github.com/ahsan589/playspot/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container, validator helpers.TokenValidator) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	secure := container.Config.IsProduction()

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "OK",
				"service": "playspot-api",
			})
		})

		v1.POST("/login", handlers.Login(container.AuthService, secure))
		v1.POST("/logout", handlers.Logout(secure))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(validator, container.AuthService, container.Logger, secure))

	protected.GET("/notifications", handlers.DrainNotifications(container.Notifier))

	owner := protected.Group("/owner")
	owner.Use(middleware.RequireRole(helpers.RoleOwner, helpers.RoleAdmin))
	{
		owner.GET("/bookings", handlers.ListOwnerBookings(container.Sessions))
		owner.POST("/bookings/refresh", handlers.RefreshOwnerBookings(container.Sessions))
		owner.GET("/bookings/:id", handlers.GetOwnerBooking(container.Sessions))
		owner.POST("/bookings/:id/select", handlers.SelectOwnerBooking(container.Sessions))
		owner.POST("/bookings/:id/actions", handlers.RunBookingAction(container.Sessions))
		owner.PATCH("/bookings/:id/status", handlers.UpdateBookingStatus(container.Sessions))
		owner.POST("/view/back", handlers.BackToList(container.Sessions))
		owner.PUT("/view/reason", handlers.SetDraftReason(container.Sessions))
		owner.DELETE("/session", handlers.CloseOwnerSession(container.Sessions))
	}

	player := protected.Group("/player")
	{
		player.GET("/bookings/confirmation", handlers.GetBookingConfirmation(container.ConfirmationService))
		player.POST("/bookings/confirmation", handlers.PostBookingConfirmation(container.ConfirmationService))
	}

	return r
}
