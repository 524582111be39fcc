package handlers

import (
	"net/http"

	"github.com/ahsan589/playspot/internal/middleware"
	"github.com/ahsan589/playspot/internal/models"
	"github.com/ahsan589/playspot/internal/services"
	"github.com/gin-gonic/gin"
)

// DrainNotifications returns and clears the caller's pending toasts.
func DrainNotifications(n services.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok || claims.UserID == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		toasts, err := n.Drain(c.Request.Context(), claims.UserID)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to read notifications"))
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(toasts, len(toasts)))
	}
}
