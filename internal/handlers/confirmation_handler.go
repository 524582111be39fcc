package handlers

import (
	"errors"
	"net/http"

	"github.com/ahsan589/playspot/internal/middleware"
	"github.com/ahsan589/playspot/internal/models"
	"github.com/ahsan589/playspot/internal/services"
	"github.com/gin-gonic/gin"
)

// GetBookingConfirmation reads navigation params from the query string. Any
// param may be repeated; the first value wins.
func GetBookingConfirmation(cs *services.ConfirmationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := models.ConfirmationParams{
			GroundID: c.QueryArray("groundId"),
			Date:     c.QueryArray("date"),
			Time:     c.QueryArray("time"),
			Price:    c.QueryArray("price"),
			Address:  c.QueryArray("address"),
			Status:   c.QueryArray("status"),
		}
		writeConfirmation(c, cs, params)
	}
}

func PostBookingConfirmation(cs *services.ConfirmationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params models.ConfirmationParams
		if err := c.ShouldBindJSON(&params); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload: "+err.Error()))
			return
		}
		writeConfirmation(c, cs, params)
	}
}

func writeConfirmation(c *gin.Context, cs *services.ConfirmationService, params models.ConfirmationParams) {
	playerId := ""
	if claims, ok := middleware.GetClaims(c); ok {
		playerId = claims.UserID
	}

	conf, err := cs.GetConfirmation(c.Request.Context(), playerId, params)
	if err != nil {
		if errors.Is(err, services.ErrGroundRequired) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to load booking confirmation"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(conf, ""))
}
