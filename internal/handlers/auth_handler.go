package handlers

import (
	"net/http"

	"github.com/ahsan589/playspot/internal/middleware"
	"github.com/ahsan589/playspot/internal/models"
	"github.com/ahsan589/playspot/internal/services"
	"github.com/gin-gonic/gin"
)

func Login(a *services.AuthService, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload: "+err.Error()))
			return
		}

		tokenRes, err := a.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid email or password"))
			return
		}
		if tokenRes == nil || tokenRes.AccessToken == "" {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid token response"))
			return
		}

		middleware.SetAuthCookies(c, tokenRes.AccessToken, tokenRes.RefreshToken, tokenRes.ExpiresIn, secureCookies)

		// Tokens stay in the cookies.
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"user": tokenRes.User}, "logged in"))
	}
}

func Logout(secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("access_token", "", -1, "/", "", secureCookies, true)
		c.SetCookie("refresh_token", "", -1, "/", "", secureCookies, true)

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Logged out successfully"))
	}
}
