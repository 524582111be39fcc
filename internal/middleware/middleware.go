package middleware

import (
	"net/http"
	"time"

	"github.com/ahsan589/playspot/internal/helpers"
	"github.com/ahsan589/playspot/internal/models"
	"github.com/ahsan589/playspot/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ClaimsKey    = "user"
	RequestIDKey = "request_id"
)

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		logger.Info("HTTP Request",
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// ErrorHandler provides centralized error handling
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID := c.GetString(RequestIDKey)

			logger.Error("Request error",
				zap.String("request_id", requestID),
				zap.String("error", err.Error()),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)

			if !c.Writer.Written() {
				// Don't return error details in production
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":      "Internal server error",
					"request_id": requestID,
				})
			}
		}
	}
}

func AuthMiddleware(validator helpers.TokenValidator, authService *services.AuthService, logger *zap.Logger, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := helpers.BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie("access_token")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("access token not found"))
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			// Token validation failed, try to refresh
			refreshToken, refreshErr := c.Cookie("refresh_token")
			if refreshErr != nil || authService == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(err.Error()))
				return
			}

			tokenRes, refreshErr := authService.RefreshToken(c.Request.Context(), refreshToken)
			if refreshErr != nil || tokenRes == nil || tokenRes.AccessToken == "" {
				logger.Warn("Token refresh failed", zap.Error(refreshErr))
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("token expired and refresh failed"))
				return
			}

			logger.Info("Token refreshed successfully",
				zap.Any("user_id", tokenRes.User.ID),
				zap.Int("expires_in", tokenRes.ExpiresIn),
			)
			SetAuthCookies(c, tokenRes.AccessToken, tokenRes.RefreshToken, tokenRes.ExpiresIn, secureCookies)

			claims, err = validator.ValidateToken(tokenRes.AccessToken)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("refreshed token validation failed"))
				return
			}
		}

		c.Set(ClaimsKey, helpers.NewEnhancedClaims(claims))
		c.Next()
	}
}

// RequireRole rejects callers whose app role is not one of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		if !claims.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse("forbidden"))
			return
		}
		c.Next()
	}
}

func GetClaims(c *gin.Context) (*helpers.EnhancedClaims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*helpers.EnhancedClaims)
	return claims, ok && claims != nil
}

func SetAuthCookies(c *gin.Context, accessToken, refreshToken string, expiresIn int, secure bool) {
	c.SetCookie("access_token", accessToken, expiresIn, "/", "", secure, true)
	c.SetCookie("refresh_token", refreshToken, 3600*24*30, "/", "", secure, true)
}
