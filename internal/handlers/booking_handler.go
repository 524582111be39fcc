package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ahsan589/playspot/internal/helpers"
	"github.com/ahsan589/playspot/internal/middleware"
	"github.com/ahsan589/playspot/internal/models"
	"github.com/ahsan589/playspot/internal/services"
	"github.com/gin-gonic/gin"
)

// ownerController returns the caller's booking session, mounting it on first
// use. A failed mount refresh still yields a controller holding empty state.
func ownerController(c *gin.Context, s *services.SessionRegistry) (*services.BookingController, bool, error) {
	claims, ok := middleware.GetClaims(c)
	if !ok || claims.UserID == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, false, nil
	}
	ctrl, created, err := s.Open(c.Request.Context(), claims.UserID)
	if ctrl == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to open booking session"))
		return nil, false, nil
	}
	return ctrl, created, err
}

func bookingErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound), errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "booking not found"
	case errors.Is(err, services.ErrNotApproved):
		return http.StatusForbidden, "owner account is not approved"
	case errors.Is(err, services.ErrReasonRequired):
		return http.StatusBadRequest, "please provide a reason for rejection"
	case errors.Is(err, services.ErrInvalidStatus):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrActionNotOffered), errors.Is(err, services.ErrInvalidViewTransition):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusBadGateway, "failed to update booking"
	}
}

func parseFilter(raw string) (models.BookingStatus, error) {
	raw = strings.ToLower(helpers.StringTrim(raw))
	if raw == "" || raw == "all" {
		return "", nil
	}
	return models.ParseBookingStatus(raw)
}

func ListOwnerBookings(s *services.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, err := parseFilter(c.Query("status"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		ctrl, created, err := ownerController(c, s)
		if ctrl == nil {
			return
		}
		if err == nil && !created && c.Query("refresh") == "true" {
			err = ctrl.Refresh(c.Request.Context())
		}

		snap := ctrl.Snapshot(filter)
		if err != nil {
			c.JSON(http.StatusBadGateway, models.ApiResponse{
				Success: false,
				Error:   "failed to load bookings",
				Data:    snap,
			})
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(snap, len(snap.Bookings)))
	}
}

func RefreshOwnerBookings(s *services.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl, created, err := ownerController(c, s)
		if ctrl == nil {
			return
		}
		if err == nil && !created {
			err = ctrl.Refresh(c.Request.Context())
		}

		snap := ctrl.Snapshot("")
		if err != nil {
			c.JSON(http.StatusBadGateway, models.ApiResponse{
				Success: false,
				Error:   "failed to load bookings",
				Data:    snap,
			})
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(snap, len(snap.Bookings)))
	}
}

func GetOwnerBooking(s *services.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl, _, _ := ownerController(c, s)
		if ctrl == nil {
			return
		}
		booking, ok := ctrl.Booking(helpers.StringTrim(c.Param("id")))
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse("booking not found"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, ""))
	}
}

func SelectOwnerBooking(s *services.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl, _, _ := ownerController(c, s)
		if ctrl == nil {
			return
		}
		if err := ctrl.Select(helpers.StringTrim(c.Param("id"))); err != nil {
			code, msg := bookingErrorStatus(err)
			c.JSON(code, models.ErrorResponse(msg))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(ctrl.Snapshot(""), ""))
	}
}

func BackToList(s *services.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl, _, _ := ownerController(c, s)
		if ctrl == nil {
			return
		}
		ctrl.Back()
		c.JSON(http.StatusOK, models.SuccessResponse(ctrl.Snapshot(""), ""))
	}
}

func SetDraftReason(s *services.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Reason string `json:"reason" binding:"max=500"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		ctrl, _, _ := ownerController(c, s)
		if ctrl == nil {
			return
		}
		if err := ctrl.SetDraftReason(req.Reason); err != nil {
			code, msg := bookingErrorStatus(err)
			c.JSON(code, models.ErrorResponse(msg))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(ctrl.Snapshot(""), ""))
	}
}

// RunBookingAction performs confirm or reject the way the owner screen offers them.
func RunBookingAction(s *services.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Action string `json:"action" binding:"required,oneof=confirm reject"`
			Reason string `json:"reason" binding:"max=500"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		ctrl, _, _ := ownerController(c, s)
		if ctrl == nil {
			return
		}
		id := helpers.StringTrim(c.Param("id"))
		if err := ctrl.RunAction(c.Request.Context(), id, models.BookingAction(req.Action), req.Reason); err != nil {
			code, msg := bookingErrorStatus(err)
			c.JSON(code, models.ErrorResponse(msg))
			return
		}

		booking, _ := ctrl.Booking(id)
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "booking updated"))
	}
}

// UpdateBookingStatus writes any owner-settable status directly.
func UpdateBookingStatus(s *services.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status" binding:"required,oneof=confirmed delayed rejected cancelled"`
			Reason string `json:"reason" binding:"max=500"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		ctrl, _, _ := ownerController(c, s)
		if ctrl == nil {
			return
		}

		status := models.BookingStatus(req.Status)
		reason := strings.TrimSpace(req.Reason)
		if status == models.BookingRejected {
			var err error
			if reason, err = ctrl.RequireReason(c.Request.Context(), reason); err != nil {
				code, msg := bookingErrorStatus(err)
				c.JSON(code, models.ErrorResponse(msg))
				return
			}
		}

		id := helpers.StringTrim(c.Param("id"))
		if err := ctrl.ApplyStatus(c.Request.Context(), id, status, reason); err != nil {
			code, msg := bookingErrorStatus(err)
			c.JSON(code, models.ErrorResponse(msg))
			return
		}

		booking, _ := ctrl.Booking(id)
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "booking updated"))
	}
}

func CloseOwnerSession(s *services.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok || claims.UserID == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		s.Close(claims.UserID)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "session closed"))
	}
}
