package handlers

import (
	"errors"
	"net/http"

	"servease/models"
	"servease/services/booking"
	"servease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the user-facing booking endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	UserSvc    userLoader
}

// userLoader is the slice of the user service the booking handler needs.
type userLoader interface {
	GetUserByID(userID string) (*models.User, error)
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs booking.BookingService, ul userLoader) *BookingHandler {
	return &BookingHandler{BookingSvc: bs, UserSvc: ul}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	usr, err := h.UserSvc.GetUserByID(currentUserID(c))
	if err != nil {
		logger.Error("failed to load booking user", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication error"})
		return
	}

	created, err := h.BookingSvc.CreateBooking(usr, input)
	if err != nil {
		var invalid booking.InvalidInputError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Reason})
			return
		}
		logger.Error("failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListMyBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingSvc.GetUserBookings(currentUserID(c))
	if err != nil {
		utils.GetLogger().Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.BookingSvc.GetBooking(c.Param("id"), currentUserID(c), isAdmin(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	b, err := h.BookingSvc.CancelBooking(c.Param("id"), currentUserID(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled", "booking": b})
}

// RateBookingHandler handles POST /api/bookings/:id/rating.
func (h *BookingHandler) RateBookingHandler(c *gin.Context) {
	var req struct {
		Rating int    `json:"rating" binding:"required"`
		Review string `json:"review"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	if err := h.BookingSvc.RateBooking(c.Param("id"), currentUserID(c), req.Rating, req.Review); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thanks for your feedback"})
}

func respondBookingError(c *gin.Context, err error) {
	var invalid booking.InvalidInputError
	var transition booking.InvalidTransitionError

	switch {
	case errors.Is(err, booking.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, booking.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Reason})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking operation failed"})
	}
}
