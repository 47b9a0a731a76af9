package handlers

import (
	"net/http"

	"servease/services/admin"
	"servease/services/user"
	"servease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	AdminSvc admin.AdminService
	UserSvc  user.UserService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as admin.AdminService, us user.UserService) *AdminHandler {
	return &AdminHandler{AdminSvc: as, UserSvc: us}
}

// DashboardHandler handles GET /api/admin/dashboard.
func (ah *AdminHandler) DashboardHandler(c *gin.Context) {
	dashboard, err := ah.AdminSvc.GetDashboard()
	if err != nil {
		utils.GetLogger().Error("Failed to build admin dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// ListBookingsHandler handles GET /api/admin/bookings?status=&search=.
func (ah *AdminHandler) ListBookingsHandler(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	search := c.Query("search")

	bookings, err := ah.AdminSvc.ListBookings(status, search)
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings":      bookings,
		"currentStatus": status,
		"searchTerm":    search,
	})
}

// GetBookingDetailsHandler handles GET /api/admin/bookings/:id.
func (ah *AdminHandler) GetBookingDetailsHandler(c *gin.Context) {
	booking, err := ah.AdminSvc.GetBookingDetails(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

// UpdateBookingStatusHandler handles PATCH /api/admin/bookings/:id/status.
func (ah *AdminHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	booking, err := ah.AdminSvc.UpdateBookingStatus(c.Param("id"), req.Status)
	if err != nil {
		utils.GetLogger().Error("Status update failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking marked as " + booking.Status,
		"booking": gin.H{
			"id":        booking.ID,
			"bookingId": booking.BookingID,
			"status":    booking.Status,
		},
	})
}

// PendingCountHandler handles GET /api/admin/bookings/pending-count.
func (ah *AdminHandler) PendingCountHandler(c *gin.Context) {
	count, err := ah.AdminSvc.PendingCount()
	if err != nil {
		utils.GetLogger().Error("Failed to count pending bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "count": 0})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// GetAllUsersHandler handles GET /api/admin/users.
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.UserSvc.GetAllUsers()
	if err != nil {
		utils.GetLogger().Error("Failed to fetch all users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}
