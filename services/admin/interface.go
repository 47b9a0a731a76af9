package admin

import (
	bookingRepo "servease/database/repository/booking"
	serviceRepo "servease/database/repository/service"
	userRepo "servease/database/repository/user"
	"servease/models"
)

// AdminService exposes elevated management operations.
type AdminService interface {
	// GetDashboard assembles the dashboard statistics, recent bookings and
	// most-booked services.
	GetDashboard() (*models.Dashboard, error)
	// ListBookings returns bookings filtered by status ("" or "all" means
	// all) and an optional search term matched against username, service
	// name and booking display id.
	ListBookings(status, search string) ([]models.PopulatedBooking, error)
	// GetBookingDetails returns one booking with its user and service.
	GetBookingDetails(id string) (*models.PopulatedBooking, error)
	// UpdateBookingStatus transitions a booking within the closed status set.
	UpdateBookingStatus(id, status string) (*models.Booking, error)
	// PendingCount counts Pending bookings.
	PendingCount() (int64, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Users    userRepo.UserRepository
	Services serviceRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository
}
