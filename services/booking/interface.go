package booking

import (
	bookingRepo "servease/database/repository/booking"
	serviceRepo "servease/database/repository/service"
	"servease/models"
)

// CreateBookingInput carries the fields of the client booking form.
type CreateBookingInput struct {
	ServiceID           string         `json:"serviceId" binding:"required"`
	ScheduledDate       string         `json:"scheduledDate" binding:"required"` // "YYYY-MM-DD"
	ScheduledTime       string         `json:"scheduledTime" binding:"required"` // "HH:mm"
	Address             models.Address `json:"address"`
	SpecialInstructions string         `json:"specialInstructions"`
	PaymentMethod       string         `json:"paymentMethod"`
}

// BookingService manages user-facing booking operations.
type BookingService interface {
	// CreateBooking validates the form input and persists a Pending booking.
	CreateBooking(user *models.User, input CreateBookingInput) (*models.Booking, error)
	// GetUserBookings returns the user's bookings, newest first.
	GetUserBookings(userID string) ([]models.Booking, error)
	// GetBooking returns one booking, restricted to its owner unless admin.
	GetBooking(id, requesterID string, isAdmin bool) (*models.Booking, error)
	// CancelBooking cancels a Pending booking owned by the requester.
	CancelBooking(id, requesterID string) (*models.Booking, error)
	// RateBooking records a rating on a Completed booking owned by the requester.
	RateBooking(id, requesterID string, rating int, review string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Services serviceRepo.ServiceRepository
}
