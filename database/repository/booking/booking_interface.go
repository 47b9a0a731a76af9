package bookingRepo

import "servease/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record, assigning its display BookingID.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.Booking, error)
	// GetByUser retrieves a user's bookings sorted newest-first, up to limit.
	// A limit of 0 means no limit.
	GetByUser(userID string, limit int64) ([]models.Booking, error)
	// GetAll retrieves bookings sorted newest-first, optionally filtered by
	// status ("" means all), up to limit (0 means no limit).
	GetAll(status string, limit int64) ([]models.Booking, error)
	// UpdateStatus transitions a booking to the given status. When the status
	// is Completed the completion timestamp is set.
	UpdateStatus(id, status string) (*models.Booking, error)
	// SetRating records a rating and review on a booking.
	SetRating(id string, rating int, review string) error
	// Count counts all bookings.
	Count() (int64, error)
	// CountByStatus counts bookings holding the given status.
	CountByStatus(status string) (int64, error)
	// CompletedRevenue sums the total price of completed bookings.
	CompletedRevenue() (float64, error)
	// TopServiceIDs returns the service IDs with the most accepted or
	// completed bookings, most booked first.
	TopServiceIDs(limit int64) ([]string, error)
}
