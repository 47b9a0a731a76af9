package booking

import (
	"fmt"
	"time"

	"servease/models"
	"servease/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// arrivalOffset is how far beyond the scheduled time the arrival estimate is
// set. Placeholder policy shared with the chatbot's quick-book flow.
const arrivalOffset = 15 * time.Minute

// CreateBooking validates the form input and persists a Pending booking at
// the service's base price.
func (s *DefaultBookingService) CreateBooking(user *models.User, input CreateBookingInput) (*models.Booking, error) {
	if user == nil {
		return nil, InvalidInputError{Reason: "user is required"}
	}
	if input.ServiceID == "" || input.ScheduledDate == "" || input.ScheduledTime == "" {
		return nil, InvalidInputError{Reason: "service, scheduledDate and scheduledTime are required"}
	}

	address := input.Address
	if address == (models.Address{}) {
		address = user.Address
	}
	if !address.IsComplete() {
		return nil, InvalidInputError{Reason: "complete address is required"}
	}

	if _, err := time.Parse("2006-01-02", input.ScheduledDate); err != nil {
		return nil, InvalidInputError{Reason: "scheduledDate must be YYYY-MM-DD"}
	}
	scheduledAt, err := time.Parse("2006-01-02 15:04", input.ScheduledDate+" "+input.ScheduledTime)
	if err != nil {
		return nil, InvalidInputError{Reason: "scheduledTime must be HH:mm"}
	}

	service, err := s.Services.GetByID(input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up service: %w", err)
	}
	if service == nil || !service.IsActive {
		return nil, InvalidInputError{Reason: "service not found"}
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCashOnService
	}
	if paymentMethod != models.PaymentCashOnService && paymentMethod != models.PaymentOnline {
		return nil, InvalidInputError{Reason: "unknown payment method"}
	}

	booking := &models.Booking{
		ID:                   uuid.NewString(),
		UserID:               user.ID,
		ServiceID:            service.ID,
		ScheduledDate:        input.ScheduledDate,
		ScheduledTime:        input.ScheduledTime,
		Address:              address,
		Status:               models.BookingPending,
		EstimatedArrivalTime: scheduledAt.Add(arrivalOffset).Format("03:04 PM"),
		TotalPrice:           service.BasePrice,
		SpecialInstructions:  input.SpecialInstructions,
		PaymentMethod:        paymentMethod,
		PaymentStatus:        models.PaymentStatusPending,
	}
	if err := s.Repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingId", booking.BookingID),
		zap.String("userId", user.ID),
		zap.String("serviceId", service.ID))
	return booking, nil
}

// GetUserBookings returns the user's bookings, newest first.
func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByUser(userID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return bookings, nil
}

// GetBooking returns one booking, restricted to its owner unless admin.
func (s *DefaultBookingService) GetBooking(id, requesterID string, isAdmin bool) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	if !isAdmin && booking.UserID != requesterID {
		return nil, ErrNotOwner
	}
	return booking, nil
}

// CancelBooking cancels a Pending booking owned by the requester.
func (s *DefaultBookingService) CancelBooking(id, requesterID string) (*models.Booking, error) {
	booking, err := s.GetBooking(id, requesterID, false)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingPending {
		return nil, InvalidTransitionError{Status: booking.Status, Op: "cancel"}
	}
	return s.Repo.UpdateStatus(id, models.BookingCancelled)
}

// RateBooking records a rating on a Completed booking owned by the requester.
func (s *DefaultBookingService) RateBooking(id, requesterID string, rating int, review string) error {
	if rating < 1 || rating > 5 {
		return InvalidInputError{Reason: "rating must be between 1 and 5"}
	}
	booking, err := s.GetBooking(id, requesterID, false)
	if err != nil {
		return err
	}
	if booking.Status != models.BookingCompleted {
		return InvalidTransitionError{Status: booking.Status, Op: "rate"}
	}
	return s.Repo.SetRating(id, rating, review)
}
