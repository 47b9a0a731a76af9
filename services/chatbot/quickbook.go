package chatbot

import (
	"time"

	"servease/models"

	"github.com/google/uuid"
)

// Scheduling policy for quick bookings: the appointment is set two hours from
// now and the arrival estimate fifteen minutes after that. A placeholder
// policy, not derived from any logistics model.
const (
	quickBookLead        = 2 * time.Hour
	arrivalOffset        = 15 * time.Minute
	dateLayout           = "2006-01-02"
	timeLayout           = "15:04"
	displayDateLayout    = "02/01/2006"
	arrivalDisplayLayout = "03:04 PM"
)

// QuickBook creates a booking for the given service without the full booking
// form, scheduled per the quick-book policy at the service's base price and
// the user's stored address.
func (s *DefaultChatbotService) QuickBook(serviceID string, user *models.User) (*models.QuickBookResult, error) {
	if user == nil {
		return nil, ErrLoginRequired
	}
	if serviceID == "" {
		return nil, ValidationError{Field: "serviceId"}
	}

	service, err := s.Services.GetByID(serviceID)
	if err != nil {
		return nil, PersistenceError{Err: err}
	}
	if service == nil || !service.IsActive {
		return nil, ServiceNotFoundError{ServiceID: serviceID}
	}

	if !user.Address.IsComplete() {
		return nil, ErrIncompleteAddress
	}

	now := s.clock()
	scheduledDate := now.Format(dateLayout)
	scheduled := now.Add(quickBookLead)
	scheduledTime := scheduled.Format(timeLayout)
	eta := scheduled.Add(arrivalOffset).Format(arrivalDisplayLayout)

	booking := &models.Booking{
		ID:                   uuid.NewString(),
		UserID:               user.ID,
		ServiceID:            service.ID,
		ScheduledDate:        scheduledDate,
		ScheduledTime:        scheduledTime,
		Address:              user.Address,
		Status:               models.BookingPending,
		EstimatedArrivalTime: eta,
		TotalPrice:           service.BasePrice,
		PaymentMethod:        models.PaymentCashOnService,
		PaymentStatus:        models.PaymentStatusPending,
	}
	if err := s.Bookings.Create(booking); err != nil {
		return nil, PersistenceError{Err: err}
	}

	return &models.QuickBookResult{
		BookingID: booking.BookingID,
		Service:   service.Name,
		Date:      now.Format(displayDateLayout),
		Time:      scheduledTime,
		ETA:       eta,
		Price:     service.BasePrice,
	}, nil
}
