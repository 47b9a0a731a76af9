package admin

import (
	"fmt"
	"strings"

	"servease/models"
)

// ListBookings returns bookings filtered by status and an optional search
// term matched against username, service name and booking display id.
func (s *DefaultAdminService) ListBookings(status, search string) ([]models.PopulatedBooking, error) {
	if status == "all" {
		status = ""
	}
	if status != "" && !models.IsValidBookingStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	bookings, err := s.Bookings.GetAll(status, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	populated, err := s.populate(bookings)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return populated, nil
	}

	term := strings.ToLower(search)
	filtered := make([]models.PopulatedBooking, 0, len(populated))
	for _, pb := range populated {
		if matchesSearch(pb, term) {
			filtered = append(filtered, pb)
		}
	}
	return filtered, nil
}

func matchesSearch(pb models.PopulatedBooking, term string) bool {
	if pb.User != nil && strings.Contains(strings.ToLower(pb.User.Username), term) {
		return true
	}
	if pb.Service != nil && strings.Contains(strings.ToLower(pb.Service.Name), term) {
		return true
	}
	return strings.Contains(strings.ToLower(pb.BookingID), term)
}

// GetBookingDetails returns one booking with its user and service.
func (s *DefaultAdminService) GetBookingDetails(id string) (*models.PopulatedBooking, error) {
	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking with id %s not found", id)
	}

	populated, err := s.populate([]models.Booking{*booking})
	if err != nil {
		return nil, err
	}
	return &populated[0], nil
}

// UpdateBookingStatus transitions a booking within the closed status set.
func (s *DefaultAdminService) UpdateBookingStatus(id, status string) (*models.Booking, error) {
	if !models.IsValidBookingStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	return s.Bookings.UpdateStatus(id, status)
}

// populate joins bookings with their users and services. Sensitive user
// fields are cleared before returning.
func (s *DefaultAdminService) populate(bookings []models.Booking) ([]models.PopulatedBooking, error) {
	serviceIDs := make([]string, 0, len(bookings))
	for _, b := range bookings {
		serviceIDs = append(serviceIDs, b.ServiceID)
	}
	services, err := s.Services.GetByIDs(serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to populate services: %w", err)
	}
	servicesByID := make(map[string]models.Service, len(services))
	for _, svc := range services {
		servicesByID[svc.ID] = svc
	}

	populated := make([]models.PopulatedBooking, 0, len(bookings))
	usersByID := make(map[string]*models.User)
	for _, b := range bookings {
		pb := models.PopulatedBooking{Booking: b}

		if svc, ok := servicesByID[b.ServiceID]; ok {
			svcCopy := svc
			pb.Service = &svcCopy
		}

		usr, seen := usersByID[b.UserID]
		if !seen {
			usr, err = s.Users.GetByID(b.UserID)
			if err != nil {
				// The user may have been deleted; leave unpopulated.
				usr = nil
			}
			if usr != nil {
				usr.PasswordHash = ""
				usr.TokenHash = ""
			}
			usersByID[b.UserID] = usr
		}
		pb.User = usr

		populated = append(populated, pb)
	}
	return populated, nil
}
