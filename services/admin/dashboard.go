package admin

import (
	"fmt"

	"servease/models"
)

const (
	recentBookingsLimit = 10
	topServicesLimit    = 5
)

// GetDashboard assembles the dashboard statistics, recent bookings and
// most-booked services. Counting and revenue aggregation are delegated to
// the database.
func (s *DefaultAdminService) GetDashboard() (*models.Dashboard, error) {
	totalUsers, err := s.Users.CountByRole(models.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	totalBookings, err := s.Bookings.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	pending, err := s.Bookings.CountByStatus(models.BookingPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending bookings: %w", err)
	}
	accepted, err := s.Bookings.CountByStatus(models.BookingAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to count accepted bookings: %w", err)
	}
	completed, err := s.Bookings.CountByStatus(models.BookingCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed bookings: %w", err)
	}
	revenue, err := s.Bookings.CompletedRevenue()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	recent, err := s.Bookings.GetAll("", recentBookingsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent bookings: %w", err)
	}
	populated, err := s.populate(recent)
	if err != nil {
		return nil, err
	}

	topIDs, err := s.Bookings.TopServiceIDs(topServicesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top services: %w", err)
	}
	recommended, err := s.Services.GetByIDs(topIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get recommended services: %w", err)
	}

	return &models.Dashboard{
		Stats: models.DashboardStats{
			TotalUsers:        totalUsers,
			TotalBookings:     totalBookings,
			PendingBookings:   pending,
			AcceptedBookings:  accepted,
			CompletedBookings: completed,
			TotalRevenue:      revenue,
		},
		RecentBookings:      populated,
		RecommendedServices: recommended,
	}, nil
}

// PendingCount counts Pending bookings.
func (s *DefaultAdminService) PendingCount() (int64, error) {
	return s.Bookings.CountByStatus(models.BookingPending)
}
