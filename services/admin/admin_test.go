package admin

import (
	"errors"
	"testing"

	"servease/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memUserRepo serves users from a fixed map. GetByID fails for unknown ids,
// matching the production repository.
type memUserRepo struct {
	users map[string]models.User
}

func (m *memUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, errors.New("user not found")
}

func (m *memUserRepo) GetByEmail(string) (*models.User, error)    { return nil, nil }
func (m *memUserRepo) GetByUsername(string) (*models.User, error) { return nil, nil }

func (m *memUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserRepo) Create(*models.User) error                  { return nil }
func (m *memUserRepo) UpdateWithDocument(string, bson.M) error    { return nil }
func (m *memUserRepo) Delete(string) error                        { return nil }

func (m *memUserRepo) CountByRole(role string) (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (m *memUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return m.GetByID(id)
}

// memServiceRepo serves the catalog from a slice.
type memServiceRepo struct {
	services []models.Service
}

func (m *memServiceRepo) GetByID(id string) (*models.Service, error) {
	for _, svc := range m.services {
		if svc.ID == id {
			s := svc
			return &s, nil
		}
	}
	return nil, nil
}

func (m *memServiceRepo) GetActiveByCategory(string, int64) ([]models.Service, error) {
	return nil, nil
}

func (m *memServiceRepo) GetAllActive() ([]models.Service, error) { return m.services, nil }

func (m *memServiceRepo) GetByIDs(ids []string) ([]models.Service, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Service
	for _, svc := range m.services {
		if want[svc.ID] {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (m *memServiceRepo) Create(*models.Service) error      { return nil }
func (m *memServiceRepo) CreateMany([]models.Service) error { return nil }
func (m *memServiceRepo) DeleteAll() error                  { return nil }

// memBookingRepo serves bookings from a slice.
type memBookingRepo struct {
	bookings []models.Booking
}

func (m *memBookingRepo) Create(*models.Booking) error { return nil }

func (m *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	for _, b := range m.bookings {
		if b.ID == id {
			c := b
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memBookingRepo) GetByUser(userID string, _ int64) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) GetAll(status string, limit int64) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (m *memBookingRepo) UpdateStatus(id, status string) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			c := m.bookings[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memBookingRepo) SetRating(string, int, string) error { return nil }

func (m *memBookingRepo) Count() (int64, error) { return int64(len(m.bookings)), nil }

func (m *memBookingRepo) CountByStatus(status string) (int64, error) {
	var n int64
	for _, b := range m.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *memBookingRepo) CompletedRevenue() (float64, error) {
	var sum float64
	for _, b := range m.bookings {
		if b.Status == models.BookingCompleted {
			sum += b.TotalPrice
		}
	}
	return sum, nil
}

func (m *memBookingRepo) TopServiceIDs(limit int64) ([]string, error) {
	counts := make(map[string]int)
	var order []string
	for _, b := range m.bookings {
		if b.Status != models.BookingAccepted && b.Status != models.BookingCompleted {
			continue
		}
		if _, seen := counts[b.ServiceID]; !seen {
			order = append(order, b.ServiceID)
		}
		counts[b.ServiceID]++
	}
	if limit > 0 && int64(len(order)) > limit {
		order = order[:limit]
	}
	return order, nil
}

func newAdminService() (*DefaultAdminService, *memBookingRepo) {
	users := &memUserRepo{users: map[string]models.User{
		"user-1": {ID: "user-1", Username: "Ravi", Role: models.RoleUser, PasswordHash: "secret", TokenHash: "secret"},
		"user-2": {ID: "user-2", Username: "Meena", Role: models.RoleUser},
		"admin":  {ID: "admin", Username: "admin", Role: models.RoleAdmin},
	}}
	services := &memServiceRepo{services: []models.Service{
		{ID: "svc-1", Category: "Cleaning", Name: "Full House Cleaning", BasePrice: 999, IsActive: true},
		{ID: "svc-2", Category: "Plumbing", Name: "Tap Repair", BasePrice: 299, IsActive: true},
	}}
	bookings := &memBookingRepo{bookings: []models.Booking{
		{ID: "bk-1", BookingID: "BK0001", UserID: "user-1", ServiceID: "svc-1", Status: models.BookingPending, TotalPrice: 999},
		{ID: "bk-2", BookingID: "BK0002", UserID: "user-1", ServiceID: "svc-1", Status: models.BookingCompleted, TotalPrice: 999},
		{ID: "bk-3", BookingID: "BK0003", UserID: "user-2", ServiceID: "svc-2", Status: models.BookingCompleted, TotalPrice: 299},
		{ID: "bk-4", BookingID: "BK0004", UserID: "user-gone", ServiceID: "svc-2", Status: models.BookingAccepted, TotalPrice: 299},
	}}
	return &DefaultAdminService{Users: users, Services: services, Bookings: bookings}, bookings
}

func TestGetDashboard(t *testing.T) {
	s, _ := newAdminService()

	dashboard, err := s.GetDashboard()

	require.NoError(t, err)
	assert.Equal(t, int64(2), dashboard.Stats.TotalUsers) // admin excluded
	assert.Equal(t, int64(4), dashboard.Stats.TotalBookings)
	assert.Equal(t, int64(1), dashboard.Stats.PendingBookings)
	assert.Equal(t, int64(1), dashboard.Stats.AcceptedBookings)
	assert.Equal(t, int64(2), dashboard.Stats.CompletedBookings)
	assert.Equal(t, float64(1298), dashboard.Stats.TotalRevenue)
	assert.Len(t, dashboard.RecentBookings, 4)
	assert.Len(t, dashboard.RecommendedServices, 2)
}

func TestListBookingsByStatus(t *testing.T) {
	s, _ := newAdminService()

	completed, err := s.ListBookings(models.BookingCompleted, "")
	require.NoError(t, err)
	assert.Len(t, completed, 2)

	all, err := s.ListBookings("all", "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestListBookingsRejectsUnknownStatus(t *testing.T) {
	s, _ := newAdminService()

	_, err := s.ListBookings("Teleported", "")

	assert.Error(t, err)
}

func TestListBookingsSearch(t *testing.T) {
	s, _ := newAdminService()

	// Matches username, case-insensitive.
	byUser, err := s.ListBookings("all", "ravi")
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	// Matches service name.
	byService, err := s.ListBookings("all", "tap repair")
	require.NoError(t, err)
	assert.Len(t, byService, 2)

	// Matches the display booking id.
	byID, err := s.ListBookings("all", "bk0003")
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "bk-3", byID[0].ID)

	none, err := s.ListBookings("all", "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPopulateClearsSensitiveFields(t *testing.T) {
	s, _ := newAdminService()

	bookings, err := s.ListBookings("all", "")
	require.NoError(t, err)

	for _, pb := range bookings {
		if pb.User == nil {
			continue
		}
		assert.Empty(t, pb.User.PasswordHash)
		assert.Empty(t, pb.User.TokenHash)
	}
}

// A booking whose user was deleted is still listed, with User left nil.
func TestPopulateDeletedUser(t *testing.T) {
	s, _ := newAdminService()

	details, err := s.GetBookingDetails("bk-4")

	require.NoError(t, err)
	assert.Nil(t, details.User)
	require.NotNil(t, details.Service)
	assert.Equal(t, "Tap Repair", details.Service.Name)
}

func TestGetBookingDetailsNotFound(t *testing.T) {
	s, _ := newAdminService()

	_, err := s.GetBookingDetails("bk-missing")

	assert.Error(t, err)
}

func TestUpdateBookingStatus(t *testing.T) {
	s, repo := newAdminService()

	updated, err := s.UpdateBookingStatus("bk-1", models.BookingAccepted)

	require.NoError(t, err)
	assert.Equal(t, models.BookingAccepted, updated.Status)
	assert.Equal(t, models.BookingAccepted, repo.bookings[0].Status)
}

func TestUpdateBookingStatusRejectsUnknown(t *testing.T) {
	s, _ := newAdminService()

	_, err := s.UpdateBookingStatus("bk-1", "Vaporized")

	assert.Error(t, err)
}

func TestPendingCount(t *testing.T) {
	s, _ := newAdminService()

	count, err := s.PendingCount()

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
