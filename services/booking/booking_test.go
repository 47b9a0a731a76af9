package booking

import (
	"errors"
	"fmt"
	"testing"

	"servease/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubServiceRepo answers GetByID from a fixed set; the other catalog methods
// are unused here.
type stubServiceRepo struct {
	services map[string]models.Service
	err      error
}

func (s *stubServiceRepo) GetByID(id string) (*models.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	if svc, ok := s.services[id]; ok {
		return &svc, nil
	}
	return nil, nil
}

func (s *stubServiceRepo) GetActiveByCategory(string, int64) ([]models.Service, error) {
	return nil, nil
}
func (s *stubServiceRepo) GetAllActive() ([]models.Service, error)       { return nil, nil }
func (s *stubServiceRepo) GetByIDs([]string) ([]models.Service, error)   { return nil, nil }
func (s *stubServiceRepo) Create(*models.Service) error                  { return nil }
func (s *stubServiceRepo) CreateMany([]models.Service) error             { return nil }
func (s *stubServiceRepo) DeleteAll() error                              { return nil }

// stubBookingRepo keeps bookings in memory.
type stubBookingRepo struct {
	bookings map[string]*models.Booking
	creates  int
	err      error
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (s *stubBookingRepo) Create(b *models.Booking) error {
	if s.err != nil {
		return s.err
	}
	s.creates++
	b.BookingID = fmt.Sprintf("BK%06d", s.creates)
	c := *b
	s.bookings[b.ID] = &c
	return nil
}

func (s *stubBookingRepo) GetByID(id string) (*models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	if b, ok := s.bookings[id]; ok {
		c := *b
		return &c, nil
	}
	return nil, nil
}

func (s *stubBookingRepo) GetByUser(userID string, _ int64) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *stubBookingRepo) GetAll(string, int64) ([]models.Booking, error) { return nil, nil }

func (s *stubBookingRepo) UpdateStatus(id, status string) (*models.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, nil
	}
	b.Status = status
	c := *b
	return &c, nil
}

func (s *stubBookingRepo) SetRating(id string, rating int, review string) error {
	if b, ok := s.bookings[id]; ok {
		b.Rating = rating
		b.Review = review
	}
	return nil
}

func (s *stubBookingRepo) Count() (int64, error)                  { return 0, nil }
func (s *stubBookingRepo) CountByStatus(string) (int64, error)    { return 0, nil }
func (s *stubBookingRepo) CompletedRevenue() (float64, error)     { return 0, nil }
func (s *stubBookingRepo) TopServiceIDs(int64) ([]string, error)  { return nil, nil }

func bookingTestUser() *models.User {
	return &models.User{
		ID:       "user-1",
		Username: "Ravi",
		Address: models.Address{
			Street:  "12 MG Road",
			City:    "Pune",
			Pincode: "411001",
		},
	}
}

func newBookingService(repo *stubBookingRepo, services *stubServiceRepo) *DefaultBookingService {
	if repo == nil {
		repo = newStubBookingRepo()
	}
	if services == nil {
		services = &stubServiceRepo{services: map[string]models.Service{
			"svc-1": {ID: "svc-1", Category: "Cleaning", Name: "Full House Cleaning", BasePrice: 999, IsActive: true},
		}}
	}
	return &DefaultBookingService{Repo: repo, Services: services}
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		ServiceID:     "svc-1",
		ScheduledDate: "2026-09-01",
		ScheduledTime: "14:00",
	}
}

func TestCreateBooking(t *testing.T) {
	repo := newStubBookingRepo()
	s := newBookingService(repo, nil)

	created, err := s.CreateBooking(bookingTestUser(), validInput())

	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, created.Status)
	assert.Equal(t, "BK000001", created.BookingID)
	assert.Equal(t, float64(999), created.TotalPrice)
	assert.Equal(t, "02:15 PM", created.EstimatedArrivalTime)
	assert.Equal(t, models.PaymentCashOnService, created.PaymentMethod)
	assert.Equal(t, models.PaymentStatusPending, created.PaymentStatus)
	// Address falls back to the user's stored address.
	assert.Equal(t, bookingTestUser().Address, created.Address)
}

func TestCreateBookingExplicitAddress(t *testing.T) {
	s := newBookingService(nil, nil)

	input := validInput()
	input.Address = models.Address{Street: "7 FC Road", City: "Pune", Pincode: "411004"}

	created, err := s.CreateBooking(bookingTestUser(), input)

	require.NoError(t, err)
	assert.Equal(t, input.Address, created.Address)
}

func TestCreateBookingValidation(t *testing.T) {
	s := newBookingService(nil, nil)
	user := bookingTestUser()

	tests := []struct {
		name   string
		mutate func(*CreateBookingInput)
	}{
		{"missing service", func(in *CreateBookingInput) { in.ServiceID = "" }},
		{"missing date", func(in *CreateBookingInput) { in.ScheduledDate = "" }},
		{"bad date format", func(in *CreateBookingInput) { in.ScheduledDate = "01/09/2026" }},
		{"bad time format", func(in *CreateBookingInput) { in.ScheduledTime = "2 pm" }},
		{"unknown service", func(in *CreateBookingInput) { in.ServiceID = "svc-missing" }},
		{"unknown payment method", func(in *CreateBookingInput) { in.PaymentMethod = "crypto" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := s.CreateBooking(user, input)

			var invalid InvalidInputError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestCreateBookingIncompleteAddress(t *testing.T) {
	repo := newStubBookingRepo()
	s := newBookingService(repo, nil)

	user := bookingTestUser()
	user.Address = models.Address{City: "Pune"}

	_, err := s.CreateBooking(user, validInput())

	var invalid InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Zero(t, repo.creates)
}

func TestGetBookingOwnership(t *testing.T) {
	repo := newStubBookingRepo()
	repo.bookings["bk-1"] = &models.Booking{ID: "bk-1", UserID: "user-1", Status: models.BookingPending}
	s := newBookingService(repo, nil)

	_, err := s.GetBooking("bk-1", "user-2", false)
	assert.ErrorIs(t, err, ErrNotOwner)

	// Admins may read any booking.
	b, err := s.GetBooking("bk-1", "user-2", true)
	require.NoError(t, err)
	assert.Equal(t, "bk-1", b.ID)

	_, err = s.GetBooking("bk-missing", "user-1", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelBooking(t *testing.T) {
	repo := newStubBookingRepo()
	repo.bookings["bk-1"] = &models.Booking{ID: "bk-1", UserID: "user-1", Status: models.BookingPending}
	s := newBookingService(repo, nil)

	b, err := s.CancelBooking("bk-1", "user-1")

	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, b.Status)
}

func TestCancelBookingOnlyPending(t *testing.T) {
	repo := newStubBookingRepo()
	repo.bookings["bk-1"] = &models.Booking{ID: "bk-1", UserID: "user-1", Status: models.BookingAccepted}
	s := newBookingService(repo, nil)

	_, err := s.CancelBooking("bk-1", "user-1")

	var transition InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, models.BookingAccepted, transition.Status)
}

func TestRateBooking(t *testing.T) {
	repo := newStubBookingRepo()
	repo.bookings["bk-1"] = &models.Booking{ID: "bk-1", UserID: "user-1", Status: models.BookingCompleted}
	s := newBookingService(repo, nil)

	err := s.RateBooking("bk-1", "user-1", 5, "bahut badhiya kaam")

	require.NoError(t, err)
	assert.Equal(t, 5, repo.bookings["bk-1"].Rating)
	assert.Equal(t, "bahut badhiya kaam", repo.bookings["bk-1"].Review)
}

func TestRateBookingGuards(t *testing.T) {
	repo := newStubBookingRepo()
	repo.bookings["bk-1"] = &models.Booking{ID: "bk-1", UserID: "user-1", Status: models.BookingPending}
	s := newBookingService(repo, nil)

	var invalid InvalidInputError
	assert.ErrorAs(t, s.RateBooking("bk-1", "user-1", 0, ""), &invalid)
	assert.ErrorAs(t, s.RateBooking("bk-1", "user-1", 6, ""), &invalid)

	var transition InvalidTransitionError
	assert.ErrorAs(t, s.RateBooking("bk-1", "user-1", 4, ""), &transition)

	assert.ErrorIs(t, s.RateBooking("bk-1", "user-2", 4, ""), ErrNotOwner)
}

func TestCreateBookingRepoFailure(t *testing.T) {
	repo := newStubBookingRepo()
	repo.err = errors.New("write concern timeout")
	s := newBookingService(repo, nil)

	_, err := s.CreateBooking(bookingTestUser(), validInput())

	require.Error(t, err)
	var invalid InvalidInputError
	assert.False(t, errors.As(err, &invalid))
}
