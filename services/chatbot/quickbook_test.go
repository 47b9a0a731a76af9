package chatbot

import (
	"errors"
	"testing"
	"time"

	"servease/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickBookRequiresLogin(t *testing.T) {
	s := newTestService(nil, nil)

	result, err := s.QuickBook("svc-1", nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestQuickBookRequiresServiceID(t *testing.T) {
	s := newTestService(nil, nil)

	_, err := s.QuickBook("", testUser())

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "serviceId", verr.Field)
}

func TestQuickBookUnknownService(t *testing.T) {
	s := newTestService(nil, nil)

	_, err := s.QuickBook("svc-missing", testUser())

	var nferr ServiceNotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "svc-missing", nferr.ServiceID)
}

func TestQuickBookInactiveService(t *testing.T) {
	svc := cleaningService()
	svc.IsActive = false
	services := &fakeServiceRepo{services: []models.Service{svc}}
	s := newTestService(services, nil)

	_, err := s.QuickBook("svc-1", testUser())

	var nferr ServiceNotFoundError
	assert.ErrorAs(t, err, &nferr)
}

// An incomplete address fails before anything is written.
func TestQuickBookIncompleteAddress(t *testing.T) {
	services := &fakeServiceRepo{services: []models.Service{cleaningService()}}
	bookings := &fakeBookingRepo{}
	s := newTestService(services, bookings)

	user := testUser()
	user.Address.Pincode = ""

	_, err := s.QuickBook("svc-1", user)

	assert.ErrorIs(t, err, ErrIncompleteAddress)
	assert.Zero(t, bookings.creates)
}

func TestQuickBookSuccess(t *testing.T) {
	services := &fakeServiceRepo{services: []models.Service{cleaningService()}}
	bookings := &fakeBookingRepo{}
	s := newTestService(services, bookings)
	s.now = func() time.Time {
		return time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	}

	result, err := s.QuickBook("svc-1", testUser())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Full House Cleaning", result.Service)
	assert.Equal(t, "28/08/2026", result.Date)
	assert.Equal(t, "12:30", result.Time)
	assert.Equal(t, "12:45 PM", result.ETA)
	assert.Equal(t, float64(999), result.Price)
	assert.NotEmpty(t, result.BookingID)

	require.Equal(t, 1, bookings.creates)
	created := bookings.bookings[0]
	assert.Equal(t, models.BookingPending, created.Status)
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, "svc-1", created.ServiceID)
	assert.Equal(t, "2026-08-28", created.ScheduledDate)
	assert.Equal(t, "12:30", created.ScheduledTime)
	assert.Equal(t, "12:45 PM", created.EstimatedArrivalTime)
	assert.Equal(t, models.PaymentCashOnService, created.PaymentMethod)
	assert.Equal(t, models.PaymentStatusPending, created.PaymentStatus)
	assert.Equal(t, testUser().Address, created.Address)
	assert.Equal(t, result.BookingID, created.BookingID)
}

// Scheduling near midnight: the date is the call-time date, the slot rolls
// into the next day.
func TestQuickBookLateEvening(t *testing.T) {
	services := &fakeServiceRepo{services: []models.Service{cleaningService()}}
	s := newTestService(services, &fakeBookingRepo{})
	s.now = func() time.Time {
		return time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC)
	}

	result, err := s.QuickBook("svc-1", testUser())

	require.NoError(t, err)
	assert.Equal(t, "28/08/2026", result.Date)
	assert.Equal(t, "01:00", result.Time)
	assert.Equal(t, "01:15 AM", result.ETA)
}

func TestQuickBookLookupFailure(t *testing.T) {
	services := &fakeServiceRepo{err: errors.New("connection reset")}
	s := newTestService(services, nil)

	_, err := s.QuickBook("svc-1", testUser())

	var perr PersistenceError
	assert.ErrorAs(t, err, &perr)
}

func TestQuickBookWriteFailure(t *testing.T) {
	services := &fakeServiceRepo{services: []models.Service{cleaningService()}}
	bookings := &fakeBookingRepo{err: errors.New("write concern timeout")}
	s := newTestService(services, bookings)

	_, err := s.QuickBook("svc-1", testUser())

	var perr PersistenceError
	assert.ErrorAs(t, err, &perr)
}
