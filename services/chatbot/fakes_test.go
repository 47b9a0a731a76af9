package chatbot

import (
	"fmt"

	"servease/models"
)

// fakeServiceRepo is an in-memory ServiceRepository for tests.
type fakeServiceRepo struct {
	services []models.Service
	err      error
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, svc := range f.services {
		if svc.ID == id {
			s := svc
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) GetActiveByCategory(category string, limit int64) ([]models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Service
	for _, svc := range f.services {
		if svc.Category == category && svc.IsActive {
			out = append(out, svc)
		}
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) GetAllActive() ([]models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Service
	for _, svc := range f.services {
		if svc.IsActive {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) GetByIDs(ids []string) ([]models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Service
	for _, svc := range f.services {
		if want[svc.ID] {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) Create(service *models.Service) error {
	if f.err != nil {
		return f.err
	}
	f.services = append(f.services, *service)
	return nil
}

func (f *fakeServiceRepo) CreateMany(services []models.Service) error {
	if f.err != nil {
		return f.err
	}
	f.services = append(f.services, services...)
	return nil
}

func (f *fakeServiceRepo) DeleteAll() error {
	if f.err != nil {
		return f.err
	}
	f.services = nil
	return nil
}

// fakeBookingRepo is an in-memory BookingRepository for tests. Create mimics
// the production repository by assigning the display booking id.
type fakeBookingRepo struct {
	bookings []models.Booking
	err      error
	creates  int
}

func (f *fakeBookingRepo) Create(booking *models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.creates++
	if booking.BookingID == "" {
		booking.BookingID = fmt.Sprintf("BK%06d", f.creates)
	}
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.bookings {
		if b.ID == id {
			c := b
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) GetByUser(userID string, limit int64) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetAll(status string, limit int64) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(id, status string) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			c := f.bookings[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) SetRating(id string, rating int, review string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Rating = rating
			f.bookings[i].Review = review
		}
	}
	return nil
}

func (f *fakeBookingRepo) Count() (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) CountByStatus(status string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, b := range f.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) CompletedRevenue() (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var sum float64
	for _, b := range f.bookings {
		if b.Status == models.BookingCompleted {
			sum += b.TotalPrice
		}
	}
	return sum, nil
}

func (f *fakeBookingRepo) TopServiceIDs(limit int64) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	counts := make(map[string]int)
	var order []string
	for _, b := range f.bookings {
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
