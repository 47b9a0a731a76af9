package chatbot

import (
	"time"

	bookingRepo "servease/database/repository/booking"
	serviceRepo "servease/database/repository/service"
	"servease/models"
)

// ChatbotService drives the conversational booking assistant.
type ChatbotService interface {
	// ProcessMessage handles one chat turn. chatCtx is the conversation
	// context echoed back by the client (nil for a fresh conversation) and
	// user is the authenticated caller (nil for anonymous). It never fails:
	// data-store errors collapse into a terminal error response.
	ProcessMessage(message string, chatCtx *models.ChatContext, user *models.User) models.ChatResponse

	// QuickBook creates a booking for the given service scheduled two hours
	// from now, using the user's stored address.
	QuickBook(serviceID string, user *models.User) (*models.QuickBookResult, error)
}

// DefaultChatbotService is the production implementation.
type DefaultChatbotService struct {
	Services serviceRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository

	now func() time.Time
}

// NewDefaultChatbotService creates a chatbot service backed by the given
// repositories.
func NewDefaultChatbotService(services serviceRepo.ServiceRepository, bookings bookingRepo.BookingRepository) *DefaultChatbotService {
	return &DefaultChatbotService{
		Services: services,
		Bookings: bookings,
		now:      time.Now,
	}
}

func (s *DefaultChatbotService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
