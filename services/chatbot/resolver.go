package chatbot

import (
	"fmt"
	"strings"

	"servease/config"
	"servease/models"
	"servease/utils"

	"go.uber.org/zap"
)

// Number of services offered per category prompt and bookings shown in the
// history reply.
const (
	serviceOptionsLimit = 5
	recentBookingsLimit = 5
)

// ProcessMessage handles one chat turn. An in-flight conversation step takes
// precedence over intent classification; otherwise the message is classified
// and dispatched. Conversation state lives solely in the returned context —
// the resolver keeps nothing between turns.
func (s *DefaultChatbotService) ProcessMessage(message string, chatCtx *models.ChatContext, user *models.User) models.ChatResponse {
	if chatCtx != nil && chatCtx.Step != "" {
		return s.resolveStep(message, chatCtx)
	}

	intent := Classify(message)
	utils.GetLogger().Debug("chatbot intent detected", zap.String("intent", string(intent.Type)))

	switch intent.Type {
	case IntentGreeting:
		return greetingResponse(user)
	case IntentServiceBooking:
		return s.serviceBookingResponse(intent, user)
	case IntentShowServices:
		return s.showServicesResponse()
	case IntentMyBookings:
		return s.myBookingsResponse(user)
	case IntentContactSupport:
		return contactResponse()
	default:
		return unknownResponse()
	}
}

// resolveStep dispatches purely on the context's step, ignoring intent
// classification.
func (s *DefaultChatbotService) resolveStep(message string, chatCtx *models.ChatContext) models.ChatResponse {
	msg := strings.ToLower(strings.TrimSpace(message))

	switch chatCtx.Step {
	case models.StepServiceSelection:
		if containsAny(msg, negativePhrases) {
			return models.ChatResponse{
				Type:    models.ChatCancelled,
				Text:    "Thik hai! Koi baat nahi.\n\nKya aur kuch madad chahiye?",
				Buttons: []string{"Services Dikhao", "Meri Bookings"},
			}
		}

		if containsAny(msg, affirmativePhrases) {
			// Booking details are collected by the client-side form.
			return models.ChatResponse{
				Type:    models.ChatAskDetails,
				Text:    "✅ Badhiya!\n\n📅 Kab service chahiye?\n📍 Address kya hai?\n\nAap booking form fill kar sakte hain:",
				Action:  models.ActionOpenBookingForm,
				Buttons: []string{"Book Now", "Cancel"},
			}
		}

		// Neither confirmed nor cancelled: re-prompt and loop, echoing the
		// same context unchanged.
		return models.ChatResponse{
			Type:    models.ChatConfirm,
			Text:    "Kya aap is service ko book karna chahte hain?\n\n📅 Date aur time select karein\n📍 Address confirm karein",
			Buttons: []string{"Haan, Book Karo", "Nahi, Cancel Karo"},
			Context: chatCtx,
		}

	default:
		return models.ChatResponse{
			Type:    models.ChatUnknown,
			Text:    "Main samajh nahi paya. Kya aap service book karna chahte hain?",
			Buttons: []string{"Services Dikhao", "Contact Support"},
		}
	}
}

func greetingResponse(user *models.User) models.ChatResponse {
	if user != nil {
		name := user.Username
		if name == "" {
			name = "sir/ma'am"
		}
		return models.ChatResponse{
			Type:    models.ChatGreeting,
			Text:    fmt.Sprintf("Namaste %s! 👋\n\nMain aapki kaise madad kar sakta hoon?\n\nKya aap koi service book karna chahte hain?", name),
			Buttons: []string{"Services Dikhao", "Meri Bookings", "Contact Support"},
		}
	}
	return models.ChatResponse{
		Type:    models.ChatGreeting,
		Text:    "Namaste! 👋\n\nMain aapki kaise madad kar sakta hoon?\n\nServices dekhne ke liye: \"services dikhao\"\nBooking ke liye: \"ghar ki safai karwani hai\"",
		Buttons: []string{"Services Dikhao", "Login Karo", "Contact Support"},
	}
}

func (s *DefaultChatbotService) serviceBookingResponse(intent Intent, user *models.User) models.ChatResponse {
	if user == nil {
		return loginRequiredResponse("🔐 Service book karne ke liye pehle login karna padega.\n\nKripya login karein ya nayi account banayein.")
	}

	services, err := s.Services.GetActiveByCategory(intent.Category, serviceOptionsLimit)
	if err != nil {
		return s.errorResponse(err)
	}

	if len(services) == 0 {
		return models.ChatResponse{
			Type:    models.ChatNotFound,
			Text:    fmt.Sprintf("😕 Sorry, %s category mein abhi koi service available nahi hai.\n\nAap dusri services dekh sakte hain.", intent.Category),
			Buttons: []string{"All Services Dikhao", "Contact Support"},
		}
	}

	summaries := make([]models.ServiceSummary, 0, len(services))
	for _, svc := range services {
		summaries = append(summaries, svc.Summary())
	}

	return models.ChatResponse{
		Type:     models.ChatServiceOptions,
		Text:     fmt.Sprintf("✅ %s ke liye yeh services available hain:\n\nKaunsi service chahiye?", intent.Category),
		Services: summaries,
		Context: &models.ChatContext{
			Step:     models.StepServiceSelection,
			Category: intent.Category,
		},
	}
}

func (s *DefaultChatbotService) showServicesResponse() models.ChatResponse {
	services, err := s.Services.GetAllActive()
	if err != nil {
		return s.errorResponse(err)
	}

	// An empty catalog still yields an empty grouped map, not an error.
	grouped := make(map[string][]models.ServiceSummary)
	for _, svc := range services {
		grouped[svc.Category] = append(grouped[svc.Category], svc.Summary())
	}

	return models.ChatResponse{
		Type:               models.ChatServiceList,
		Text:               "📋 Yeh humari services hain:\n\nKoi bhi service book karne ke liye uska naam bataiye!",
		ServicesByCategory: grouped,
		Buttons:            []string{"Book Karo", "Contact Support"},
	}
}

func (s *DefaultChatbotService) myBookingsResponse(user *models.User) models.ChatResponse {
	if user == nil {
		return loginRequiredResponse("🔐 Apni bookings dekhne ke liye pehle login karna padega.")
	}

	bookings, err := s.Bookings.GetByUser(user.ID, recentBookingsLimit)
	if err != nil {
		return s.errorResponse(err)
	}

	if len(bookings) == 0 {
		return models.ChatResponse{
			Type:    models.ChatNoBookings,
			Text:    "📭 Abhi tak koi booking nahi hai.\n\nKya aap koi service book karna chahte hain?\n\nTry: 'ghar ki safai' ya 'services dikhao'",
			Buttons: []string{"Book Service", "Show Services"},
		}
	}

	summaries, err := s.summarizeBookings(bookings)
	if err != nil {
		return s.errorResponse(err)
	}

	return models.ChatResponse{
		Type:     models.ChatBookingsList,
		Text:     "📋 Aapki recent bookings:\n\n",
		Bookings: summaries,
		Buttons:  []string{"View All Bookings", "Book New Service"},
	}
}

// summarizeBookings maps bookings to their chat summaries, resolving service
// names in one batched lookup.
func (s *DefaultChatbotService) summarizeBookings(bookings []models.Booking) ([]models.BookingSummary, error) {
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ServiceID)
	}
	services, err := s.Services.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	summaries := make([]models.BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		serviceName := "Service Unavailable"
		serviceIcon := "🔧"
		if svc, ok := byID[b.ServiceID]; ok {
			serviceName = svc.Name
			serviceIcon = svc.Icon
		}
		summaries = append(summaries, models.BookingSummary{
			ID:          b.ID,
			BookingID:   b.BookingID,
			ServiceName: serviceName,
			ServiceIcon: serviceIcon,
			Status:      b.Status,
			Date:        b.ScheduledDate,
			Time:        b.ScheduledTime,
			Price:       b.TotalPrice,
		})
	}
	return summaries, nil
}

func contactResponse() models.ChatResponse {
	cfg := config.AppConfig
	phone := cfg.SupportPhone
	email := cfg.SupportEmail
	timing := cfg.SupportTiming
	if phone == "" {
		phone = "+91 98765 43210"
	}
	if email == "" {
		email = "support@servease.com"
	}
	if timing == "" {
		timing = "9 AM - 9 PM (Mon-Sat)"
	}
	return models.ChatResponse{
		Type: models.ChatContact,
		Text: fmt.Sprintf("📞 Aap humse yahan contact kar sakte hain:\n\n📱 Phone: %s\n📧 Email: %s\n⏰ Timing: %s\n\nKya aur koi madad chahiye?",
			phone, email, timing),
		Buttons: []string{"Services Dikhao", "Meri Bookings"},
	}
}

func unknownResponse() models.ChatResponse {
	return models.ChatResponse{
		Type:    models.ChatUnknown,
		Text:    "❓ Main samajh nahi paya.\n\nAap yeh try kar sakte hain:\n\n✅ 'ghar ki safai karwani hai'\n✅ 'services dikhao'\n✅ 'meri bookings'\n✅ 'contact support'",
		Buttons: []string{"Show Services", "Book Cleaning", "My Bookings"},
	}
}

func loginRequiredResponse(text string) models.ChatResponse {
	return models.ChatResponse{
		Type:    models.ChatLoginRequired,
		Text:    text,
		Action:  models.ActionRedirectLogin,
		Buttons: []string{"Login", "Sign Up"},
	}
}

// ErrorResponse collapses a data-store failure into a terminal apology so the
// conversation never dead-ends. No context is returned; the flow resets.
func ErrorResponse(err error) models.ChatResponse {
	utils.GetLogger().Error("chatbot data-store failure", zap.Error(err))
	return models.ChatResponse{
		Type:    models.ChatError,
		Text:    "😕 Kuch galat ho gaya. Kripya phir se try karein.",
		Buttons: []string{"Show Services", "Contact Support"},
	}
}

func (s *DefaultChatbotService) errorResponse(err error) models.ChatResponse {
	return ErrorResponse(err)
}
