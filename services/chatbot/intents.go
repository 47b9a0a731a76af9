package chatbot

import "strings"

// IntentType is the classified purpose of a user message.
type IntentType string

const (
	IntentGreeting       IntentType = "greeting"
	IntentServiceBooking IntentType = "service_booking"
	IntentShowServices   IntentType = "show_services"
	IntentMyBookings     IntentType = "my_bookings"
	IntentContactSupport IntentType = "contact_support"
	IntentUnknown        IntentType = "unknown"
)

// Intent is the result of classifying one message. Category and ServiceName
// are set only for service_booking intents.
type Intent struct {
	Type        IntentType
	Category    string
	ServiceName string
}

// categoryIntent maps a keyword list to a bookable service category.
type categoryIntent struct {
	Keywords    []string
	Category    string
	ServiceName string
}

// categoryIntents is scanned in order; the first keyword hit wins. A message
// mentioning keywords from two categories resolves to the earlier entry —
// an accepted ambiguity, so the ordering must stay fixed.
var categoryIntents = []categoryIntent{
	{
		Keywords: []string{
			"ghar saaf", "safai", "cleaning", "clean", "saaf karo", "karwani", "full cleaning",
			"deep cleaning", "kitchen clean", "saaf", "ghar ki safai", "kamra saaf",
		},
		Category:    "Cleaning",
		ServiceName: "Full House Cleaning",
	},
	{
		Keywords: []string{
			"tap", "nal", "plumbing", "pipe", "leakage", "bathroom", "toilet", "drain",
			"paani", "water", "nal theek", "plumber chahiye", "paani ka masla",
		},
		Category:    "Plumbing",
		ServiceName: "Tap Repair",
	},
	{
		Keywords: []string{
			"bijli", "light", "fan", "switch", "wiring", "electrical", "electrician", "bulb",
			"pankha", "bijli ka kaam", "switch repair", "electrician chahiye",
		},
		Category:    "Electrician",
		ServiceName: "Wiring & Installation",
	},
	{
		Keywords: []string{
			"ac", "air conditioner", "cooling", "thanda", "ac repair", "ac service",
			"ac theek karo", "ac nahi chal raha",
		},
		Category:    "AC Repair",
		ServiceName: "AC Service",
	},
	{
		Keywords: []string{
			"kida", "makoda", "pest", "cockroach", "termite", "insect", "bugs",
			"cockroach control", "kide mare",
		},
		Category:    "Pest Control",
		ServiceName: "General Pest Control",
	},
	{
		Keywords: []string{
			"khana", "cooking", "cook", "food", "meal", "tiffin", "rasoi",
			"khana banana", "cook chahiye", "rasoi ka kaam",
		},
		Category:    "Cooking",
		ServiceName: "Daily Meal Cooking",
	},
}

// Trigger phrase sets, checked in order after the category scan.
var (
	showServicesPhrases = []string{
		"show", "list", "services", "dekho", "dikhao", "batao", "kya hai", "available", "milta",
	}
	myBookingsPhrases = []string{
		"my booking", "bookings", "meri booking", "history", "orders", "mera order",
	}
	contactSupportPhrases = []string{
		"contact", "support", "help", "call", "phone", "sampark", "baat karna", "help chahiye",
	}
	greetingPhrases = []string{
		"hi", "hello", "hey", "namaste", "namaskar", "kaise ho",
	}

	// Confirmation phrase sets for the service_selection step.
	negativePhrases    = []string{"cancel", "nahi", "back"}
	affirmativePhrases = []string{"yes", "confirm", "haan", "book", "karo"}
)

func containsAny(msg string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
