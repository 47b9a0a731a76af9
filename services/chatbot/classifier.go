package chatbot

import "strings"

// Classify resolves a free-text message to an Intent. It is deterministic and
// total: the scan order is fixed (booking categories first, then the trigger
// phrase sets) and every message resolves to some intent, falling back to
// unknown. No side effects.
func Classify(message string) Intent {
	msg := strings.ToLower(strings.TrimSpace(message))

	for _, ci := range categoryIntents {
		if containsAny(msg, ci.Keywords) {
			return Intent{
				Type:        IntentServiceBooking,
				Category:    ci.Category,
				ServiceName: ci.ServiceName,
			}
		}
	}

	switch {
	case containsAny(msg, showServicesPhrases):
		return Intent{Type: IntentShowServices}
	case containsAny(msg, myBookingsPhrases):
		return Intent{Type: IntentMyBookings}
	case containsAny(msg, contactSupportPhrases):
		return Intent{Type: IntentContactSupport}
	case containsAny(msg, greetingPhrases):
		return Intent{Type: IntentGreeting}
	}

	return Intent{Type: IntentUnknown}
}
