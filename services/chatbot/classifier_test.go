package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCategoryKeywords(t *testing.T) {
	tests := []struct {
		message     string
		category    string
		serviceName string
	}{
		{"ghar ki safai karni hai", "Cleaning", "Full House Cleaning"},
		{"Deep Cleaning chahiye", "Cleaning", "Full House Cleaning"},
		{"nal theek karwana hai", "Plumbing", "Tap Repair"},
		{"bathroom me leakage hai", "Plumbing", "Tap Repair"},
		{"pankha nahi chal raha", "Electrician", "Wiring & Installation"},
		{"switch repair karwana hai", "Electrician", "Wiring & Installation"},
		{"ac theek karo", "AC Repair", "AC Service"},
		{"termite treatment chahiye", "Pest Control", "General Pest Control"},
		{"tiffin service chahiye", "Cooking", "Daily Meal Cooking"},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			intent := Classify(tt.message)
			assert.Equal(t, IntentServiceBooking, intent.Type)
			assert.Equal(t, tt.category, intent.Category)
			assert.Equal(t, tt.serviceName, intent.ServiceName)
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	intent := Classify("  GHAR KI SAFAI  ")
	assert.Equal(t, IntentServiceBooking, intent.Type)
	assert.Equal(t, "Cleaning", intent.Category)
}

// A message hitting keywords from two categories resolves to the one scanned
// first. "bathroom clean karo" contains both "clean" (Cleaning) and
// "bathroom" (Plumbing); Cleaning is scanned first and wins.
func TestClassifyCategoryOrderBreaksTies(t *testing.T) {
	intent := Classify("bathroom clean karo")
	assert.Equal(t, IntentServiceBooking, intent.Type)
	assert.Equal(t, "Cleaning", intent.Category)
}

// Category keywords outrank the trigger phrase sets: "cleaning services
// dikhao" mentions both a category and the show-services trigger, and books.
func TestClassifyCategoryOutranksTriggers(t *testing.T) {
	intent := Classify("cleaning services dikhao")
	assert.Equal(t, IntentServiceBooking, intent.Type)
	assert.Equal(t, "Cleaning", intent.Category)
}

func TestClassifyTriggerPhrases(t *testing.T) {
	tests := []struct {
		message string
		want    IntentType
	}{
		{"services dikhao", IntentShowServices},
		{"kya available hai", IntentShowServices},
		{"meri booking", IntentMyBookings},
		{"mera order kahan hai", IntentMyBookings},
		{"support se baat karna hai", IntentContactSupport},
		{"namaste", IntentGreeting},
		{"hello", IntentGreeting},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			intent := Classify(tt.message)
			assert.Equal(t, tt.want, intent.Type)
			assert.Empty(t, intent.Category)
		})
	}
}

func TestClassifyUnknown(t *testing.T) {
	intent := Classify("asdkjhqwe zzz")
	assert.Equal(t, IntentUnknown, intent.Type)
	assert.Empty(t, intent.Category)
	assert.Empty(t, intent.ServiceName)
}

func TestClassifyEmptyMessage(t *testing.T) {
	assert.Equal(t, IntentUnknown, Classify("").Type)
	assert.Equal(t, IntentUnknown, Classify("   ").Type)
}
