package models

// Chat conversation steps. A step marks a point in a multi-turn flow
// awaiting specific user input.
const (
	StepServiceSelection = "service_selection"
)

// ChatContext is the conversation state round-tripped through the client.
// The server never stores it; the client must echo it back verbatim on the
// next turn. A nil context means the flow is terminal.
type ChatContext struct {
	Step     string `json:"step"`
	Category string `json:"category,omitempty"`
}

// Chat response types.
const (
	ChatGreeting       = "greeting"
	ChatLoginRequired  = "login_required"
	ChatServiceOptions = "service_options"
	ChatServiceList    = "service_list"
	ChatNotFound       = "not_found"
	ChatBookingsList   = "bookings_list"
	ChatNoBookings     = "no_bookings"
	ChatContact        = "contact"
	ChatConfirm        = "confirm_service"
	ChatAskDetails     = "ask_details"
	ChatCancelled      = "cancelled"
	ChatUnknown        = "unknown"
	ChatError          = "error"
)

// Chat action signals interpreted by the client.
const (
	ActionRedirectLogin   = "redirect_login"
	ActionOpenBookingForm = "open_booking_form"
	ActionAddAddress      = "add_address"
)

// ChatResponse is the reply envelope for one chat turn.
type ChatResponse struct {
	Type               string                      `json:"type"`
	Text               string                      `json:"text"`
	Buttons            []string                    `json:"buttons,omitempty"`
	Services           []ServiceSummary            `json:"services,omitempty"`
	ServicesByCategory map[string][]ServiceSummary `json:"servicesByCategory,omitempty"`
	Bookings           []BookingSummary            `json:"bookings,omitempty"`
	Context            *ChatContext                `json:"context,omitempty"`
	Action             string                      `json:"action,omitempty"`
}
