package models

import "time"

// Booking statuses.
const (
	BookingPending    = "Pending"
	BookingAccepted   = "Accepted"
	BookingInProgress = "In Progress"
	BookingCompleted  = "Completed"
	BookingCancelled  = "Cancelled"
)

// BookingStatuses is the closed set of booking statuses.
var BookingStatuses = []string{
	BookingPending,
	BookingAccepted,
	BookingInProgress,
	BookingCompleted,
	BookingCancelled,
}

// IsValidBookingStatus reports whether status belongs to the closed set.
func IsValidBookingStatus(status string) bool {
	for _, s := range BookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Payment methods and statuses. Gateway fields below are schema placeholders;
// no payment gateway is integrated.
const (
	PaymentCashOnService = "Cash on Service"
	PaymentOnline        = "Online Payment"

	PaymentStatusPending  = "Pending"
	PaymentStatusPaid     = "Paid"
	PaymentStatusFailed   = "Failed"
	PaymentStatusRefunded = "Refunded"
)

// Booking represents a confirmed booking record.
type Booking struct {
	ID                   string     `bson:"id" json:"id"`
	BookingID            string     `bson:"booking_id" json:"bookingId"` // Human-readable display id, e.g. "BK1714058..."
	UserID               string     `bson:"user_id" json:"userId"`
	ServiceID            string     `bson:"service_id" json:"serviceId"`
	ScheduledDate        string     `bson:"scheduled_date" json:"scheduledDate"` // "YYYY-MM-DD"
	ScheduledTime        string     `bson:"scheduled_time" json:"scheduledTime"` // "HH:mm"
	Address              Address    `bson:"address" json:"address"`
	Status               string     `bson:"status" json:"status"`
	EstimatedArrivalTime string     `bson:"estimated_arrival_time" json:"estimatedArrivalTime"`
	ActualArrivalTime    string     `bson:"actual_arrival_time,omitempty" json:"actualArrivalTime,omitempty"`
	TotalPrice           float64    `bson:"total_price" json:"totalPrice"`
	SpecialInstructions  string     `bson:"special_instructions,omitempty" json:"specialInstructions,omitempty"`
	Rating               int        `bson:"rating,omitempty" json:"rating,omitempty"` // 1..5
	Review               string     `bson:"review,omitempty" json:"review,omitempty"`
	PaymentMethod        string     `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus        string     `bson:"payment_status" json:"paymentStatus"`
	GatewayOrderID       string     `bson:"gateway_order_id,omitempty" json:"-"`
	GatewayPaymentID     string     `bson:"gateway_payment_id,omitempty" json:"-"`
	GatewaySignature     string     `bson:"gateway_signature,omitempty" json:"-"`
	CreatedAt            time.Time  `bson:"created_at" json:"createdAt"`
	CompletedAt          *time.Time `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
}

// BookingSummary is the compact booking shape embedded in chat responses.
type BookingSummary struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"bookingId"`
	ServiceName string  `json:"serviceName"`
	ServiceIcon string  `json:"serviceIcon"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Price       float64 `json:"price"`
}

// QuickBookResult is returned to the chat client after a quick booking.
type QuickBookResult struct {
	BookingID string  `json:"bookingId"`
	Service   string  `json:"service"`
	Date      string  `json:"date"` // "DD/MM/YYYY"
	Time      string  `json:"time"` // "HH:mm"
	ETA       string  `json:"eta"`  // "hh:mm AM/PM"
	Price     float64 `json:"price"`
}

// PopulatedBooking carries a booking together with its user and service,
// the shape the admin endpoints return.
type PopulatedBooking struct {
	Booking `bson:",inline"`
	User    *User    `bson:"user,omitempty" json:"user,omitempty"`
	Service *Service `bson:"service,omitempty" json:"service,omitempty"`
}
