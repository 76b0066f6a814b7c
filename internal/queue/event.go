// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// BookingCreatedEvent is published when a reservation has been stored.
// It carries enough information for downstream consumers to log and to
// notify the customer without querying the primary database.
type BookingCreatedEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	ServiceID     uint64 `json:"service_id"`
	ServiceName   string `json:"service_name"`
	ServiceType   string `json:"service_type"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CheckInDate   string `json:"check_in_date"`
	CheckOutDate  string `json:"check_out_date"`
	GuestCount    int    `json:"guest_count"`
	TotalPrice    int64  `json:"total_price"`
	PaymentMethod string `json:"payment_method"`
	CreatedAt     string `json:"created_at"`
}
