package model

import "time"

// Reservation records a customer's booking of a service for a date
// range.  The total price is computed once at submission time and
// stored; admins may later adjust status, dates or price through the
// dashboard.  ServiceType snapshots the service category at booking
// time so historical reservations survive service edits.
//
// Fields:
//  ID              – primary key identifier.
//  ServiceID       – booked service.
//  CustomerID      – booking customer.
//  CheckInDate     – first night of the stay.
//  CheckOutDate    – morning of departure; strictly after CheckInDate.
//  GuestCount      – number of guests, at least one.
//  SpecialRequests – optional free-text requests.
//  Price           – total computed price for the stay.
//  PaymentStatus   – pending, paid or cancelled.
//  ServiceType     – category snapshot taken from the service.
//  CreatedAt       – creation timestamp.
type Reservation struct {
	ID              uint64    // reservations.id
	ServiceID       uint64    // reservations.s_id
	CustomerID      uint64    // reservations.c_id
	CheckInDate     time.Time // reservations.check_in_date
	CheckOutDate    time.Time // reservations.check_out_date
	GuestCount      int       // reservations.guest_count
	SpecialRequests *string   // reservations.special_requests (nullable)
	Price           int64     // reservations.price
	PaymentStatus   string    // reservations.payment_status
	ServiceType     string    // reservations.service_type
	CreatedAt       time.Time // reservations.created_at
}

// Payment status values.  The field is set to PaymentPending at
// creation and only changes through manual admin edits; there is no
// transition state machine.
const (
	PaymentPending   = "pending"
	PaymentPaid      = "paid"
	PaymentCancelled = "cancelled"
)
