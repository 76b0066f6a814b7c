package model

import "time"

// Payment is a best-effort log of the payment method chosen for a
// reservation.  It is not a payment-gateway integration: the row is
// written after the reservation commits and a failure to write it is
// swallowed, leaving the reservation intact.
//
// Fields:
//  ID             – primary key identifier.
//  ReservationID  – reservation this record belongs to.
//  Method         – cash_on_delivery, bkash or bank.
//  Amount         – amount equal to the reservation's total price.
//  AccountNo      – payer account number (bkash) or bank name (bank).
//  TransactionRef – transaction id / bank reference; generated for
//                   cash_on_delivery where the payer supplies none.
//  CreatedAt      – creation timestamp.
type Payment struct {
	ID             uint64    // payments.id
	ReservationID  uint64    // payments.reservation_id
	Method         string    // payments.method
	Amount         int64     // payments.amount
	AccountNo      *string   // payments.account_no (nullable)
	TransactionRef string    // payments.transaction_ref
	CreatedAt      time.Time // payments.created_at
}

// Payment method values accepted by the booking form.
const (
	MethodCashOnDelivery = "cash_on_delivery"
	MethodBkash          = "bkash"
	MethodBank           = "bank"
)
