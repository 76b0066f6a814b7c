package booking

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sajidhasan/resort-booking/internal/model"
	"github.com/sajidhasan/resort-booking/internal/queue"
)

// Errors surfaced by the submission pipeline.  Storage errors pass
// through unchanged; handlers translate these sentinels to 404/409.
var (
	ErrServiceNotFound    = errors.New("service not found")
	ErrServiceUnavailable = errors.New("service is not available for booking")
)

// ServiceLookup resolves the booked listing.
type ServiceLookup interface {
	GetByID(ctx context.Context, id uint64) (model.Service, error)
}

// BookingStore persists the customer and the reservation atomically:
// the customer row is upserted on its email and the reservation row
// inserted in the same transaction, so a failed reservation never
// leaves a half-finished booking behind.  Implementations fill in the
// generated IDs on both records.
type BookingStore interface {
	CreateBooking(ctx context.Context, cust *model.Customer, res *model.Reservation) error
}

// PaymentStore writes the best-effort payment record.
type PaymentStore interface {
	Create(ctx context.Context, p *model.Payment) error
}

// PublishFunc sends the booking-created event to the broker.  A nil
// function disables publishing.
type PublishFunc func(ctx context.Context, ev queue.BookingCreatedEvent) error

// Submitter runs the reservation submission pipeline: validate,
// resolve the service, upsert customer + insert reservation in one
// transaction, then record the payment and publish the event, both
// best-effort.
type Submitter struct {
	Services ServiceLookup
	Bookings BookingStore
	Payments PaymentStore
	Publish  PublishFunc
}

// NewSubmitter constructs a Submitter and panics on nil stores.
func NewSubmitter(services ServiceLookup, bookings BookingStore, payments PaymentStore, publish PublishFunc) *Submitter {
	if services == nil || bookings == nil || payments == nil {
		panic("nil store passed to NewSubmitter")
	}
	return &Submitter{Services: services, Bookings: bookings, Payments: payments, Publish: publish}
}

// Result is returned by Submit on success.
type Result struct {
	Reservation model.Reservation `json:"reservation"`
	Customer    model.Customer    `json:"customer"`
	Nights      int               `json:"nights"`
}

// Submit executes the pipeline for one booking form.  A validation
// failure or an error in the service lookup or the atomic booking step
// aborts the whole submission; a failure to write the payment record
// or to publish the event is logged and swallowed, leaving the
// reservation standing with status pending.
func (s *Submitter) Submit(ctx context.Context, form *Form) (*Result, error) {
	checkIn, checkOut, verr := form.Validate()
	if verr != nil {
		return nil, verr
	}

	svc, err := s.Services.GetByID(ctx, form.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc.Status != model.StatusAvailable {
		return nil, ErrServiceUnavailable
	}

	total := TotalPrice(svc.Price, checkIn, checkOut)

	cust := model.Customer{
		Name:  strings.TrimSpace(form.CustomerName),
		Email: strings.ToLower(strings.TrimSpace(form.CustomerEmail)),
	}
	if p := strings.TrimSpace(form.CustomerPhone); p != "" {
		cust.Phone = &p
	}
	if a := strings.TrimSpace(form.CustomerAddress); a != "" {
		cust.Address = &a
	}

	res := model.Reservation{
		ServiceID:     svc.ID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		GuestCount:    form.GuestCount,
		Price:         total,
		PaymentStatus: model.PaymentPending,
		ServiceType:   svc.Type,
	}
	if r := strings.TrimSpace(form.SpecialRequests); r != "" {
		res.SpecialRequests = &r
	}

	if err := s.Bookings.CreateBooking(ctx, &cust, &res); err != nil {
		return nil, err
	}

	// Best-effort from here on. The reservation is committed and must
	// survive payment-record or broker failures.
	if err := s.Payments.Create(ctx, paymentFor(form, &res)); err != nil {
		log.Printf("booking: payment record for reservation %d failed: %v", res.ID, err)
	}

	if s.Publish != nil {
		ev := queue.BookingCreatedEvent{
			ReservationID: res.ID,
			ServiceID:     svc.ID,
			ServiceName:   svc.Name,
			ServiceType:   svc.Type,
			CustomerName:  cust.Name,
			CustomerEmail: cust.Email,
			CheckInDate:   checkIn.Format(DateLayout),
			CheckOutDate:  checkOut.Format(DateLayout),
			GuestCount:    form.GuestCount,
			TotalPrice:    total,
			PaymentMethod: form.PaymentMethod,
			CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.Publish(ctx, ev); err != nil {
			log.Printf("booking: publish event for reservation %d failed: %v", res.ID, err)
		}
	}

	return &Result{
		Reservation: res,
		Customer:    cust,
		Nights:      Nights(checkIn, checkOut),
	}, nil
}

// paymentFor builds the payment record for the chosen method.  Cash
// bookings have no payer reference, so one is generated to keep the
// column non-empty and traceable.
func paymentFor(form *Form, res *model.Reservation) *model.Payment {
	p := &model.Payment{
		ReservationID: res.ID,
		Method:        form.PaymentMethod,
		Amount:        res.Price,
	}
	switch form.PaymentMethod {
	case model.MethodBkash:
		no := strings.TrimSpace(form.BkashNumber)
		p.AccountNo = &no
		p.TransactionRef = strings.TrimSpace(form.BkashTrxID)
	case model.MethodBank:
		name := strings.TrimSpace(form.BankName)
		p.AccountNo = &name
		p.TransactionRef = strings.TrimSpace(form.BankRef)
	default:
		p.TransactionRef = "cod-" + uuid.NewString()
	}
	return p
}
