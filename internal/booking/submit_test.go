package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajidhasan/resort-booking/internal/model"
	"github.com/sajidhasan/resort-booking/internal/queue"
)

type fakeServices struct {
	svc model.Service
	err error
}

func (f *fakeServices) GetByID(ctx context.Context, id uint64) (model.Service, error) {
	if f.err != nil {
		return model.Service{}, f.err
	}
	return f.svc, nil
}

type fakeBookings struct {
	calls int
	err   error
}

func (f *fakeBookings) CreateBooking(ctx context.Context, cust *model.Customer, res *model.Reservation) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	cust.ID = 11
	res.ID = 42
	res.CustomerID = cust.ID
	return nil
}

type fakePayments struct {
	calls int
	last  *model.Payment
	err   error
}

func (f *fakePayments) Create(ctx context.Context, p *model.Payment) error {
	f.calls++
	f.last = p
	return f.err
}

func newTestSubmitter(svc model.Service) (*Submitter, *fakeBookings, *fakePayments, *[]queue.BookingCreatedEvent) {
	bookings := &fakeBookings{}
	payments := &fakePayments{}
	events := &[]queue.BookingCreatedEvent{}
	s := NewSubmitter(
		&fakeServices{svc: svc},
		bookings,
		payments,
		func(ctx context.Context, ev queue.BookingCreatedEvent) error {
			*events = append(*events, ev)
			return nil
		},
	)
	return s, bookings, payments, events
}

func availableService() model.Service {
	return model.Service{ID: 7, Name: "Sea Pearl Resort", Type: "Resort", Price: 250, Status: model.StatusAvailable}
}

func TestSubmitHappyPath(t *testing.T) {
	s, bookings, payments, events := newTestSubmitter(availableService())

	res, err := s.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, 1, bookings.calls)
	assert.Equal(t, uint64(42), res.Reservation.ID)
	assert.Equal(t, uint64(11), res.Customer.ID)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, int64(750), res.Reservation.Price)
	assert.Equal(t, model.PaymentPending, res.Reservation.PaymentStatus)
	assert.Equal(t, "Resort", res.Reservation.ServiceType)

	require.Equal(t, 1, payments.calls)
	assert.Equal(t, uint64(42), payments.last.ReservationID)
	assert.Equal(t, int64(750), payments.last.Amount)
	assert.Equal(t, model.MethodCashOnDelivery, payments.last.Method)
	assert.True(t, strings.HasPrefix(payments.last.TransactionRef, "cod-"))

	require.Len(t, *events, 1)
	ev := (*events)[0]
	assert.Equal(t, uint64(42), ev.ReservationID)
	assert.Equal(t, "anika@example.com", ev.CustomerEmail)
	assert.Equal(t, int64(750), ev.TotalPrice)
}

func TestSubmitValidationFailureTouchesNoStore(t *testing.T) {
	s, bookings, payments, events := newTestSubmitter(availableService())

	f := validForm()
	f.CustomerEmail = "nope"
	_, err := s.Submit(context.Background(), f)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "customer_email")
	assert.Zero(t, bookings.calls)
	assert.Zero(t, payments.calls)
	assert.Empty(t, *events)
}

func TestSubmitUnavailableService(t *testing.T) {
	svc := availableService()
	svc.Status = model.StatusMaintenance
	s, bookings, _, _ := newTestSubmitter(svc)

	_, err := s.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Zero(t, bookings.calls)
}

func TestSubmitServiceLookupErrorPassesThrough(t *testing.T) {
	notFound := errors.New("no such row")
	s := NewSubmitter(&fakeServices{err: notFound}, &fakeBookings{}, &fakePayments{}, nil)

	_, err := s.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, notFound)
}

func TestSubmitBookingFailureAborts(t *testing.T) {
	s, bookings, payments, events := newTestSubmitter(availableService())
	bookings.err = errors.New("deadlock")

	_, err := s.Submit(context.Background(), validForm())
	require.Error(t, err)
	assert.Zero(t, payments.calls)
	assert.Empty(t, *events)
}

func TestSubmitPaymentFailureIsSwallowed(t *testing.T) {
	s, _, payments, events := newTestSubmitter(availableService())
	payments.err = errors.New("payments table gone")

	res, err := s.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), res.Reservation.ID)
	assert.Equal(t, model.PaymentPending, res.Reservation.PaymentStatus)
	// The event still goes out; the reservation stands.
	assert.Len(t, *events, 1)
}

func TestSubmitPublishFailureIsSwallowed(t *testing.T) {
	s, _, _, _ := newTestSubmitter(availableService())
	s.Publish = func(ctx context.Context, ev queue.BookingCreatedEvent) error {
		return errors.New("broker down")
	}

	res, err := s.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), res.Reservation.ID)
}

func TestSubmitNilPublishIsAllowed(t *testing.T) {
	s, _, _, _ := newTestSubmitter(availableService())
	s.Publish = nil

	_, err := s.Submit(context.Background(), validForm())
	assert.NoError(t, err)
}

func TestSubmitBkashPaymentRecord(t *testing.T) {
	s, _, payments, _ := newTestSubmitter(availableService())

	f := validForm()
	f.PaymentMethod = model.MethodBkash
	f.BkashNumber = "01712345678"
	f.BkashTrxID = "TRX99881"

	_, err := s.Submit(context.Background(), f)
	require.NoError(t, err)
	require.NotNil(t, payments.last)
	require.NotNil(t, payments.last.AccountNo)
	assert.Equal(t, "01712345678", *payments.last.AccountNo)
	assert.Equal(t, "TRX99881", payments.last.TransactionRef)
}

func TestSubmitBankPaymentRecord(t *testing.T) {
	s, _, payments, _ := newTestSubmitter(availableService())

	f := validForm()
	f.PaymentMethod = model.MethodBank
	f.BankName = "City Bank"
	f.BankRef = "REF8891"

	_, err := s.Submit(context.Background(), f)
	require.NoError(t, err)
	require.NotNil(t, payments.last.AccountNo)
	assert.Equal(t, "City Bank", *payments.last.AccountNo)
	assert.Equal(t, "REF8891", payments.last.TransactionRef)
}

func TestSubmitNormalizesCustomer(t *testing.T) {
	s, _, _, _ := newTestSubmitter(availableService())

	f := validForm()
	f.CustomerName = "  Anika Rahman  "
	f.CustomerEmail = "  ANIKA@Example.COM "

	res, err := s.Submit(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, "Anika Rahman", res.Customer.Name)
	assert.Equal(t, "anika@example.com", res.Customer.Email)
}
