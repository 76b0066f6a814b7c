package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajidhasan/resort-booking/internal/booking"
	"github.com/sajidhasan/resort-booking/internal/model"
	"github.com/sajidhasan/resort-booking/internal/repository"
)

type stubServices struct {
	svc model.Service
	err error
}

func (s *stubServices) GetByID(ctx context.Context, id uint64) (model.Service, error) {
	if s.err != nil {
		return model.Service{}, s.err
	}
	return s.svc, nil
}

type stubBookings struct{}

func (stubBookings) CreateBooking(ctx context.Context, cust *model.Customer, res *model.Reservation) error {
	cust.ID = 5
	res.ID = 99
	res.CustomerID = cust.ID
	return nil
}

type stubPayments struct{}

func (stubPayments) Create(ctx context.Context, p *model.Payment) error { return nil }

func newBookingTest(svcs booking.ServiceLookup) (*echo.Echo, *BookingHandler) {
	e := echo.New()
	sub := booking.NewSubmitter(svcs, stubBookings{}, stubPayments{}, nil)
	return e, NewBookingHandler(sub)
}

func postBooking(e *echo.Echo, h *BookingHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.Create(c)
	return rec
}

const validBookingBody = `{
	"service_id": 7,
	"customer_name": "Anika Rahman",
	"customer_email": "anika@example.com",
	"customer_phone": "01711111111",
	"check_in_date": "2026-09-01",
	"check_out_date": "2026-09-04",
	"guest_count": 2,
	"payment_method": "cash_on_delivery"
}`

func TestBookingCreate(t *testing.T) {
	e, h := newBookingTest(&stubServices{svc: model.Service{
		ID: 7, Name: "Sea Pearl Resort", Type: "Resort", Price: 250, Status: model.StatusAvailable,
	}})

	rec := postBooking(e, h, validBookingBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp bookingResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(99), resp.ReservationID)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, int64(750), resp.TotalPrice)
	assert.Equal(t, model.PaymentPending, resp.PaymentStatus)
}

func TestBookingCreateValidationError(t *testing.T) {
	e, h := newBookingTest(&stubServices{svc: model.Service{Status: model.StatusAvailable}})

	rec := postBooking(e, h, `{"service_id": 7}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "customer_email")
	assert.Contains(t, resp.Fields, "payment_method")
}

func TestBookingCreateUnknownService(t *testing.T) {
	e, h := newBookingTest(&stubServices{err: repository.ErrNotFound})
	rec := postBooking(e, h, validBookingBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingCreateUnavailableService(t *testing.T) {
	e, h := newBookingTest(&stubServices{svc: model.Service{
		ID: 7, Price: 250, Status: model.StatusBooked,
	}})
	rec := postBooking(e, h, validBookingBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBookingCreateBadJSON(t *testing.T) {
	e, h := newBookingTest(&stubServices{})
	rec := postBooking(e, h, `{"service_id": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
