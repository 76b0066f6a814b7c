package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sajidhasan/resort-booking/internal/booking"
	"github.com/sajidhasan/resort-booking/internal/repository"
)

// BookingHandler exposes the reservation submission endpoint.
type BookingHandler struct {
	Submitter *booking.Submitter
}

func NewBookingHandler(s *booking.Submitter) *BookingHandler {
	if s == nil {
		panic("nil submitter passed to NewBookingHandler")
	}
	return &BookingHandler{Submitter: s}
}

type bookingResp struct {
	ReservationID uint64 `json:"reservation_id"`
	CustomerID    uint64 `json:"customer_id"`
	ServiceID     uint64 `json:"service_id"`
	CheckInDate   string `json:"check_in_date"`
	CheckOutDate  string `json:"check_out_date"`
	Nights        int    `json:"nights"`
	TotalPrice    int64  `json:"total_price"`
	PaymentStatus string `json:"payment_status"`
}

// Create runs the submission pipeline for one booking form.
// Validation problems come back as a 400 with a per-field error map;
// an unknown service is a 404 and an unavailable one a 409.
func (h *BookingHandler) Create(c echo.Context) error {
	var form booking.Form
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	res, err := h.Submitter.Submit(ctx, &form)
	if err != nil {
		var verr *booking.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": verr.Fields})
		case err == booking.ErrServiceNotFound || err == repository.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		case err == booking.ErrServiceUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"error": "service is not available"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
		}
	}

	return c.JSON(http.StatusCreated, bookingResp{
		ReservationID: res.Reservation.ID,
		CustomerID:    res.Customer.ID,
		ServiceID:     res.Reservation.ServiceID,
		CheckInDate:   res.Reservation.CheckInDate.Format(booking.DateLayout),
		CheckOutDate:  res.Reservation.CheckOutDate.Format(booking.DateLayout),
		Nights:        res.Nights,
		TotalPrice:    res.Reservation.Price,
		PaymentStatus: res.Reservation.PaymentStatus,
	})
}
