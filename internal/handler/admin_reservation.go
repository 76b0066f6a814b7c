package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sajidhasan/resort-booking/internal/booking"
	"github.com/sajidhasan/resort-booking/internal/model"
	"github.com/sajidhasan/resort-booking/internal/repository"
)

type reservationUpdateReq struct {
	CheckInDate   *string `json:"check_in_date"`
	CheckOutDate  *string `json:"check_out_date"`
	GuestCount    *int    `json:"guest_count"`
	Price         *int64  `json:"price"`
	PaymentStatus *string `json:"payment_status"`
}

type paymentResp struct {
	ID             uint64  `json:"id"`
	Method         string  `json:"method"`
	Amount         int64   `json:"amount"`
	AccountNo      *string `json:"account_no,omitempty"`
	TransactionRef string  `json:"transaction_ref"`
	CreatedAt      string  `json:"created_at"`
}

func (h *AdminHandler) ListReservations(c echo.Context) error {
	items, err := h.ReservationRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetReservation returns one reservation with its payment records.
func (h *AdminHandler) GetReservation(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	d, err := h.ReservationRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	payments, err := h.PaymentRepo.ListByReservation(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	pout := make([]paymentResp, 0, len(payments))
	for _, p := range payments {
		pout = append(pout, paymentResp{
			ID:             p.ID,
			Method:         p.Method,
			Amount:         p.Amount,
			AccountNo:      p.AccountNo,
			TransactionRef: p.TransactionRef,
			CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservation": d, "payments": pout})
}

// UpdateReservation applies the fields present in the body and leaves
// the rest untouched.
func (h *AdminHandler) UpdateReservation(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req reservationUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	for _, d := range []*string{req.CheckInDate, req.CheckOutDate} {
		if d == nil {
			continue
		}
		if _, err := time.Parse(booking.DateLayout, *d); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "dates must be YYYY-MM-DD"})
		}
	}
	if req.GuestCount != nil && *req.GuestCount < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guest_count must be at least 1"})
	}
	if req.Price != nil && *req.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must not be negative"})
	}
	if req.PaymentStatus != nil {
		s := strings.ToLower(strings.TrimSpace(*req.PaymentStatus))
		switch s {
		case model.PaymentPending, model.PaymentPaid, model.PaymentCancelled:
			req.PaymentStatus = &s
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment_status"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.ReservationRepo.Update(ctx, id, repository.ReservationUpdate{
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		GuestCount:    req.GuestCount,
		Price:         req.Price,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update reservation failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

// DeleteReservation removes a reservation together with its payment
// records.
func (h *AdminHandler) DeleteReservation(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.ReservationRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete reservation failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
