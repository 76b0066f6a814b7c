package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sajidhasan/resort-booking/internal/repository"
)

// CustomerHandler serves the authenticated customer's own data.
type CustomerHandler struct {
	Users        *repository.UserRepo
	Reservations *repository.ReservationRepo
}

func NewCustomerHandler(u *repository.UserRepo, r *repository.ReservationRepo) *CustomerHandler {
	if u == nil || r == nil {
		panic("nil repository passed to NewCustomerHandler")
	}
	return &CustomerHandler{Users: u, Reservations: r}
}

// MyBookings lists the reservations placed under the caller's email,
// newest first. Bookings are keyed by customer email rather than user
// id, so reservations placed before the account was registered are
// included too.
func (h *CustomerHandler) MyBookings(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	items, err := h.Reservations.ListByCustomerEmail(ctx, u.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
