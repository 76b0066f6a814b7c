package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sajidhasan/resort-booking/internal/repository"
)

// AdminHandler bundles the repositories behind the dashboard CRUD
// endpoints.
type AdminHandler struct {
	ServiceRepo     *repository.ServiceRepo
	CustomerRepo    *repository.CustomerRepo
	ReservationRepo *repository.ReservationRepo
	PaymentRepo     *repository.PaymentRepo
	AdminRepo       *repository.AdminRepo
	StatsRepo       *repository.StatsRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any
// dependency is nil.
func NewAdminHandler(services *repository.ServiceRepo, customers *repository.CustomerRepo, reservations *repository.ReservationRepo, payments *repository.PaymentRepo, admins *repository.AdminRepo, stats *repository.StatsRepo) *AdminHandler {
	if services == nil || customers == nil || reservations == nil || payments == nil || admins == nil || stats == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{
		ServiceRepo:     services,
		CustomerRepo:    customers,
		ReservationRepo: reservations,
		PaymentRepo:     payments,
		AdminRepo:       admins,
		StatsRepo:       stats,
	}
}

// getUserID extracts the user_id stored in context by JWTAuth and
// converts it to uint64.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil
}
