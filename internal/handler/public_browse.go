// This file defines the public browsing API: unauthenticated visitors
// list available services, read a single listing and fetch the filter
// dropdown options. Internal fields (managing admin, timestamps) are
// filtered from responses.

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sajidhasan/resort-booking/internal/booking"
	"github.com/sajidhasan/resort-booking/internal/model"
	"github.com/sajidhasan/resort-booking/internal/repository"
)

// PublicHandler aggregates what the unauthenticated endpoints need.
type PublicHandler struct {
	ServiceRepo *repository.ServiceRepo
}

// PublicService is a listing as exposed to visitors.
type PublicService struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Location     string   `json:"location"`
	Price        int64    `json:"price"`
	Status       string   `json:"status"`
	CheckIn      *string  `json:"check_in,omitempty"`
	CheckOut     *string  `json:"check_out,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	Images       []string `json:"images,omitempty"`
	ThumbnailURL *string  `json:"thumbnail_url,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
}

func toPublicService(s model.Service) PublicService {
	out := PublicService{
		ID:           s.ID,
		Name:         s.Name,
		Type:         s.Type,
		Location:     s.Location,
		Price:        s.Price,
		Status:       s.Status,
		Description:  s.Description,
		Amenities:    s.Amenities,
		Images:       s.Images,
		ThumbnailURL: s.ThumbnailURL,
		Rating:       s.Rating,
	}
	if s.CheckIn != nil {
		v := s.CheckIn.Format(booking.DateLayout)
		out.CheckIn = &v
	}
	if s.CheckOut != nil {
		v := s.CheckOut.Format(booking.DateLayout)
		out.CheckOut = &v
	}
	return out
}

// GetServices lists available services, optionally narrowed by the
// four listing filters passed as query parameters: search, type,
// location and price_range. The filters are applied in memory over
// the available set so the price buckets always line up with the
// options returned by GetFilterOptions.
func (h *PublicHandler) GetServices(c echo.Context) error {
	ctx := c.Request().Context()
	services, err := h.ServiceRepo.ListAvailable(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	crit := booking.Criteria{
		Search:     c.QueryParam("search"),
		Type:       c.QueryParam("type"),
		Location:   c.QueryParam("location"),
		PriceRange: c.QueryParam("price_range"),
	}
	matched := booking.Filter(services, crit)

	out := make([]PublicService, 0, len(matched))
	for _, s := range matched {
		out = append(out, toPublicService(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out, "total": len(out)})
}

// GetService returns one listing by id.
func (h *PublicHandler) GetService(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.ServiceRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toPublicService(s))
}

// GetFilterOptions returns the dropdown values for the listing page:
// distinct types and locations plus the generated price buckets, each
// headed by its "All ..." entry.
func (h *PublicHandler) GetFilterOptions(c echo.Context) error {
	services, err := h.ServiceRepo.ListAvailable(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, booking.OptionsFor(services))
}

// nightsForService computes the quoted total for a stay without
// creating anything. Used by the quote endpoint on the detail page.
func (h *PublicHandler) GetQuote(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	checkIn, err1 := time.Parse(booking.DateLayout, c.QueryParam("check_in"))
	checkOut, err2 := time.Parse(booking.DateLayout, c.QueryParam("check_out"))
	if err1 != nil || err2 != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in and check_out must be YYYY-MM-DD"})
	}
	if !checkOut.After(checkIn) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be after check_in"})
	}

	s, err := h.ServiceRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"service_id":    s.ID,
		"nightly_price": s.Price,
		"nights":        booking.Nights(checkIn, checkOut),
		"total_price":   booking.TotalPrice(s.Price, checkIn, checkOut),
	})
}
