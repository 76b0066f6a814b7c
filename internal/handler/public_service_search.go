package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sajidhasan/resort-booking/internal/booking"
	"github.com/sajidhasan/resort-booking/internal/repository"
)

// SearchServices is the SQL-side search used for large catalogues:
// name substring, exact type and location, a price bucket label and
// pagination. The price_range label is resolved against the buckets
// generated from the current catalogue-wide min and max price; an
// unknown label simply deactivates the price criterion, matching how
// the in-memory filter treats it.
func (h *PublicHandler) SearchServices(c echo.Context) error {
	ctx := c.Request().Context()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	ps, _ := strconv.Atoi(c.QueryParam("page_size"))
	if ps < 1 {
		ps = 20
	}
	if ps > 100 {
		ps = 100
	}

	q := repository.ServiceSearchQuery{
		Name:     strings.TrimSpace(c.QueryParam("name")),
		Type:     strings.TrimSpace(c.QueryParam("type")),
		Location: strings.TrimSpace(c.QueryParam("location")),
		Page:     page,
		PageSize: ps,
	}
	if q.Type == booking.AllTypes {
		q.Type = ""
	}
	if q.Location == booking.AllLocations {
		q.Location = ""
	}

	if label := strings.TrimSpace(c.QueryParam("price_range")); label != "" && label != booking.AllPrices {
		min, max, ok, err := h.ServiceRepo.MinMaxPrice(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if ok {
			for _, b := range booking.PriceBuckets(min, max) {
				if b.Label != label {
					continue
				}
				switch {
				case b.OpenLow:
					v := b.Max
					q.PriceUnder = &v
				case b.OpenHigh:
					v := b.Min
					q.PriceOver = &v
				default:
					lo, hi := b.Min, b.Max
					q.PriceMin, q.PriceMax = &lo, &hi
				}
				break
			}
		}
	}

	items, total, err := h.ServiceRepo.Search(ctx, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	out := make([]PublicService, 0, len(items))
	for _, s := range items {
		out = append(out, toPublicService(s))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":      out,
		"total":     total,
		"page":      page,
		"page_size": ps,
	})
}
