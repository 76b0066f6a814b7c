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

type serviceReq struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Location     string   `json:"location"`
	Price        int64    `json:"price"`
	Status       string   `json:"status"`
	CheckIn      string   `json:"check_in"`
	CheckOut     string   `json:"check_out"`
	Description  *string  `json:"description"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	Rating       *float64 `json:"rating"`
}

type adminServiceResp struct {
	PublicService
	AdminID   *uint64 `json:"admin_id,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func toAdminService(s model.Service) adminServiceResp {
	return adminServiceResp{
		PublicService: toPublicService(s),
		AdminID:       s.AdminID,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     s.UpdatedAt.Format(time.RFC3339),
	}
}

func (req *serviceReq) apply(s *model.Service) *echo.Map {
	req.Name = strings.TrimSpace(req.Name)
	req.Type = strings.TrimSpace(req.Type)
	req.Location = strings.TrimSpace(req.Location)
	if req.Name == "" || req.Type == "" || req.Location == "" {
		return &echo.Map{"error": "name, type and location are required"}
	}
	if req.Price <= 0 {
		return &echo.Map{"error": "price must be positive"}
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status == "" {
		status = model.StatusAvailable
	}
	switch status {
	case model.StatusAvailable, model.StatusBooked, model.StatusMaintenance:
	default:
		return &echo.Map{"error": "invalid status"}
	}

	s.Name = req.Name
	s.Type = req.Type
	s.Location = req.Location
	s.Price = req.Price
	s.Status = status
	s.Description = req.Description
	s.Amenities = req.Amenities
	s.Images = req.Images
	s.ThumbnailURL = req.ThumbnailURL
	s.Rating = req.Rating

	s.CheckIn, s.CheckOut = nil, nil
	if req.CheckIn != "" {
		t, err := time.Parse(booking.DateLayout, req.CheckIn)
		if err != nil {
			return &echo.Map{"error": "check_in must be YYYY-MM-DD"}
		}
		s.CheckIn = &t
	}
	if req.CheckOut != "" {
		t, err := time.Parse(booking.DateLayout, req.CheckOut)
		if err != nil {
			return &echo.Map{"error": "check_out must be YYYY-MM-DD"}
		}
		s.CheckOut = &t
	}
	return nil
}

// ListServices returns every listing, including booked and
// maintenance ones the public endpoints hide.
func (h *AdminHandler) ListServices(c echo.Context) error {
	services, err := h.ServiceRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]adminServiceResp, 0, len(services))
	for _, s := range services {
		out = append(out, toAdminService(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

func (h *AdminHandler) GetService(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.ServiceRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toAdminService(s))
}

// CreateService adds a listing owned by the calling admin.
func (h *AdminHandler) CreateService(c echo.Context) error {
	var req serviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	var s model.Service
	if bad := req.apply(&s); bad != nil {
		return c.JSON(http.StatusBadRequest, *bad)
	}
	if uid, err := getUserID(c); err == nil {
		s.AdminID = &uid
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.ServiceRepo.Create(ctx, &s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create service failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": s.ID})
}

func (h *AdminHandler) UpdateService(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req serviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.ServiceRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if bad := req.apply(&s); bad != nil {
		return c.JSON(http.StatusBadRequest, *bad)
	}

	if err := h.ServiceRepo.Update(ctx, &s); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update service failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

// DeleteService removes a listing. Listings with reservations cannot
// be removed and come back as a 409.
func (h *AdminHandler) DeleteService(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.ServiceRepo.Delete(ctx, id); err != nil {
		switch err {
		case repository.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "service has reservations"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete service failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
