package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sajidhasan/resort-booking/internal/imagestore"
)

// ImageHandler passes listing photos through to the image host so the
// API secret stays server-side. A nil store means the integration is
// not configured and both endpoints answer 503.
type ImageHandler struct {
	Store *imagestore.Client
}

func NewImageHandler(store *imagestore.Client) *ImageHandler {
	return &ImageHandler{Store: store}
}

// Upload accepts a multipart "file" field and returns the hosted URL
// and public id.
func (h *ImageHandler) Upload(c echo.Context) error {
	if h.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "image host not configured"})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no file provided"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot read file"})
	}
	defer src.Close()

	res, err := h.Store.Upload(c.Request().Context(), fh.Filename, src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"url":       res.SecureURL,
		"public_id": res.PublicID,
		"width":     res.Width,
		"height":    res.Height,
		"format":    res.Format,
	})
}

type deleteImageReq struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Delete removes a hosted image by public id, or by URL when only the
// URL is known. An image that is already gone counts as deleted.
func (h *ImageHandler) Delete(c echo.Context) error {
	if h.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "image host not configured"})
	}

	var req deleteImageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	pid := strings.TrimSpace(req.PublicID)
	if pid == "" && req.URL != "" {
		pid = imagestore.ParsePublicID(req.URL)
	}
	if pid == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing public_id or parsable url"})
	}

	if err := h.Store.Destroy(c.Request().Context(), pid); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
