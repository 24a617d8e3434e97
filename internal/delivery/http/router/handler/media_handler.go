package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"herenow/config"
	"herenow/internal/delivery/http/response"
	"herenow/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler accepts media uploads and stores them in the configured bucket.
type MediaHandler struct {
	store         service.MediaStore
	maxUploadSize int64
	logger        *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(store service.MediaStore, cfg *config.Config, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		store:         store,
		maxUploadSize: cfg.Media.MaxUploadSize,
		logger:        logger,
	}
}

// Upload stores one multipart image file and returns the public URL a draft
// can attach as image media.
func (h *MediaHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing file field")
	}

	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		return response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "Uploaded file is too large", "")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return response.BadRequest(c, "INVALID_INPUT", "Only image uploads are supported")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer src.Close()

	url, err := h.store.Save(c.Request().Context(), fileHeader.Filename, contentType, src)
	if err != nil {
		h.logger.Error("Media upload failed",
			"filename", fileHeader.Filename,
			"error", err.Error(),
		)

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "File uploaded successfully")
}
