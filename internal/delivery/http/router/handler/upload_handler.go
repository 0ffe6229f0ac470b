package handler

import (
	"log/slog"
	"net/http"

	"capsule/config"
	"capsule/internal/delivery/http/response"
	domainerrors "capsule/internal/domain/errors"
	"capsule/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultMaxUploadBytes = 10 << 20 // 10 MiB

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadHandler accepts product and banner images and stores them in the
// media bucket (admin only).
type UploadHandler struct {
	storage  service.MediaStorage
	maxBytes int64
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(storage service.MediaStorage, cfg *config.Config, logger *slog.Logger) *UploadHandler {
	maxBytes := int64(defaultMaxUploadBytes)
	if cfg.Media != nil && cfg.Media.MaxUploadBytes > 0 {
		maxBytes = cfg.Media.MaxUploadBytes
	}

	return &UploadHandler{storage: storage, maxBytes: maxBytes, logger: logger}
}

// Upload stores one multipart image and returns its public URL.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing 'image' form file")
	}

	if fileHeader.Size > h.maxBytes {
		return errors.WithStack(domainerrors.ErrUploadTooLarge.WrapMessage("file exceeds upload limit"))
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if !allowedUploadTypes[contentType] {
		return errors.WithStack(domainerrors.ErrUnsupportedMediaType.WithDetails(contentType))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	url, err := h.storage.Upload(c.Request().Context(), fileHeader.Filename, contentType, src)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Upload successful")
}
