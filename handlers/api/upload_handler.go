// handlers/api/upload_handler.go
package handlers

import (
	"errors"

	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UploadHandler tarayıcıdan gelen dosyaları dış barındırma servislerine
// aktaran JSON uç noktaları. API anahtarları sunucuda kalır.
type UploadHandler struct {
	service services.IUploadService
}

// NewUploadHandler yeni bir UploadHandler örneği oluşturur.
func NewUploadHandler() *UploadHandler {
	return &UploadHandler{service: services.NewUploadService()}
}

// NewUploadHandlerWithService test için servis enjekte edilebilen kurucu.
func NewUploadHandlerWithService(service services.IUploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// UploadPdf PDF dosyasını Catbox'a aktarır.
// POST /api/upload, multipart alan adı "file".
// Başarı: {"url": "..."} - Hata: {"error": "..."}
func (h *UploadHandler) UploadPdf(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": services.ErrUploadFileRequired.Error()})
	}

	link, err := h.service.UploadPdf(c.UserContext(), file)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, services.ErrUploadNotPdf) || errors.Is(err, services.ErrUploadPdfTooLarge) || errors.Is(err, services.ErrUploadFileRequired) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"url": link})
}

// UploadImage görseli ImgBB'ye aktarır.
// POST /api/upload-image, multipart alan adı "image".
// Başarı: {"success": true, "url": "..."} - Hata: {"success": false, "error": "..."}
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   services.ErrUploadFileRequired.Error(),
		})
	}

	link, err := h.service.UploadImage(c.UserContext(), file)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, services.ErrUploadNotImage) || errors.Is(err, services.ErrUploadImageTooLarge) || errors.Is(err, services.ErrUploadFileRequired) {
			status = fiber.StatusBadRequest
		}
		if errors.Is(err, services.ErrUploadNoAPIKey) {
			configslog.Log.Error("UploadImage: IBB_API_KEY tanımlı değil", zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "url": link})
}
