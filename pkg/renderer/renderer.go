// Package renderer handler'ların ortak render akışını sarar: flash
// mesajlarını, CSRF token'ını ve oturum bilgilerini view data'ya ekler.
package renderer

import (
	"net/http"

	"panel.naal.org.tr/configs"
	"panel.naal.org.tr/pkg/flashmessages"
	"panel.naal.org.tr/pkg/scope"

	"github.com/gofiber/fiber/v2"
)

// View data anahtarları. Handler hata mesajını redirect yerine doğrudan
// render edecekse FlashErrorKeyView ile set eder.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// Render view'ı layout ile render eder. data nil olabilir.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}

	// Flash mesajları (handler aynı anahtarı set ettiyse onu ezmeyelim)
	if _, exists := data[FlashSuccessKeyView]; !exists {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashSuccessKey); msg != "" {
			data[FlashSuccessKeyView] = msg
		}
	}
	if _, exists := data[FlashErrorKeyView]; !exists {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashErrorKey); msg != "" {
			data[FlashErrorKeyView] = msg
		}
	}

	// Oturum bilgileri (session middleware'i Locals'a koyar)
	if email, ok := c.Locals("userEmail").(string); ok {
		data["UserEmail"] = email
	}
	if name, ok := c.Locals("userName").(string); ok {
		data["UserName"] = name
	}
	if token, ok := c.Locals(configs.CSRFContextKey).(string); ok {
		data["CSRFToken"] = token
	}
	if sc, ok := c.Locals("scope").(scope.Scope); ok {
		if _, exists := data["IsSuperadmin"]; !exists {
			data["IsSuperadmin"] = sc.Superadmin
		}
	}

	st := http.StatusOK
	if len(status) > 0 {
		st = status[0]
	}
	return c.Status(st).Render(view, data, layout)
}
