package configs

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

// CSRFContextKey token'ın Locals üzerinden template'lere taşındığı anahtar.
const CSRFContextKey = "csrf_token"

// SetupCSRF form gönderimlerini koruyan CSRF middleware'ini oluşturur.
// /api altındaki upload proxy uçları fetch ile çağrıldığı için kapsam dışıdır.
func SetupCSRF() fiber.Handler {
	return csrf.New(csrf.Config{
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
		KeyLookup:      "form:csrf_token",
		CookieName:     "panel_csrf",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		ContextKey:     CSRFContextKey,
	})
}
