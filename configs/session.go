package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession cookie tabanlı session store'u oluşturur.
// Varsayılan in-memory storage kullanılır; tek instance deployment için yeterli.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:panel_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}
