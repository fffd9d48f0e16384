// middlewares/scope_middleware.go
package middlewares

import (
	"panel.naal.org.tr/configs"
	"panel.naal.org.tr/pkg/flashmessages"
	"panel.naal.org.tr/pkg/scope"

	"github.com/gofiber/fiber/v2"
)

// ScopeLocalKey çözümlenmiş kapsamın Locals anahtarı.
const ScopeLocalKey = "scope"

// ScopeMiddleware oturumdaki e-postadan kapsamı bir kez çözer ve
// Locals'a koyar. Handler'lar kapsamı kendileri türetmez.
func ScopeMiddleware() fiber.Handler {
	resolver := scope.NewResolver(configs.SuperadminEmail(), nil)
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("userEmail").(string)
		if !ok || email == "" {
			return c.Redirect("/auth/login", fiber.StatusFound)
		}
		c.Locals(ScopeLocalKey, resolver.Resolve(email))
		return c.Next()
	}
}

// ScopeFromLocals çözümlenmiş kapsamı okur. ScopeMiddleware'den sonra
// çağrılmalıdır.
func ScopeFromLocals(c *fiber.Ctx) scope.Scope {
	if sc, ok := c.Locals(ScopeLocalKey).(scope.Scope); ok {
		return sc
	}
	return scope.Scope{}
}

// RequireAdmin yalnızca süper yöneticinin erişebileceği rotaları korur.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !ScopeFromLocals(c).Superadmin {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bu sayfaya erişim yetkiniz yok.")
			return c.Redirect("/panel/home", fiber.StatusFound)
		}
		return c.Next()
	}
}
