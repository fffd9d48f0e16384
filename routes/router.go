package routes

import (
	"panel.naal.org.tr/configs"
	"panel.naal.org.tr/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSessionAndLocals())
	app.Use(configs.SetupCSRF())

	registerAuthRoutes(app)
	registerPanelRoutes(app)
	registerApiRoutes(app)

	app.Get("/", rootRedirector)

	// Public kısa URL rotası diğer gruplardan sonra gelmeli;
	// kulupkodu.naal.org.tr/yol isteklerini yakalar.
	registerRedirectRoutes(app)

	app.Use(notFoundHandler)
}

// initializeSessionAndLocals session store'u Locals'a koyar ve oturum
// varsa temel kullanıcı bilgilerini yükler.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, err := utils.GetUserIDFromSession(sess); err == nil {
			c.Locals("userID", userID)
		}
		if email, err := utils.GetUserEmailFromSession(sess); err == nil {
			c.Locals("userEmail", email)
		}
		if name, ok := sess.Get(utils.SessionKeyUserName).(string); ok {
			c.Locals("userName", name)
		}
		return c.Next()
	}
}

func rootRedirector(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Redirect("/panel/home", fiber.StatusFound)
	}
	return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, "layouts/error_layout")
	}
}
