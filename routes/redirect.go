package routes

import (
	"panel.naal.org.tr/handlers"

	"github.com/gofiber/fiber/v2"
)

// registerRedirectRoutes kulupkodu.naal.org.tr/yol isteklerini yakalayan
// public rotayı tanımlar. Diğer gruplardan sonra kaydedilmelidir.
func registerRedirectRoutes(app *fiber.App) {
	redirectHandler := handlers.NewRedirectHandler()
	app.Get("/:path", redirectHandler.HandleRedirect)
}
