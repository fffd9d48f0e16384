package routes

import (
	api_handlers "panel.naal.org.tr/handlers/api"
	"panel.naal.org.tr/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerApiRoutes /api altındaki yükleme uç noktalarını tanımlar.
// CSRF middleware'i /api önekini atlar; erişim oturum ile korunur.
func registerApiRoutes(app *fiber.App) {
	uploadHandler := api_handlers.NewUploadHandler()

	apiGroup := app.Group("/api")
	apiGroup.Use(
		middlewares.AuthMiddleware,
		middlewares.StatusMiddleware,
		middlewares.ScopeMiddleware(),
	)

	apiGroup.Post("/upload", uploadHandler.UploadPdf)
	apiGroup.Post("/upload-image", uploadHandler.UploadImage)
}
