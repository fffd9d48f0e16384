package routes

import (
	panel_handlers "panel.naal.org.tr/handlers/panel"
	"panel.naal.org.tr/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki rotaları ve middleware'leri tanımlar.
// Kapsam (kulüp / süper yönetici) middleware'de bir kez çözülür.
func registerPanelRoutes(app *fiber.App) {
	homeHandler := panel_handlers.NewPanelHomeHandler()
	clubHandler := panel_handlers.NewPanelClubHandler()
	certHandler := panel_handlers.NewPanelCertificateHandler()
	pdfCertHandler := panel_handlers.NewPanelCertificatePdfHandler()
	urlHandler := panel_handlers.NewPanelUrlHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(
		middlewares.AuthMiddleware,   // 1. Giriş yapmış mı?
		middlewares.StatusMiddleware, // 2. Hesap aktif mi?
		middlewares.ScopeMiddleware(), // 3. Kapsamı çöz
	)

	// --- Ana Sayfa ---
	panelGroup.Get("/home", homeHandler.HomePage)

	// --- Kulüp Profili ---
	// Kulüp kullanıcısı kendi kulübünü düzenler.
	panelGroup.Get("/club", clubHandler.ShowEditClub)
	panelGroup.Post("/club", clubHandler.UpdateClub)

	// --- Dijital Sertifikalar ---
	panelGroup.Get("/certificates", certHandler.ListCertificates)
	panelGroup.Get("/certificates/create", certHandler.ShowCreateCertificate)
	panelGroup.Post("/certificates/create", certHandler.CreateCertificate)
	panelGroup.Get("/certificates/update/:id", certHandler.ShowUpdateCertificate)
	panelGroup.Post("/certificates/update/:id", certHandler.UpdateCertificate)
	panelGroup.Post("/certificates/delete/:id", certHandler.DeleteCertificate)
	panelGroup.Delete("/certificates/delete/:id", certHandler.DeleteCertificate)

	// --- PDF Sertifikalar ---
	panelGroup.Get("/certificates-pdf", pdfCertHandler.ListCertificates)
	panelGroup.Get("/certificates-pdf/create", pdfCertHandler.ShowCreateCertificate)
	panelGroup.Post("/certificates-pdf/create", pdfCertHandler.CreateCertificate)
	panelGroup.Get("/certificates-pdf/update/:id", pdfCertHandler.ShowUpdateCertificate)
	panelGroup.Post("/certificates-pdf/update/:id", pdfCertHandler.UpdateCertificate)
	panelGroup.Post("/certificates-pdf/delete/:id", pdfCertHandler.DeleteCertificate)
	panelGroup.Delete("/certificates-pdf/delete/:id", pdfCertHandler.DeleteCertificate)

	// --- Kısa URL'ler ---
	panelGroup.Get("/urls", urlHandler.ListUrls)
	panelGroup.Get("/urls/create", urlHandler.ShowCreateUrl)
	panelGroup.Post("/urls/create", urlHandler.CreateUrl)
	panelGroup.Get("/urls/update/:id", urlHandler.ShowUpdateUrl)
	panelGroup.Post("/urls/update/:id", urlHandler.UpdateUrl)
	panelGroup.Post("/urls/delete/:id", urlHandler.DeleteUrl)
	panelGroup.Delete("/urls/delete/:id", urlHandler.DeleteUrl)

	// --- Kulüp Yönetimi (yalnızca süper yönetici) ---
	adminGroup := panelGroup.Group("/clubs", middlewares.RequireAdmin())
	adminGroup.Get("/", clubHandler.ListClubs)
	adminGroup.Get("/create", clubHandler.ShowCreateClub)
	adminGroup.Post("/create", clubHandler.CreateClub)
	adminGroup.Get("/edit/:code", clubHandler.ShowEditClub)
	adminGroup.Post("/edit/:code", clubHandler.UpdateClub)
}
