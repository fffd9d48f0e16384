// handlers/panel/panel_home_handler.go
package handlers

import (
	"errors"

	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/middlewares"
	"panel.naal.org.tr/pkg/queryparams"
	"panel.naal.org.tr/pkg/renderer"
	"panel.naal.org.tr/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelHomeHandler panel ana sayfası için handler.
type PanelHomeHandler struct {
	clubService    services.IClubService
	certService    services.ICertificateService
	pdfCertService services.ICertificatePdfService
	urlService     services.IUrlService
}

// NewPanelHomeHandler yeni bir PanelHomeHandler örneği oluşturur.
func NewPanelHomeHandler() *PanelHomeHandler {
	return &PanelHomeHandler{
		clubService:    services.NewClubService(),
		certService:    services.NewCertificateService(),
		pdfCertService: services.NewCertificatePdfService(),
		urlService:     services.NewUrlService(),
	}
}

// HomePage kapsamdaki kayıt sayılarıyla özet sayfasını gösterir.
func (h *PanelHomeHandler) HomePage(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	email, _ := c.Locals("userEmail").(string)

	countParams := queryparams.ListParams{Page: 1, PerPage: 1}

	var certCount, pdfCertCount, urlCount int64
	if result, err := h.certService.List(c.UserContext(), sc, email, countParams); err == nil {
		certCount = result.Meta.TotalItems
	} else {
		configslog.Log.Error("HomePage: sertifika sayısı alınamadı", zap.Error(err))
	}
	if result, err := h.pdfCertService.List(c.UserContext(), sc, email, countParams); err == nil {
		pdfCertCount = result.Meta.TotalItems
	} else {
		configslog.Log.Error("HomePage: PDF sertifika sayısı alınamadı", zap.Error(err))
	}
	if result, err := h.urlService.List(c.UserContext(), sc, countParams); err == nil {
		urlCount = result.Meta.TotalItems
	} else {
		configslog.Log.Error("HomePage: kısa URL sayısı alınamadı", zap.Error(err))
	}

	renderData := fiber.Map{
		"Title":        "Panel",
		"IsSuperadmin": sc.Superadmin,
		"ClubCode":     sc.ClubCode,
		"CertCount":    certCount,
		"PdfCertCount": pdfCertCount,
		"UrlCount":     urlCount,
	}

	if !sc.Superadmin {
		club, err := h.clubService.GetByCode(c.UserContext(), sc, sc.ClubCode)
		if err == nil {
			renderData["Club"] = club
		} else if !errors.Is(err, services.ErrClubNotFound) {
			configslog.Log.Error("HomePage: kulüp bilgisi alınamadı", zap.String("club_code", sc.ClubCode), zap.Error(err))
		}
	}

	return renderer.Render(c, "panel/home", "layouts/panel_layout", renderData)
}
