// handlers/panel/panel_certificate_pdf_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/middlewares"
	"panel.naal.org.tr/models"
	"panel.naal.org.tr/pkg/flashmessages"
	"panel.naal.org.tr/pkg/queryparams"
	"panel.naal.org.tr/pkg/renderer"
	"panel.naal.org.tr/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelCertificatePdfHandler PDF sertifika yönetimi için handler.
// PDF dosyası önce /api/upload ile dış barındırmaya aktarılır, form
// yalnızca dönen bağlantıyı gönderir.
type PanelCertificatePdfHandler struct {
	service     services.ICertificatePdfService
	clubService services.IClubService
}

// NewPanelCertificatePdfHandler yeni bir PanelCertificatePdfHandler örneği oluşturur.
func NewPanelCertificatePdfHandler() *PanelCertificatePdfHandler {
	return &PanelCertificatePdfHandler{
		service:     services.NewCertificatePdfService(),
		clubService: services.NewClubService(),
	}
}

// ListCertificates kapsamdaki PDF sertifikaları listeler.
func (h *PanelCertificatePdfHandler) ListCertificates(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	email, _ := c.Locals("userEmail").(string)

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("ListPdfCertificates: query parse hatası", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.List(c.UserContext(), sc, email, params)
	renderData := fiber.Map{
		"Title":        "PDF Sertifikalar",
		"Result":       result,
		"Params":       params,
		"IsSuperadmin": sc.Superadmin,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "PDF sertifikalar listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.CertificatePdf{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("ListPdfCertificates hatası", zap.String("email", email), zap.Error(err))
	}
	return renderer.Render(c, "panel/certificates_pdf/list", "layouts/panel_layout", renderData, http.StatusOK)
}

// ShowCreateCertificate yeni PDF sertifika formunu gösterir.
func (h *PanelCertificatePdfHandler) ShowCreateCertificate(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	return renderer.Render(c, "panel/certificates_pdf/create", "layouts/panel_layout", fiber.Map{
		"Title":        "Yeni PDF Sertifika",
		"IsSuperadmin": sc.Superadmin,
		"ClubCodes":    clubCodesForSelector(c, h.clubService, sc),
		"FormData":     flashmessages.GetFlashFormData(c),
	})
}

// CreateCertificate yeni PDF sertifika kaydı açar.
func (h *PanelCertificatePdfHandler) CreateCertificate(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	email, _ := c.Locals("userEmail").(string)

	input := services.CertificatePdfInput{
		UID:      c.FormValue("uid"),
		Given:    c.FormValue("given"),
		CertName: c.FormValue("cert_name"),
		PdfLink:  c.FormValue("pdf_link"),
		From:     c.FormValue("from"),
		Date:     c.FormValue("date"),
	}

	defaultFrom := resolveCreatorClub(c, h.clubService, sc)
	cert, err := h.service.Create(c.UserContext(), sc, email, input, defaultFrom)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect("/panel/certificates-pdf/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "PDF sertifika oluşturuldu: "+cert.UID)
	return c.Redirect("/panel/certificates-pdf", fiber.StatusFound)
}

// ShowUpdateCertificate PDF sertifika düzenleme formunu gösterir.
func (h *PanelCertificatePdfHandler) ShowUpdateCertificate(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	email, _ := c.Locals("userEmail").(string)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/certificates-pdf")
	}

	cert, err := h.service.GetByID(c.UserContext(), uint(id), sc, email)
	if err != nil {
		errMsg := "PDF sertifika bulunamadı veya düzenleme yetkiniz yok."
		if !errors.Is(err, services.ErrPdfCertNotFound) {
			errMsg = "PDF sertifika bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("ShowUpdatePdfCertificate hatası", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/panel/certificates-pdf")
	}

	return renderer.Render(c, "panel/certificates_pdf/update", "layouts/panel_layout", fiber.Map{
		"Title":       "PDF Sertifikayı Düzenle",
		"Certificate": cert,
		"FormData":    flashmessages.GetFlashFormData(c),
	})
}

// UpdateCertificate PDF sertifika bilgilerini günceller.
func (h *PanelCertificatePdfHandler) UpdateCertificate(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	email, _ := c.Locals("userEmail").(string)
	userID, _ := c.Locals("userID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/certificates-pdf")
	}
	redirectPathOnError := fmt.Sprintf("/panel/certificates-pdf/update/%d", id)

	input := services.CertificatePdfInput{
		UID:      c.FormValue("uid"),
		Given:    c.FormValue("given"),
		CertName: c.FormValue("cert_name"),
		PdfLink:  c.FormValue("pdf_link"),
		From:     c.FormValue("from"),
		Date:     c.FormValue("date"),
	}

	if err := h.service.Update(c.UserContext(), uint(id), sc, email, input, userID); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		if errors.Is(err, services.ErrPdfCertNotFound) {
			return c.Redirect("/panel/certificates-pdf")
		}
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "PDF sertifika güncellendi.")
	return c.Redirect("/panel/certificates-pdf", fiber.StatusFound)
}

// DeleteCertificate PDF sertifikayı siler. Dış barındırmadaki dosya
// silinmez, yalnızca kayıt kaldırılır.
func (h *PanelCertificatePdfHandler) DeleteCertificate(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	email, _ := c.Locals("userEmail").(string)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/certificates-pdf")
	}

	if err := h.service.Delete(c.UserContext(), uint(id), sc, email); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "PDF sertifika silindi.")
	}
	return c.Redirect("/panel/certificates-pdf", fiber.StatusSeeOther)
}
