// handlers/panel/panel_certificate_handler.go
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
	"panel.naal.org.tr/pkg/scope"
	"panel.naal.org.tr/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelCertificateHandler dijital sertifika yönetimi için handler.
type PanelCertificateHandler struct {
	service     services.ICertificateService
	clubService services.IClubService
}

// NewPanelCertificateHandler yeni bir PanelCertificateHandler örneği oluşturur.
func NewPanelCertificateHandler() *PanelCertificateHandler {
	return &PanelCertificateHandler{
		service:     services.NewCertificateService(),
		clubService: services.NewClubService(),
	}
}

// resolveCreatorClub oluşturulan kaydın imzalanacağı kulüp adını bulur.
// Kulüp kullanıcısında kendi kulübünün adı, süper yöneticide formdan
// seçilen kulübün adı kullanılır.
func resolveCreatorClub(c *fiber.Ctx, clubService services.IClubService, sc scope.Scope) string {
	code := sc.ClubCode
	if sc.Superadmin {
		code = c.FormValue("club_code")
		if code == "" {
			return ""
		}
	}
	club, err := clubService.GetByCode(c.UserContext(), sc, code)
	if err != nil {
		if !errors.Is(err, services.ErrClubNotFound) {
			configslog.Log.Error("resolveCreatorClub: kulüp sorgusu başarısız", zap.String("code", code), zap.Error(err))
		}
		return ""
	}
	return club.Title
}

// clubCodesForSelector süper yöneticinin açılır listesi için kodları döndürür.
func clubCodesForSelector(c *fiber.Ctx, clubService services.IClubService, sc scope.Scope) []string {
	if !sc.Superadmin {
		return nil
	}
	codes, err := clubService.ListCodes(c.UserContext())
	if err != nil {
		configslog.Log.Error("Kulüp kodları alınamadı", zap.Error(err))
		return nil
	}
	return codes
}

// ListCertificates kapsamdaki dijital sertifikaları listeler.
func (h *PanelCertificateHandler) ListCertificates(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	email, _ := c.Locals("userEmail").(string)

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("ListCertificates: query parse hatası", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.List(c.UserContext(), sc, email, params)
	renderData := fiber.Map{
		"Title":        "Dijital Sertifikalar",
		"Result":       result,
		"Params":       params,
		"IsSuperadmin": sc.Superadmin,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Sertifikalar listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Certificate{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("ListCertificates hatası", zap.String("email", email), zap.Error(err))
	}
	return renderer.Render(c, "panel/certificates/list", "layouts/panel_layout", renderData, http.StatusOK)
}

// ShowCreateCertificate yeni sertifika formunu gösterir.
func (h *PanelCertificateHandler) ShowCreateCertificate(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	return renderer.Render(c, "panel/certificates/create", "layouts/panel_layout", fiber.Map{
		"Title":        "Yeni Dijital Sertifika",
		"IsSuperadmin": sc.Superadmin,
		"ClubCodes":    clubCodesForSelector(c, h.clubService, sc),
		"FormData":     flashmessages.GetFlashFormData(c),
	})
}

// CreateCertificate yeni dijital sertifika kaydı açar.
func (h *PanelCertificateHandler) CreateCertificate(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	email, _ := c.Locals("userEmail").(string)

	input := services.CertificateInput{
		Creator: c.FormValue("creator"),
		Head:    c.FormValue("head"),
		Given:   c.FormValue("given"),
		Date:    c.FormValue("date"),
		FileID:  c.FormValue("file_id"),
	}

	defaultCreator := resolveCreatorClub(c, h.clubService, sc)
	cert, err := h.service.Create(c.UserContext(), sc, email, input, defaultCreator)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect("/panel/certificates/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Sertifika oluşturuldu: "+cert.FileID)
	return c.Redirect("/panel/certificates", fiber.StatusFound)
}

// ShowUpdateCertificate sertifika düzenleme formunu gösterir.
func (h *PanelCertificateHandler) ShowUpdateCertificate(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	email, _ := c.Locals("userEmail").(string)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/certificates")
	}

	cert, err := h.service.GetByID(c.UserContext(), uint(id), sc, email)
	if err != nil {
		errMsg := "Sertifika bulunamadı veya düzenleme yetkiniz yok."
		if !errors.Is(err, services.ErrCertNotFound) {
			errMsg = "Sertifika bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("ShowUpdateCertificate hatası", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/panel/certificates")
	}

	return renderer.Render(c, "panel/certificates/update", "layouts/panel_layout", fiber.Map{
		"Title":       "Sertifikayı Düzenle",
		"Certificate": cert,
		"FormData":    flashmessages.GetFlashFormData(c),
	})
}

// UpdateCertificate sertifika bilgilerini günceller.
func (h *PanelCertificateHandler) UpdateCertificate(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	email, _ := c.Locals("userEmail").(string)
	userID, _ := c.Locals("userID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/certificates")
	}
	redirectPathOnError := fmt.Sprintf("/panel/certificates/update/%d", id)

	input := services.CertificateInput{
		Creator: c.FormValue("creator"),
		Head:    c.FormValue("head"),
		Given:   c.FormValue("given"),
		Date:    c.FormValue("date"),
		FileID:  c.FormValue("file_id"),
	}

	if err := h.service.Update(c.UserContext(), uint(id), sc, email, input, userID); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		if errors.Is(err, services.ErrCertNotFound) {
			return c.Redirect("/panel/certificates")
		}
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Sertifika güncellendi.")
	return c.Redirect("/panel/certificates", fiber.StatusFound)
}

// DeleteCertificate sertifikayı siler.
func (h *PanelCertificateHandler) DeleteCertificate(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	email, _ := c.Locals("userEmail").(string)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/certificates")
	}

	if err := h.service.Delete(c.UserContext(), uint(id), sc, email); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Sertifika silindi.")
	}
	return c.Redirect("/panel/certificates", fiber.StatusSeeOther)
}
