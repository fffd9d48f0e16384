// handlers/panel/panel_url_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"panel.naal.org.tr/configs"
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

// PanelUrlHandler kısa URL yönetimi için handler. Kayıtlar
// kulupkodu.naal.org.tr/yol adresinden hedefe yönlendirir.
type PanelUrlHandler struct {
	service     services.IUrlService
	clubService services.IClubService
}

// NewPanelUrlHandler yeni bir PanelUrlHandler örneği oluşturur.
func NewPanelUrlHandler() *PanelUrlHandler {
	return &PanelUrlHandler{
		service:     services.NewUrlService(),
		clubService: services.NewClubService(),
	}
}

// ListUrls kapsamdaki kısa URL'leri listeler.
func (h *PanelUrlHandler) ListUrls(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("ListUrls: query parse hatası", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.List(c.UserContext(), sc, params)
	renderData := fiber.Map{
		"Title":        "Kısa URL'ler",
		"Result":       result,
		"Params":       params,
		"IsSuperadmin": sc.Superadmin,
		"BaseDomain":   configs.BaseDomain(),
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Kısa URL'ler listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.UrlRedirect{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("ListUrls hatası", zap.Error(err))
	}
	return renderer.Render(c, "panel/urls/list", "layouts/panel_layout", renderData, http.StatusOK)
}

// ShowCreateUrl yeni kısa URL formunu gösterir.
func (h *PanelUrlHandler) ShowCreateUrl(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	return renderer.Render(c, "panel/urls/create", "layouts/panel_layout", fiber.Map{
		"Title":        "Yeni Kısa URL",
		"IsSuperadmin": sc.Superadmin,
		"ClubCodes":    clubCodesForSelector(c, h.clubService, sc),
		"BaseDomain":   configs.BaseDomain(),
		"FormData":     flashmessages.GetFlashFormData(c),
	})
}

// CreateUrl yeni kısa URL kaydı açar.
func (h *PanelUrlHandler) CreateUrl(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)

	input := services.UrlInput{
		ClubCode: c.FormValue("club_code"),
		Path:     c.FormValue("path"),
		Redirect: c.FormValue("redirect"),
	}

	record, err := h.service.Create(c.UserContext(), sc, input)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect("/panel/urls/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
		fmt.Sprintf("Kısa URL oluşturuldu: %s.%s/%s", record.ClubCode, configs.BaseDomain(), record.Path))
	return c.Redirect("/panel/urls", fiber.StatusFound)
}

// ShowUpdateUrl kısa URL düzenleme formunu gösterir.
func (h *PanelUrlHandler) ShowUpdateUrl(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/urls")
	}

	record, err := h.service.GetByID(c.UserContext(), uint(id), sc)
	if err != nil {
		errMsg := "Kısa URL bulunamadı veya düzenleme yetkiniz yok."
		if !errors.Is(err, services.ErrUrlNotFound) {
			errMsg = "Kısa URL bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("ShowUpdateUrl hatası", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/panel/urls")
	}

	return renderer.Render(c, "panel/urls/update", "layouts/panel_layout", fiber.Map{
		"Title":        "Kısa URL Düzenle",
		"Url":          record,
		"IsSuperadmin": sc.Superadmin,
		"ClubCodes":    clubCodesForSelector(c, h.clubService, sc),
		"BaseDomain":   configs.BaseDomain(),
		"FormData":     flashmessages.GetFlashFormData(c),
	})
}

// UpdateUrl kısa URL kaydını günceller.
func (h *PanelUrlHandler) UpdateUrl(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	userID, _ := c.Locals("userID").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/urls")
	}
	redirectPathOnError := fmt.Sprintf("/panel/urls/update/%d", id)

	input := services.UrlInput{
		ClubCode: c.FormValue("club_code"),
		Path:     c.FormValue("path"),
		Redirect: c.FormValue("redirect"),
	}

	if err := h.service.Update(c.UserContext(), uint(id), sc, input, userID); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		if errors.Is(err, services.ErrUrlNotFound) {
			return c.Redirect("/panel/urls")
		}
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kısa URL güncellendi.")
	return c.Redirect("/panel/urls", fiber.StatusFound)
}

// DeleteUrl kısa URL kaydını siler.
func (h *PanelUrlHandler) DeleteUrl(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/panel/urls")
	}

	if err := h.service.Delete(c.UserContext(), uint(id), sc); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kısa URL silindi.")
	}
	return c.Redirect("/panel/urls", fiber.StatusSeeOther)
}
