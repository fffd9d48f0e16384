// handlers/panel/panel_club_handler.go
package handlers

import (
	"errors"
	"net/http"

	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/middlewares"
	"panel.naal.org.tr/pkg/flashmessages"
	"panel.naal.org.tr/pkg/listfield"
	"panel.naal.org.tr/pkg/queryparams"
	"panel.naal.org.tr/pkg/renderer"
	"panel.naal.org.tr/pkg/richtext"
	"panel.naal.org.tr/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelClubHandler kulüp profili yönetimi için handler. Kulüp
// kullanıcısı yalnızca kendi kulübünü düzenler; süper yönetici listeden
// kulüp seçerek her kulübü düzenleyebilir.
type PanelClubHandler struct {
	service services.IClubService
}

// NewPanelClubHandler yeni bir PanelClubHandler örneği oluşturur.
func NewPanelClubHandler() *PanelClubHandler {
	return &PanelClubHandler{service: services.NewClubService()}
}

// ListClubs tüm kulüpleri listeler (yalnızca süper yönetici).
func (h *PanelClubHandler) ListClubs(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("ListClubs: query parse hatası", zap.Error(err))
		params = queryparams.DefaultListParams("title")
	}
	params.Validate()

	result, err := h.service.ListAll(c.UserContext(), sc, params)
	renderData := fiber.Map{
		"Title":  "Kulüpler",
		"Result": result,
		"Params": params,
	}
	if err != nil {
		if errors.Is(err, services.ErrClubForbidden) {
			return c.Redirect("/panel/home", fiber.StatusFound)
		}
		renderData[renderer.FlashErrorKeyView] = "Kulüpler listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{}
		configslog.Log.Error("ListClubs hatası", zap.Error(err))
	}
	return renderer.Render(c, "panel/clubs/list", "layouts/panel_layout", renderData, http.StatusOK)
}

// ShowEditClub kulüp düzenleme formunu gösterir. Kulüp kullanıcısı için
// code parametresi yok sayılır ve kendi kulübü açılır.
func (h *PanelClubHandler) ShowEditClub(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)

	code := sc.ClubCode
	if sc.Superadmin {
		code = c.Params("code", c.Query("code"))
		if code == "" {
			return c.Redirect("/panel/clubs", fiber.StatusFound)
		}
	}

	club, err := h.service.GetByCode(c.UserContext(), sc, code)
	if err != nil {
		errMsg := "Kulüp bulunamadı."
		if errors.Is(err, services.ErrClubForbidden) {
			errMsg = "Bu kulübü düzenleme yetkiniz yok."
		} else if !errors.Is(err, services.ErrClubNotFound) {
			errMsg = "Kulüp bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("ShowEditClub hatası", zap.String("code", code), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/panel/home", fiber.StatusFound)
	}

	return renderer.Render(c, "panel/clubs/edit", "layouts/panel_layout", fiber.Map{
		"Title":           "Kulüp Bilgileri",
		"Club":            club,
		"DescriptionHTML": richtext.Render(club.Description),
		"FormData":        flashmessages.GetFlashFormData(c),
	})
}

// UpdateClub kulüp profilini günceller. Formdaki çok satırlı alanlar
// satır başına bir değer olarak gelir.
func (h *PanelClubHandler) UpdateClub(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)
	userID, _ := c.Locals("userID").(uint)

	code := sc.ClubCode
	if sc.Superadmin {
		code = c.Params("code", c.FormValue("code"))
	}
	redirectPath := "/panel/club"
	if sc.Superadmin {
		redirectPath = "/panel/clubs/edit/" + code
	}

	input := services.ClubInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Owners:      listfield.SplitLines(c.FormValue("owners")),
		Instagram:   listfield.SplitLines(c.FormValue("instagram")),
		URLs:        listfield.SplitLines(c.FormValue("urls")),
		Logo:        c.FormValue("logo"),
	}

	if err := h.service.UpdateClub(c.UserContext(), sc, code, input, userID); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect(redirectPath, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kulüp bilgileri güncellendi.")
	return c.Redirect(redirectPath, fiber.StatusFound)
}

// ShowCreateClub yeni kulüp formunu gösterir (yalnızca süper yönetici).
func (h *PanelClubHandler) ShowCreateClub(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/clubs/create", "layouts/panel_layout", fiber.Map{
		"Title":    "Yeni Kulüp",
		"FormData": flashmessages.GetFlashFormData(c),
	})
}

// CreateClub yeni kulüp kaydı açar (yalnızca süper yönetici).
func (h *PanelClubHandler) CreateClub(c *fiber.Ctx) error {
	sc := middlewares.ScopeFromLocals(c)

	code := c.FormValue("code")
	input := services.ClubInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Owners:      listfield.SplitLines(c.FormValue("owners")),
		Instagram:   listfield.SplitLines(c.FormValue("instagram")),
		URLs:        listfield.SplitLines(c.FormValue("urls")),
		Logo:        c.FormValue("logo"),
	}

	club, err := h.service.CreateClub(c.UserContext(), sc, code, input)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, fiber.Map{
			"Code":        code,
			"Title":       input.Title,
			"Description": input.Description,
			"Logo":        input.Logo,
		})
		return c.Redirect("/panel/clubs/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kulüp oluşturuldu: "+club.Title)
	return c.Redirect("/panel/clubs", fiber.StatusFound)
}
