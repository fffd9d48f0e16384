// handlers/redirect_handler.go
package handlers

import (
	"errors"
	"strings"

	"panel.naal.org.tr/configs"
	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RedirectHandler kulupkodu.naal.org.tr/yol biçimindeki public kısa
// URL'leri hedeflerine yönlendirir. İstekler anonimdir, kapsam yoktur.
type RedirectHandler struct {
	service    services.IUrlService
	baseDomain string
}

// NewRedirectHandler yeni bir RedirectHandler örneği oluşturur.
func NewRedirectHandler() *RedirectHandler {
	return &RedirectHandler{
		service:    services.NewUrlService(),
		baseDomain: configs.BaseDomain(),
	}
}

// clubCodeFromHost istek host'unun ilk etiketini kulüp kodu olarak
// çözer. Ana alan adının kendisi veya panel/www alt alanları kod değildir.
func (h *RedirectHandler) clubCodeFromHost(host string) string {
	host = strings.ToLower(host)
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	if host == h.baseDomain || !strings.HasSuffix(host, "."+h.baseDomain) {
		return ""
	}
	label := strings.TrimSuffix(host, "."+h.baseDomain)
	if label == "" || strings.Contains(label, ".") || label == "www" || label == "panel" {
		return ""
	}
	return label
}

// HandleRedirect eşleşen kayıt için 302, aksi halde 404 döndürür.
func (h *RedirectHandler) HandleRedirect(c *fiber.Ctx) error {
	clubCode := h.clubCodeFromHost(c.Hostname())
	path := c.Params("path")

	if clubCode == "" || path == "" {
		return renderNotFound(c)
	}

	target, err := h.service.ResolveRedirect(c.UserContext(), clubCode, path)
	if err != nil {
		if !errors.Is(err, services.ErrUrlNotFound) {
			configslog.Log.Error("HandleRedirect hatası", zap.String("club_code", clubCode), zap.String("path", path), zap.Error(err))
		}
		return renderNotFound(c)
	}

	return c.Redirect(target, fiber.StatusFound)
}

func renderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title": "Sayfa Bulunamadı",
	}, "layouts/error_layout")
}
