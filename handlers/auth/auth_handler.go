// handlers/auth/auth_handler.go
package handlers

import (
	"errors"
	"net/http"

	"panel.naal.org.tr/configs"
	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/pkg/flashmessages"
	"panel.naal.org.tr/pkg/renderer"
	"panel.naal.org.tr/pkg/turnstile"
	"panel.naal.org.tr/services"
	"panel.naal.org.tr/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler giriş, çıkış ve parola işlemleri için handler.
type AuthHandler struct {
	service  services.IAuthService
	verifier *turnstile.Verifier
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		service:  services.NewAuthService(),
		verifier: turnstile.NewVerifier(configs.TurnstileSecretKey()),
	}
}

// ShowLogin giriş formunu gösterir.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return renderer.Render(c, "auth/login", "layouts/auth_layout", fiber.Map{
		"Title":            "Giriş Yap",
		"TurnstileSiteKey": configs.TurnstileSiteKey(),
	})
}

// Login Turnstile doğrulamasından sonra kullanıcıyı doğrular ve oturum açar.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	if err := h.verifier.Verify(c.UserContext(), c.FormValue("cf-turnstile-response"), c.IP()); err != nil {
		configslog.Log.Warn("Turnstile doğrulaması başarısız", zap.String("email", email), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Robot doğrulaması başarısız. Lütfen tekrar deneyin.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	user, err := h.service.Authenticate(c.UserContext(), email, password)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session başlatılamadı", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Oturum başlatılamadı. Lütfen tekrar deneyin.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	if err := sess.Regenerate(); err != nil {
		configslog.Log.Error("Login: session yenilenemedi", zap.Error(err))
	}
	sess.Set(utils.SessionKeyUserID, user.ID)
	sess.Set(utils.SessionKeyUserEmail, user.Email)
	sess.Set(utils.SessionKeyUserName, user.Name)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Login: session kaydedilemedi", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Oturum kaydedilemedi. Lütfen tekrar deneyin.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	configslog.SLog.Infof("Giriş yapıldı: %s", user.Email)
	return c.Redirect("/panel/home", fiber.StatusFound)
}

// Logout oturumu sonlandırır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess, err := utils.SessionStart(c); err == nil {
		if err := sess.Destroy(); err != nil {
			configslog.Log.Error("Logout: session sonlandırılamadı", zap.Error(err))
		}
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}

// Profile parola değiştirme formunu içeren profil sayfasını gösterir.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	return renderer.Render(c, "auth/profile", "layouts/panel_layout", fiber.Map{
		"Title": "Profilim",
	})
}

// UpdatePassword oturumdaki kullanıcının parolasını değiştirir.
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	currentPassword := c.FormValue("current_password")
	newPassword := c.FormValue("new_password")
	confirm := c.FormValue("new_password_confirm")

	if newPassword != confirm {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Yeni şifreler eşleşmiyor.")
		return c.Redirect("/auth/profile", fiber.StatusSeeOther)
	}

	if err := h.service.UpdatePassword(c.UserContext(), userID, currentPassword, newPassword); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/auth/profile", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Şifreniz başarıyla güncellendi.")
	return c.Redirect("/auth/profile", fiber.StatusFound)
}

// ShowForgotPassword parola sıfırlama isteği formunu gösterir.
func (h *AuthHandler) ShowForgotPassword(c *fiber.Ctx) error {
	return renderer.Render(c, "auth/forgot_password", "layouts/auth_layout", fiber.Map{
		"Title": "Şifremi Unuttum",
	})
}

// RequestPasswordReset sıfırlama e-postası gönderir. Hesabın var olup
// olmadığına bakılmaksızın aynı mesaj gösterilir.
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	email := c.FormValue("email")
	if err := h.service.RequestPasswordReset(c.UserContext(), email); err != nil {
		if !errors.Is(err, services.ErrMailNotConfigured) {
			configslog.Log.Error("RequestPasswordReset hatası", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "İstek işlenemedi. Lütfen daha sonra tekrar deneyin.")
		return c.Redirect("/auth/password/request", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "E-posta adresiniz kayıtlıysa sıfırlama bağlantısı gönderildi.")
	return c.Redirect("/auth/login", fiber.StatusSeeOther)
}

// ShowResetPassword token'lı yeni parola formunu gösterir.
func (h *AuthHandler) ShowResetPassword(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return c.Redirect("/auth/login")
	}
	return renderer.Render(c, "auth/reset_password", "layouts/auth_layout", fiber.Map{
		"Title": "Yeni Şifre Belirle",
		"Token": token,
	}, http.StatusOK)
}

// ResetPassword token ile yeni parolayı kaydeder.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	token := c.FormValue("token")
	newPassword := c.FormValue("new_password")
	confirm := c.FormValue("new_password_confirm")

	if newPassword != confirm {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Yeni şifreler eşleşmiyor.")
		return c.Redirect("/auth/password/reset/"+token, fiber.StatusSeeOther)
	}

	if err := h.service.ResetPassword(c.UserContext(), token, newPassword); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		if errors.Is(err, services.ErrResetTokenInvalid) {
			return c.Redirect("/auth/password/request", fiber.StatusSeeOther)
		}
		return c.Redirect("/auth/password/reset/"+token, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Şifreniz güncellendi. Yeni şifrenizle giriş yapabilirsiniz.")
	return c.Redirect("/auth/login", fiber.StatusFound)
}
