// middlewares/auth_middleware.go
package middlewares

import (
	"errors"

	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/pkg/flashmessages"
	"panel.naal.org.tr/repositories"
	"panel.naal.org.tr/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthMiddleware oturum açmamış istekleri giriş sayfasına yönlendirir.
func AuthMiddleware(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("AuthMiddleware: session başlatılamadı", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusFound)
	}

	userID, err := utils.GetUserIDFromSession(sess)
	if err != nil || userID == 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Devam etmek için giriş yapmalısınız.")
		return c.Redirect("/auth/login", fiber.StatusFound)
	}

	email, err := utils.GetUserEmailFromSession(sess)
	if err != nil || email == "" {
		_ = sess.Destroy()
		return c.Redirect("/auth/login", fiber.StatusFound)
	}

	c.Locals("userID", userID)
	c.Locals("userEmail", email)
	return c.Next()
}

// GuestMiddleware oturum açmış kullanıcıyı panele geri gönderir.
func GuestMiddleware(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return c.Next()
	}
	if userID, err := utils.GetUserIDFromSession(sess); err == nil && userID != 0 {
		return c.Redirect("/panel/home", fiber.StatusFound)
	}
	return c.Next()
}

// StatusMiddleware hesabın hâlâ aktif olduğunu doğrular. Pasifleştirilen
// hesabın açık oturumu ilk istekte sonlandırılır.
func StatusMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusFound)
	}

	userRepo := repositories.NewUserRepository()
	user, err := userRepo.FindByID(c.UserContext(), userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Error("StatusMiddleware: kullanıcı sorgusu başarısız", zap.Uint("userID", userID), zap.Error(err))
		}
		return destroySessionAndRedirect(c)
	}
	if !user.IsActive {
		configslog.Log.Warn("Pasif hesap oturumu sonlandırıldı", zap.Uint("userID", userID))
		return destroySessionAndRedirect(c)
	}

	c.Locals("userName", user.Name)
	return c.Next()
}

func destroySessionAndRedirect(c *fiber.Ctx) error {
	if sess, err := utils.SessionStart(c); err == nil {
		_ = sess.Destroy()
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Hesabınız aktif değil.")
	return c.Redirect("/auth/login", fiber.StatusFound)
}
