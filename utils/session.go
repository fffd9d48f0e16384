package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session anahtarları. Login sırasında auth handler tarafından yazılır.
const (
	SessionKeyUserID    = "user_id"
	SessionKeyUserEmail = "user_email"
	SessionKeyUserName  = "user_name"
)

var ErrSessionStoreMissing = errors.New("session store bulunamadı")

// SessionStart Locals'a konan store üzerinden isteğin session'ını açar.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// GetUserIDFromSession giriş yapmış kullanıcının ID'sini döndürür.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	id, ok := sess.Get(SessionKeyUserID).(uint)
	if !ok || id == 0 {
		return 0, errors.New("session'da kullanıcı ID yok")
	}
	return id, nil
}

// GetUserEmailFromSession giriş yapmış kullanıcının e-postasını döndürür.
func GetUserEmailFromSession(sess *session.Session) (string, error) {
	email, ok := sess.Get(SessionKeyUserEmail).(string)
	if !ok || email == "" {
		return "", errors.New("session'da kullanıcı e-postası yok")
	}
	return email, nil
}
