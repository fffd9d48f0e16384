// Package flashmessages redirect sonrası tek seferlik kullanıcı mesajlarını
// session üzerinden taşır. Mesajlar okunduklarında silinir.
package flashmessages

import (
	"encoding/json"

	"panel.naal.org.tr/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	flashFormDataKey = "flash_form_data"
)

// SetFlashMessage verilen anahtara mesaj yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessage mesajı okur ve siler. Mesaj yoksa boş string döner.
func GetFlashMessage(c *fiber.Ctx, key string) string {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return ""
	}
	msg, ok := sess.Get(key).(string)
	if !ok || msg == "" {
		return ""
	}
	sess.Delete(key)
	_ = sess.Save()
	return msg
}

// SetFlashFormData validasyon hatası sonrası formu tekrar doldurmak için
// form verisini JSON olarak session'a kaydeder.
func SetFlashFormData(c *fiber.Ctx, data interface{}) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(raw))
	return sess.Save()
}

// GetFlashFormData kaydedilmiş form verisini okur ve siler.
// Veri yoksa boş map döner; template'ler alan bazında erişir.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	out := map[string]interface{}{}
	sess, err := utils.SessionStart(c)
	if err != nil {
		return out
	}
	raw, ok := sess.Get(flashFormDataKey).(string)
	if !ok || raw == "" {
		return out
	}
	sess.Delete(flashFormDataKey)
	_ = sess.Save()
	_ = json.Unmarshal([]byte(raw), &out)
	return out
}
