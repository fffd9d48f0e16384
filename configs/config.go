package configs

import (
	"os"

	"panel.naal.org.tr/configs/configslog"

	"github.com/joho/godotenv"
)

// LoadEnv .env dosyasını yükler. Dosya yoksa sessizce devam edilir
// (production'da değerler gerçek environment'tan gelir).
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, environment değerleri kullanılacak.")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// AppPort HTTP sunucusunun dinleyeceği port numarası.
func AppPort() string {
	return getEnv("APP_PORT", "3000")
}

// BaseDomain kısa URL'lerin servis edildiği ana alan adı
// (kulüp kodu subdomain olarak eklenir: tech.naal.org.tr/yaz-kampi).
func BaseDomain() string {
	return getEnv("BASE_DOMAIN", "naal.org.tr")
}

// PanelBaseURL parola sıfırlama linki gibi mutlak URL üretimlerinde kullanılır.
func PanelBaseURL() string {
	return getEnv("PANEL_BASE_URL", "https://panel.naal.org.tr")
}

// SuperadminEmail tüm kulüpleri gören süper yönetici hesabı.
func SuperadminEmail() string {
	return getEnv("SUPERADMIN_EMAIL", "admin@naal.org.tr")
}

// SuperadminInitialPassword seed sırasında süper yönetici için kullanılır.
func SuperadminInitialPassword() string {
	return getEnv("SUPERADMIN_INITIAL_PASSWORD", "")
}

// CatboxUserHash Catbox dosya barındırma API'si için opsiyonel paylaşılan anahtar.
func CatboxUserHash() string {
	return os.Getenv("CATBOX_USERHASH")
}

// IBBAPIKey ImgBB görsel barındırma API anahtarı.
func IBBAPIKey() string {
	return os.Getenv("IBB_API_KEY")
}

// TurnstileSiteKey login formunda render edilen widget anahtarı.
func TurnstileSiteKey() string {
	return os.Getenv("TURNSTILE_SITE_KEY")
}

// TurnstileSecretKey sunucu tarafı doğrulama anahtarı.
// Boşsa doğrulama atlanır (lokal geliştirme).
func TurnstileSecretKey() string {
	return os.Getenv("TURNSTILE_SECRET_KEY")
}

// ResendAPIKey parola sıfırlama e-postaları için.
func ResendAPIKey() string {
	return os.Getenv("RESEND_API_KEY")
}

// MailFrom giden e-postaların gönderen adresi.
func MailFrom() string {
	return getEnv("MAIL_FROM", "Kulüp Paneli <panel@naal.org.tr>")
}
