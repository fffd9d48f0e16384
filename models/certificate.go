package models

// Certificate dijital (kayıt bazlı) sertifikadır; dosyası yoktur,
// doğrulama sayfası FileID üzerinden yapılır.
type Certificate struct {
	BaseModel
	Creator      string `gorm:"type:varchar(150)"`          // veren kurum/kişi, boşsa kulüp adı
	Head         string `gorm:"type:varchar(255);not null"` // sertifika konusu/başlığı
	Given        string `gorm:"type:varchar(150);not null"` // alan kişi
	Date         string `gorm:"type:date;not null"`         // YYYY-MM-DD
	FileID       string `gorm:"type:varchar(100);index"`    // CERT-YYYYMMDD-###### veya kullanıcı girdisi
	UploaderMail string `gorm:"type:varchar(100);index;not null"`
}

// Tablo adı dışa açık doğrulama servisiyle paylaşıldığı için tekil.
func (Certificate) TableName() string { return "cert" }
