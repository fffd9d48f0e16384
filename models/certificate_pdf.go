package models

// CertificatePdf harici barındırmaya (Catbox) yüklenmiş PDF sertifikadır.
type CertificatePdf struct {
	BaseModel
	UID          string  `gorm:"type:varchar(100);index"`    // CERT-YYYYMMDD-###### veya kullanıcı girdisi
	Given        string  `gorm:"type:varchar(150);not null"` // alan kişi
	CertName     string  `gorm:"type:varchar(255);not null"`
	PdfLink      string  `gorm:"type:varchar(500);not null"` // upload proxy'den dönen URL
	From         string  `gorm:"column:from;type:varchar(150)"` // veren kurum/kişi
	Date         *string `gorm:"type:date"`                     // opsiyonel
	UploaderMail string  `gorm:"type:varchar(100);index;not null"`
}

func (CertificatePdf) TableName() string { return "cert_pdf" }
