package models

import "panel.naal.org.tr/pkg/listfield"

// Club okul kulübünün profil kaydıdır.
// Owners, Instagram ve URLs sütunları virgülle birleştirilmiş listelerdir;
// okuma/yazma dönüşümleri pkg/listfield üzerinden yapılır.
type Club struct {
	BaseModel
	Code        string `gorm:"type:varchar(50);uniqueIndex;not null"` // temsilci e-postasının local kısmı
	Title       string `gorm:"type:varchar(150);not null"`
	Description string `gorm:"type:text"`
	Owners      string `gorm:"type:text"`
	Instagram   string `gorm:"type:text"`
	URLs        string `gorm:"type:text"`
	Logo        string `gorm:"type:varchar(500)"`
}

func (Club) TableName() string { return "clubs" }

// OwnerList yönetici isimlerini sıralı liste olarak döndürür.
func (c *Club) OwnerList() []string { return listfield.Split(c.Owners) }

// InstagramList Instagram hesaplarını sıralı liste olarak döndürür.
func (c *Club) InstagramList() []string { return listfield.Split(c.Instagram) }

// URLList kulüp linklerini sıralı liste olarak döndürür.
func (c *Club) URLList() []string { return listfield.Split(c.URLs) }
