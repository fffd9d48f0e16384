package models

// User panele giriş yapabilen hesaplardır: kulüp temsilcileri ve süper yönetici.
// Yetki (kapsam) e-posta adresinden türetilir, bkz. pkg/scope.
type User struct {
	BaseModel
	Email    string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name     string `gorm:"type:varchar(100)"`
	Password string `gorm:"type:varchar(255);not null"` // bcrypt hash
	IsActive bool   `gorm:"default:true;index"`
}
