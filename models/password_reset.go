package models

import "time"

// PasswordReset parola sıfırlama talebinin tek kullanımlık token kaydıdır.
type PasswordReset struct {
	BaseModel
	UserID    uint      `gorm:"index;not null"`
	Token     string    `gorm:"type:varchar(36);uniqueIndex;not null"` // uuid v4
	ExpiresAt time.Time `gorm:"index;not null"`
	UsedAt    *time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (PasswordReset) TableName() string { return "password_resets" }
