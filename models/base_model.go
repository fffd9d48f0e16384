package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

// CtxUserIDKey işlemi yapan kullanıcının ID'sini context üzerinden
// BaseModel hook'larına taşır. Servisler ContextWithUserID ile set eder.
const CtxUserIDKey contextKey = "user_id"

// ContextWithUserID audit alanları için context'e kullanıcı ID'si ekler.
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, CtxUserIDKey, userID)
}

// UserIDFromContext context'teki kullanıcı ID'sini döndürür (yoksa 0).
func UserIDFromContext(ctx context.Context) uint {
	if uid, ok := ctx.Value(CtxUserIDKey).(uint); ok {
		return uid
	}
	return 0
}

// BaseModel tüm tablolarda ortak olan alanları taşır.
type BaseModel struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	CreatedBy uint `gorm:"index"`
	UpdatedBy uint
}

// BeforeCreate kayıt oluşturulurken audit alanlarını context'ten doldurur.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if uid := UserIDFromContext(tx.Statement.Context); uid != 0 {
		m.CreatedBy = uid
		m.UpdatedBy = uid
	}
	return nil
}
