// services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"panel.naal.org.tr/configs"
	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/models"
	"panel.naal.org.tr/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials     AuthServiceError = "geçersiz e-posta veya şifre"
	ErrUserNotFound           AuthServiceError = "kullanıcı bulunamadı"
	ErrUserInactive           AuthServiceError = "hesabınız aktif değil"
	ErrCurrentPasswordInvalid AuthServiceError = "mevcut şifreniz hatalı"
	ErrPasswordTooShort       AuthServiceError = "şifre en az 8 karakter olmalıdır"
	ErrPasswordSameAsOld      AuthServiceError = "yeni şifre mevcut şifre ile aynı olamaz"
	ErrAuthGeneric            AuthServiceError = "kimlik doğrulama sırasında bir hata oluştu"
	ErrResetTokenInvalid      AuthServiceError = "sıfırlama bağlantısı geçersiz veya süresi dolmuş"
)

// Parola sıfırlama token'ının geçerlilik süresi.
const passwordResetTTL = time.Hour

// IAuthService kimlik doğrulama işlemleri için arayüz.
type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	userRepo  repositories.IUserRepository
	resetRepo repositories.IPasswordResetRepository
	mail      IMailService
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{
		userRepo:  repositories.NewUserRepository(),
		resetRepo: repositories.NewPasswordResetRepository(),
		mail:      NewMailService(),
	}
}

// Authenticate e-posta ve şifre ile kullanıcıyı doğrular.
// Kullanıcı yoksa da bcrypt karşılaştırması yapılır ki yanıt süresi
// hesap varlığını ele vermesin.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0xT0kCqXbQJQKQeQJQKQeQJQKQe"), []byte(password))
			return nil, ErrInvalidCredentials
		}
		configslog.Log.Error("Authenticate: kullanıcı sorgusu başarısız", zap.String("email", email), zap.Error(err))
		return nil, ErrAuthGeneric
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		configslog.Log.Warn("Başarısız giriş denemesi", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		configslog.Log.Warn("Pasif hesap ile giriş denemesi", zap.String("email", email))
		return nil, ErrUserInactive
	}

	return user, nil
}

// UpdatePassword oturumdaki kullanıcının şifresini günceller.
func (s *AuthService) UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if err := validateNewPassword(newPassword); err != nil {
		return err
	}
	if currentPassword == newPassword {
		return ErrPasswordSameAsOld
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		configslog.Log.Error("UpdatePassword: kullanıcı sorgusu başarısız", zap.Uint("userID", userID), zap.Error(err))
		return ErrAuthGeneric
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return ErrCurrentPasswordInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("UpdatePassword: hash üretilemedi", zap.Error(err))
		return ErrAuthGeneric
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		configslog.Log.Error("UpdatePassword: güncelleme başarısız", zap.Uint("userID", userID), zap.Error(err))
		return ErrAuthGeneric
	}

	configslog.SLog.Infof("Şifre güncellendi: UserID %d", userID)
	return nil
}

// RequestPasswordReset sıfırlama token'ı üretip e-posta ile gönderir.
// Hesap bulunamazsa sessizce başarılı döner; hesap varlığı dışarı sızmaz.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Info("Sıfırlama isteği: kayıtlı olmayan e-posta", zap.String("email", email))
			return nil
		}
		configslog.Log.Error("RequestPasswordReset: kullanıcı sorgusu başarısız", zap.String("email", email), zap.Error(err))
		return ErrAuthGeneric
	}

	token := uuid.NewString()
	reset := models.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(passwordResetTTL),
	}
	if err := s.resetRepo.Create(ctx, &reset); err != nil {
		configslog.Log.Error("RequestPasswordReset: token kaydedilemedi", zap.Uint("userID", user.ID), zap.Error(err))
		return ErrAuthGeneric
	}

	resetURL := fmt.Sprintf("%s/auth/password/reset/%s", strings.TrimRight(configs.PanelBaseURL(), "/"), token)
	if err := s.mail.SendPasswordReset(ctx, user.Email, user.Name, resetURL); err != nil {
		configslog.Log.Error("RequestPasswordReset: e-posta gönderilemedi", zap.String("email", user.Email), zap.Error(err))
		return ErrAuthGeneric
	}

	configslog.SLog.Infof("Parola sıfırlama e-postası gönderildi: UserID %d", user.ID)
	return nil
}

// ResetPassword geçerli bir token ile yeni şifreyi kaydeder ve token'ı tüketir.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrResetTokenInvalid
	}
	if err := validateNewPassword(newPassword); err != nil {
		return err
	}

	reset, err := s.resetRepo.FindValidByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrResetTokenInvalid
		}
		configslog.Log.Error("ResetPassword: token sorgusu başarısız", zap.Error(err))
		return ErrAuthGeneric
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("ResetPassword: hash üretilemedi", zap.Error(err))
		return ErrAuthGeneric
	}

	if err := s.userRepo.UpdatePassword(ctx, reset.UserID, string(hash)); err != nil {
		configslog.Log.Error("ResetPassword: güncelleme başarısız", zap.Uint("userID", reset.UserID), zap.Error(err))
		return ErrAuthGeneric
	}
	if err := s.resetRepo.MarkUsed(ctx, reset.ID); err != nil {
		configslog.Log.Error("ResetPassword: token tüketilemedi", zap.Uint("resetID", reset.ID), zap.Error(err))
		return ErrAuthGeneric
	}

	configslog.SLog.Infof("Parola sıfırlandı: UserID %d", reset.UserID)
	return nil
}

func validateNewPassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	return nil
}

var _ IAuthService = (*AuthService)(nil)
