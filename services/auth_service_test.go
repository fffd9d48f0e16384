package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"panel.naal.org.tr/models"
	"panel.naal.org.tr/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users     map[string]*models.User
	passwords map[uint]string
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		users:     map[string]*models.User{},
		passwords: map[uint]string{},
	}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return repo
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := f.users[strings.ToLower(strings.TrimSpace(email))]; ok {
		return user, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	f.passwords[id] = passwordHash
	return nil
}

var _ repositories.IUserRepository = (*fakeUserRepo)(nil)

type fakeResetRepo struct {
	created []*models.PasswordReset
	valid   map[string]*models.PasswordReset
	used    []uint
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{valid: map[string]*models.PasswordReset{}}
}

func (f *fakeResetRepo) Create(ctx context.Context, reset *models.PasswordReset) error {
	f.created = append(f.created, reset)
	return nil
}

func (f *fakeResetRepo) FindValidByToken(ctx context.Context, token string) (*models.PasswordReset, error) {
	if reset, ok := f.valid[token]; ok {
		return reset, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeResetRepo) MarkUsed(ctx context.Context, id uint) error {
	f.used = append(f.used, id)
	return nil
}

var _ repositories.IPasswordResetRepository = (*fakeResetRepo)(nil)

type fakeMailService struct {
	sentTo  []string
	lastURL string
	err     error
}

func (f *fakeMailService) SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = append(f.sentTo, toEmail)
	f.lastURL = resetURL
	return nil
}

var _ IMailService = (*fakeMailService)(nil)

func testUser(t *testing.T, email, password string, active bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Email:    email,
		Name:     "Test Kullanıcı",
		Password: string(hash),
		IsActive: active,
	}
	user.ID = 1
	return user
}

func TestAuthenticate(t *testing.T) {
	user := testUser(t, "chess@naal.org.tr", "gizli1234", true)
	svc := &AuthService{userRepo: newFakeUserRepo(user)}

	got, err := svc.Authenticate(context.Background(), "Chess@naal.org.tr ", "gizli1234")
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.Authenticate(context.Background(), "chess@naal.org.tr", "yanlis")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "yok@naal.org.tr", "gizli1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "hesap varlığı hata mesajından anlaşılmamalı")
}

func TestAuthenticateInactiveUser(t *testing.T) {
	user := testUser(t, "chess@naal.org.tr", "gizli1234", false)
	svc := &AuthService{userRepo: newFakeUserRepo(user)}

	_, err := svc.Authenticate(context.Background(), "chess@naal.org.tr", "gizli1234")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestUpdatePassword(t *testing.T) {
	user := testUser(t, "chess@naal.org.tr", "eski12345", true)
	repo := newFakeUserRepo(user)
	svc := &AuthService{userRepo: repo}

	err := svc.UpdatePassword(context.Background(), 1, "eski12345", "yeni12345")
	require.NoError(t, err)
	require.Contains(t, repo.passwords, uint(1))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.passwords[1]), []byte("yeni12345")))

	err = svc.UpdatePassword(context.Background(), 1, "yanlis", "yeni12345")
	assert.ErrorIs(t, err, ErrCurrentPasswordInvalid)

	err = svc.UpdatePassword(context.Background(), 1, "eski12345", "kisa")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	err = svc.UpdatePassword(context.Background(), 1, "ayni12345", "ayni12345")
	assert.ErrorIs(t, err, ErrPasswordSameAsOld)
}

func TestRequestPasswordReset(t *testing.T) {
	user := testUser(t, "chess@naal.org.tr", "gizli1234", true)
	resetRepo := newFakeResetRepo()
	mail := &fakeMailService{}
	svc := &AuthService{
		userRepo:  newFakeUserRepo(user),
		resetRepo: resetRepo,
		mail:      mail,
	}

	err := svc.RequestPasswordReset(context.Background(), "chess@naal.org.tr")
	require.NoError(t, err)
	require.Len(t, resetRepo.created, 1)
	assert.Contains(t, mail.lastURL, resetRepo.created[0].Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resetRepo.created[0].ExpiresAt, time.Minute)

	// Kayıtlı olmayan e-posta sessizce başarılı döner.
	err = svc.RequestPasswordReset(context.Background(), "yok@naal.org.tr")
	assert.NoError(t, err)
	assert.Len(t, mail.sentTo, 1)
}

func TestResetPassword(t *testing.T) {
	user := testUser(t, "chess@naal.org.tr", "eski12345", true)
	userRepo := newFakeUserRepo(user)
	resetRepo := newFakeResetRepo()
	reset := &models.PasswordReset{UserID: 1, Token: "token-abc", ExpiresAt: time.Now().Add(time.Hour)}
	reset.ID = 9
	resetRepo.valid["token-abc"] = reset
	svc := &AuthService{userRepo: userRepo, resetRepo: resetRepo}

	err := svc.ResetPassword(context.Background(), "token-abc", "yepyeni123")
	require.NoError(t, err)
	assert.Contains(t, userRepo.passwords, uint(1))
	assert.Contains(t, resetRepo.used, uint(9))

	err = svc.ResetPassword(context.Background(), "gecersiz", "yepyeni123")
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}
