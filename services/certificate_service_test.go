package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"panel.naal.org.tr/models"
	"panel.naal.org.tr/pkg/queryparams"
	"panel.naal.org.tr/pkg/scope"
	"panel.naal.org.tr/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCertificateRepo struct {
	created    []*models.Certificate
	updates    map[uint]map[string]interface{}
	deleted    []uint
	findResult *models.Certificate
	findErr    error
	updateErr  error
	deleteErr  error
}

func newFakeCertificateRepo() *fakeCertificateRepo {
	return &fakeCertificateRepo{updates: map[uint]map[string]interface{}{}}
}

func (f *fakeCertificateRepo) FindAllScoped(ctx context.Context, sc scope.Scope, email string, params queryparams.ListParams) ([]models.Certificate, int64, error) {
	return nil, 0, nil
}

func (f *fakeCertificateRepo) FindByIDScoped(ctx context.Context, id uint, sc scope.Scope, email string) (*models.Certificate, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findResult, nil
}

func (f *fakeCertificateRepo) Create(ctx context.Context, cert *models.Certificate) error {
	f.created = append(f.created, cert)
	return nil
}

func (f *fakeCertificateRepo) UpdateScoped(ctx context.Context, id uint, sc scope.Scope, email string, data map[string]interface{}, updatedBy uint) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates[id] = data
	return nil
}

func (f *fakeCertificateRepo) DeleteScoped(ctx context.Context, id uint, sc scope.Scope, email string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

var _ repositories.ICertificateRepository = (*fakeCertificateRepo)(nil)

func newTestCertificateService(repo repositories.ICertificateRepository) *CertificateService {
	return &CertificateService{
		repo: repo,
		now:  func() time.Time { return time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC) },
	}
}

func TestCertificateCreateGeneratesFileID(t *testing.T) {
	repo := newFakeCertificateRepo()
	svc := newTestCertificateService(repo)
	sc := scope.Scope{ClubCode: "robotics"}

	cert, err := svc.Create(context.Background(), sc, "robotics@naal.org.tr", CertificateInput{
		Head:  "Katılım Sertifikası",
		Given: "Ayşe Yılmaz",
		Date:  "2025-03-14",
	}, "Robotik Kulübü")

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Regexp(t, regexp.MustCompile(`^CERT-\d{8}-\d{6}$`), cert.FileID)
	assert.Equal(t, "Robotik Kulübü", cert.Creator, "boş creator kulüp adına düşmeli")
	assert.Equal(t, "robotics@naal.org.tr", cert.UploaderMail)
}

func TestCertificateCreateKeepsSuppliedFileID(t *testing.T) {
	repo := newFakeCertificateRepo()
	svc := newTestCertificateService(repo)

	cert, err := svc.Create(context.Background(), scope.Scope{ClubCode: "chess"}, "chess@naal.org.tr", CertificateInput{
		Creator: "Satranç Kulübü",
		Head:    "Turnuva Birinciliği",
		Given:   "Mehmet Kaya",
		Date:    "2025-01-02",
		FileID:  "OZEL-001",
	}, "Satranç Kulübü")

	require.NoError(t, err)
	assert.Equal(t, "OZEL-001", cert.FileID)
}

func TestCertificateCreateValidation(t *testing.T) {
	svc := newTestCertificateService(newFakeCertificateRepo())
	sc := scope.Scope{ClubCode: "chess"}

	tests := []struct {
		name    string
		input   CertificateInput
		wantErr error
	}{
		{"başlık eksik", CertificateInput{Given: "X", Date: "2025-01-01"}, ErrCertHeadRequired},
		{"alıcı eksik", CertificateInput{Head: "X", Date: "2025-01-01"}, ErrCertGivenRequired},
		{"tarih eksik", CertificateInput{Head: "X", Given: "Y"}, ErrCertDateRequired},
		{"boşluklar kırpılır", CertificateInput{Head: "   ", Given: "Y", Date: "2025-01-01"}, ErrCertHeadRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), sc, "chess@naal.org.tr", tt.input, "Satranç Kulübü")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCertificateUpdateMapsNotFound(t *testing.T) {
	repo := newFakeCertificateRepo()
	repo.updateErr = repositories.ErrNotFound
	svc := newTestCertificateService(repo)

	err := svc.Update(context.Background(), 42, scope.Scope{ClubCode: "chess"}, "chess@naal.org.tr", CertificateInput{
		Head:  "X",
		Given: "Y",
		Date:  "2025-01-01",
	}, 7)

	assert.ErrorIs(t, err, ErrCertNotFound, "kapsam dışı güncelleme sessizce yutulmamalı")
}

func TestCertificateDeleteMapsNotFound(t *testing.T) {
	repo := newFakeCertificateRepo()
	repo.deleteErr = repositories.ErrNotFound
	svc := newTestCertificateService(repo)

	err := svc.Delete(context.Background(), 42, scope.Scope{ClubCode: "chess"}, "chess@naal.org.tr")
	assert.ErrorIs(t, err, ErrCertNotFound)
}

func TestCertificatePdfCreateDefaultsFrom(t *testing.T) {
	repo := &fakeCertificatePdfRepo{}
	svc := &CertificatePdfService{
		repo: repo,
		now:  func() time.Time { return time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC) },
	}

	// Süper yönetici açılır listeden kulüp seçer; kayıt seçilen kulübün
	// adıyla imzalanır, yöneticinin kimliğiyle değil.
	cert, err := svc.Create(context.Background(), scope.Scope{Superadmin: true}, "admin@naal.org.tr", CertificatePdfInput{
		Given:    "Zeynep Demir",
		CertName: "Satranç Turnuvası",
		PdfLink:  "https://files.catbox.moe/abc123.pdf",
	}, "Chess Club")

	require.NoError(t, err)
	assert.Equal(t, "Chess Club", cert.From)
	assert.Regexp(t, regexp.MustCompile(`^CERT-\d{8}-\d{6}$`), cert.UID)
	assert.Nil(t, cert.Date, "boş tarih NULL kalmalı")
}

type fakeCertificatePdfRepo struct {
	created []*models.CertificatePdf
}

func (f *fakeCertificatePdfRepo) FindAllScoped(ctx context.Context, sc scope.Scope, email string, params queryparams.ListParams) ([]models.CertificatePdf, int64, error) {
	return nil, 0, nil
}

func (f *fakeCertificatePdfRepo) FindByIDScoped(ctx context.Context, id uint, sc scope.Scope, email string) (*models.CertificatePdf, error) {
	return nil, repositories.ErrNotFound
}

func (f *fakeCertificatePdfRepo) Create(ctx context.Context, cert *models.CertificatePdf) error {
	f.created = append(f.created, cert)
	return nil
}

func (f *fakeCertificatePdfRepo) UpdateScoped(ctx context.Context, id uint, sc scope.Scope, email string, data map[string]interface{}, updatedBy uint) error {
	return nil
}

func (f *fakeCertificatePdfRepo) DeleteScoped(ctx context.Context, id uint, sc scope.Scope, email string) error {
	return nil
}

var _ repositories.ICertificatePdfRepository = (*fakeCertificatePdfRepo)(nil)
