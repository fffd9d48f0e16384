package services

import (
	"context"
	"testing"

	"panel.naal.org.tr/models"
	"panel.naal.org.tr/pkg/queryparams"
	"panel.naal.org.tr/pkg/scope"
	"panel.naal.org.tr/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUrlRepo struct {
	created   []*models.UrlRedirect
	updates   map[uint]map[string]interface{}
	byPath    map[string]*models.UrlRedirect
	updateErr error
}

func newFakeUrlRepo() *fakeUrlRepo {
	return &fakeUrlRepo{
		updates: map[uint]map[string]interface{}{},
		byPath:  map[string]*models.UrlRedirect{},
	}
}

func (f *fakeUrlRepo) FindAllScoped(ctx context.Context, sc scope.Scope, params queryparams.ListParams) ([]models.UrlRedirect, int64, error) {
	return nil, 0, nil
}

func (f *fakeUrlRepo) FindByIDScoped(ctx context.Context, id uint, sc scope.Scope) (*models.UrlRedirect, error) {
	return nil, repositories.ErrNotFound
}

func (f *fakeUrlRepo) FindByClubCodeAndPath(ctx context.Context, clubCode, path string) (*models.UrlRedirect, error) {
	if rec, ok := f.byPath[clubCode+"/"+path]; ok {
		return rec, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUrlRepo) Create(ctx context.Context, url *models.UrlRedirect) error {
	f.created = append(f.created, url)
	return nil
}

func (f *fakeUrlRepo) UpdateScoped(ctx context.Context, id uint, sc scope.Scope, data map[string]interface{}, updatedBy uint) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates[id] = data
	return nil
}

func (f *fakeUrlRepo) DeleteScoped(ctx context.Context, id uint, sc scope.Scope) error {
	return nil
}

var _ repositories.IUrlRepository = (*fakeUrlRepo)(nil)

func TestUrlCreateRejectsNonHTTPScheme(t *testing.T) {
	svc := &UrlService{repo: newFakeUrlRepo()}
	sc := scope.Scope{ClubCode: "chess"}

	tests := []struct {
		name     string
		redirect string
		wantErr  bool
	}{
		{"ftp reddedilir", "ftp://x", true},
		{"şemasız reddedilir", "x.example/y", true},
		{"boş reddedilir", "", true},
		{"https kabul", "https://x.example/y", false},
		{"http kabul", "http://x.example/y", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), sc, UrlInput{
				Path:     "kayit",
				Redirect: tt.redirect,
			})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUrlInvalidRedirect)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUrlCreateForcesScopeClubCode(t *testing.T) {
	repo := newFakeUrlRepo()
	svc := &UrlService{repo: repo}

	// Kulüp kullanıcısının formdan gönderdiği kod yok sayılır.
	rec, err := svc.Create(context.Background(), scope.Scope{ClubCode: "chess"}, UrlInput{
		ClubCode: "robotics",
		Path:     "/turnuva/",
		Redirect: "https://example.com/form",
	})

	require.NoError(t, err)
	assert.Equal(t, "chess", rec.ClubCode)
	assert.Equal(t, "turnuva", rec.Path, "yol eğik çizgilerden arındırılmalı")
}

func TestUrlCreateSuperadminRequiresClubCode(t *testing.T) {
	svc := &UrlService{repo: newFakeUrlRepo()}

	_, err := svc.Create(context.Background(), scope.Scope{Superadmin: true}, UrlInput{
		Path:     "kayit",
		Redirect: "https://example.com",
	})
	assert.ErrorIs(t, err, ErrUrlClubRequired)

	rec, err := svc.Create(context.Background(), scope.Scope{Superadmin: true}, UrlInput{
		ClubCode: "Chess",
		Path:     "kayit",
		Redirect: "https://example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "chess", rec.ClubCode)
}

func TestUrlUpdateMapsNotFound(t *testing.T) {
	repo := newFakeUrlRepo()
	repo.updateErr = repositories.ErrNotFound
	svc := &UrlService{repo: repo}

	err := svc.Update(context.Background(), 9, scope.Scope{ClubCode: "chess"}, UrlInput{
		Path:     "kayit",
		Redirect: "https://example.com",
	}, 3)
	assert.ErrorIs(t, err, ErrUrlNotFound)
}

func TestUrlResolveRedirect(t *testing.T) {
	repo := newFakeUrlRepo()
	repo.byPath["chess/turnuva"] = &models.UrlRedirect{
		ClubCode: "chess",
		Path:     "turnuva",
		Redirect: "https://example.com/form",
	}
	svc := &UrlService{repo: repo}

	target, err := svc.ResolveRedirect(context.Background(), "Chess", "/turnuva/")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/form", target)

	_, err = svc.ResolveRedirect(context.Background(), "chess", "yok")
	assert.ErrorIs(t, err, ErrUrlNotFound)
}
