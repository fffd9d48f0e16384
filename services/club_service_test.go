package services

import (
	"context"
	"testing"

	"panel.naal.org.tr/models"
	"panel.naal.org.tr/pkg/listfield"
	"panel.naal.org.tr/pkg/queryparams"
	"panel.naal.org.tr/pkg/scope"
	"panel.naal.org.tr/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClubRepo struct {
	clubs   map[string]*models.Club
	updates map[uint]map[string]interface{}
}

func newFakeClubRepo(clubs ...*models.Club) *fakeClubRepo {
	repo := &fakeClubRepo{
		clubs:   map[string]*models.Club{},
		updates: map[uint]map[string]interface{}{},
	}
	for _, c := range clubs {
		repo.clubs[c.Code] = c
	}
	return repo
}

func (f *fakeClubRepo) FindByCode(ctx context.Context, code string) (*models.Club, error) {
	if club, ok := f.clubs[code]; ok {
		return club, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeClubRepo) FindByID(ctx context.Context, id uint) (*models.Club, error) {
	for _, club := range f.clubs {
		if club.ID == id {
			return club, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeClubRepo) FindAll(ctx context.Context, params queryparams.ListParams) ([]models.Club, int64, error) {
	var out []models.Club
	for _, club := range f.clubs {
		out = append(out, *club)
	}
	return out, int64(len(out)), nil
}

func (f *fakeClubRepo) FindAllCodes(ctx context.Context) ([]string, error) {
	var codes []string
	for code := range f.clubs {
		codes = append(codes, code)
	}
	return codes, nil
}

func (f *fakeClubRepo) Create(ctx context.Context, club *models.Club) error {
	f.clubs[club.Code] = club
	return nil
}

func (f *fakeClubRepo) Update(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error {
	f.updates[id] = data
	return nil
}

var _ repositories.IClubRepository = (*fakeClubRepo)(nil)

func chessClub() *models.Club {
	club := &models.Club{Code: "chess", Title: "Satranç Kulübü"}
	club.ID = 1
	return club
}

func TestClubGetByCodeScoping(t *testing.T) {
	svc := &ClubService{repo: newFakeClubRepo(chessClub())}

	club, err := svc.GetByCode(context.Background(), scope.Scope{ClubCode: "chess"}, "chess")
	require.NoError(t, err)
	assert.Equal(t, "Satranç Kulübü", club.Title)

	_, err = svc.GetByCode(context.Background(), scope.Scope{ClubCode: "robotics"}, "chess")
	assert.ErrorIs(t, err, ErrClubForbidden, "kulüp kullanıcısı başka kulübü okuyamaz")

	_, err = svc.GetByCode(context.Background(), scope.Scope{Superadmin: true}, "chess")
	assert.NoError(t, err, "süper yönetici her kulübü görür")

	_, err = svc.GetByCode(context.Background(), scope.Scope{Superadmin: true}, "yok")
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestClubUpdateJoinsListFields(t *testing.T) {
	repo := newFakeClubRepo(chessClub())
	svc := &ClubService{repo: repo}

	err := svc.UpdateClub(context.Background(), scope.Scope{ClubCode: "chess"}, "chess", ClubInput{
		Title:     "Satranç Kulübü",
		Owners:    []string{"A", "B"},
		Instagram: []string{"@satranc"},
		URLs:      []string{"https://chess.naal.org.tr"},
	}, 5)

	require.NoError(t, err)
	data := repo.updates[1]
	require.NotNil(t, data)
	assert.Equal(t, "A, B", data["owners"])

	// Gidiş-dönüş: virgül içermeyen girdiler kayıpsız geri okunur.
	assert.Equal(t, []string{"A", "B"}, listfield.Split(data["owners"].(string)))
}

func TestClubListAllRequiresSuperadmin(t *testing.T) {
	svc := &ClubService{repo: newFakeClubRepo(chessClub())}

	_, err := svc.ListAll(context.Background(), scope.Scope{ClubCode: "chess"}, queryparams.ListParams{})
	assert.ErrorIs(t, err, ErrClubForbidden)

	result, err := svc.ListAll(context.Background(), scope.Scope{Superadmin: true}, queryparams.ListParams{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Meta.TotalItems)
}

func TestClubCreateRejectsDuplicateCode(t *testing.T) {
	svc := &ClubService{repo: newFakeClubRepo(chessClub())}
	sc := scope.Scope{Superadmin: true}

	_, err := svc.CreateClub(context.Background(), sc, "chess", ClubInput{Title: "Yeni"})
	assert.ErrorIs(t, err, ErrClubCodeTaken)

	club, err := svc.CreateClub(context.Background(), sc, "Robotics", ClubInput{Title: "Robotik Kulübü"})
	require.NoError(t, err)
	assert.Equal(t, "robotics", club.Code, "kod küçük harfe normalize edilmeli")
}
