package band

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bandboard/bandboard/internal/audit"
	"github.com/bandboard/bandboard/internal/httperr"
	"github.com/bandboard/bandboard/internal/models"
)

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeBandRepo struct {
	bands     map[uint]models.Band
	styles    map[uint][]uint
	musicians map[uint][]uint
	nextID    uint
}

func newFakeBandRepo() *fakeBandRepo {
	return &fakeBandRepo{
		bands:     map[uint]models.Band{},
		styles:    map[uint][]uint{},
		musicians: map[uint][]uint{},
		nextID:    1,
	}
}

func (r *fakeBandRepo) GetBand(_ context.Context, id uint) (*models.Band, error) {
	b, ok := r.bands[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := b
	return &found, nil
}

func (r *fakeBandRepo) CreateBand(_ context.Context, b *models.Band) error {
	b.ID = r.nextID
	r.nextID++
	r.bands[b.ID] = *b
	return nil
}

func (r *fakeBandRepo) UpdateBand(_ context.Context, b *models.Band) error {
	r.bands[b.ID] = *b
	return nil
}

func (r *fakeBandRepo) DeleteBand(_ context.Context, b *models.Band) error {
	delete(r.bands, b.ID)
	return nil
}

func (r *fakeBandRepo) ListBandsByOwner(_ context.Context, ownerID uint) ([]models.Band, error) {
	var out []models.Band
	for _, b := range r.bands {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBandRepo) ReplaceStyles(_ context.Context, b *models.Band, styleIDs []uint) error {
	r.styles[b.ID] = styleIDs
	return nil
}

func (r *fakeBandRepo) ReplaceMusicians(_ context.Context, b *models.Band, musicianIDs []uint) error {
	r.musicians[b.ID] = musicianIDs
	return nil
}

type fakeSink struct {
	events []audit.Event
}

func (s *fakeSink) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestCreateBandAssignsActorAsOwner(t *testing.T) {
	repo := newFakeBandRepo()
	sink := &fakeSink{}
	uc := NewCreateBand(repo, sink)

	b, err := uc.Execute(context.Background(), 42, CreateBandInput{
		Name:     "The Sundowners",
		StyleIDs: []uint{1, 2},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), b.OwnerID)
	assert.Equal(t, []uint{1, 2}, repo.styles[b.ID])
	require.Len(t, sink.events, 1)
	assert.Equal(t, "band_created", sink.events[0].Action)
}

func TestUpdateBandOwnership(t *testing.T) {
	repo := newFakeBandRepo()
	repo.bands[1] = models.Band{ID: 1, OwnerID: 42, Name: "old"}
	repo.nextID = 2

	uc := NewUpdateBand(repo, &fakeSink{})
	name := "new"

	// non-owner: forbidden, record untouched
	_, err := uc.Execute(context.Background(), 7, 1, UpdateBandInput{Name: &name})
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
	assert.Equal(t, "old", repo.bands[1].Name)

	// missing record: not-found, not forbidden
	_, err = uc.Execute(context.Background(), 42, 99, UpdateBandInput{Name: &name})
	assert.True(t, httperr.IsBusiness(err, "band_not_found"))

	// owner succeeds
	b, err := uc.Execute(context.Background(), 42, 1, UpdateBandInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "new", b.Name)
}

func TestUpdateBandReplacesAssociationsOnlyWhenGiven(t *testing.T) {
	repo := newFakeBandRepo()
	repo.bands[1] = models.Band{ID: 1, OwnerID: 1}
	repo.styles[1] = []uint{9}
	repo.nextID = 2

	uc := NewUpdateBand(repo, &fakeSink{})

	// nil style slice leaves associations alone
	desc := "desc"
	_, err := uc.Execute(context.Background(), 1, 1, UpdateBandInput{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, []uint{9}, repo.styles[1])

	// explicit empty slice clears them
	_, err = uc.Execute(context.Background(), 1, 1, UpdateBandInput{StyleIDs: []uint{}})
	require.NoError(t, err)
	assert.Empty(t, repo.styles[1])
}

func TestDeleteBandOwnership(t *testing.T) {
	repo := newFakeBandRepo()
	repo.bands[1] = models.Band{ID: 1, OwnerID: 42}
	repo.nextID = 2

	sink := &fakeSink{}
	uc := NewDeleteBand(repo, sink)

	err := uc.Execute(context.Background(), 7, 1)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
	assert.Contains(t, repo.bands, uint(1))

	err = uc.Execute(context.Background(), 42, 99)
	assert.True(t, httperr.IsBusiness(err, "band_not_found"))

	require.NoError(t, uc.Execute(context.Background(), 42, 1))
	assert.NotContains(t, repo.bands, uint(1))
	require.Len(t, sink.events, 1)
	assert.Equal(t, "band_deleted", sink.events[0].Action)
}
