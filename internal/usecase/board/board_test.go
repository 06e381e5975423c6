package board

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bandboard/bandboard/internal/audit"
	"github.com/bandboard/bandboard/internal/clock"
	"github.com/bandboard/bandboard/internal/httperr"
	"github.com/bandboard/bandboard/internal/models"
)

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeBoardRepo struct {
	announcements map[uint]models.Announcement
	nextID        uint
	updates       int
}

func newFakeBoardRepo() *fakeBoardRepo {
	return &fakeBoardRepo{
		announcements: map[uint]models.Announcement{},
		nextID:        1,
	}
}

func (r *fakeBoardRepo) GetAnnouncement(_ context.Context, id uint) (*models.Announcement, error) {
	a, ok := r.announcements[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := a
	return &found, nil
}

func (r *fakeBoardRepo) CreateAnnouncement(_ context.Context, a *models.Announcement) error {
	a.ID = r.nextID
	r.nextID++
	r.announcements[a.ID] = *a
	return nil
}

func (r *fakeBoardRepo) UpdateAnnouncement(_ context.Context, a *models.Announcement) error {
	r.updates++
	r.announcements[a.ID] = *a
	return nil
}

func (r *fakeBoardRepo) DeleteAnnouncement(_ context.Context, a *models.Announcement) error {
	delete(r.announcements, a.ID)
	return nil
}

func (r *fakeBoardRepo) ListAnnouncementsByOwner(_ context.Context, ownerID uint) ([]models.Announcement, error) {
	var out []models.Announcement
	for _, a := range r.announcements {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeSink struct {
	events []audit.Event
}

func (s *fakeSink) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func TestCreateAnnouncementAssignsOwnerAndWindow(t *testing.T) {
	repo := newFakeBoardRepo()
	sink := &fakeSink{}
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	uc := NewCreateAnnouncement(repo, sink, clock.Fixed{Instant: now})

	a, err := uc.Execute(context.Background(), 42, CreateAnnouncementInput{
		Title:    "Looking for a drummer",
		Category: "BAND_IS_LOOKING",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), a.OwnerID)
	assert.Equal(t, now, a.BumpedAt)
	require.Len(t, sink.events, 1)
	assert.Equal(t, "announcement_created", sink.events[0].Action)
}

func TestCreateAnnouncementDefaultsCategory(t *testing.T) {
	repo := newFakeBoardRepo()
	uc := NewCreateAnnouncement(repo, &fakeSink{}, clock.RealClock{})

	a, err := uc.Execute(context.Background(), 1, CreateAnnouncementInput{Title: "t"})

	require.NoError(t, err)
	assert.Equal(t, "BAND_IS_LOOKING", a.Category)
}

func TestCreateAnnouncementRejectsUnknownCategory(t *testing.T) {
	repo := newFakeBoardRepo()
	uc := NewCreateAnnouncement(repo, &fakeSink{}, clock.RealClock{})

	_, err := uc.Execute(context.Background(), 1, CreateAnnouncementInput{
		Title:    "t",
		Category: "NOT_A_CATEGORY",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_category"))
	assert.Empty(t, repo.announcements)
}

// --------------------------------------------------
// Ownership
// --------------------------------------------------

func TestUpdateAnnouncementOwnership(t *testing.T) {
	repo := newFakeBoardRepo()
	repo.announcements[1] = models.Announcement{ID: 1, OwnerID: 42, Title: "old"}
	repo.nextID = 2

	sink := &fakeSink{}
	uc := NewUpdateAnnouncement(repo, sink)

	title := "new"

	// non-owner gets forbidden, record unchanged
	_, err := uc.Execute(context.Background(), 7, 1, UpdateAnnouncementInput{Title: &title})
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
	assert.Equal(t, "old", repo.announcements[1].Title)

	// missing id is not-found, distinct from forbidden
	_, err = uc.Execute(context.Background(), 42, 99, UpdateAnnouncementInput{Title: &title})
	assert.True(t, httperr.IsBusiness(err, "announcement_not_found"))

	// owner succeeds
	a, err := uc.Execute(context.Background(), 42, 1, UpdateAnnouncementInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new", a.Title)
	assert.Equal(t, "new", repo.announcements[1].Title)
}

func TestUpdateAnnouncementDoesNotTouchBump(t *testing.T) {
	bumped := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	repo := newFakeBoardRepo()
	repo.announcements[1] = models.Announcement{ID: 1, OwnerID: 1, BumpedAt: bumped}
	repo.nextID = 2

	text := "edited"
	uc := NewUpdateAnnouncement(repo, &fakeSink{})

	a, err := uc.Execute(context.Background(), 1, 1, UpdateAnnouncementInput{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, bumped, a.BumpedAt)
}

func TestDeleteAnnouncementOwnership(t *testing.T) {
	repo := newFakeBoardRepo()
	repo.announcements[1] = models.Announcement{ID: 1, OwnerID: 42}
	repo.nextID = 2

	uc := NewDeleteAnnouncement(repo, &fakeSink{})

	err := uc.Execute(context.Background(), 7, 1)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
	assert.Contains(t, repo.announcements, uint(1))

	err = uc.Execute(context.Background(), 42, 99)
	assert.True(t, httperr.IsBusiness(err, "announcement_not_found"))

	require.NoError(t, uc.Execute(context.Background(), 42, 1))
	assert.NotContains(t, repo.announcements, uint(1))
}

// --------------------------------------------------
// Bump
// --------------------------------------------------

func TestBumpAnnouncementCooldown(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	bumped := now.Add(-1 * time.Hour)

	repo := newFakeBoardRepo()
	repo.announcements[1] = models.Announcement{ID: 1, OwnerID: 42, BumpedAt: bumped}
	repo.nextID = 2

	sink := &fakeSink{}
	uc := NewBumpAnnouncement(repo, sink, clock.Fixed{Instant: now})

	_, res, err := uc.Execute(context.Background(), 42, 1)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, 3*time.Hour, res.Remaining)
	assert.Equal(t, bumped, repo.announcements[1].BumpedAt, "rejected bump persists nothing")
	assert.Zero(t, repo.updates)
	assert.Empty(t, sink.events)
}

func TestBumpAnnouncementAccepted(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	repo := newFakeBoardRepo()
	repo.announcements[1] = models.Announcement{ID: 1, OwnerID: 42, BumpedAt: now.Add(-5 * time.Hour)}
	repo.nextID = 2

	sink := &fakeSink{}
	uc := NewBumpAnnouncement(repo, sink, clock.Fixed{Instant: now})

	a, res, err := uc.Execute(context.Background(), 42, 1)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, now, a.BumpedAt)
	assert.Equal(t, now, repo.announcements[1].BumpedAt)
	require.Len(t, sink.events, 1)
	assert.Equal(t, "announcement_bumped", sink.events[0].Action)
}

func TestBumpAnnouncementGuards(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	repo := newFakeBoardRepo()
	repo.announcements[1] = models.Announcement{ID: 1, OwnerID: 42, BumpedAt: now.Add(-24 * time.Hour)}
	repo.nextID = 2

	uc := NewBumpAnnouncement(repo, &fakeSink{}, clock.Fixed{Instant: now})

	_, _, err := uc.Execute(context.Background(), 7, 1)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	_, _, err = uc.Execute(context.Background(), 42, 99)
	assert.True(t, httperr.IsBusiness(err, "announcement_not_found"))
}
