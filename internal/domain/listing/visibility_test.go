package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandboard/bandboard/internal/models"
)

func TestVisibleMusiciansExcludesNonActivated(t *testing.T) {
	ms := []models.Musician{
		{ID: 1, Activated: true},
		{ID: 2, Activated: false},
		{ID: 3, Activated: true},
	}

	got := VisibleMusicians(ms)
	require.Len(t, got, 2)
	for _, m := range got {
		assert.True(t, m.Activated)
	}

	// non-activated profiles stay hidden no matter the filters on top
	filtered := FilterMusicians(VisibleMusicians(ms), MusicianFilters{})
	for _, m := range filtered {
		assert.NotEqual(t, uint(2), m.ID)
	}
}

func TestVisibleMusiciansEmptyInput(t *testing.T) {
	assert.Empty(t, VisibleMusicians(nil))
}

func TestFreshAnnouncementsWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		bumped  time.Time
		visible bool
	}{
		{"bumped now", now, true},
		{"bumped 29 days ago", now.AddDate(0, 0, -29), true},
		{"bumped 31 days ago", now.AddDate(0, 0, -31), false},
		{"bumped exactly on the cutoff", now.Add(-AnnouncementTTL), false},
		{"bumped just inside the cutoff", now.Add(-AnnouncementTTL + time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := []models.Announcement{{ID: 1, BumpedAt: tt.bumped}}
			got := FreshAnnouncements(in, now)

			if tt.visible {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestFreshAnnouncementsDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	in := []models.Announcement{
		{ID: 1, BumpedAt: now.AddDate(0, 0, -5)},
		{ID: 2, BumpedAt: now.AddDate(0, 0, -40)},
		{ID: 3, BumpedAt: now.AddDate(0, 0, -10)},
	}

	first := FreshAnnouncements(in, now)
	second := FreshAnnouncements(in, now)

	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, uint(1), first[0].ID)
	assert.Equal(t, uint(3), first[1].ID)
}
