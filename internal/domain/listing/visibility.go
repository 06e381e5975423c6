package listing

import (
	"time"

	"github.com/bandboard/bandboard/internal/models"
)

// AnnouncementTTL is the public-feed window: an announcement stays
// visible while its bump is strictly younger than this.
const AnnouncementTTL = 30 * 24 * time.Hour

// VisibleMusicians keeps only activated profiles. Pure, order-preserving.
func VisibleMusicians(musicians []models.Musician) []models.Musician {
	out := make([]models.Musician, 0, len(musicians))
	for _, m := range musicians {
		if m.Activated {
			out = append(out, m)
		}
	}
	return out
}

// FreshAnnouncements keeps announcements bumped after now - AnnouncementTTL.
// An announcement bumped exactly on the cutoff is expired.
func FreshAnnouncements(announcements []models.Announcement, now time.Time) []models.Announcement {
	cutoff := now.Add(-AnnouncementTTL)

	out := make([]models.Announcement, 0, len(announcements))
	for _, a := range announcements {
		if a.BumpedAt.After(cutoff) {
			out = append(out, a)
		}
	}
	return out
}
