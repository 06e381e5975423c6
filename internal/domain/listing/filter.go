package listing

import (
	"sort"

	"github.com/bandboard/bandboard/internal/models"
)

// Filters are optional, independent predicates combined with AND.
// A nil/empty field narrows nothing; an id matching no record yields an
// empty result rather than an error. Order of application never matters.

type MusicianFilters struct {
	CityID       *uint
	InstrumentID *uint
}

type BandFilters struct {
	CityID  *uint
	StyleID *uint
}

type AnnouncementFilters struct {
	Category string
}

func FilterMusicians(musicians []models.Musician, f MusicianFilters) []models.Musician {
	out := make([]models.Musician, 0, len(musicians))
	for _, m := range musicians {
		if f.CityID != nil && (m.CityID == nil || *m.CityID != *f.CityID) {
			continue
		}
		if f.InstrumentID != nil && !playsInstrument(m, *f.InstrumentID) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func FilterBands(bands []models.Band, f BandFilters) []models.Band {
	out := make([]models.Band, 0, len(bands))
	for _, b := range bands {
		if f.CityID != nil && (b.CityID == nil || *b.CityID != *f.CityID) {
			continue
		}
		if f.StyleID != nil && !hasStyle(b, *f.StyleID) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func FilterAnnouncements(announcements []models.Announcement, f AnnouncementFilters) []models.Announcement {
	if f.Category == "" {
		return announcements
	}

	out := make([]models.Announcement, 0, len(announcements))
	for _, a := range announcements {
		if a.Category == f.Category {
			out = append(out, a)
		}
	}
	return out
}

func playsInstrument(m models.Musician, instrumentID uint) bool {
	for _, in := range m.Instruments {
		if in.ID == instrumentID {
			return true
		}
	}
	return false
}

func hasStyle(b models.Band, styleID uint) bool {
	for _, s := range b.Styles {
		if s.ID == styleID {
			return true
		}
	}
	return false
}

// SortByAvailability orders the musician directory: not-busy profiles
// first, id ascending as the deterministic tiebreak.
func SortByAvailability(musicians []models.Musician) {
	sort.SliceStable(musicians, func(i, j int) bool {
		if musicians[i].Busy != musicians[j].Busy {
			return !musicians[i].Busy
		}
		return musicians[i].ID < musicians[j].ID
	})
}
