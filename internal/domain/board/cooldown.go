package board

import (
	"time"

	"github.com/bandboard/bandboard/internal/models"
)

// BumpCooldown is the minimum gap between two accepted bumps.
const BumpCooldown = 4 * time.Hour

type BumpResult struct {
	Accepted  bool
	Remaining time.Duration
}

// TryBump refreshes the announcement's visibility window. Under cooldown
// the announcement is left untouched and the remaining wait is reported;
// otherwise BumpedAt is set to now, which also resets the 30-day window.
func TryBump(a *models.Announcement, now time.Time) BumpResult {
	elapsed := now.Sub(a.BumpedAt)
	if elapsed < BumpCooldown {
		return BumpResult{
			Accepted:  false,
			Remaining: BumpCooldown - elapsed,
		}
	}

	a.BumpedAt = now
	return BumpResult{Accepted: true}
}
