package board

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bandboard/bandboard/internal/audit"
	"github.com/bandboard/bandboard/internal/clock"
	domain "github.com/bandboard/bandboard/internal/domain/board"
	"github.com/bandboard/bandboard/internal/domain/ownership"
	"github.com/bandboard/bandboard/internal/httperr"
	"github.com/bandboard/bandboard/internal/models"
)

type BumpAnnouncement struct {
	repo  domain.Repository
	audit audit.Sink
	clk   clock.Clock
}

func NewBumpAnnouncement(
	repo domain.Repository,
	audit audit.Sink,
	clk clock.Clock,
) *BumpAnnouncement {
	return &BumpAnnouncement{
		repo:  repo,
		audit: audit,
		clk:   clk,
	}
}

// Execute refreshes the announcement's visibility window, subject to the
// 4-hour cooldown. A rejected bump persists nothing.
func (uc *BumpAnnouncement) Execute(
	ctx context.Context,
	actorID uint,
	announcementID uint,
) (*models.Announcement, domain.BumpResult, error) {

	a, err := uc.repo.GetAnnouncement(ctx, announcementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.BumpResult{}, httperr.ErrBusiness("announcement_not_found")
		}
		return nil, domain.BumpResult{}, err
	}

	if err := ownership.Require(a, actorID); err != nil {
		return nil, domain.BumpResult{}, err
	}

	res := domain.TryBump(a, uc.clk.Now())
	if !res.Accepted {
		return a, res, nil
	}

	if err := uc.repo.UpdateAnnouncement(ctx, a); err != nil {
		return nil, domain.BumpResult{}, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: &actorID,
		Action:    "announcement_bumped",
		Entity:    "announcement",
		EntityID:  &a.ID,
	})

	return a, res, nil
}
