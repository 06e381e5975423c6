package board

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bandboard/bandboard/internal/audit"
	domain "github.com/bandboard/bandboard/internal/domain/board"
	"github.com/bandboard/bandboard/internal/domain/ownership"
	"github.com/bandboard/bandboard/internal/httperr"
	"github.com/bandboard/bandboard/internal/models"
)

type UpdateAnnouncement struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewUpdateAnnouncement(
	repo domain.Repository,
	audit audit.Sink,
) *UpdateAnnouncement {
	return &UpdateAnnouncement{
		repo:  repo,
		audit: audit,
	}
}

type UpdateAnnouncementInput struct {
	Title    *string
	Text     *string
	Category *string
}

// Execute edits content fields only. Editing never refreshes BumpedAt;
// resurrecting an expired announcement takes an explicit bump.
func (uc *UpdateAnnouncement) Execute(
	ctx context.Context,
	actorID uint,
	announcementID uint,
	in UpdateAnnouncementInput,
) (*models.Announcement, error) {

	a, err := uc.repo.GetAnnouncement(ctx, announcementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("announcement_not_found")
		}
		return nil, err
	}

	if err := ownership.Require(a, actorID); err != nil {
		return nil, err
	}

	if in.Category != nil {
		if !domain.IsValidCategory(*in.Category) {
			return nil, httperr.ErrBusiness("invalid_category")
		}
		a.Category = *in.Category
	}
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Text != nil {
		a.Text = *in.Text
	}

	if err := uc.repo.UpdateAnnouncement(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: &actorID,
		Action:    "announcement_updated",
		Entity:    "announcement",
		EntityID:  &a.ID,
	})

	return a, nil
}
