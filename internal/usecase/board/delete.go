package board

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bandboard/bandboard/internal/audit"
	domain "github.com/bandboard/bandboard/internal/domain/board"
	"github.com/bandboard/bandboard/internal/domain/ownership"
	"github.com/bandboard/bandboard/internal/httperr"
)

type DeleteAnnouncement struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewDeleteAnnouncement(
	repo domain.Repository,
	audit audit.Sink,
) *DeleteAnnouncement {
	return &DeleteAnnouncement{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAnnouncement) Execute(
	ctx context.Context,
	actorID uint,
	announcementID uint,
) error {

	a, err := uc.repo.GetAnnouncement(ctx, announcementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("announcement_not_found")
		}
		return err
	}

	if err := ownership.Require(a, actorID); err != nil {
		return err
	}

	if err := uc.repo.DeleteAnnouncement(ctx, a); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: &actorID,
		Action:    "announcement_deleted",
		Entity:    "announcement",
		EntityID:  &a.ID,
	})

	return nil
}
