package band

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bandboard/bandboard/internal/audit"
	domain "github.com/bandboard/bandboard/internal/domain/band"
	"github.com/bandboard/bandboard/internal/domain/ownership"
	"github.com/bandboard/bandboard/internal/httperr"
)

type DeleteBand struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewDeleteBand(
	repo domain.Repository,
	audit audit.Sink,
) *DeleteBand {
	return &DeleteBand{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBand) Execute(
	ctx context.Context,
	actorID uint,
	bandID uint,
) error {

	b, err := uc.repo.GetBand(ctx, bandID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("band_not_found")
		}
		return err
	}

	if err := ownership.Require(b, actorID); err != nil {
		return err
	}

	if err := uc.repo.DeleteBand(ctx, b); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: &actorID,
		Action:    "band_deleted",
		Entity:    "band",
		EntityID:  &b.ID,
	})

	return nil
}
