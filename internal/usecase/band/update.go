package band

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bandboard/bandboard/internal/audit"
	domain "github.com/bandboard/bandboard/internal/domain/band"
	"github.com/bandboard/bandboard/internal/domain/ownership"
	"github.com/bandboard/bandboard/internal/httperr"
	"github.com/bandboard/bandboard/internal/models"
)

type UpdateBand struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewUpdateBand(
	repo domain.Repository,
	audit audit.Sink,
) *UpdateBand {
	return &UpdateBand{
		repo:  repo,
		audit: audit,
	}
}

type UpdateBandInput struct {
	Name        *string
	Description *string
	CityID      *uint
	StyleIDs    []uint
	MusicianIDs []uint
}

func (uc *UpdateBand) Execute(
	ctx context.Context,
	actorID uint,
	bandID uint,
	in UpdateBandInput,
) (*models.Band, error) {

	b, err := uc.repo.GetBand(ctx, bandID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("band_not_found")
		}
		return nil, err
	}

	if err := ownership.Require(b, actorID); err != nil {
		return nil, err
	}

	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.CityID != nil {
		b.CityID = in.CityID
	}

	if err := uc.repo.UpdateBand(ctx, b); err != nil {
		return nil, err
	}

	if in.StyleIDs != nil {
		if err := uc.repo.ReplaceStyles(ctx, b, in.StyleIDs); err != nil {
			return nil, err
		}
	}

	if in.MusicianIDs != nil {
		if err := uc.repo.ReplaceMusicians(ctx, b, in.MusicianIDs); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: &actorID,
		Action:    "band_updated",
		Entity:    "band",
		EntityID:  &b.ID,
	})

	return uc.repo.GetBand(ctx, b.ID)
}
