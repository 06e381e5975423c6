package band

import (
	"context"

	"github.com/bandboard/bandboard/internal/audit"
	domain "github.com/bandboard/bandboard/internal/domain/band"
	"github.com/bandboard/bandboard/internal/models"
)

type CreateBand struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateBand(
	repo domain.Repository,
	audit audit.Sink,
) *CreateBand {
	return &CreateBand{
		repo:  repo,
		audit: audit,
	}
}

type CreateBandInput struct {
	Name        string
	Description string
	CityID      *uint
	StyleIDs    []uint
	MusicianIDs []uint
}

func (uc *CreateBand) Execute(
	ctx context.Context,
	actorID uint,
	in CreateBandInput,
) (*models.Band, error) {

	b := models.Band{
		Name:        in.Name,
		Description: in.Description,
		CityID:      in.CityID,
		OwnerID:     actorID, // creator becomes the one owner
	}

	if err := uc.repo.CreateBand(ctx, &b); err != nil {
		return nil, err
	}

	if len(in.StyleIDs) > 0 {
		if err := uc.repo.ReplaceStyles(ctx, &b, in.StyleIDs); err != nil {
			return nil, err
		}
	}

	if len(in.MusicianIDs) > 0 {
		if err := uc.repo.ReplaceMusicians(ctx, &b, in.MusicianIDs); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: &actorID,
		Action:    "band_created",
		Entity:    "band",
		EntityID:  &b.ID,
	})

	return uc.repo.GetBand(ctx, b.ID)
}
