package board

import (
	"context"

	"github.com/bandboard/bandboard/internal/audit"
	"github.com/bandboard/bandboard/internal/clock"
	domain "github.com/bandboard/bandboard/internal/domain/board"
	"github.com/bandboard/bandboard/internal/models"
)

type CreateAnnouncement struct {
	repo  domain.Repository
	audit audit.Sink
	clk   clock.Clock
}

func NewCreateAnnouncement(
	repo domain.Repository,
	audit audit.Sink,
	clk clock.Clock,
) *CreateAnnouncement {
	return &CreateAnnouncement{
		repo:  repo,
		audit: audit,
		clk:   clk,
	}
}

type CreateAnnouncementInput struct {
	Title    string
	Text     string
	Category string
}

func (uc *CreateAnnouncement) Execute(
	ctx context.Context,
	actorID uint,
	in CreateAnnouncementInput,
) (*models.Announcement, error) {

	if err := domain.ValidateCategory(in.Category); err != nil {
		return nil, err
	}

	category := in.Category
	if category == "" {
		category = string(domain.DefaultCategory())
	}

	a := models.Announcement{
		OwnerID:  actorID,
		Title:    in.Title,
		Text:     in.Text,
		Category: category,
		BumpedAt: uc.clk.Now(), // a new announcement starts its 30-day window
	}

	if err := uc.repo.CreateAnnouncement(ctx, &a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: &actorID,
		Action:    "announcement_created",
		Entity:    "announcement",
		EntityID:  &a.ID,
	})

	return &a, nil
}
