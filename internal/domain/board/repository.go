package board

import (
	"context"

	"github.com/bandboard/bandboard/internal/models"
)

type Repository interface {
	GetAnnouncement(
		ctx context.Context,
		id uint,
	) (*models.Announcement, error)

	CreateAnnouncement(
		ctx context.Context,
		a *models.Announcement,
	) error

	UpdateAnnouncement(
		ctx context.Context,
		a *models.Announcement,
	) error

	DeleteAnnouncement(
		ctx context.Context,
		a *models.Announcement,
	) error

	ListAnnouncementsByOwner(
		ctx context.Context,
		ownerID uint,
	) ([]models.Announcement, error)
}
