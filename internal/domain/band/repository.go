package band

import (
	"context"

	"github.com/bandboard/bandboard/internal/models"
)

type Repository interface {
	// -------- Band --------
	GetBand(
		ctx context.Context,
		id uint,
	) (*models.Band, error)

	CreateBand(
		ctx context.Context,
		b *models.Band,
	) error

	UpdateBand(
		ctx context.Context,
		b *models.Band,
	) error

	DeleteBand(
		ctx context.Context,
		b *models.Band,
	) error

	ListBandsByOwner(
		ctx context.Context,
		ownerID uint,
	) ([]models.Band, error)

	// -------- Associations --------
	ReplaceStyles(
		ctx context.Context,
		b *models.Band,
		styleIDs []uint,
	) error

	ReplaceMusicians(
		ctx context.Context,
		b *models.Band,
		musicianIDs []uint,
	) error
}
