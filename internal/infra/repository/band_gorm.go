package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/bandboard/bandboard/internal/domain/band"
	"github.com/bandboard/bandboard/internal/models"
)

type BandGormRepository struct {
	db *gorm.DB
}

func NewBandGormRepository(db *gorm.DB) *BandGormRepository {
	return &BandGormRepository{db: db}
}

func (r *BandGormRepository) GetBand(
	ctx context.Context,
	id uint,
) (*models.Band, error) {

	var b models.Band
	if err := r.db.WithContext(ctx).
		Preload("City").
		Preload("Styles").
		Preload("Musicians").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BandGormRepository) CreateBand(
	ctx context.Context,
	b *models.Band,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BandGormRepository) UpdateBand(
	ctx context.Context,
	b *models.Band,
) error {
	return r.db.WithContext(ctx).
		Omit("Styles", "Musicians").
		Save(b).Error
}

func (r *BandGormRepository) DeleteBand(
	ctx context.Context,
	b *models.Band,
) error {
	return r.db.WithContext(ctx).
		Select("Styles", "Musicians").
		Delete(b).Error
}

func (r *BandGormRepository) ListBandsByOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.Band, error) {

	var bands []models.Band
	if err := r.db.WithContext(ctx).
		Preload("City").
		Preload("Styles").
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&bands).Error; err != nil {
		return nil, err
	}
	return bands, nil
}

// --------------------------------------------------
// Associations
// --------------------------------------------------

func (r *BandGormRepository) ReplaceStyles(
	ctx context.Context,
	b *models.Band,
	styleIDs []uint,
) error {

	styles := make([]models.Style, len(styleIDs))
	for i, id := range styleIDs {
		styles[i] = models.Style{ID: id}
	}

	return r.db.WithContext(ctx).
		Model(b).
		Association("Styles").
		Replace(styles)
}

func (r *BandGormRepository) ReplaceMusicians(
	ctx context.Context,
	b *models.Band,
	musicianIDs []uint,
) error {

	musicians := make([]models.Musician, len(musicianIDs))
	for i, id := range musicianIDs {
		musicians[i] = models.Musician{ID: id}
	}

	return r.db.WithContext(ctx).
		Model(b).
		Association("Musicians").
		Replace(musicians)
}

// Compile-time check
var _ domain.Repository = (*BandGormRepository)(nil)
