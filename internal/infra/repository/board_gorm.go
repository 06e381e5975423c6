package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/bandboard/bandboard/internal/domain/board"
	"github.com/bandboard/bandboard/internal/models"
)

type BoardGormRepository struct {
	db *gorm.DB
}

func NewBoardGormRepository(db *gorm.DB) *BoardGormRepository {
	return &BoardGormRepository{db: db}
}

func (r *BoardGormRepository) GetAnnouncement(
	ctx context.Context,
	id uint,
) (*models.Announcement, error) {

	var a models.Announcement
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *BoardGormRepository) CreateAnnouncement(
	ctx context.Context,
	a *models.Announcement,
) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *BoardGormRepository) UpdateAnnouncement(
	ctx context.Context,
	a *models.Announcement,
) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *BoardGormRepository) DeleteAnnouncement(
	ctx context.Context,
	a *models.Announcement,
) error {
	return r.db.WithContext(ctx).Delete(a).Error
}

func (r *BoardGormRepository) ListAnnouncementsByOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.Announcement, error) {

	var as []models.Announcement
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&as).Error; err != nil {
		return nil, err
	}
	return as, nil
}

// Compile-time check
var _ domain.Repository = (*BoardGormRepository)(nil)
