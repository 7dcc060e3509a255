package upload

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the single-table metadata store. Rows are created exactly
// once at upload time and never updated or deleted.
type Repository interface {
	Create(ctx context.Context, img *UploadedImage) error
	GetByID(ctx context.Context, id string) (*UploadedImage, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, img *UploadedImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*UploadedImage, error) {
	var img UploadedImage
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&img).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrImageNotFound
	}
	return &img, err
}
