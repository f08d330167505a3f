package repository

import (
	"context"

	"gorm.io/gorm"

	"cesizen/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	CountArticles(ctx context.Context, id uint) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository builds a GORM-backed repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CountArticles returns the number of articles still referencing the
// category. The delete guard reads this before any write.
func (r *categoryRepository) CountArticles(ctx context.Context, id uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Article{}).
		Where("category_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
