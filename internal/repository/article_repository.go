package repository

import (
	"context"

	"gorm.io/gorm"

	"cesizen/internal/model"
)

// ArticleRepository defines article persistence operations.
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, article *model.Article) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Article, error)
	List(ctx context.Context) ([]model.Article, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]model.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository builds a GORM-backed repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) Update(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Article{}, id).Error
}

// FindByID loads an article with its category preloaded.
func (r *articleRepository) FindByID(ctx context.Context, id uint) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).Preload("Category").First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List(ctx context.Context) ([]model.Article, error) {
	var articles []model.Article
	if err := r.db.WithContext(ctx).Preload("Category").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) ListByCategory(ctx context.Context, categoryID uint) ([]model.Article, error) {
	var articles []model.Article
	if err := r.db.WithContext(ctx).Preload("Category").
		Where("category_id = ?", categoryID).
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}
