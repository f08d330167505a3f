package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"cesizen/internal/auth"
	"cesizen/internal/cache"
	apperrors "cesizen/internal/errors"
	"cesizen/internal/model"
	"cesizen/internal/repository"
)

const (
	articleCacheTTL     = 5 * time.Minute
	articleListCacheKey = "articles:all"
)

// CreateArticleInput carries the fields for a new article.
type CreateArticleInput struct {
	Title      string
	Content    string
	Image      string
	CategoryID uint
}

// UpdateArticleInput carries a partial article edit; nil fields are untouched.
type UpdateArticleInput struct {
	Title      *string
	Content    *string
	Image      *string
	CategoryID *uint
}

// ArticleService handles wellness articles. Listing and reading by id are
// open to everyone; listing by category and writing need the base rank;
// deleting is reserved for administrators.
type ArticleService interface {
	Create(ctx context.Context, input CreateArticleInput, caller *auth.Principal) (*model.Article, error)
	List(ctx context.Context) ([]model.Article, error)
	GetByID(ctx context.Context, id uint) (*model.Article, error)
	ListByCategory(ctx context.Context, categoryID uint, caller *auth.Principal) ([]model.Article, error)
	Update(ctx context.Context, id uint, input UpdateArticleInput, caller *auth.Principal) (*model.Article, error)
	Delete(ctx context.Context, id uint, caller *auth.Principal) error
}

type articleService struct {
	repo  repository.ArticleRepository
	cache *cache.Client
}

// NewArticleService builds an ArticleService with repository and cache.
func NewArticleService(repo repository.ArticleRepository, cache *cache.Client) ArticleService {
	return &articleService{repo: repo, cache: cache}
}

func (s *articleService) cacheKey(id uint) string {
	return fmt.Sprintf("article:%d", id)
}

func (s *articleService) Create(ctx context.Context, input CreateArticleInput, caller *auth.Principal) (*model.Article, error) {
	if !auth.HasRole(caller, model.RoleUser) {
		return nil, apperrors.ErrForbidden
	}
	article := &model.Article{
		Title:      input.Title,
		Content:    input.Content,
		Image:      input.Image,
		CategoryID: input.CategoryID,
	}
	if err := s.repo.Create(ctx, article); err != nil {
		return nil, err
	}
	s.invalidate(ctx, article.ID)
	return s.GetByID(ctx, article.ID)
}

// List returns all articles with their categories. Deliberately ungated.
func (s *articleService) List(ctx context.Context) ([]model.Article, error) {
	if data, _ := s.cache.Get(ctx, articleListCacheKey); data != nil {
		var cached []model.Article
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(articles); err == nil {
		_ = s.cache.Set(ctx, articleListCacheKey, payload, articleCacheTTL)
	}
	return articles, nil
}

// GetByID returns one article with its category. Deliberately ungated.
func (s *articleService) GetByID(ctx context.Context, id uint) (*model.Article, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Article
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(article); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, articleCacheTTL)
	}
	return article, nil
}

// ListByCategory requires the base rank, unlike List and GetByID. The
// asymmetry matches the product's observed access rules.
func (s *articleService) ListByCategory(ctx context.Context, categoryID uint, caller *auth.Principal) ([]model.Article, error) {
	if !auth.HasRole(caller, model.RoleUser) {
		return nil, apperrors.ErrForbidden
	}

	key := fmt.Sprintf("articles:category:%d", categoryID)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Article
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	articles, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(articles); err == nil {
		_ = s.cache.Set(ctx, key, payload, articleCacheTTL)
	}
	return articles, nil
}

func (s *articleService) Update(ctx context.Context, id uint, input UpdateArticleInput, caller *auth.Principal) (*model.Article, error) {
	if !auth.HasRole(caller, model.RoleUser) {
		return nil, apperrors.ErrForbidden
	}

	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if input.Title != nil {
		article.Title = *input.Title
	}
	if input.Content != nil {
		article.Content = *input.Content
	}
	if input.Image != nil {
		article.Image = *input.Image
	}
	if input.CategoryID != nil {
		article.CategoryID = *input.CategoryID
		article.Category = nil
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return s.GetByID(ctx, id)
}

func (s *articleService) Delete(ctx context.Context, id uint, caller *auth.Principal) error {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return apperrors.ErrForbidden
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *articleService) invalidate(ctx context.Context, id uint) {
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	// drops the full listing and every per-category listing
	_ = s.cache.DeleteByPrefix(ctx, "articles:")
}
