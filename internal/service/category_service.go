package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cesizen/internal/auth"
	apperrors "cesizen/internal/errors"
	"cesizen/internal/model"
	"cesizen/internal/repository"
)

// CategoryService handles article categories. Reads need the base rank,
// writes are reserved for administrators.
type CategoryService interface {
	Create(ctx context.Context, categoryName string, caller *auth.Principal) (*model.Category, error)
	List(ctx context.Context, caller *auth.Principal) ([]model.Category, error)
	GetByID(ctx context.Context, id uint, caller *auth.Principal) (*model.Category, error)
	Update(ctx context.Context, id uint, categoryName string, caller *auth.Principal) (*model.Category, error)
	Delete(ctx context.Context, id uint, caller *auth.Principal) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService builds a CategoryService.
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, categoryName string, caller *auth.Principal) (*model.Category, error) {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}
	category := &model.Category{CategoryName: categoryName}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, caller *auth.Principal) ([]model.Category, error) {
	if !auth.HasRole(caller, model.RoleUser) {
		return nil, apperrors.ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *categoryService) GetByID(ctx context.Context, id uint, caller *auth.Principal) (*model.Category, error) {
	if !auth.HasRole(caller, model.RoleUser) {
		return nil, apperrors.ErrForbidden
	}
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, categoryName string, caller *auth.Principal) (*model.Category, error) {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	category.CategoryName = categoryName
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category only when no article references it. The
// dependent count is read before the delete decision; a category that
// still owns articles is left untouched.
func (s *categoryService) Delete(ctx context.Context, id uint, caller *auth.Principal) error {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return apperrors.ErrForbidden
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	count, err := s.repo.CountArticles(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrCategoryHasArticles
	}
	return s.repo.Delete(ctx, id)
}
