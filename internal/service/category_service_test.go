package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "cesizen/internal/errors"
	"cesizen/internal/model"
)

func TestCategoryService_DeleteWithoutArticles(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockCategories.On("FindByID", mock.Anything, uint(3)).Return(&model.Category{ID: 3, CategoryName: "Stress Management"}, nil)
	mockCategories.On("CountArticles", mock.Anything, uint(3)).Return(int64(0), nil)
	mockCategories.On("Delete", mock.Anything, uint(3)).Return(nil)

	svc := NewCategoryService(mockCategories)
	err := svc.Delete(context.Background(), 3, adminPrincipal)

	assert.NoError(t, err)
	mockCategories.AssertExpectations(t)
}

func TestCategoryService_DeleteWithDependentArticles(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockCategories.On("FindByID", mock.Anything, uint(3)).Return(&model.Category{ID: 3, CategoryName: "Stress Management"}, nil)
	mockCategories.On("CountArticles", mock.Anything, uint(3)).Return(int64(4), nil)

	svc := NewCategoryService(mockCategories)
	err := svc.Delete(context.Background(), 3, adminPrincipal)

	assert.ErrorIs(t, err, apperrors.ErrCategoryHasArticles)
	mockCategories.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryService_DeleteUnknownCategory(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockCategories.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCategoryService(mockCategories)
	err := svc.Delete(context.Background(), 42, adminPrincipal)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategoryService_WriteGating(t *testing.T) {
	svc := NewCategoryService(new(MockCategoryRepository))

	_, err := svc.Create(context.Background(), "New Category", basePrincipal)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.Update(context.Background(), 1, "Renamed", basePrincipal)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = svc.Delete(context.Background(), 1, basePrincipal)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCategoryService_ReadsNeedBaseRank(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockCategories.On("List", mock.Anything).Return([]model.Category{{ID: 1}}, nil)

	svc := NewCategoryService(mockCategories)

	_, err := svc.List(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	categories, err := svc.List(context.Background(), basePrincipal)
	assert.NoError(t, err)
	assert.Len(t, categories, 1)
}
