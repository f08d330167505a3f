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

// RoleService handles role administration. Every operation is reserved
// for administrators.
type RoleService interface {
	Create(ctx context.Context, roleName string, caller *auth.Principal) (*model.Role, error)
	List(ctx context.Context, caller *auth.Principal) ([]model.Role, error)
	GetByID(ctx context.Context, id uint, caller *auth.Principal) (*model.Role, error)
	Update(ctx context.Context, id uint, roleName string, caller *auth.Principal) (*model.Role, error)
	Delete(ctx context.Context, id uint, caller *auth.Principal) error
}

type roleService struct {
	repo repository.RoleRepository
}

// NewRoleService builds a RoleService.
func NewRoleService(repo repository.RoleRepository) RoleService {
	return &roleService{repo: repo}
}

func (s *roleService) Create(ctx context.Context, roleName string, caller *auth.Principal) (*model.Role, error) {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}
	role := &model.Role{RoleName: roleName}
	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) List(ctx context.Context, caller *auth.Principal) ([]model.Role, error) {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *roleService) GetByID(ctx context.Context, id uint, caller *auth.Principal) (*model.Role, error) {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return role, nil
}

func (s *roleService) Update(ctx context.Context, id uint, roleName string, caller *auth.Principal) (*model.Role, error) {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	role.RoleName = roleName
	if err := s.repo.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) Delete(ctx context.Context, id uint, caller *auth.Principal) error {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return apperrors.ErrForbidden
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
