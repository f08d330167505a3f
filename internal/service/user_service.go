package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cesizen/internal/auth"
	apperrors "cesizen/internal/errors"
	"cesizen/internal/model"
	"cesizen/internal/repository"
)

// CreateUserInput carries the fields an administrator submits when
// creating an account. Any role in the payload is ignored.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
	Activated bool
}

// UpdateUserInput carries a partial admin edit; nil fields are untouched.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Username  *string
	Activated *bool
	RoleID    *uint
}

// UserService handles administration of accounts.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput, caller *auth.Principal) (*model.User, error)
	List(ctx context.Context, caller *auth.Principal) ([]model.User, error)
	GetByID(ctx context.Context, id uint, caller *auth.Principal) (*model.User, error)
	Update(ctx context.Context, id uint, input UpdateUserInput, caller *auth.Principal) (*model.User, error)
	Delete(ctx context.Context, id uint, caller *auth.Principal) error
	Deactivate(ctx context.Context, id uint, caller *auth.Principal) error
	Reactivate(ctx context.Context, id uint, caller *auth.Principal) error
	FindIDByUsername(ctx context.Context, username string) (uint, error)
	FindUsernameByID(ctx context.Context, id uint) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) UserService {
	return &userService{userRepo: userRepo, roleRepo: roleRepo}
}

// Create creates an account on behalf of an administrator. The new
// account is always assigned the base role server-side, regardless of the
// payload, so a privileged endpoint cannot mint another administrator.
func (s *userService) Create(ctx context.Context, input CreateUserInput, caller *auth.Principal) (*model.User, error) {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	baseRole, err := s.roleRepo.FindByName(ctx, model.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("find base role: %w", err)
	}

	user := &model.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Username:  input.Username,
		Password:  hashed,
		Activated: input.Activated,
		RoleID:    baseRole.ID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.Role = baseRole

	return user, nil
}

func (s *userService) List(ctx context.Context, caller *auth.Principal) ([]model.User, error) {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}
	return s.userRepo.List(ctx)
}

func (s *userService) GetByID(ctx context.Context, id uint, caller *auth.Principal) (*model.User, error) {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uint, input UpdateUserInput, caller *auth.Principal) (*model.User, error) {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Activated != nil {
		user.Activated = *input.Activated
	}
	if input.RoleID != nil {
		if _, err := s.roleRepo.FindByID(ctx, *input.RoleID); err != nil {
			return nil, apperrors.ErrNotFound
		}
		user.RoleID = *input.RoleID
		user.Role = nil
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint, caller *auth.Principal) error {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return apperrors.ErrForbidden
	}
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// Deactivate soft-disables an account; only the activation flag changes.
func (s *userService) Deactivate(ctx context.Context, id uint, caller *auth.Principal) error {
	return s.setActivated(ctx, id, false, caller)
}

// Reactivate re-enables a deactivated account.
func (s *userService) Reactivate(ctx context.Context, id uint, caller *auth.Principal) error {
	return s.setActivated(ctx, id, true, caller)
}

func (s *userService) setActivated(ctx context.Context, id uint, activated bool, caller *auth.Principal) error {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return apperrors.ErrForbidden
	}
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return s.userRepo.SetActivated(ctx, id, activated)
}

// FindIDByUsername is an ungated display-name lookup returning only the id.
func (s *userService) FindIDByUsername(ctx context.Context, username string) (uint, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrNotFound
		}
		return 0, err
	}
	return user.ID, nil
}

// FindUsernameByID is an ungated display-name lookup returning only the username.
func (s *userService) FindUsernameByID(ctx context.Context, id uint) (string, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrNotFound
		}
		return "", err
	}
	return user.Username, nil
}
