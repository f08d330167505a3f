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

// RegisterInput carries the fields accepted by self-registration.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
}

// AuthService handles authentication and the account lifecycle entry points.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	CurrentUser(ctx context.Context, userID uint) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account with a hashed password. The new account
// always gets the base role and starts activated, whatever the payload said.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
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
		Activated: true,
		RoleID:    baseRole.ID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.Role = baseRole

	return user, nil
}

// Login authenticates a user and returns a signed session token. Unknown
// email and wrong password produce the same error.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !auth.VerifyPassword(password, user.Password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !user.Activated {
		return "", nil, apperrors.ErrUserDeactivated
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.RoleName())
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *authService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(currentPassword, user.Password) {
		return apperrors.ErrWrongPassword
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// CurrentUser returns the caller's own record with its role.
func (s *authService) CurrentUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
