package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"cesizen/internal/auth"
	apperrors "cesizen/internal/errors"
	"cesizen/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	baseRole := &model.Role{ID: 2, RoleName: model.RoleUser}

	tests := []struct {
		name          string
		input         RegisterInput
		setupMock     func(*MockUserRepository, *MockRoleRepository)
		expectedError error
	}{
		{
			name: "successful registration gets base role",
			input: RegisterInput{
				FirstName: "John",
				LastName:  "Doe",
				Email:     "john@example.com",
				Username:  "johndoe",
				Password:  "password123",
			},
			setupMock: func(mu *MockUserRepository, mr *MockRoleRepository) {
				mu.On("FindByEmail", mock.Anything, "john@example.com").Return(nil, gorm.ErrRecordNotFound)
				mr.On("FindByName", mock.Anything, model.RoleUser).Return(baseRole, nil)
				mu.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "email already taken",
			input: RegisterInput{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "existing@example.com",
				Username:  "janedoe",
				Password:  "password123",
			},
			setupMock: func(mu *MockUserRepository, mr *MockRoleRepository) {
				mu.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockRoles := new(MockRoleRepository)
			tt.setupMock(mockUsers, mockRoles)

			svc := NewAuthService(mockUsers, mockRoles, auth.NewJWTService("test-secret"))
			user, err := svc.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.input.Email, user.Email)
				assert.Equal(t, baseRole.ID, user.RoleID)
				assert.True(t, user.Activated)
				assert.NotEmpty(t, user.Password)
				assert.NotEqual(t, tt.input.Password, user.Password)
			}

			mockUsers.AssertExpectations(t)
			mockRoles.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	assert.NoError(t, err)

	activeUser := &model.User{
		ID:        5,
		Email:     "test@example.com",
		Username:  "tester",
		Password:  hash,
		Activated: true,
		RoleID:    2,
		Role:      &model.Role{ID: 2, RoleName: model.RoleUser},
	}
	deactivatedUser := &model.User{
		ID:        6,
		Email:     "off@example.com",
		Password:  hash,
		Activated: false,
		RoleID:    2,
		Role:      &model.Role{ID: 2, RoleName: model.RoleUser},
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(mu *MockUserRepository) {
				mu.On("FindByEmail", mock.Anything, "test@example.com").Return(activeUser, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(mu *MockUserRepository) {
				mu.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrong-password",
			setupMock: func(mu *MockUserRepository) {
				mu.On("FindByEmail", mock.Anything, "test@example.com").Return(activeUser, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "deactivated account",
			email:    "off@example.com",
			password: "password123",
			setupMock: func(mu *MockUserRepository) {
				mu.On("FindByEmail", mock.Anything, "off@example.com").Return(deactivatedUser, nil)
			},
			expectedError: apperrors.ErrUserDeactivated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockUsers)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockUsers, new(MockRoleRepository), jwtService)

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.email, user.Email)

				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, activeUser.ID, claims.UserID)
				assert.Equal(t, model.RoleUser, claims.Role)
			}

			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	hash, err := auth.HashPassword("old-password")
	assert.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Password: hash}, nil)

		svc := NewAuthService(mockUsers, new(MockRoleRepository), auth.NewJWTService("test-secret"))
		err := svc.ChangePassword(context.Background(), 1, "not-the-password", "new-password")
		assert.ErrorIs(t, err, apperrors.ErrWrongPassword)
	})

	t.Run("successful change stores a new hash", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Password: hash}, nil)
		mockUsers.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Password != hash && auth.VerifyPassword("new-password", u.Password)
		})).Return(nil)

		svc := NewAuthService(mockUsers, new(MockRoleRepository), auth.NewJWTService("test-secret"))
		err := svc.ChangePassword(context.Background(), 1, "old-password", "new-password")
		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
	})
}
