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

var (
	adminPrincipal = &auth.Principal{UserID: 1, Email: "admin@example.com", RoleName: model.RoleAdmin}
	basePrincipal  = &auth.Principal{UserID: 2, Email: "user@example.com", RoleName: model.RoleUser}
)

func TestUserService_CreateForcesBaseRole(t *testing.T) {
	baseRole := &model.Role{ID: 2, RoleName: model.RoleUser}

	mockUsers := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	mockRoles.On("FindByName", mock.Anything, model.RoleUser).Return(baseRole, nil)
	mockUsers.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.RoleID == baseRole.ID
	})).Return(nil)

	svc := NewUserService(mockUsers, mockRoles)
	user, err := svc.Create(context.Background(), CreateUserInput{
		FirstName: "New",
		LastName:  "User",
		Email:     "new@example.com",
		Username:  "newuser",
		Password:  "password123",
		Activated: true,
	}, adminPrincipal)

	assert.NoError(t, err)
	// whatever role the payload carried, the created account holds the base rank
	assert.Equal(t, baseRole.ID, user.RoleID)
	assert.Equal(t, model.RoleUser, user.RoleName())
	mockUsers.AssertExpectations(t)
	mockRoles.AssertExpectations(t)
}

func TestUserService_CreateForbiddenForBaseRank(t *testing.T) {
	svc := NewUserService(new(MockUserRepository), new(MockRoleRepository))

	user, err := svc.Create(context.Background(), CreateUserInput{
		Email:    "new@example.com",
		Password: "password123",
	}, basePrincipal)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Nil(t, user)
}

func TestUserService_ListRequiresAdmin(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("List", mock.Anything).Return([]model.User{{ID: 1}}, nil)

	svc := NewUserService(mockUsers, new(MockRoleRepository))

	_, err := svc.List(context.Background(), basePrincipal)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	users, err := svc.List(context.Background(), adminPrincipal)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_DeactivateFlipsOnlyActivation(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByID", mock.Anything, uint(9)).Return(&model.User{ID: 9, Activated: true}, nil)
	mockUsers.On("SetActivated", mock.Anything, uint(9), false).Return(nil)

	svc := NewUserService(mockUsers, new(MockRoleRepository))
	err := svc.Deactivate(context.Background(), 9, adminPrincipal)

	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)
}

func TestUserService_DeactivateUnknownUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockUsers, new(MockRoleRepository))
	err := svc.Deactivate(context.Background(), 404, adminPrincipal)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_UngatedLookups(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByUsername", mock.Anything, "johndoe").Return(&model.User{ID: 7, Username: "johndoe"}, nil)
	mockUsers.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Username: "johndoe"}, nil)

	svc := NewUserService(mockUsers, new(MockRoleRepository))

	// no principal required on either direction
	id, err := svc.FindIDByUsername(context.Background(), "johndoe")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), id)

	username, err := svc.FindUsernameByID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "johndoe", username)
}
