package usecase

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/message"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserUsecase_CreateUser_DuplicatePhone(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByPhone", mock.Anything, "0901234567").Return(&model.User{ID: 1}, nil)

	uc := NewUserUsecase(users, new(RoleRepoMock))

	resp := uc.CreateUser(context.Background(), UserCreateRequest{
		FullName:    "Taro",
		PhoneNumber: "0901234567",
	})

	assert.False(t, resp.Success)
	assert.Equal(t, message.E11004, resp.MessageID)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserUsecase_CreateUser_CustomerRoleAssigned(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByPhone", mock.Anything, "0901234567").Return(nil, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Phone == "0901234567" && u.RoleID != nil && *u.RoleID == 2 && u.Password == ""
	})).Return(nil)

	roles := new(RoleRepoMock)
	roles.On("FindByName", mock.Anything, model.RoleCustomer).Return(&model.Role{ID: 2, RoleName: model.RoleCustomer}, nil)

	uc := NewUserUsecase(users, roles)

	resp := uc.CreateUser(context.Background(), UserCreateRequest{
		FullName:    "Taro",
		PhoneNumber: "0901234567",
	})

	assert.True(t, resp.Success)
	users.AssertExpectations(t)
}

func TestUserUsecase_CreateUser_PasswordStoredHashed(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByPhone", mock.Anything, "0901234567").Return(nil, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Password != "" && u.Password != "secret" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")) == nil
	})).Return(nil)

	roles := new(RoleRepoMock)
	roles.On("FindByName", mock.Anything, model.RoleCustomer).Return(&model.Role{ID: 2}, nil)

	uc := NewUserUsecase(users, roles)

	resp := uc.CreateUser(context.Background(), UserCreateRequest{
		FullName:    "Taro",
		PhoneNumber: "0901234567",
		Password:    "secret",
	})

	assert.True(t, resp.Success)
	users.AssertExpectations(t)
}

func TestUserUsecase_CreateUser_ConflictOnInsert(t *testing.T) {
	//FindByPhoneの後に別リクエストが先に入ったケース
	users := new(UserRepoMock)
	users.On("FindByPhone", mock.Anything, "0901234567").Return(nil, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(repo.ErrConflict)

	roles := new(RoleRepoMock)
	roles.On("FindByName", mock.Anything, model.RoleCustomer).Return(&model.Role{ID: 2}, nil)

	uc := NewUserUsecase(users, roles)

	resp := uc.CreateUser(context.Background(), UserCreateRequest{
		FullName:    "Taro",
		PhoneNumber: "0901234567",
	})

	assert.False(t, resp.Success)
	assert.Equal(t, message.E11004, resp.MessageID)
}

func TestUserUsecase_Login_UnknownPhone(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByPhone", mock.Anything, "0900000000").Return(nil, repo.ErrNotFound)

	uc := NewUserUsecase(users, new(RoleRepoMock))

	user, err := uc.Login(context.Background(), "0900000000", "")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserUsecase_Login_CustomerWithoutPassword(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByPhone", mock.Anything, "0901234567").Return(&model.User{
		ID:    1,
		Phone: "0901234567",
		Role:  &model.Role{RoleName: model.RoleCustomer},
	}, nil)

	uc := NewUserUsecase(users, new(RoleRepoMock))

	user, err := uc.Login(context.Background(), "0901234567", "")
	assert.NoError(t, err)
	assert.NotNil(t, user)
}

func TestUserUsecase_Login_AdminRequiresPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	admin := &model.User{
		ID:       1,
		Phone:    "0909999999",
		Password: string(hashed),
		Role:     &model.Role{RoleName: model.RoleAdmin},
	}

	users := new(UserRepoMock)
	users.On("FindByPhone", mock.Anything, "0909999999").Return(admin, nil)

	uc := NewUserUsecase(users, new(RoleRepoMock))

	user, err := uc.Login(context.Background(), "0909999999", "wrong")
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = uc.Login(context.Background(), "0909999999", "admin-pass")
	assert.NoError(t, err)
	assert.NotNil(t, user)
}

func TestUserUsecase_UserRoleSelect_NotFound(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByPhone", mock.Anything, "0900000000").Return(nil, repo.ErrNotFound)

	uc := NewUserUsecase(users, new(RoleRepoMock))

	resp := uc.UserRoleSelect(context.Background(), "0900000000")

	assert.False(t, resp.Success)
	assert.Equal(t, message.E11001, resp.MessageID)
	assert.Equal(t, "User does not exist.", resp.Message)
}

func TestUserUsecase_UserRoleSelect_Success(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByPhone", mock.Anything, "0901234567").Return(&model.User{
		ID:   1,
		Role: &model.Role{RoleName: model.RoleCustomer},
	}, nil)

	uc := NewUserUsecase(users, new(RoleRepoMock))

	resp := uc.UserRoleSelect(context.Background(), "0901234567")

	assert.True(t, resp.Success)
	assert.Equal(t, model.RoleCustomer, resp.Response.UserRole)
}
