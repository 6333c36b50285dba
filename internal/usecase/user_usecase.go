package usecase

import (
	"context"
	"errors"

	"app/internal/domain/model"
	"app/internal/message"
	repo "app/internal/repository"
	"app/internal/response"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	users repo.UserRepository
	roles repo.RoleRepository
}

// DI
func NewUserUsecase(users repo.UserRepository, roles repo.RoleRepository) *UserUsecase {
	return &UserUsecase{users: users, roles: roles}
}

type UserCreateRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type UserCreateResponse struct {
	response.ApiResult
	Response string `json:"response"`
}

type UserRoleSelectEntity struct {
	UserRole string `json:"userRole"`
}

type UserRoleSelectResponse struct {
	response.ApiResult
	Response UserRoleSelectEntity `json:"response"`
}

// CreateUser は電話番号の重複を拒否し、Customerロールで登録する。
func (u *UserUsecase) CreateUser(ctx context.Context, req UserCreateRequest) UserCreateResponse {
	resp := UserCreateResponse{}
	resp.Success = false

	_, err := u.users.FindByPhone(ctx, req.PhoneNumber)
	if err == nil {
		resp.SetMessage(message.E11004)
		return resp
	}
	if !errors.Is(err, repo.ErrNotFound) {
		log.Error().Err(err).Msg("create user: find by phone")
		resp.SetMessage(message.E99999)
		return resp
	}

	role, err := u.roles.FindByName(ctx, model.RoleCustomer)
	if err != nil {
		log.Error().Err(err).Msg("create user: customer role missing")
		resp.SetMessage(message.E99999)
		return resp
	}

	newUser := &model.User{
		FullName: req.FullName,
		Phone:    req.PhoneNumber,
		Email:    req.Email,
		RoleID:   &role.ID,
	}

	//パスワードは任意。指定されたときだけbcryptで保存する。
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error().Err(err).Msg("create user: hash password")
			resp.SetMessage(message.E99999)
			return resp
		}
		newUser.Password = string(hashed)
	}

	if err := u.users.Create(ctx, newUser); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			resp.SetMessage(message.E11004)
			return resp
		}
		log.Error().Err(err).Msg("create user")
		resp.SetMessage(message.E99999)
		return resp
	}

	resp.Success = true
	resp.SetMessage(message.I00001)
	return resp
}

// Login は電話番号で本人を引き、Adminだけパスワード照合を要求する。
// 認証できないときはnilを返す。
func (u *UserUsecase) Login(ctx context.Context, phoneNumber string, password string) (*model.User, error) {
	user, err := u.users.FindByPhone(ctx, phoneNumber)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if user.Role != nil && user.Role.RoleName == model.RoleAdmin {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			return nil, nil
		}
	}

	return user, nil
}

// UserRoleSelect は電話番号からロール名だけを引く（ログインUI向け）。
func (u *UserUsecase) UserRoleSelect(ctx context.Context, phoneNumber string) UserRoleSelectResponse {
	resp := UserRoleSelectResponse{}
	resp.Success = false

	user, err := u.users.FindByPhone(ctx, phoneNumber)
	if errors.Is(err, repo.ErrNotFound) {
		resp.SetMessage(message.E11001)
		return resp
	}
	if err != nil {
		log.Error().Err(err).Msg("user role select")
		resp.SetMessage(message.E99999)
		return resp
	}

	if user.Role != nil {
		resp.Response = UserRoleSelectEntity{UserRole: user.Role.RoleName}
	}

	resp.Success = true
	resp.SetMessage(message.I00001)
	return resp
}
