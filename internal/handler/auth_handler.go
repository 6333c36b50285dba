package handler

import (
	"net/http"

	"app/internal/message"
	"app/internal/middleware"
	"app/internal/response"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	userUC  *usecase.UserUsecase
	tokenUC *auth.TokenUsecase
}

// DI
func NewAuthHandler(userUC *usecase.UserUsecase, tokenUC *auth.TokenUsecase) *AuthHandler {
	return &AuthHandler{userUC: userUC, tokenUC: tokenUC}
}

type loginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type UserLoginData struct {
	UserID      int64          `json:"userId"`
	FullName    string         `json:"fullName"`
	PhoneNumber string         `json:"phoneNumber"`
	RoleName    string         `json:"roleName"`
	Token       auth.TokenPair `json:"token"`
}

type UserLoginResponse struct {
	response.ApiResult
	Response UserLoginData `json:"response"`
}

type TokenResponse struct {
	response.ApiResult
	Response auth.TokenPair `json:"response"`
}

type LogoutResponse struct {
	response.ApiResult
	Response string `json:"response"`
}

type UserSessionData struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type UserSessionResponse struct {
	response.ApiResult
	Response UserSessionData `json:"response"`
}

// Login はパスワードグラント相当。認証できたらトークンペアを返す。
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, nil)
	}
	if req.PhoneNumber == "" {
		return badRequest(c, []response.DetailError{{
			Field:        "phoneNumber",
			MessageID:    message.E10000,
			ErrorMessage: "phoneNumber is required",
		}})
	}

	user, err := h.userUC.Login(c.Request().Context(), req.PhoneNumber, req.Password)
	if err != nil {
		log.Error().Err(err).Msg("login")
		resp := UserLoginResponse{}
		resp.SetMessage(message.E99999)
		return c.JSON(http.StatusInternalServerError, resp)
	}
	if user == nil {
		resp := UserLoginResponse{}
		resp.SetMessage(message.E11001)
		return c.JSON(http.StatusUnauthorized, resp)
	}

	pair, err := h.tokenUC.IssueForUser(c.Request().Context(), user)
	if err != nil {
		log.Error().Err(err).Msg("issue token pair")
		resp := UserLoginResponse{}
		resp.SetMessage(message.E99999)
		return c.JSON(http.StatusInternalServerError, resp)
	}

	resp := UserLoginResponse{}
	resp.Success = true
	resp.SetMessage(message.I00001)
	resp.Response = UserLoginData{
		UserID:      user.ID,
		FullName:    user.FullName,
		PhoneNumber: user.Phone,
		Token:       pair,
	}
	if user.Role != nil {
		resp.Response.RoleName = user.Role.RoleName
	}
	return c.JSON(http.StatusOK, resp)
}

// Refresh はrefreshグラント相当。クレームを引き継いで新ペアを返す。
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return badRequest(c, nil)
	}

	pair, err := h.tokenUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		resp := TokenResponse{}
		resp.SetMessage(message.E00000, "Invalid or revoked refresh token.")
		return c.JSON(http.StatusUnauthorized, resp)
	}

	resp := TokenResponse{}
	resp.Success = true
	resp.SetMessage(message.I00001)
	resp.Response = pair
	return c.JSON(http.StatusOK, resp)
}

// Logout は提示トークンと本人の全トークンを失効させる。
func (h *AuthHandler) Logout(c echo.Context) error {
	subject := getStringFromContext(c, middleware.CtxSubjectKey)
	accessToken := getStringFromContext(c, middleware.CtxAccessTokenKey)

	result := h.tokenUC.Logout(c.Request().Context(), subject, accessToken)

	resp := LogoutResponse{}
	resp.Success = result.Success
	resp.Response = result.Message
	if result.Success {
		resp.SetMessage(message.I00001)
	} else {
		resp.SetMessage(message.E00000, result.Message)
	}
	return c.JSON(statusFor(resp.ApiResult), resp)
}

// Session は認証済みクレームの読み取り専用ビュー。
func (h *AuthHandler) Session(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}

	resp := UserSessionResponse{}
	resp.Success = true
	resp.SetMessage(message.I00001)
	resp.Response = UserSessionData{
		UserID: userID,
		Name:   getStringFromContext(c, middleware.CtxUserNameKey),
		Email:  getStringFromContext(c, middleware.CtxUserEmailKey),
		Role:   getStringFromContext(c, middleware.CtxUserRoleKey),
	}
	return c.JSON(http.StatusOK, resp)
}
