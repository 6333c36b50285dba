package handler

import (
	"strings"

	"app/internal/message"
	"app/internal/response"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create はPOST /users（会員登録）。
func (h *UserHandler) Create(c echo.Context) error {
	var req usecase.UserCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, nil)
	}

	var details []response.DetailError
	if strings.TrimSpace(req.FullName) == "" {
		details = append(details, response.DetailError{
			Field: "fullName", MessageID: message.E10000, ErrorMessage: "fullName is required",
		})
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		details = append(details, response.DetailError{
			Field: "phoneNumber", MessageID: message.E10000, ErrorMessage: "phoneNumber is required",
		})
	}
	if len(details) > 0 {
		return badRequest(c, details)
	}

	resp := h.uc.CreateUser(c.Request().Context(), req)
	return c.JSON(statusFor(resp.ApiResult), resp)
}

// RoleSelect はGET /users/role?phoneNumber=（ログインUI向けのロール引き）。
func (h *UserHandler) RoleSelect(c echo.Context) error {
	phoneNumber := c.QueryParam("phoneNumber")
	if phoneNumber == "" {
		return badRequest(c, []response.DetailError{{
			Field: "phoneNumber", MessageID: message.E10000, ErrorMessage: "phoneNumber is required",
		}})
	}

	resp := h.uc.UserRoleSelect(c.Request().Context(), phoneNumber)
	return c.JSON(statusFor(resp.ApiResult), resp)
}
