package handler

import (
	"net/http"

	"app/internal/message"
	"app/internal/middleware"
	"app/internal/response"

	"github.com/labstack/echo/v4"
)

// AuthJWTがcontextへ入れたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	raw := c.Get(middleware.CtxUserIDKey)
	userID, ok := raw.(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}

func getStringFromContext(c echo.Context, key string) string {
	raw := c.Get(key)
	s, _ := raw.(string)
	return s
}

// 成功なら200、業務失敗なら400、システムエラーなら500
func statusFor(r response.ApiResult) int {
	if r.Success {
		return http.StatusOK
	}
	if r.MessageID == message.E99999 {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// bodyのbind失敗やバリデーションNGをE10000封筒で返す
func badRequest(c echo.Context, details []response.DetailError) error {
	result := response.ApiResult{Success: false, DetailErrors: details}
	result.SetMessage(message.E10000)
	return c.JSON(http.StatusBadRequest, result)
}
