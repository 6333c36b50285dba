package middleware

import (
	"net/http"
	"time"

	"app/internal/repository"

	"github.com/labstack/echo/v4"
)

// 発行済みトークン台帳と突き合わせるガード。
// logoutで失効済みのトークンは署名が有効でも401にする。
func TokenRevocationGuard(tokens repository.TokenRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRef := c.Get(CtxTokenRefKey)
			referenceID, ok := rawRef.(string)
			if !ok || referenceID == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			stored, err := tokens.FindByReferenceID(c.Request().Context(), referenceID)
			if err != nil || stored == nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if stored.RevokedAt != nil || time.Now().After(stored.ExpiresAt) {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			return next(c)
		}
	}
}
