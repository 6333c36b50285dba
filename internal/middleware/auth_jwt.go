package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"app/internal/config"
	"app/internal/domain/model"
	auth "app/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey      = "user_id"      // int64
	CtxSubjectKey     = "subject"      // string（subクレームそのまま）
	CtxUserNameKey    = "user_name"    // string
	CtxUserEmailKey   = "user_email"   // string
	CtxUserRoleKey    = "user_role"    // string
	CtxTokenRefKey    = "token_ref"    // string（jti）
	CtxAccessTokenKey = "access_token" // string（生のBearerトークン）
)

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// bearerAuth用のJWT検証ミドルウェア。
// accessトークンのクレームをcontextへ詰める。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//refreshトークンではAPIを呼ばせない
			if use, _ := claims[auth.ClaimTokenUse].(string); use != model.TokenTypeAccess {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			subject, _ := claims[auth.ClaimSubject].(string)
			userID, err := strconv.ParseInt(subject, 10, 64)
			if err != nil || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			referenceID, _ := claims[auth.ClaimTokenID].(string)
			if referenceID == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			name, _ := claims[auth.ClaimName].(string)
			email, _ := claims[auth.ClaimEmail].(string)
			role, _ := claims[auth.ClaimRole].(string)

			c.Set(CtxUserIDKey, userID)
			c.Set(CtxSubjectKey, subject)
			c.Set(CtxUserNameKey, name)
			c.Set(CtxUserEmailKey, email)
			c.Set(CtxUserRoleKey, role)
			c.Set(CtxTokenRefKey, referenceID)
			c.Set(CtxAccessTokenKey, rawToken)

			return next(c)
		}
	}
}
