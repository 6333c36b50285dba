// Package auth はクレーム組み立てとトークン発行・失効のポリシー。
// 署名そのものはgolang-jwt、保存は発行済みトークン台帳に委ねる。
package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// OIDC相当のクレーム名
const (
	ClaimSubject     = "sub"
	ClaimName        = "name"
	ClaimEmail       = "email"
	ClaimPhoneNumber = "phone_number"
	ClaimAddress     = "address"
	ClaimBirthdate   = "birthdate"
	ClaimRole        = "role"
	ClaimAudience    = "aud"
	ClaimScope       = "scope"
	ClaimResources   = "resources"
	ClaimTokenUse    = "token_use"
	ClaimTokenID     = "jti"
	ClaimIssuedAt    = "iat"
	ClaimExpiry      = "exp"
)

const (
	ScopeRoles         = "roles"
	ScopeOfflineAccess = "offline_access"
	ScopeProfile       = "profile"
)

// refresh経由で引き継ぐクレームの許可リスト
var refreshClaimAllowList = []string{
	ClaimSubject,
	ClaimName,
	ClaimEmail,
	ClaimPhoneNumber,
	ClaimAddress,
	ClaimBirthdate,
	ClaimRole,
	ClaimAudience,
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token revoked")
)

// 現在の業務時刻
type Clock interface {
	Now() time.Time
}

type TokenUsecase struct {
	cfg    config.Config
	tokens repository.TokenRepository
	clock  Clock
}

// DI
func NewTokenUsecase(cfg config.Config, tokens repository.TokenRepository, clock Clock) *TokenUsecase {
	return &TokenUsecase{cfg: cfg, tokens: tokens, clock: clock}
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
}

// 認証直後のユーザーからクレーム一式を組み立てる。
// scopeは固定で roles / offline_access / profile。
func (u *TokenUsecase) claimsForUser(user *model.User) jwt.MapClaims {
	claims := jwt.MapClaims{
		ClaimSubject:  strconv.FormatInt(user.ID, 10),
		ClaimName:     user.FullName,
		ClaimAudience: u.cfg.TokenAudience,
		ClaimScope:    ScopeRoles + " " + ScopeOfflineAccess + " " + ScopeProfile,
	}
	if user.Email != "" {
		claims[ClaimEmail] = user.Email
	}
	if user.Phone != "" {
		claims[ClaimPhoneNumber] = user.Phone
	}
	if user.Role != nil {
		claims[ClaimRole] = user.Role.RoleName
	}
	claims[ClaimResources] = u.resourcesForScope(claims[ClaimScope].(string))
	return claims
}

// scopeからresource一覧を引き直す
func (u *TokenUsecase) resourcesForScope(scope string) []string {
	for _, s := range splitScope(scope) {
		if s == ScopeRoles || s == ScopeProfile {
			return []string{u.cfg.TokenAudience}
		}
	}
	return []string{}
}

// IssueForUser は認証済みユーザーにaccess/refreshのペアを発行する。
func (u *TokenUsecase) IssueForUser(ctx context.Context, user *model.User) (TokenPair, error) {
	return u.issuePair(ctx, u.claimsForUser(user))
}

// Refresh は提示されたrefreshトークンのクレームから新しいペアを発行する。
// 許可リストのクレームだけを引き継ぎ、scopeは維持、寿命は再適用する。
func (u *TokenUsecase) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := u.parse(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidToken
	}
	if use, _ := claims[ClaimTokenUse].(string); use != model.TokenTypeRefresh {
		return TokenPair{}, ErrInvalidToken
	}

	referenceID, _ := claims[ClaimTokenID].(string)
	stored, err := u.tokens.FindByReferenceID(ctx, referenceID)
	if err != nil {
		return TokenPair{}, ErrInvalidToken
	}
	now := u.clock.Now()
	if stored.RevokedAt != nil || now.After(stored.ExpiresAt) {
		return TokenPair{}, ErrTokenRevoked
	}

	// 許可リストのクレームだけを新しいクレーム一式へ写す
	newClaims := jwt.MapClaims{}
	for _, claimType := range refreshClaimAllowList {
		if v, ok := claims[claimType]; ok {
			newClaims[claimType] = v
		}
	}

	// scopeは元のものを維持し、resourceはscopeから引き直す
	scope, _ := claims[ClaimScope].(string)
	newClaims[ClaimScope] = scope
	newClaims[ClaimResources] = u.resourcesForScope(scope)

	// 使い終わったrefreshは失効させる（使い回し防止）
	if err := u.tokens.Revoke(ctx, stored.ID, now); err != nil {
		return TokenPair{}, err
	}

	return u.issuePair(ctx, newClaims)
}

// LogoutResult はログアウト処理の結果。
type LogoutResult struct {
	Success bool
	Message string
}

// Logout は提示されたaccessトークンを失効させたうえで、
// subjectに紐づく全トークンを失効させる（グローバルログアウト）。
func (u *TokenUsecase) Logout(ctx context.Context, subject string, accessToken string) LogoutResult {
	if subject == "" {
		return LogoutResult{Success: false, Message: "Invalid user identity."}
	}

	now := u.clock.Now()

	// 提示されたトークンが台帳で解決できれば先に失効
	if accessToken != "" {
		if claims, err := u.parse(accessToken); err == nil {
			if referenceID, ok := claims[ClaimTokenID].(string); ok {
				if stored, err := u.tokens.FindByReferenceID(ctx, referenceID); err == nil {
					_ = u.tokens.Revoke(ctx, stored.ID, now)
				}
			}
		}
	}

	// クライアント・セッションを問わず、このsubjectの全トークンを失効
	if err := u.tokens.RevokeAllBySubject(ctx, subject, now); err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("revoke all tokens failed")
		return LogoutResult{Success: false, Message: "Failed to revoke tokens."}
	}

	return LogoutResult{Success: true, Message: "Logged out successfully. All tokens have been revoked."}
}

// issuePair はクレーム一式からaccess/refreshを署名し、台帳へ記録する。
func (u *TokenUsecase) issuePair(ctx context.Context, claims jwt.MapClaims) (TokenPair, error) {
	now := u.clock.Now()

	accessToken, err := u.signAndRecord(ctx, claims, model.TokenTypeAccess, now, u.cfg.AccessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refreshToken, err := u.signAndRecord(ctx, claims, model.TokenTypeRefresh, now, u.cfg.RefreshTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(u.cfg.AccessTTL.Seconds()),
	}, nil
}

func (u *TokenUsecase) signAndRecord(ctx context.Context, base jwt.MapClaims, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	referenceID := uuid.NewString()
	expiresAt := now.Add(ttl)

	claims := jwt.MapClaims{}
	for k, v := range base {
		claims[k] = v
	}
	claims[ClaimTokenUse] = tokenType
	claims[ClaimTokenID] = referenceID
	claims[ClaimIssuedAt] = now.Unix()
	claims[ClaimExpiry] = expiresAt.Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", err
	}

	subject, _ := base[ClaimSubject].(string)
	scope, _ := base[ClaimScope].(string)

	record := &model.IssuedToken{
		ID:          uuid.NewString(),
		ReferenceID: referenceID,
		Subject:     subject,
		TokenType:   tokenType,
		Scopes:      scope,
		ExpiresAt:   expiresAt,
		CreatedAt:   now,
	}
	if err := u.tokens.Create(ctx, record); err != nil {
		return "", err
	}

	return signed, nil
}

// parse は署名と期限を検証してクレームを返す。
func (u *TokenUsecase) parse(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(u.cfg.JWTSecret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func splitScope(scope string) []string {
	return strings.Fields(scope)
}
