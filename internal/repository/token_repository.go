package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

// 発行済みトークン台帳の保存・失効
type TokenRepository interface {
	Create(ctx context.Context, token *model.IssuedToken) error
	// JWTのjti（reference id）で1件取得
	FindByReferenceID(ctx context.Context, referenceID string) (*model.IssuedToken, error)
	Revoke(ctx context.Context, tokenID string, revokedAt time.Time) error
	// subjectに紐づく全トークンを失効（グローバルログアウト）
	RevokeAllBySubject(ctx context.Context, subject string, revokedAt time.Time) error
}
