package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"gorm.io/gorm"
)

type tokenGormRepository struct {
	db *gorm.DB
}

// DI
func NewTokenGormRepository(db *gorm.DB) domainrepo.TokenRepository {
	return &tokenGormRepository{db: db}
}

func (r *tokenGormRepository) Create(ctx context.Context, token *model.IssuedToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenGormRepository) FindByReferenceID(ctx context.Context, referenceID string) (*model.IssuedToken, error) {
	var t model.IssuedToken
	err := r.db.WithContext(ctx).
		Where("reference_id = ?", referenceID).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *tokenGormRepository) Revoke(ctx context.Context, tokenID string, revokedAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.IssuedToken{}).
		Where("id = ? AND revoked_at IS NULL", tokenID).
		UpdateColumn("revoked_at", revokedAt)
	if res.Error != nil {
		return res.Error
	}
	// 既にrevoke済みなら何もしない
	return nil
}

func (r *tokenGormRepository) RevokeAllBySubject(ctx context.Context, subject string, revokedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.IssuedToken{}).
		Where("subject = ? AND revoked_at IS NULL", subject).
		UpdateColumn("revoked_at", revokedAt).Error
}
