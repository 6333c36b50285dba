package repository

import (
	"context"

	"app/internal/domain/model"
)

// ユーザーの保存・取得を約束
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// Roleを同時にロードして1件取得
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	FindByPhone(ctx context.Context, phone string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

// ロールの取得・投入（起動時seedで使う）
type RoleRepository interface {
	FindByName(ctx context.Context, roleName string) (*model.Role, error)
	Create(ctx context.Context, role *model.Role) error
}
