package repository

import (
	"context"

	"app/internal/domain/model"
)

type ProductTypeRepository interface {
	Create(ctx context.Context, pt *model.ProductType) error
	FindByID(ctx context.Context, id int64) (*model.ProductType, error)
	FindByName(ctx context.Context, typeName string) (*model.ProductType, error)
	List(ctx context.Context) ([]model.ProductType, error)
	// idsに一致する行数を返す（バッチ作成時の存在チェック用）
	CountByIDs(ctx context.Context, ids []int64) (int64, error)
	Update(ctx context.Context, pt *model.ProductType) error
	Delete(ctx context.Context, id int64) error
}
