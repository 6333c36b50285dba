package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

// バッチ一覧の絞り込み条件。From/Toは未指定なら無条件。
type BatchListFilter struct {
	Page        int
	PageSize    int
	From        *time.Time
	To          *time.Time
	NewestFirst bool
}

type PricingRepository interface {
	CreateBatch(ctx context.Context, batch *model.PricingBatch) error
	CreatePrices(ctx context.Context, prices []model.ProductPrice) error
	// asOf以前に作られた最新バッチ。同時刻はid大を勝ちとする。
	LatestBatch(ctx context.Context, asOf time.Time) (*model.PricingBatch, error)
	FindPrice(ctx context.Context, productTypeID int64, batchID int64) (*model.ProductPrice, error)
	// 価格行（ProductType込み）をネストしたバッチのページング取得
	ListBatches(ctx context.Context, f BatchListFilter) ([]model.PricingBatch, int64, error)
	// 商品種別を参照する価格行の数（削除ガード用）
	CountPricesByProductType(ctx context.Context, productTypeID int64) (int64, error)
}
