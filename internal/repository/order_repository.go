package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

// 管理者向け注文一覧の絞り込み。未指定の条件は無視する。
type AdminOrderListFilter struct {
	Page        int
	PageSize    int
	UserID      *int64
	From        *time.Time
	To          *time.Time
	NewestFirst bool
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	CreateDetails(ctx context.Context, details []model.OrderDetail) error
	UpdateTotal(ctx context.Context, orderID int64, totalAmount int64) error
	// User・Role・明細・商品種別を同時ロード
	FindByID(ctx context.Context, orderID int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64, page int, pageSize int, newestFirst bool) ([]model.Order, int64, error)
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)
	// 商品種別を参照する明細行の数（削除ガード用）
	CountDetailsByProductType(ctx context.Context, productTypeID int64) (int64, error)
}
