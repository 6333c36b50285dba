package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"gorm.io/gorm"
)

type orderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) domainrepo.OrderRepository {
	return &orderGormRepository{db: db}
}

func (r *orderGormRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderGormRepository) CreateDetails(ctx context.Context, details []model.OrderDetail) error {
	if len(details) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&details).Error
}

func (r *orderGormRepository) UpdateTotal(ctx context.Context, orderID int64, totalAmount int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", orderID).
		UpdateColumn("total_amount", totalAmount)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

func (r *orderGormRepository) FindByID(ctx context.Context, orderID int64) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("User.Role").
		Preload("OrderDetails.ProductType").
		Where("id = ?", orderID).
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderGormRepository) ListByUser(ctx context.Context, userID int64, page int, pageSize int, newestFirst bool) ([]model.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return []model.Order{}, 0, err
	}

	var items []model.Order
	offset := (page - 1) * pageSize
	err := q.
		Preload("User").
		Preload("OrderDetails.ProductType").
		Order(orderDateOrder(newestFirst)).
		Limit(pageSize).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return []model.Order{}, 0, err
	}

	return items, total, nil
}

func (r *orderGormRepository) ListAdmin(ctx context.Context, f domainrepo.AdminOrderListFilter) ([]model.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{})

	//user_id 絞り込み
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}

	//期間絞り込み
	if f.From != nil {
		q = q.Where("order_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("order_date <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return []model.Order{}, 0, err
	}

	var items []model.Order
	offset := (f.Page - 1) * f.PageSize
	err := q.
		Preload("User.Role").
		Preload("OrderDetails.ProductType").
		Order(orderDateOrder(f.NewestFirst)).
		Limit(f.PageSize).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return []model.Order{}, 0, err
	}

	return items, total, nil
}

func (r *orderGormRepository) CountDetailsByProductType(ctx context.Context, productTypeID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.OrderDetail{}).
		Where("product_type_id = ?", productTypeID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func orderDateOrder(newestFirst bool) string {
	if newestFirst {
		return "order_date desc, id desc"
	}
	return "order_date asc, id asc"
}
