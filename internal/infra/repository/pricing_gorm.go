package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"gorm.io/gorm"
)

type pricingGormRepository struct {
	db *gorm.DB
}

// DI
func NewPricingGormRepository(db *gorm.DB) domainrepo.PricingRepository {
	return &pricingGormRepository{db: db}
}

func (r *pricingGormRepository) CreateBatch(ctx context.Context, batch *model.PricingBatch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

func (r *pricingGormRepository) CreatePrices(ctx context.Context, prices []model.ProductPrice) error {
	if len(prices) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&prices).Error
}

func (r *pricingGormRepository) LatestBatch(ctx context.Context, asOf time.Time) (*model.PricingBatch, error) {
	var batch model.PricingBatch
	err := r.db.WithContext(ctx).
		Where("created_at <= ?", asOf).
		Order("created_at desc").
		Order("id desc").
		First(&batch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

func (r *pricingGormRepository) FindPrice(ctx context.Context, productTypeID int64, batchID int64) (*model.ProductPrice, error) {
	var price model.ProductPrice
	err := r.db.WithContext(ctx).
		Where("product_type_id = ? AND pricing_batch_id = ?", productTypeID, batchID).
		First(&price).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrNotFound
		}
		return nil, err
	}
	return &price, nil
}

func (r *pricingGormRepository) ListBatches(ctx context.Context, f domainrepo.BatchListFilter) ([]model.PricingBatch, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.PricingBatch{})

	//期間絞り込み（各境界は独立に任意）
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return []model.PricingBatch{}, 0, err
	}

	order := "created_at asc, id asc"
	if f.NewestFirst {
		order = "created_at desc, id desc"
	}

	var items []model.PricingBatch
	offset := (f.Page - 1) * f.PageSize
	err := q.
		Preload("ProductPrices.ProductType").
		Order(order).
		Limit(f.PageSize).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return []model.PricingBatch{}, 0, err
	}

	return items, total, nil
}

func (r *pricingGormRepository) CountPricesByProductType(ctx context.Context, productTypeID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ProductPrice{}).
		Where("product_type_id = ?", productTypeID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
