package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"gorm.io/gorm"
)

type productTypeGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductTypeGormRepository(db *gorm.DB) domainrepo.ProductTypeRepository {
	return &productTypeGormRepository{db: db}
}

func (r *productTypeGormRepository) Create(ctx context.Context, pt *model.ProductType) error {
	return r.db.WithContext(ctx).Create(pt).Error
}

func (r *productTypeGormRepository) FindByID(ctx context.Context, id int64) (*model.ProductType, error) {
	var pt model.ProductType
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&pt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrNotFound
		}
		return nil, err
	}
	return &pt, nil
}

func (r *productTypeGormRepository) FindByName(ctx context.Context, typeName string) (*model.ProductType, error) {
	var pt model.ProductType
	err := r.db.WithContext(ctx).Where("type_name = ?", typeName).First(&pt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrNotFound
		}
		return nil, err
	}
	return &pt, nil
}

func (r *productTypeGormRepository) List(ctx context.Context) ([]model.ProductType, error) {
	var items []model.ProductType
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return []model.ProductType{}, err
	}
	return items, nil
}

func (r *productTypeGormRepository) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ProductType{}).
		Where("id IN ?", ids).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *productTypeGormRepository) Update(ctx context.Context, pt *model.ProductType) error {
	return r.db.WithContext(ctx).Save(pt).Error
}

func (r *productTypeGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductType{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}
