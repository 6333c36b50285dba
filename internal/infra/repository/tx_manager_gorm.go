package repository

import (
	"context"

	domainrepo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders       domainrepo.OrderRepository
	pricing      domainrepo.PricingRepository
	productTypes domainrepo.ProductTypeRepository
	users        domainrepo.UserRepository
}

func (r *txReposGorm) Orders() domainrepo.OrderRepository             { return r.orders }
func (r *txReposGorm) Pricing() domainrepo.PricingRepository          { return r.pricing }
func (r *txReposGorm) ProductTypes() domainrepo.ProductTypeRepository { return r.productTypes }
func (r *txReposGorm) Users() domainrepo.UserRepository               { return r.users }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fnがerrorを返すとrollback、nilならcommit。repoはtx付きDBで作り直す。
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r domainrepo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := &txReposGorm{
			orders:       NewOrderGormRepository(tx),
			pricing:      NewPricingGormRepository(tx),
			productTypes: NewProductTypeGormRepository(tx),
			users:        NewUserGormRepository(tx),
		}
		return fn(r)
	})
}
