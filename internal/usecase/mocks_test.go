package usecase

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepoMock) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	args := m.Called(ctx, phone)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type RoleRepoMock struct{ mock.Mock }

func (m *RoleRepoMock) FindByName(ctx context.Context, roleName string) (*model.Role, error) {
	args := m.Called(ctx, roleName)
	role, _ := args.Get(0).(*model.Role)
	return role, args.Error(1)
}

func (m *RoleRepoMock) Create(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

type ProductTypeRepoMock struct{ mock.Mock }

func (m *ProductTypeRepoMock) Create(ctx context.Context, pt *model.ProductType) error {
	args := m.Called(ctx, pt)
	return args.Error(0)
}

func (m *ProductTypeRepoMock) FindByID(ctx context.Context, id int64) (*model.ProductType, error) {
	args := m.Called(ctx, id)
	pt, _ := args.Get(0).(*model.ProductType)
	return pt, args.Error(1)
}

func (m *ProductTypeRepoMock) FindByName(ctx context.Context, typeName string) (*model.ProductType, error) {
	args := m.Called(ctx, typeName)
	pt, _ := args.Get(0).(*model.ProductType)
	return pt, args.Error(1)
}

func (m *ProductTypeRepoMock) List(ctx context.Context) ([]model.ProductType, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.ProductType)
	return items, args.Error(1)
}

func (m *ProductTypeRepoMock) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductTypeRepoMock) Update(ctx context.Context, pt *model.ProductType) error {
	args := m.Called(ctx, pt)
	return args.Error(0)
}

func (m *ProductTypeRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type PricingRepoMock struct{ mock.Mock }

func (m *PricingRepoMock) CreateBatch(ctx context.Context, batch *model.PricingBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *PricingRepoMock) CreatePrices(ctx context.Context, prices []model.ProductPrice) error {
	args := m.Called(ctx, prices)
	return args.Error(0)
}

func (m *PricingRepoMock) LatestBatch(ctx context.Context, asOf time.Time) (*model.PricingBatch, error) {
	args := m.Called(ctx, asOf)
	batch, _ := args.Get(0).(*model.PricingBatch)
	return batch, args.Error(1)
}

func (m *PricingRepoMock) FindPrice(ctx context.Context, productTypeID int64, batchID int64) (*model.ProductPrice, error) {
	args := m.Called(ctx, productTypeID, batchID)
	price, _ := args.Get(0).(*model.ProductPrice)
	return price, args.Error(1)
}

func (m *PricingRepoMock) ListBatches(ctx context.Context, f repo.BatchListFilter) ([]model.PricingBatch, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.PricingBatch)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *PricingRepoMock) CountPricesByProductType(ctx context.Context, productTypeID int64) (int64, error) {
	args := m.Called(ctx, productTypeID)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	if args.Error(0) == nil && order.ID == 0 {
		order.ID = 1
	}
	return args.Error(0)
}

func (m *OrderRepoMock) CreateDetails(ctx context.Context, details []model.OrderDetail) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateTotal(ctx context.Context, orderID int64, totalAmount int64) error {
	args := m.Called(ctx, orderID, totalAmount)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (*model.Order, error) {
	args := m.Called(ctx, orderID)
	order, _ := args.Get(0).(*model.Order)
	return order, args.Error(1)
}

func (m *OrderRepoMock) ListByUser(ctx context.Context, userID int64, page int, pageSize int, newestFirst bool) ([]model.Order, int64, error) {
	args := m.Called(ctx, userID, page, pageSize, newestFirst)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) CountDetailsByProductType(ctx context.Context, productTypeID int64) (int64, error) {
	args := m.Called(ctx, productTypeID)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Txまわりのテスト用実装
// =====================

// fnを渡されたrepo一式に対してそのまま実行する
type txReposStub struct {
	orders       repo.OrderRepository
	pricing      repo.PricingRepository
	productTypes repo.ProductTypeRepository
	users        repo.UserRepository
}

func (r *txReposStub) Orders() repo.OrderRepository             { return r.orders }
func (r *txReposStub) Pricing() repo.PricingRepository          { return r.pricing }
func (r *txReposStub) ProductTypes() repo.ProductTypeRepository { return r.productTypes }
func (r *txReposStub) Users() repo.UserRepository               { return r.users }

type txManagerStub struct {
	repos *txReposStub
}

func (t *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(t.repos)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }
