package usecase

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPricingUsecaseForTest(pricing *PricingRepoMock, productTypes *ProductTypeRepoMock, now time.Time) *PricingUsecase {
	tx := &txManagerStub{repos: &txReposStub{
		pricing:      pricing,
		productTypes: productTypes,
	}}
	return NewPricingUsecase(testConfig(), pricing, productTypes, tx, &fixedClock{now: now})
}

func TestPricingUsecase_CreatePricingBatch_UnknownProductType(t *testing.T) {
	productTypes := new(ProductTypeRepoMock)
	productTypes.On("CountByIDs", mock.Anything, []int64{1, 99}).Return(int64(1), nil)

	pricing := new(PricingRepoMock)
	uc := newPricingUsecaseForTest(pricing, productTypes, time.Now())

	resp := uc.CreatePricingBatch(context.Background(), PricingBatchCreateRequest{
		Title: "June prices",
		PriceDetails: []PriceDetailRequest{
			{ProductTypeID: 1, Price: 100},
			{ProductTypeID: 99, Price: 200},
		},
	})

	assert.False(t, resp.Success)
	assert.Equal(t, "Some product types do not exist.", resp.Message)

	//書き込み前に弾く
	pricing.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestPricingUsecase_CreatePricingBatch_DuplicateIDsCountedOnce(t *testing.T) {
	//同じidが2回来てもdistinctで数える
	productTypes := new(ProductTypeRepoMock)
	productTypes.On("CountByIDs", mock.Anything, []int64{1}).Return(int64(1), nil)

	pricing := new(PricingRepoMock)
	pricing.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	pricing.On("CreatePrices", mock.Anything, mock.Anything).Return(nil)

	uc := newPricingUsecaseForTest(pricing, productTypes, time.Now())

	resp := uc.CreatePricingBatch(context.Background(), PricingBatchCreateRequest{
		Title: "June prices",
		PriceDetails: []PriceDetailRequest{
			{ProductTypeID: 1, Price: 100},
			{ProductTypeID: 1, Price: 150},
		},
	})

	assert.True(t, resp.Success)
	productTypes.AssertExpectations(t)
}

func TestPricingUsecase_CreatePricingBatch_NonPositivePrice(t *testing.T) {
	productTypes := new(ProductTypeRepoMock)
	productTypes.On("CountByIDs", mock.Anything, []int64{1}).Return(int64(1), nil)

	pricing := new(PricingRepoMock)
	uc := newPricingUsecaseForTest(pricing, productTypes, time.Now())

	resp := uc.CreatePricingBatch(context.Background(), PricingBatchCreateRequest{
		Title:        "June prices",
		PriceDetails: []PriceDetailRequest{{ProductTypeID: 1, Price: 0}},
	})

	assert.False(t, resp.Success)
	assert.Equal(t, "Price must be greater than 0.", resp.Message)
	pricing.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestPricingUsecase_CreatePricingBatch_BatchAndPricesShareTimestamp(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	productTypes := new(ProductTypeRepoMock)
	productTypes.On("CountByIDs", mock.Anything, []int64{1, 2}).Return(int64(2), nil)

	pricing := new(PricingRepoMock)
	pricing.On("CreateBatch", mock.Anything, mock.MatchedBy(func(b *model.PricingBatch) bool {
		return b.Title == "June prices" && b.CreatedAt.Equal(now)
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.PricingBatch).ID = 7
	}).Return(nil)
	pricing.On("CreatePrices", mock.Anything, mock.MatchedBy(func(prices []model.ProductPrice) bool {
		if len(prices) != 2 {
			return false
		}
		for _, p := range prices {
			if p.PricingBatchID != 7 || !p.CreatedAt.Equal(now) {
				return false
			}
		}
		return true
	})).Return(nil)

	uc := newPricingUsecaseForTest(pricing, productTypes, now)

	resp := uc.CreatePricingBatch(context.Background(), PricingBatchCreateRequest{
		Title:       "June prices",
		Description: "Monthly revision",
		PriceDetails: []PriceDetailRequest{
			{ProductTypeID: 1, Price: 100},
			{ProductTypeID: 2, Price: 250},
		},
	})

	assert.True(t, resp.Success)
	assert.Equal(t, "Pricing batch created successfully", resp.Response)
	pricing.AssertExpectations(t)
}

func TestPricingUsecase_GetPricingBatches_Success(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	pricing := new(PricingRepoMock)
	pricing.On("ListBatches", mock.Anything, mock.MatchedBy(func(f repo.BatchListFilter) bool {
		return f.Page == 1 && f.PageSize == 20 && f.NewestFirst
	})).Return([]model.PricingBatch{
		{
			ID:        7,
			Title:     "June prices",
			CreatedAt: created,
			ProductPrices: []model.ProductPrice{
				{ID: 1, ProductTypeID: 1, Price: 100, ProductType: &model.ProductType{ID: 1, TypeName: "Coffee"}},
			},
		},
	}, int64(1), nil)

	uc := newPricingUsecaseForTest(pricing, new(ProductTypeRepoMock), time.Now())

	resp := uc.GetPricingBatches(context.Background(), PricingBatchSelectsRequest{Page: 1, PageSize: 20})

	assert.True(t, resp.Success)
	assert.Equal(t, 1, len(resp.Response.Items))
	assert.Equal(t, "Coffee", resp.Response.Items[0].PriceDetails[0].TypeName)
	assert.Equal(t, int64(1), resp.Response.TotalCount)

	//同じ条件なら同じ結果
	again := uc.GetPricingBatches(context.Background(), PricingBatchSelectsRequest{Page: 1, PageSize: 20})
	assert.Equal(t, resp, again)
}

func TestPricingUsecase_GetPricingBatches_DateFilterExpandsToDayBounds(t *testing.T) {
	pricing := new(PricingRepoMock)
	pricing.On("ListBatches", mock.Anything, mock.MatchedBy(func(f repo.BatchListFilter) bool {
		if f.From == nil || f.To == nil {
			return false
		}
		wantFrom := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		wantTo := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)
		return f.From.Equal(wantFrom) && f.To.Equal(wantTo)
	})).Return([]model.PricingBatch{}, int64(0), nil)

	uc := newPricingUsecaseForTest(pricing, new(ProductTypeRepoMock), time.Now())

	resp := uc.GetPricingBatches(context.Background(), PricingBatchSelectsRequest{
		Page:     1,
		PageSize: 20,
		FromDate: "2025-06-01",
		ToDate:   "2025-06-15",
	})

	assert.True(t, resp.Success)
	pricing.AssertExpectations(t)
}

func TestPricingUsecase_GetPricingBatches_InvalidDateRejected(t *testing.T) {
	uc := newPricingUsecaseForTest(new(PricingRepoMock), new(ProductTypeRepoMock), time.Now())

	resp := uc.GetPricingBatches(context.Background(), PricingBatchSelectsRequest{
		Page:     1,
		PageSize: 20,
		ToDate:   "15-06-2025",
	})

	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid date filter.", resp.Message)
}
