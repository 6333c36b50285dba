package usecase

import (
	"context"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/message"
	repo "app/internal/repository"
	"app/internal/response"

	"github.com/rs/zerolog/log"
)

type PricingUsecase struct {
	cfg          config.Config
	pricing      repo.PricingRepository
	productTypes repo.ProductTypeRepository
	tx           repo.TransactionManager
	clock        Clock
}

// DI
func NewPricingUsecase(
	cfg config.Config,
	pricing repo.PricingRepository,
	productTypes repo.ProductTypeRepository,
	tx repo.TransactionManager,
	clock Clock,
) *PricingUsecase {
	return &PricingUsecase{
		cfg:          cfg,
		pricing:      pricing,
		productTypes: productTypes,
		tx:           tx,
		clock:        clock,
	}
}

type PriceDetailRequest struct {
	ProductTypeID int64 `json:"productTypeId"`
	Price         int64 `json:"price"`
}

type PricingBatchCreateRequest struct {
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	PriceDetails []PriceDetailRequest `json:"priceDetails"`
}

type PricingBatchCreateResponse struct {
	response.ApiResult
	Response string `json:"response"`
}

type ProductPriceEntity struct {
	PriceID       int64  `json:"priceId"`
	ProductTypeID int64  `json:"productTypeId"`
	TypeName      string `json:"typeName"`
	Price         int64  `json:"price"`
}

type PricingBatchEntity struct {
	PricingBatchID int64                `json:"pricingBatchId"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	CreatedAt      time.Time            `json:"createdAt"`
	PriceDetails   []ProductPriceEntity `json:"priceDetails"`
}

type PricingBatchPage struct {
	Items []PricingBatchEntity `json:"items"`
	response.Pagination
}

type PricingBatchSelectsRequest struct {
	Page     int
	PageSize int
	FromDate string
	ToDate   string
}

type PricingBatchSelectsResponse struct {
	response.ApiResult
	Response PricingBatchPage `json:"response"`
}

// CreatePricingBatch は価格改定バッチと価格行を1トランザクションで登録する。
func (u *PricingUsecase) CreatePricingBatch(ctx context.Context, req PricingBatchCreateRequest) PricingBatchCreateResponse {
	resp := PricingBatchCreateResponse{}
	resp.Success = false

	//存在チェックは「distinctなid数」と「ヒット行数」の比較。
	//重複idが欠損idを隠し得るのは既知の挙動で、ここでは踏襲する。
	ids := distinctIDs(req.PriceDetails)
	matched, err := u.productTypes.CountByIDs(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("create pricing batch: count product types")
		resp.SetMessage(message.E99999)
		return resp
	}
	if matched != int64(len(ids)) {
		resp.SetMessage(message.E00000, "Some product types do not exist.")
		return resp
	}

	for _, d := range req.PriceDetails {
		if d.Price <= 0 {
			resp.SetMessage(message.E00000, "Price must be greater than 0.")
			return resp
		}
	}

	now := u.clock.Now()

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		batch := &model.PricingBatch{
			Title:       req.Title,
			Description: req.Description,
			CreatedAt:   now,
		}
		if err := r.Pricing().CreateBatch(ctx, batch); err != nil {
			return err
		}

		//価格行はバッチと同一タイムスタンプ
		prices := make([]model.ProductPrice, 0, len(req.PriceDetails))
		for _, d := range req.PriceDetails {
			prices = append(prices, model.ProductPrice{
				ProductTypeID:  d.ProductTypeID,
				PricingBatchID: batch.ID,
				Price:          d.Price,
				CreatedAt:      now,
			})
		}
		return r.Pricing().CreatePrices(ctx, prices)
	})
	if err != nil {
		log.Error().Err(err).Msg("create pricing batch: transaction")
		resp.SetMessage(message.E99999)
		return resp
	}

	resp.Success = true
	resp.Response = "Pricing batch created successfully"
	resp.SetMessage(message.I00001)
	return resp
}

// GetPricingBatches は価格バッチのページング一覧（価格行と種別名付き）。
func (u *PricingUsecase) GetPricingBatches(ctx context.Context, req PricingBatchSelectsRequest) PricingBatchSelectsResponse {
	resp := PricingBatchSelectsResponse{}
	resp.Success = false

	from, to, err := u.parseDateRange(req.FromDate, req.ToDate)
	if err != nil {
		resp.SetMessage(message.E00000, "Invalid date filter.")
		return resp
	}

	batches, total, err := u.pricing.ListBatches(ctx, repo.BatchListFilter{
		Page:        req.Page,
		PageSize:    req.PageSize,
		From:        from,
		To:          to,
		NewestFirst: u.cfg.ListNewestFirst,
	})
	if err != nil {
		log.Error().Err(err).Msg("list pricing batches")
		resp.SetMessage(message.E99999)
		return resp
	}

	items := make([]PricingBatchEntity, 0, len(batches))
	for _, b := range batches {
		entity := PricingBatchEntity{
			PricingBatchID: b.ID,
			Title:          b.Title,
			Description:    b.Description,
			CreatedAt:      b.CreatedAt,
			PriceDetails:   make([]ProductPriceEntity, 0, len(b.ProductPrices)),
		}
		for _, p := range b.ProductPrices {
			price := ProductPriceEntity{
				PriceID:       p.ID,
				ProductTypeID: p.ProductTypeID,
				Price:         p.Price,
			}
			if p.ProductType != nil {
				price.TypeName = p.ProductType.TypeName
			}
			entity.PriceDetails = append(entity.PriceDetails, price)
		}
		items = append(items, entity)
	}

	resp.Success = true
	resp.Response = PricingBatchPage{
		Items:      items,
		Pagination: response.NewPagination(total, req.Page, req.PageSize),
	}
	resp.SetMessage(message.I00001)
	return resp
}

func (u *PricingUsecase) parseDateRange(fromDate string, toDate string) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if fromDate != "" {
		d, err := time.ParseInLocation("2006-01-02", fromDate, u.cfg.Timezone)
		if err != nil {
			return nil, nil, err
		}
		from = &d
	}
	if toDate != "" {
		d, err := time.ParseInLocation("2006-01-02", toDate, u.cfg.Timezone)
		if err != nil {
			return nil, nil, err
		}
		end := d.Add(24*time.Hour - time.Second)
		to = &end
	}

	return from, to, nil
}

func distinctIDs(details []PriceDetailRequest) []int64 {
	seen := make(map[int64]struct{}, len(details))
	ids := make([]int64, 0, len(details))
	for _, d := range details {
		if _, ok := seen[d.ProductTypeID]; ok {
			continue
		}
		seen[d.ProductTypeID] = struct{}{}
		ids = append(ids, d.ProductTypeID)
	}
	return ids
}
