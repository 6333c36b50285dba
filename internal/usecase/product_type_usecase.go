package usecase

import (
	"context"
	"errors"

	"app/internal/domain/model"
	"app/internal/message"
	repo "app/internal/repository"
	"app/internal/response"

	"github.com/rs/zerolog/log"
)

type ProductTypeUsecase struct {
	productTypes repo.ProductTypeRepository
	orders       repo.OrderRepository
	pricing      repo.PricingRepository
}

// DI
func NewProductTypeUsecase(
	productTypes repo.ProductTypeRepository,
	orders repo.OrderRepository,
	pricing repo.PricingRepository,
) *ProductTypeUsecase {
	return &ProductTypeUsecase{
		productTypes: productTypes,
		orders:       orders,
		pricing:      pricing,
	}
}

type ProductTypeCreateRequest struct {
	TypeName string `json:"typeName"`
}

type ProductTypeUpdateRequest struct {
	ProductTypeID int64  `json:"productTypeId"`
	TypeName      string `json:"typeName"`
}

type ProductTypeEntity struct {
	ProductTypeID int64  `json:"productTypeId"`
	TypeName      string `json:"typeName"`
}

type ProductTypeMutateResponse struct {
	response.ApiResult
	Response string `json:"response"`
}

type ProductTypeSelectsResponse struct {
	response.ApiResult
	Response []ProductTypeEntity `json:"response"`
}

// CreateProductType は名前の重複を拒否して種別を登録する。
func (u *ProductTypeUsecase) CreateProductType(ctx context.Context, req ProductTypeCreateRequest) ProductTypeMutateResponse {
	resp := ProductTypeMutateResponse{}
	resp.Success = false

	_, err := u.productTypes.FindByName(ctx, req.TypeName)
	if err == nil {
		resp.SetMessage(message.E00000, "Product type already exists.")
		return resp
	}
	if !errors.Is(err, repo.ErrNotFound) {
		log.Error().Err(err).Msg("create product type: find by name")
		resp.SetMessage(message.E99999)
		return resp
	}

	if err := u.productTypes.Create(ctx, &model.ProductType{TypeName: req.TypeName}); err != nil {
		log.Error().Err(err).Msg("create product type")
		resp.SetMessage(message.E99999)
		return resp
	}

	resp.Success = true
	resp.SetMessage(message.I00001)
	return resp
}

// SelectProductTypes は全種別の一覧（ページングなし）。
func (u *ProductTypeUsecase) SelectProductTypes(ctx context.Context) ProductTypeSelectsResponse {
	resp := ProductTypeSelectsResponse{}
	resp.Success = false

	productTypes, err := u.productTypes.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("list product types")
		resp.SetMessage(message.E99999)
		return resp
	}

	resp.Response = make([]ProductTypeEntity, 0, len(productTypes))
	for _, pt := range productTypes {
		resp.Response = append(resp.Response, ProductTypeEntity{
			ProductTypeID: pt.ID,
			TypeName:      pt.TypeName,
		})
	}

	resp.Success = true
	resp.SetMessage(message.I00001)
	return resp
}

// UpdateProductType は改名する。改名先が別の既存行と衝突する場合は拒否。
func (u *ProductTypeUsecase) UpdateProductType(ctx context.Context, req ProductTypeUpdateRequest) ProductTypeMutateResponse {
	resp := ProductTypeMutateResponse{}
	resp.Success = false

	existing, err := u.productTypes.FindByID(ctx, req.ProductTypeID)
	if errors.Is(err, repo.ErrNotFound) {
		resp.SetMessage(message.E00000, "Product type not found.")
		return resp
	}
	if err != nil {
		log.Error().Err(err).Msg("update product type: find")
		resp.SetMessage(message.E99999)
		return resp
	}

	duplicate, err := u.productTypes.FindByName(ctx, req.TypeName)
	if err == nil && duplicate.ID != req.ProductTypeID {
		resp.SetMessage(message.E00000, "Product type name already exists.")
		return resp
	}
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		log.Error().Err(err).Msg("update product type: find by name")
		resp.SetMessage(message.E99999)
		return resp
	}

	existing.TypeName = req.TypeName
	if err := u.productTypes.Update(ctx, existing); err != nil {
		log.Error().Err(err).Msg("update product type")
		resp.SetMessage(message.E99999)
		return resp
	}

	resp.Success = true
	resp.SetMessage(message.I00001)
	return resp
}

// DeleteProductType は注文明細か価格行から参照されている種別の削除を拒否する。
func (u *ProductTypeUsecase) DeleteProductType(ctx context.Context, productTypeID int64) ProductTypeMutateResponse {
	resp := ProductTypeMutateResponse{}
	resp.Success = false

	_, err := u.productTypes.FindByID(ctx, productTypeID)
	if errors.Is(err, repo.ErrNotFound) {
		resp.SetMessage(message.E00000, "Product type not found.")
		return resp
	}
	if err != nil {
		log.Error().Err(err).Msg("delete product type: find")
		resp.SetMessage(message.E99999)
		return resp
	}

	//参照ガード
	detailCount, err := u.orders.CountDetailsByProductType(ctx, productTypeID)
	if err != nil {
		log.Error().Err(err).Msg("delete product type: count order details")
		resp.SetMessage(message.E99999)
		return resp
	}
	priceCount, err := u.pricing.CountPricesByProductType(ctx, productTypeID)
	if err != nil {
		log.Error().Err(err).Msg("delete product type: count prices")
		resp.SetMessage(message.E99999)
		return resp
	}
	if detailCount > 0 || priceCount > 0 {
		resp.SetMessage(message.E00000, "Cannot delete product type as it is being used in orders or product pricing.")
		return resp
	}

	if err := u.productTypes.Delete(ctx, productTypeID); err != nil {
		log.Error().Err(err).Msg("delete product type")
		resp.SetMessage(message.E99999)
		return resp
	}

	resp.Success = true
	resp.SetMessage(message.I00001)
	return resp
}
