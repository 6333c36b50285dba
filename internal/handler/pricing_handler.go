package handler

import (
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
)

type PricingHandler struct {
	uc *usecase.PricingUsecase
}

// DI
func NewPricingHandler(uc *usecase.PricingUsecase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// Create はPOST /admin/pricing-batches。
func (h *PricingHandler) Create(c echo.Context) error {
	var req usecase.PricingBatchCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, nil)
	}

	if details := validator.ValidateCreatePricingBatch(req); len(details) > 0 {
		return badRequest(c, details)
	}

	resp := h.uc.CreatePricingBatch(c.Request().Context(), req)
	return c.JSON(statusFor(resp.ApiResult), resp)
}

// List はGET /pricing-batches（期間絞り込み付きページング一覧）。
func (h *PricingHandler) List(c echo.Context) error {
	page, pageSize := pageParams(c)
	if details := validator.ValidatePagination(page, pageSize); len(details) > 0 {
		return badRequest(c, details)
	}

	resp := h.uc.GetPricingBatches(c.Request().Context(), usecase.PricingBatchSelectsRequest{
		Page:     page,
		PageSize: pageSize,
		FromDate: c.QueryParam("fromDate"),
		ToDate:   c.QueryParam("toDate"),
	})
	return c.JSON(statusFor(resp.ApiResult), resp)
}
