// Package validator はusecaseに入る前のリクエスト形状チェック。
// 業務ルール（価格の存在・名前の重複など）はusecase側の責務。
package validator

import (
	"fmt"
	"strings"

	"app/internal/message"
	"app/internal/response"
	"app/internal/usecase"
)

func detail(field string, errorMessage string) response.DetailError {
	return response.DetailError{
		Field:        field,
		MessageID:    message.E10000,
		ErrorMessage: errorMessage,
	}
}

// ValidateCreateOrder は注文作成リクエストの形状を検証する。
func ValidateCreateOrder(req usecase.OrderCreateRequest) []response.DetailError {
	var errs []response.DetailError

	if strings.TrimSpace(req.PhoneNumber) == "" {
		errs = append(errs, detail("phoneNumber", "phoneNumber is required"))
	}
	if len(req.OrderDetails) == 0 {
		errs = append(errs, detail("orderDetails", "orderDetails must not be empty"))
	}
	for i, d := range req.OrderDetails {
		if d.ProductTypeID <= 0 {
			errs = append(errs, detail(fmt.Sprintf("orderDetails[%d].productTypeId", i), "productTypeId must be positive"))
		}
		if d.Quantity <= 0 {
			errs = append(errs, detail(fmt.Sprintf("orderDetails[%d].quantity", i), "quantity must be a positive integer"))
		}
	}

	return errs
}

// ValidateCreatePricingBatch は価格バッチ作成リクエストの形状を検証する。
func ValidateCreatePricingBatch(req usecase.PricingBatchCreateRequest) []response.DetailError {
	var errs []response.DetailError

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, detail("title", "title is required"))
	}
	if len(req.PriceDetails) == 0 {
		errs = append(errs, detail("priceDetails", "priceDetails must not be empty"))
	}
	for i, d := range req.PriceDetails {
		if d.ProductTypeID <= 0 {
			errs = append(errs, detail(fmt.Sprintf("priceDetails[%d].productTypeId", i), "productTypeId must be positive"))
		}
	}

	return errs
}

// ValidatePagination はpage≥1、pageSize 1..100を要求する。
func ValidatePagination(page int, pageSize int) []response.DetailError {
	var errs []response.DetailError

	if page < 1 {
		errs = append(errs, detail("page", "page must be >= 1"))
	}
	if pageSize < 1 || pageSize > 100 {
		errs = append(errs, detail("pageSize", "pageSize must be between 1 and 100"))
	}

	return errs
}
