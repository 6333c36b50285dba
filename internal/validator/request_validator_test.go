package validator

import (
	"testing"

	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateOrder_OK(t *testing.T) {
	errs := ValidateCreateOrder(usecase.OrderCreateRequest{
		PhoneNumber: "0901234567",
		OrderDetails: []usecase.OrderDetailRequest{
			{ProductTypeID: 1, Quantity: 3},
		},
	})
	assert.Empty(t, errs)
}

func TestValidateCreateOrder_MissingPhoneAndDetails(t *testing.T) {
	errs := ValidateCreateOrder(usecase.OrderCreateRequest{})
	assert.Equal(t, 2, len(errs))
	assert.Equal(t, "phoneNumber", errs[0].Field)
	assert.Equal(t, "orderDetails", errs[1].Field)
}

func TestValidateCreateOrder_NonPositiveQuantity(t *testing.T) {
	errs := ValidateCreateOrder(usecase.OrderCreateRequest{
		PhoneNumber: "0901234567",
		OrderDetails: []usecase.OrderDetailRequest{
			{ProductTypeID: 1, Quantity: 0},
			{ProductTypeID: -1, Quantity: 2},
		},
	})
	assert.Equal(t, 2, len(errs))
	assert.Equal(t, "orderDetails[0].quantity", errs[0].Field)
	assert.Equal(t, "orderDetails[1].productTypeId", errs[1].Field)
}

func TestValidateCreatePricingBatch_MissingTitle(t *testing.T) {
	errs := ValidateCreatePricingBatch(usecase.PricingBatchCreateRequest{
		Title:        "   ",
		PriceDetails: []usecase.PriceDetailRequest{{ProductTypeID: 1, Price: 100}},
	})
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, "title", errs[0].Field)
}

func TestValidateCreatePricingBatch_EmptyDetails(t *testing.T) {
	errs := ValidateCreatePricingBatch(usecase.PricingBatchCreateRequest{Title: "June"})
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, "priceDetails", errs[0].Field)
}

func TestValidatePagination(t *testing.T) {
	assert.Empty(t, ValidatePagination(1, 20))
	assert.Empty(t, ValidatePagination(3, 100))

	assert.Equal(t, 1, len(ValidatePagination(0, 20)))
	assert.Equal(t, 1, len(ValidatePagination(1, 0)))
	assert.Equal(t, 1, len(ValidatePagination(1, 101)))
	assert.Equal(t, 2, len(ValidatePagination(-1, 1000)))
}
