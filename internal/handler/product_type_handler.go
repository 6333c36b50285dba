package handler

import (
	"strconv"
	"strings"

	"app/internal/message"
	"app/internal/response"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ProductTypeHandler struct {
	uc *usecase.ProductTypeUsecase
}

// DI
func NewProductTypeHandler(uc *usecase.ProductTypeUsecase) *ProductTypeHandler {
	return &ProductTypeHandler{uc: uc}
}

// Create はPOST /admin/product-types。
func (h *ProductTypeHandler) Create(c echo.Context) error {
	var req usecase.ProductTypeCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, nil)
	}

	if strings.TrimSpace(req.TypeName) == "" {
		return badRequest(c, []response.DetailError{{
			Field:        "typeName",
			MessageID:    message.E10000,
			ErrorMessage: "typeName is required.",
		}})
	}

	resp := h.uc.CreateProductType(c.Request().Context(), req)
	return c.JSON(statusFor(resp.ApiResult), resp)
}

// List はGET /admin/product-types。
func (h *ProductTypeHandler) List(c echo.Context) error {
	resp := h.uc.SelectProductTypes(c.Request().Context())
	return c.JSON(statusFor(resp.ApiResult), resp)
}

// Update はPUT /admin/product-types/:id。
func (h *ProductTypeHandler) Update(c echo.Context) error {
	productTypeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productTypeID <= 0 {
		return badRequest(c, nil)
	}

	var req usecase.ProductTypeUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, nil)
	}
	req.ProductTypeID = productTypeID

	if strings.TrimSpace(req.TypeName) == "" {
		return badRequest(c, []response.DetailError{{
			Field:        "typeName",
			MessageID:    message.E10000,
			ErrorMessage: "typeName is required.",
		}})
	}

	resp := h.uc.UpdateProductType(c.Request().Context(), req)
	return c.JSON(statusFor(resp.ApiResult), resp)
}

// Delete はDELETE /admin/product-types/:id。
func (h *ProductTypeHandler) Delete(c echo.Context) error {
	productTypeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productTypeID <= 0 {
		return badRequest(c, nil)
	}

	resp := h.uc.DeleteProductType(c.Request().Context(), productTypeID)
	return c.JSON(statusFor(resp.ApiResult), resp)
}
