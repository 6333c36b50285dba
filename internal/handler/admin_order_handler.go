package handler

import (
	"strconv"

	"app/internal/usecase"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
)

type AdminOrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewAdminOrderHandler(uc *usecase.OrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc}
}

// List はGET /admin/orders。userId・fromDate・toDateで任意に絞り込む。
func (h *AdminOrderHandler) List(c echo.Context) error {
	page, pageSize := pageParams(c)
	if details := validator.ValidatePagination(page, pageSize); len(details) > 0 {
		return badRequest(c, details)
	}

	req := usecase.AdminOrderSelectRequest{
		Page:     page,
		PageSize: pageSize,
		FromDate: c.QueryParam("fromDate"),
		ToDate:   c.QueryParam("toDate"),
	}
	if v := c.QueryParam("userId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return badRequest(c, nil)
		}
		req.UserID = &id
	}

	resp := h.uc.GetAllOrders(c.Request().Context(), req)
	return c.JSON(statusFor(resp.ApiResult), resp)
}

// Detail はGET /admin/orders/:id。
func (h *AdminOrderHandler) Detail(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || orderID <= 0 {
		return badRequest(c, nil)
	}

	resp := h.uc.GetAdminOrderDetail(c.Request().Context(), orderID)
	return c.JSON(statusFor(resp.ApiResult), resp)
}
