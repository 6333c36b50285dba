package handler

import (
	"strconv"

	"app/internal/usecase"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create はPOST /orders。
func (h *OrderHandler) Create(c echo.Context) error {
	var req usecase.OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, nil)
	}

	if details := validator.ValidateCreateOrder(req); len(details) > 0 {
		return badRequest(c, details)
	}

	resp := h.uc.CreateOrder(c.Request().Context(), req)
	return c.JSON(statusFor(resp.ApiResult), resp)
}

// List はGET /orders（自分の注文のページング一覧）。
func (h *OrderHandler) List(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return badRequest(c, nil)
	}

	page, pageSize := pageParams(c)
	if details := validator.ValidatePagination(page, pageSize); len(details) > 0 {
		return badRequest(c, details)
	}

	resp := h.uc.GetOrdersByUser(c.Request().Context(), userID, page, pageSize)
	return c.JSON(statusFor(resp.ApiResult), resp)
}

// Detail はGET /orders/:id。
func (h *OrderHandler) Detail(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return badRequest(c, nil)
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || orderID <= 0 {
		return badRequest(c, nil)
	}

	resp := h.uc.GetOrderDetail(c.Request().Context(), userID, orderID)
	return c.JSON(statusFor(resp.ApiResult), resp)
}

// page（default 1）とpageSize（default 20）
func pageParams(c echo.Context) (int, int) {
	page := 1
	if v := c.QueryParam("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			page = p
		}
	}
	pageSize := 20
	if v := c.QueryParam("pageSize"); v != "" {
		if s, err := strconv.Atoi(v); err == nil {
			pageSize = s
		}
	}
	return page, pageSize
}
