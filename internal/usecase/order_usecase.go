package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/message"
	repo "app/internal/repository"
	"app/internal/response"

	"github.com/rs/zerolog/log"
)

// 現在の業務時刻
type Clock interface {
	Now() time.Time
}

// 業務ルール起因のrollback用。メッセージは呼び出し側で別に持つ。
var errBusinessRollback = errors.New("business rollback")

type OrderUsecase struct {
	cfg     config.Config
	users   repo.UserRepository
	pricing repo.PricingRepository
	orders  repo.OrderRepository
	tx      repo.TransactionManager
	clock   Clock
}

// DI
func NewOrderUsecase(
	cfg config.Config,
	users repo.UserRepository,
	pricing repo.PricingRepository,
	orders repo.OrderRepository,
	tx repo.TransactionManager,
	clock Clock,
) *OrderUsecase {
	return &OrderUsecase{
		cfg:     cfg,
		users:   users,
		pricing: pricing,
		orders:  orders,
		tx:      tx,
		clock:   clock,
	}
}

type OrderDetailRequest struct {
	ProductTypeID int64 `json:"productTypeId"`
	Quantity      int64 `json:"quantity"`
}

type OrderCreateRequest struct {
	PhoneNumber  string               `json:"phoneNumber"`
	OrderDetails []OrderDetailRequest `json:"orderDetails"`
}

type OrderCreateResponse struct {
	response.ApiResult
	Response string `json:"response"`
}

// 注文1行分の表示用DTO
type OrderDetailLine struct {
	OrderDetailID   int64  `json:"orderDetailId"`
	ProductTypeID   int64  `json:"productTypeId"`
	ProductTypeName string `json:"productTypeName"`
	Quantity        int64  `json:"quantity"`
	Price           int64  `json:"price"`
	TotalPrice      int64  `json:"totalPrice"`
}

type OrderSummary struct {
	OrderID      int64             `json:"orderId"`
	OrderDate    time.Time         `json:"orderDate"`
	TotalAmount  int64             `json:"totalAmount"`
	UserName     string            `json:"userName"`
	PhoneNumber  string            `json:"phoneNumber"`
	OrderDetails []OrderDetailLine `json:"orderDetails"`
}

type OrderPage struct {
	Items []OrderSummary `json:"items"`
	response.Pagination
}

type OrderSelectsResponse struct {
	response.ApiResult
	Response OrderPage `json:"response"`
}

type OrderDetailFullResponse struct {
	response.ApiResult
	Response OrderSummary `json:"response"`
}

// 管理者詳細（ユーザー情報と統計付き）
type AdminOrderDetailData struct {
	OrderID     int64     `json:"orderId"`
	OrderDate   time.Time `json:"orderDate"`
	TotalAmount int64     `json:"totalAmount"`

	UserID        int64     `json:"userId"`
	UserName      string    `json:"userName"`
	PhoneNumber   string    `json:"phoneNumber"`
	UserCreatedAt time.Time `json:"userCreatedAt"`
	UserRole      string    `json:"userRole"`

	OrderItems []OrderDetailLine `json:"orderItems"`

	TotalItemsCount  int     `json:"totalItemsCount"`
	AverageItemPrice float64 `json:"averageItemPrice"`
}

type AdminOrderDetailResponse struct {
	response.ApiResult
	Response AdminOrderDetailData `json:"response"`
}

type AdminOrderSelectRequest struct {
	Page     int
	PageSize int
	UserID   *int64
	FromDate string // "2006-01-02"、空なら無条件
	ToDate   string
}

// CreateOrder は注文を1トランザクションで作成する。
// 価格は現時点で有効な最新バッチから行ごとに解決し、1行でも
// 価格が無ければ全体をrollbackする（部分的な注文は残さない）。
func (u *OrderUsecase) CreateOrder(ctx context.Context, req OrderCreateRequest) OrderCreateResponse {
	resp := OrderCreateResponse{}
	resp.Success = false

	user, err := u.users.FindByPhone(ctx, req.PhoneNumber)
	if errors.Is(err, repo.ErrNotFound) {
		resp.SetMessage(message.E00000, "User with this phone number does not exist.")
		return resp
	}
	if err != nil {
		log.Error().Err(err).Msg("create order: find user")
		resp.SetMessage(message.E99999)
		return resp
	}

	now := u.clock.Now()

	batch, err := u.pricing.LatestBatch(ctx, now)
	if errors.Is(err, repo.ErrNotFound) {
		resp.SetMessage(message.E00000, "No pricing batch available.")
		return resp
	}
	if err != nil {
		log.Error().Err(err).Msg("create order: latest batch")
		resp.SetMessage(message.E99999)
		return resp
	}

	var failMessage string

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//注文ヘッダ（合計は後で更新）
		order := &model.Order{
			UserID:      user.ID,
			OrderDate:   now,
			TotalAmount: 0,
		}
		if err := r.Orders().Create(ctx, order); err != nil {
			return err
		}

		var total int64
		details := make([]model.OrderDetail, 0, len(req.OrderDetails))

		for _, line := range req.OrderDetails {
			price, err := r.Pricing().FindPrice(ctx, line.ProductTypeID, batch.ID)
			if errors.Is(err, repo.ErrNotFound) {
				//1行でも価格が無ければ注文全体を諦める
				failMessage = fmt.Sprintf("Price not found for product type %d.", line.ProductTypeID)
				return errBusinessRollback
			}
			if err != nil {
				return err
			}

			//価格は注文時点のスナップショット
			details = append(details, model.OrderDetail{
				OrderID:       order.ID,
				ProductTypeID: line.ProductTypeID,
				Quantity:      line.Quantity,
				Price:         price.Price,
			})
			total += line.Quantity * price.Price
		}

		if err := r.Orders().CreateDetails(ctx, details); err != nil {
			return err
		}

		return r.Orders().UpdateTotal(ctx, order.ID, total)
	})

	if errors.Is(err, errBusinessRollback) {
		resp.SetMessage(message.E00000, failMessage)
		return resp
	}
	if err != nil {
		log.Error().Err(err).Msg("create order: transaction")
		resp.SetMessage(message.E99999)
		return resp
	}

	resp.Success = true
	resp.Response = "Order created successfully"
	resp.SetMessage(message.I00001)
	return resp
}

// GetOrdersByUser は呼び出しユーザー自身の注文のページング一覧。
func (u *OrderUsecase) GetOrdersByUser(ctx context.Context, userID int64, page int, pageSize int) OrderSelectsResponse {
	resp := OrderSelectsResponse{}
	resp.Success = false

	orders, total, err := u.orders.ListByUser(ctx, userID, page, pageSize, u.cfg.ListNewestFirst)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("list orders by user")
		resp.SetMessage(message.E99999)
		return resp
	}

	items := make([]OrderSummary, 0, len(orders))
	for i := range orders {
		items = append(items, toOrderSummary(&orders[i]))
	}

	resp.Success = true
	resp.Response = OrderPage{
		Items:      items,
		Pagination: response.NewPagination(total, page, pageSize),
	}
	resp.SetMessage(message.I00001)
	return resp
}

// GetOrderDetail はユーザー向けの注文詳細。他人の注文は存在しない扱い。
func (u *OrderUsecase) GetOrderDetail(ctx context.Context, userID int64, orderID int64) OrderDetailFullResponse {
	resp := OrderDetailFullResponse{}
	resp.Success = false

	order, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		resp.SetMessage(message.E00000, "Order not found.")
		return resp
	}
	if err != nil {
		log.Error().Err(err).Int64("order_id", orderID).Msg("get order detail")
		resp.SetMessage(message.E99999)
		return resp
	}
	if order.UserID != userID {
		resp.SetMessage(message.E00000, "Order not found.")
		return resp
	}

	resp.Success = true
	resp.Response = toOrderSummary(order)
	resp.SetMessage(message.I00001)
	return resp
}

// GetAdminOrderDetail は管理者向けの注文詳細（ユーザー情報＋統計付き）。
func (u *OrderUsecase) GetAdminOrderDetail(ctx context.Context, orderID int64) AdminOrderDetailResponse {
	resp := AdminOrderDetailResponse{}
	resp.Success = false

	order, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		resp.SetMessage(message.E00000, "Order not found.")
		return resp
	}
	if err != nil {
		log.Error().Err(err).Int64("order_id", orderID).Msg("get admin order detail")
		resp.SetMessage(message.E99999)
		return resp
	}

	data := AdminOrderDetailData{
		OrderID:     order.ID,
		OrderDate:   order.OrderDate,
		TotalAmount: order.TotalAmount,
		OrderItems:  toOrderDetailLines(order.OrderDetails),
	}

	if order.User != nil {
		data.UserID = order.User.ID
		data.UserName = order.User.FullName
		data.PhoneNumber = order.User.Phone
		data.UserCreatedAt = order.User.CreatedAt
		if order.User.Role != nil {
			data.UserRole = order.User.Role.RoleName
		}
	}

	//統計：明細数と単価の算術平均（明細なしは0）
	data.TotalItemsCount = len(order.OrderDetails)
	if len(order.OrderDetails) > 0 {
		var sum int64
		for _, d := range order.OrderDetails {
			sum += d.Price
		}
		data.AverageItemPrice = float64(sum) / float64(len(order.OrderDetails))
	}

	resp.Success = true
	resp.Response = data
	resp.SetMessage(message.I00001)
	return resp
}

// GetAllOrders は管理者向けの全注文一覧。userId・期間で任意に絞り込む。
func (u *OrderUsecase) GetAllOrders(ctx context.Context, req AdminOrderSelectRequest) OrderSelectsResponse {
	resp := OrderSelectsResponse{}
	resp.Success = false

	from, to, err := u.parseDateRange(req.FromDate, req.ToDate)
	if err != nil {
		resp.SetMessage(message.E00000, "Invalid date filter.")
		return resp
	}

	orders, total, err := u.orders.ListAdmin(ctx, repo.AdminOrderListFilter{
		Page:        req.Page,
		PageSize:    req.PageSize,
		UserID:      req.UserID,
		From:        from,
		To:          to,
		NewestFirst: u.cfg.ListNewestFirst,
	})
	if err != nil {
		log.Error().Err(err).Msg("list all orders")
		resp.SetMessage(message.E99999)
		return resp
	}

	items := make([]OrderSummary, 0, len(orders))
	for i := range orders {
		items = append(items, toOrderSummary(&orders[i]))
	}

	resp.Success = true
	resp.Response = OrderPage{
		Items:      items,
		Pagination: response.NewPagination(total, req.Page, req.PageSize),
	}
	resp.SetMessage(message.I00001)
	return resp
}

// from/toを業務タイムゾーンの日単位境界（00:00:00 / 23:59:59）へ広げる
func (u *OrderUsecase) parseDateRange(fromDate string, toDate string) (*time.Time, *time.Time, error) {
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

func toOrderSummary(order *model.Order) OrderSummary {
	s := OrderSummary{
		OrderID:      order.ID,
		OrderDate:    order.OrderDate,
		TotalAmount:  order.TotalAmount,
		OrderDetails: toOrderDetailLines(order.OrderDetails),
	}
	if order.User != nil {
		s.UserName = order.User.FullName
		s.PhoneNumber = order.User.Phone
	}
	return s
}

func toOrderDetailLines(details []model.OrderDetail) []OrderDetailLine {
	lines := make([]OrderDetailLine, 0, len(details))
	for _, d := range details {
		line := OrderDetailLine{
			OrderDetailID: d.ID,
			ProductTypeID: d.ProductTypeID,
			Quantity:      d.Quantity,
			Price:         d.Price,
			TotalPrice:    d.Quantity * d.Price,
		}
		if d.ProductType != nil {
			line.ProductTypeName = d.ProductType.TypeName
		}
		lines = append(lines, line)
	}
	return lines
}
