package server

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/middleware"
	"app/internal/repository"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Order       *handler.OrderHandler
	AdminOrder  *handler.AdminOrderHandler
	Pricing     *handler.PricingHandler
	ProductType *handler.ProductTypeHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, tokens repository.TokenRepository, h Handlers) {
	//公開ルート
	e.POST("/users", h.User.Create)
	e.GET("/users/role", h.User.RoleSelect)
	e.POST("/auth/login", h.Auth.Login)
	e.POST("/auth/refresh", h.Auth.Refresh)

	//要認証。署名検証と失効台帳チェックの二段構え。
	authed := e.Group("", middleware.AuthJWT(cfg), middleware.TokenRevocationGuard(tokens))
	authed.POST("/auth/logout", h.Auth.Logout)
	authed.GET("/auth/session", h.Auth.Session)

	api := authed.Group("/api/v1")
	api.POST("/orders", h.Order.Create)
	api.GET("/orders", h.Order.List)
	api.GET("/orders/:id", h.Order.Detail)
	api.GET("/pricing-batches", h.Pricing.List)

	//管理者のみ
	admin := api.Group("/admin", middleware.AdminRoleGuard())
	admin.GET("/orders", h.AdminOrder.List)
	admin.GET("/orders/:id", h.AdminOrder.Detail)
	admin.POST("/pricing-batches", h.Pricing.Create)
	admin.POST("/product-types", h.ProductType.Create)
	admin.GET("/product-types", h.ProductType.List)
	admin.PUT("/product-types/:id", h.ProductType.Update)
	admin.DELETE("/product-types/:id", h.ProductType.Delete)
}
