package main

import (
	"context"
	"errors"
	"os"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	repo "app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// 業務タイムゾーンでのnow
type businessClock struct {
	loc *time.Location
}

func (c *businessClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// AdminとCustomerが無ければ作る
func seedRoles(ctx context.Context, roles repo.RoleRepository) error {
	for _, name := range []string{model.RoleAdmin, model.RoleCustomer} {
		_, err := roles.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}
		if err := roles.Create(ctx, &model.Role{RoleName: name}); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect db")
	}

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.ProductType{},
		&model.PricingBatch{},
		&model.ProductPrice{},
		&model.Order{},
		&model.OrderDetail{},
		&model.IssuedToken{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto migrate")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	roleRepo := infraRepo.NewRoleGormRepository(gormDB)
	productTypeRepo := infraRepo.NewProductTypeGormRepository(gormDB)
	pricingRepo := infraRepo.NewPricingGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	tokenRepo := infraRepo.NewTokenGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	if err := seedRoles(context.Background(), roleRepo); err != nil {
		log.Fatal().Err(err).Msg("seed roles")
	}

	clock := &businessClock{loc: cfg.Timezone}

	//Usecase生成
	userUC := usecase.NewUserUsecase(userRepo, roleRepo)
	tokenUC := auth.NewTokenUsecase(cfg, tokenRepo, clock)
	orderUC := usecase.NewOrderUsecase(cfg, userRepo, pricingRepo, orderRepo, txManager, clock)
	pricingUC := usecase.NewPricingUsecase(cfg, pricingRepo, productTypeRepo, txManager, clock)
	productTypeUC := usecase.NewProductTypeUsecase(productTypeRepo, orderRepo, pricingRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:        handler.NewAuthHandler(userUC, tokenUC),
		User:        handler.NewUserHandler(userUC),
		Order:       handler.NewOrderHandler(orderUC),
		AdminOrder:  handler.NewAdminOrderHandler(orderUC),
		Pricing:     handler.NewPricingHandler(pricingUC),
		ProductType: handler.NewProductTypeHandler(productTypeUC),
	}

	//Server起動
	if err := server.Start(cfg, tokenRepo, handlers); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
