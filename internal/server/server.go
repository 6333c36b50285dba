package server

import (
	"app/internal/config"
	"app/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

// New はルート登録済みのechoインスタンスを組み立てる。
func New(cfg config.Config, tokens repository.TokenRepository, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(requestLogger())

	corsConfig := echomw.DefaultCORSConfig
	if cfg.FEURL != "" {
		corsConfig.AllowOrigins = []string{cfg.FEURL}
	}
	e.Use(echomw.CORSWithConfig(corsConfig))

	RegisterRoutes(e, cfg, tokens, h)
	return e
}

// Start はサーバーを起動する。
func Start(cfg config.Config, tokens repository.TokenRepository, h Handlers) error {
	e := New(cfg, tokens, h)
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}
	log.Info().Str("addr", addr).Msg("starting api server")
	return e.Start(addr)
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	})
}
