package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bistro/docs"
	"bistro/internal/auth"
	"bistro/internal/cache"
	"bistro/internal/config"
	"bistro/internal/db"
	"bistro/internal/handler"
	"bistro/internal/logging"
	authmw "bistro/internal/middleware"
	"bistro/internal/payment"
	"bistro/internal/repository"
	"bistro/internal/router"
	"bistro/internal/service"
)

// @title Bistro Boss API
// @version 1.0
// @description Restaurant ordering backend: menu, carts, reviews, payments and admin dashboard.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	decimal.MarshalJSONWithoutQuotes = true

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.WithError(err).Fatal("database init")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB, log); err != nil {
		log.WithError(err).Fatal("database migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.WithError(err).Warn("redis unreachable, serving without cache")
	}

	if cfg.PaymentSecretKey == "" {
		log.Warn("PAYMENT_SECRET_KEY is empty, payment intents will fail")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	menuRepo := repository.NewMenuRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)

	// Initialize auth components
	tokens := auth.NewTokenService(cfg.AccessTokenSecret, cfg.TokenTTL)
	gate := authmw.NewGate(tokens, auth.NewGate(userRepo), log)

	// Initialize services
	userService := service.NewUserService(userRepo, log)
	menuService := service.NewMenuService(menuRepo, cacheClient, log)
	reviewService := service.NewReviewService(reviewRepo, cacheClient)
	cartService := service.NewCartService(cartRepo)
	settlementService := service.NewSettlementService(paymentRepo, cartRepo, log)
	statsService := service.NewStatsService(userRepo, menuRepo, paymentRepo)
	intentService := service.NewPaymentIntentService(payment.NewStripeGateway(cfg.PaymentSecretKey), cfg.PaymentCurrency, log)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, log, gate, router.Handlers{
		Token:   handler.NewTokenHandler(tokens),
		User:    handler.NewUserHandler(userService),
		Menu:    handler.NewMenuHandler(menuService),
		Review:  handler.NewReviewHandler(reviewService),
		Cart:    handler.NewCartHandler(cartService),
		Payment: handler.NewPaymentHandler(intentService, settlementService),
		Stats:   handler.NewStatsHandler(statsService),
	})

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "localhost:" + cfg.ServerPort
	}
	docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(swaggerHost, "https://"), "http://")
	log.Infof("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	go func() {
		addr := ":" + cfg.ServerPort
		log.WithField("addr", addr).Info("Bistro Boss server is running")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
}
