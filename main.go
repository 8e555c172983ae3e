package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinema_admin/api"
	"cinema_admin/checkout"
	"cinema_admin/config"
	"cinema_admin/database"
	"cinema_admin/handler"
	"cinema_admin/helper"
	"cinema_admin/order"
	"cinema_admin/router"
	"cinema_admin/scanner"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	tokens, closeTokens, err := database.NewTokenStore(cfg, logger)
	if err != nil {
		logger.Fatal("token store", zap.Error(err))
	}
	defer closeTokens()

	clock := clockwork.NewRealClock()
	backend := api.New(cfg.APIURL, tokens, cfg.HTTPTimeout, logger)
	orders := order.NewRegistry(cfg.OrderSessionTTL, clock, logger)
	camera := scanner.NewFeedCamera()
	qr := scanner.New(scanner.Options{
		Camera:   camera,
		Decoder:  scanner.NewZXingDecoder(),
		Verifier: backend,
		Frames:   scanner.NewTickerScheduler(clock, cfg.ScanFPS),
		Clock:    clock,
		Log:      logger,
	})
	defer qr.Close()

	stats := helper.NewStatisticCache(backend, time.Minute, clock)
	jobs, err := helper.StartJobs(orders, time.Minute, stats, cfg.StatisticRefresh, logger)
	if err != nil {
		logger.Fatal("start jobs", zap.Error(err))
	}
	defer jobs.Stop()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	router.SetupRoutes(app, &handler.Handler{
		Backend:  backend,
		Orders:   orders,
		Checkout: checkout.NewSubmitter(backend, logger),
		Scanner:  qr,
		Camera:   camera,
		Stats:    stats,
		Log:      logger,
	}, tokens)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	logger.Info("server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("listen", zap.Error(err))
	}
}
