package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tiffin/internal/cart"
	"tiffin/internal/checkout"
	"tiffin/internal/collaborator"
	"tiffin/internal/commons"
	"tiffin/internal/infrastructure/logger"
	"tiffin/internal/infrastructure/mysql"
	"tiffin/internal/infrastructure/rabbitmq"
	"tiffin/internal/infrastructure/redis"
	"tiffin/internal/menu"
	"tiffin/internal/order"
	"tiffin/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("connecting to redis", zap.Error(err))
	}
	defer redisClient.Close()
	zapLogger.Info("redis connected")

	mq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		zapLogger.Fatal("connecting to rabbitmq", zap.Error(err))
	}
	defer mq.Close()
	zapLogger.Info("rabbitmq connected")

	menuModule := menu.NewModule(db, zapLogger)
	cartModule := cart.NewModule(redisClient, menuModule.Service, zapLogger)
	orderModule := order.NewModule(cfg, mq, zapLogger)
	checkoutModule := checkout.NewModule(
		cartModule.Store,
		collaborator.NewSimGeocoder(),
		collaborator.NewSimPaymentGateway(),
		orderModule.Tracker,
		cfg.Pricing,
		zapLogger,
	)

	router := server.NewRouter(
		menuModule.Controller,
		cartModule.Controller,
		checkoutModule.Controller,
		orderModule.Controller,
		cfg.Auth.JWTSecret,
		zapLogger,
	)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	go func() {
		if err := orderModule.Consumer.Run(consumerCtx); err != nil && consumerCtx.Err() == nil {
			zapLogger.Error("push consumer stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	stopConsumer()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
