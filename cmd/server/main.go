package main

import (
	"context"
	"net/http"

	"dmdstore-be/internal/api"
	"dmdstore-be/internal/config"
	"dmdstore-be/internal/db"
	"dmdstore-be/internal/logger"
	"dmdstore-be/internal/middleware"
	"dmdstore-be/internal/order"
	"dmdstore-be/internal/product"
	"dmdstore-be/internal/session"
	"dmdstore-be/internal/upload"
	"dmdstore-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	database, err := db.Open(cfg)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close()

	if err := db.Seed(context.Background(), database, cfg); err != nil {
		log.Fatal("failed to seed database", zap.Error(err))
	}

	sessions := session.NewMemoryStore(session.DefaultTTL)
	defer sessions.Close()

	saver, err := upload.NewSaver(cfg.UploadDir)
	if err != nil {
		log.Fatal("failed to prepare upload dir", zap.Error(err))
	}

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	handler := api.NewHandler(userSvc, productSvc, orderSvc, sessions, saver)
	mux := api.NewRouter(handler)

	var root http.Handler = mux
	root = middleware.RateLimit(root)
	root = middleware.Session(sessions)(root)
	root = logger.LoggingMiddleware(root)
	root = logger.RequestIDMiddleware(root)

	log.Info("server running", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, root); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
