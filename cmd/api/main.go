package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zuqiartcraft/Product-Website/internal/auth"
	"github.com/zuqiartcraft/Product-Website/internal/checkout"
	"github.com/zuqiartcraft/Product-Website/internal/config"
	"github.com/zuqiartcraft/Product-Website/internal/db"
	"github.com/zuqiartcraft/Product-Website/internal/httpserver"
	productrepo "github.com/zuqiartcraft/Product-Website/internal/repository/product"
	adminsvc "github.com/zuqiartcraft/Product-Website/internal/service/admin"
	catalogsvc "github.com/zuqiartcraft/Product-Website/internal/service/catalog"
	"github.com/zuqiartcraft/Product-Website/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	catalogService := catalogsvc.New(productRepo)
	adminService := adminsvc.New(productRepo)
	authenticator := auth.New(auth.Config{
		Username:     cfg.AdminUsername,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
		Secret:       cfg.AdminSecret,
	})
	checkoutStore := checkout.NewStore(30 * time.Minute)
	uploads, err := storage.NewLocal(cfg.UploadDir, cfg.FileURLHost, logger)
	if err != nil {
		logger.Fatalf("init upload store: %v", err)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc: catalogService,
		AdminSvc:   adminService,
		Auth:       authenticator,
		Checkout:   checkoutStore,
		Uploads:    uploads,
	}, httpserver.Options{
		CORSOrigins: cfg.CORSOrigins,
		Payment:     cfg.Payment,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
