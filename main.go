package main

import (
	"context"
	"database/sql"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"example.com/musicstore/internal/config"
	"example.com/musicstore/internal/infra/cache"
	mysqlrepo "example.com/musicstore/internal/infra/persistence/mysql"
	pgrepo "example.com/musicstore/internal/infra/persistence/postgres"
	"example.com/musicstore/internal/infra/security"
	httpapi "example.com/musicstore/internal/interface/http"
	"example.com/musicstore/internal/observability"
	albumuc "example.com/musicstore/internal/usecase/album"
	authuc "example.com/musicstore/internal/usecase/auth"
	checkoutuc "example.com/musicstore/internal/usecase/checkout"
	homeuc "example.com/musicstore/internal/usecase/home"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("mysql open failed", zap.Error(err))
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Fatal("mysql ping failed", zap.Error(err))
	}

	pool, err := pgrepo.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal("postgres connect failed", zap.Error(err))
	}
	defer pool.Close()

	metrics := observability.New()

	orderRepo := mysqlrepo.NewOrderRepository(db)
	userRepo := mysqlrepo.NewUserRepository(db)
	albumRepo := pgrepo.NewAlbumRepository(pool)

	tokenSvc := security.NewJWTService(cfg.JWTSecret, cfg.JWTExpiration)
	passwordSvc := security.NewBcryptService(cfg.BcryptCost)
	listingCache := cache.NewListingCache(cfg.ListingCacheTTL)

	homeSvc := homeuc.NewService(albumRepo, listingCache, logger, metrics)

	api := httpapi.NewAPI(httpapi.Dependencies{
		AuthService:     authuc.NewService(userRepo, passwordSvc, tokenSvc),
		CheckoutService: checkoutuc.NewService(orderRepo, logger, metrics),
		HomeService:     homeSvc,
		AlbumService:    albumuc.NewService(albumRepo, homeSvc),
		TokenService:    tokenSvc,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
	logger.Info("server shut down")
}
