package main

import (
	"context"
	"fmt"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/spanner"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/aromaline/inventory-service/config"
	"github.com/aromaline/inventory-service/internal/adapters/cache"
	"github.com/aromaline/inventory-service/internal/app/catalog/queries"
	"github.com/aromaline/inventory-service/internal/app/catalog/queries/get_product"
	"github.com/aromaline/inventory-service/internal/app/catalog/queries/list_history"
	"github.com/aromaline/inventory-service/internal/app/catalog/queries/list_products"
	"github.com/aromaline/inventory-service/internal/app/catalog/recon"
	"github.com/aromaline/inventory-service/internal/app/catalog/repo"
	"github.com/aromaline/inventory-service/internal/app/catalog/usecases/activate_product"
	"github.com/aromaline/inventory-service/internal/app/catalog/usecases/add_stock"
	"github.com/aromaline/inventory-service/internal/app/catalog/usecases/create_product"
	"github.com/aromaline/inventory-service/internal/app/catalog/usecases/delete_product"
	"github.com/aromaline/inventory-service/internal/app/catalog/usecases/remove_stock"
	"github.com/aromaline/inventory-service/internal/app/catalog/usecases/update_product"
	"github.com/aromaline/inventory-service/internal/app/catalog/usecases/update_variant"
	"github.com/aromaline/inventory-service/internal/pkg/clock"
	committer "github.com/aromaline/inventory-service/internal/pkg/committer"
	"github.com/aromaline/inventory-service/internal/pkg/logging"
	"github.com/aromaline/inventory-service/internal/security"
	transporthttp "github.com/aromaline/inventory-service/internal/transport/http"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.ENV == "production")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		logger.Info("shutdown signal received")
		cancel()
	}()

	client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		logger.Fatal("spanner client", zap.Error(err))
	}
	defer client.Close()

	var productCache *cache.ProductCache
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal("redis client", zap.Error(err))
		}
		defer rdb.Close()
		productCache = cache.NewProductCache(rdb, cfg.Redis.TTL, logger)
		logger.Info("product cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	clk := clock.RealClock{}
	prodRepo := repo.NewProductRepo()
	historyRepo := repo.NewStockHistoryRepo()
	cm := committer.NewAdapter(client)
	readModel := queries.NewSpannerReadModel(client)

	jwtManager := security.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.JWTTTL, cfg.AppName)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	h := &transporthttp.Handlers{
		CreateProduct:   create_product.NewInteractor(prodRepo, cm, readModel, clk),
		UpdateProduct:   update_product.NewInteractor(prodRepo, cm, readModel, clk),
		UpdateVariant:   update_variant.NewInteractor(prodRepo, cm, readModel, clk),
		AddStock:        add_stock.NewInteractor(prodRepo, historyRepo, cm, readModel, clk),
		RemoveStock:     remove_stock.NewInteractor(prodRepo, historyRepo, cm, readModel, clk),
		DeleteProduct:   delete_product.NewInteractor(prodRepo, cm, readModel, clk),
		ActivateProduct: activate_product.NewInteractor(prodRepo, cm, readModel, clk),

		GetProduct:   get_product.NewHandler(readModel),
		ListProducts: list_products.NewHandler(readModel),
		ListHistory:  list_history.NewHandler(readModel),

		Cache:             productCache,
		LowStockThreshold: cfg.Inventory.LowStockThreshold,
		Logger:            logger,
	}
	authHandler := transporthttp.NewAuthHandler(jwtManager, cfg.Security.Users, logger)

	router := transporthttp.NewRouter(h, authHandler, jwtManager, logger, registry, cfg.Server.RequestTimeout)

	if cfg.Recon.Enabled {
		reconciler := recon.NewReconciler(client, logger, cfg.Recon.Interval, registry)
		go reconciler.Run(ctx)
		logger.Info("stock reconciliation enabled", zap.Duration("interval", cfg.Recon.Interval))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &nethttp.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
			logger.Error("http serve", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
