package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	authapp "github.com/Manuelsilva1/Library/internal/auth/app"
	authfile "github.com/Manuelsilva1/Library/internal/auth/infra/file"
	authrest "github.com/Manuelsilva1/Library/internal/auth/infra/rest"
	cartapp "github.com/Manuelsilva1/Library/internal/cart/app"
	cartfile "github.com/Manuelsilva1/Library/internal/cart/infra/file"
	cartredis "github.com/Manuelsilva1/Library/internal/cart/infra/redisstore"
	cartsqlite "github.com/Manuelsilva1/Library/internal/cart/infra/sqlite"
	catalogapp "github.com/Manuelsilva1/Library/internal/catalog/app"
	catalogrest "github.com/Manuelsilva1/Library/internal/catalog/infra/rest"
	checkoutapp "github.com/Manuelsilva1/Library/internal/checkout/app"
	checkoutadapter "github.com/Manuelsilva1/Library/internal/checkout/infra/adapter"
	checkoutrest "github.com/Manuelsilva1/Library/internal/checkout/infra/rest"
	saleapp "github.com/Manuelsilva1/Library/internal/sale/app"
	saleadapter "github.com/Manuelsilva1/Library/internal/sale/infra/adapter"
	salerest "github.com/Manuelsilva1/Library/internal/sale/infra/rest"
	"github.com/Manuelsilva1/Library/internal/web"
	"github.com/Manuelsilva1/Library/pkg/config"
	"github.com/Manuelsilva1/Library/pkg/logger"
	"github.com/Manuelsilva1/Library/pkg/rest"
	"github.com/Manuelsilva1/Library/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Auth first: its session doubles as the token source for every other
	// upstream call. The auth endpoints themselves go out anonymous.
	authSvc := authapp.NewService(
		authrest.NewAuthClient(rest.NewClient(cfg.APIBaseURL, nil)),
		authfile.NewStore(cfg.SessionPath),
		log,
	)

	api := rest.NewClient(cfg.APIBaseURL, authSvc)

	webSlot, posSlot, closeSlots, err := buildSnapshotSlots(cfg)
	if err != nil {
		log.Error("cart storage init failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer closeSlots()

	cart := cartapp.NewStore(webSlot, log)
	posCart := cartapp.NewStore(posSlot, log)

	catalogSvc := catalogapp.NewService(catalogrest.NewBookClient(api))

	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartStoreReader(cart),
		checkoutadapter.NewCatalogPricer(catalogSvc),
		checkoutrest.NewOrderClient(api),
		10,
	)

	saleSvc := saleapp.NewService(
		saleadapter.NewCartStoreReader(posCart),
		salerest.NewSaleClient(api),
		cfg.POSSellerID,
	)

	srv := web.NewServer(log, catalogSvc, cart, posCart, checkoutSvc, saleSvc, authSvc)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("storefront starting", slog.String("addr", addr), slog.String("api", cfg.APIBaseURL))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

// buildSnapshotSlots picks the cart storage backend. The web session cart and
// the POS cart always get separate slots on the same backend.
func buildSnapshotSlots(cfg config.Config) (webSlot, posSlot cartapp.SnapshotStore, closeFn func(), err error) {
	switch cfg.CartStorage {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return cartredis.NewStore(rdb, "cart:web"),
			cartredis.NewStore(rdb, "cart:pos"),
			func() { rdb.Close() },
			nil

	case "sqlite":
		db, err := cartsqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		return cartsqlite.NewStore(db, "web"),
			cartsqlite.NewStore(db, "pos"),
			func() { db.Close() },
			nil

	case "file":
		return cartfile.NewStore(cfg.SnapshotPath),
			cartfile.NewStore(cfg.SnapshotPath + ".pos"),
			func() {},
			nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown cart storage backend %q", cfg.CartStorage)
	}
}
