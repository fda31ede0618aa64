package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/skillswap/internal/config"
	"github.com/GlebRadaev/skillswap/internal/docstore"
	"github.com/GlebRadaev/skillswap/internal/docstore/pgstore"
	"github.com/GlebRadaev/skillswap/internal/docstore/redisstore"
	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/handlers"
	"github.com/GlebRadaev/skillswap/internal/pg"
	"github.com/GlebRadaev/skillswap/internal/repo"
	"github.com/GlebRadaev/skillswap/internal/service"
	"github.com/GlebRadaev/skillswap/pkg/auth"
	"github.com/GlebRadaev/skillswap/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	closeStore func()

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		zap.L().Error("open store failed: ", zap.Error(err))
		return fmt.Errorf("can't open store: %w", err)
	}

	return a.run(ctx, cfg, store, closeStore)
}

func (a *Application) run(ctx context.Context, cfg *config.Config, store docstore.Store, closeStore func()) error {
	a.cfg = cfg
	a.closeStore = closeStore
	a.repo = repo.New(store)
	if err := a.repo.Badges.SeedCatalog(ctx, domain.BadgeCatalog()); err != nil {
		closeStore()
		zap.L().Error("seed badge catalog failed: ", zap.Error(err))
		return fmt.Errorf("can't seed badge catalog: %w", err)
	}
	a.srv = service.New(a.repo, cfg)
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret), cfg.CORSOrigins)

	if err := a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("store", cfg.StoreDriver))
	return nil
}

// openStore connects the document store selected by STORE_DRIVER and returns its closer.
func openStore(ctx context.Context, cfg *config.Config) (docstore.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := pg.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("can't run migrations: %w", err)
		}
		return pgstore.New(pool, cfg.TxMaxAttempts), pool.Close, nil
	case config.DriverRedis:
		client, err := redisstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		store := redisstore.New(client, redisstore.WithMaxAttempts(cfg.TxMaxAttempts))
		return store, func() {
			if err := store.Close(); err != nil {
				zap.L().Warn("failed to close redis client", zap.Error(err))
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown", zap.Error(err))
		}
		a.srv.Close()
		if a.closeStore != nil {
			a.closeStore()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
