package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sellerpayout/internal/accrual"
	"github.com/GlebRadaev/sellerpayout/internal/config"
	"github.com/GlebRadaev/sellerpayout/internal/handlers"
	"github.com/GlebRadaev/sellerpayout/internal/pg"
	"github.com/GlebRadaev/sellerpayout/internal/repo"
	"github.com/GlebRadaev/sellerpayout/internal/service"
	"github.com/GlebRadaev/sellerpayout/internal/service/settlementservice"
	"github.com/GlebRadaev/sellerpayout/internal/shopdirectory"
	"github.com/GlebRadaev/sellerpayout/pkg/clients"
	"github.com/GlebRadaev/sellerpayout/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	scheduler *accrual.Service
	pool      *pgxpool.Pool

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
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool, cfg.TxMaxRetries)

	conn := pg.New(pool)
	shops := shopdirectory.New(cfg.ShopAddress, clients.NewHTTPClient(clients.DefaultTimeout))

	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, shops, settlementConfig(cfg))
	a.scheduler = accrual.New(cfg, a.srv.SettlementService, a.srv.Scanner, a.repo.LedgerRepo)
	a.api = handlers.New(a.srv, a.scheduler, cfg)

	if cfg.WebhookKeyHash == "" {
		zap.L().Warn("WEBHOOK_KEY_HASH is not set, payout webhooks will be rejected")
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startAccrual(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func settlementConfig(cfg *config.Config) settlementservice.Config {
	return settlementservice.Config{
		HoldPeriod:   cfg.HoldPeriod,
		AccrualDelay: cfg.AccrualDelay,
		BatchSize:    cfg.AccrualBatchSize,
		FeeRate:      cfg.PayoutFeeRate,
		FeeFixed:     cfg.PayoutFeeFixed,
	}
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
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

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
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

func (a *Application) startAccrual(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.scheduler.Start(ctx)
	}()
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

	if a.pool != nil {
		a.pool.Close()
	}
	return appErr
}
