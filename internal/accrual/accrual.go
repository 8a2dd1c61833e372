// Package accrual runs the periodic accrual and maturation of seller earnings.
package accrual

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/sellerpayout/internal/config"
	"github.com/GlebRadaev/sellerpayout/internal/domain"
)

//go:generate mockgen -source=accrual.go -destination=mock_accrual.go -package=accrual

type Settler interface {
	AccrueShop(ctx context.Context, shopID int64) (*domain.AccrualResult, error)
	MatureShop(ctx context.Context, shopID int64) (*domain.MaturationResult, error)
}

type ShopScanner interface {
	ShopsWithUnsettledOrders(ctx context.Context, holdPeriod time.Duration) ([]int64, error)
}

type LedgerRepo interface {
	FindShopsWithMaturable(ctx context.Context, now time.Time) ([]int64, error)
}

// Summary is the outcome of one accrual run over all shops.
type Summary struct {
	Shops         int
	Accrued       int
	AccruedAmount decimal.Decimal
	Matured       int
	MaturedAmount decimal.Decimal
	Failed        int
	Skipped       int
}

type Service struct {
	settler        Settler
	scanner        ShopScanner
	ledgerRepo     LedgerRepo
	workerPool     WorkerPoolI
	accrualDelay   time.Duration
	updateInterval time.Duration
	processing     sync.Map
	now            func() time.Time
}

func New(cfg *config.Config, settler Settler, scanner ShopScanner, ledgerRepo LedgerRepo) *Service {
	return &Service{
		settler:        settler,
		scanner:        scanner,
		ledgerRepo:     ledgerRepo,
		workerPool:     NewWorkerPool(cfg.AccrualWorkers),
		accrualDelay:   cfg.AccrualDelay,
		updateInterval: cfg.AccrualInterval,
		now:            time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Accrual service started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping accrual service")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				zap.L().Error("Accrual run failed", zap.Error(err))
			}
		}
	}
}

// RunOnce accrues and matures every shop that has work and waits for all of
// them. A shop still being handled by an earlier run is skipped.
func (s *Service) RunOnce(ctx context.Context) (*Summary, error) {
	shopIDs, err := s.shopsWithWork(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{AccruedAmount: decimal.Zero, MaturedAmount: decimal.Zero}
	var mu sync.Mutex
	var done sync.WaitGroup
	var g errgroup.Group

	for _, shopID := range shopIDs {
		shopID := shopID

		if _, loaded := s.processing.LoadOrStore(shopID, struct{}{}); loaded {
			summary.Skipped++
			continue
		}
		summary.Shops++

		done.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer done.Done()
				defer s.processing.Delete(shopID)

				accrual, maturation, err := s.handleShop(ctx, shopID)
				mu.Lock()
				summary.add(accrual, maturation, err)
				mu.Unlock()
				return err
			})
			if err != nil {
				s.processing.Delete(shopID)
				done.Done()
				return err
			}
			return nil
		})
	}

	err = g.Wait()
	done.Wait()
	if err != nil {
		zap.L().Error("Error scheduling shops", zap.Error(err))
		return summary, err
	}

	if summary.Accrued > 0 || summary.Matured > 0 || summary.Failed > 0 {
		zap.L().Info("Accrual run finished",
			zap.Int("shops", summary.Shops),
			zap.Int("accrued", summary.Accrued),
			zap.Int("matured", summary.Matured),
			zap.Int("failed", summary.Failed),
		)
	}
	return summary, nil
}

// handleShop matures the shop even when accrual failed, since maturation does
// not depend on the shop directory.
func (s *Service) handleShop(ctx context.Context, shopID int64) (*domain.AccrualResult, *domain.MaturationResult, error) {
	accrual, accrueErr := s.settler.AccrueShop(ctx, shopID)
	maturation, matureErr := s.settler.MatureShop(ctx, shopID)
	return accrual, maturation, errors.Join(accrueErr, matureErr)
}

func (s *Service) shopsWithWork(ctx context.Context) ([]int64, error) {
	unsettled, err := s.scanner.ShopsWithUnsettledOrders(ctx, s.accrualDelay)
	if err != nil {
		return nil, err
	}
	maturable, err := s.ledgerRepo.FindShopsWithMaturable(ctx, s.now())
	if err != nil {
		zap.L().Error("Failed to list shops with maturable funds", zap.Error(err))
		return nil, err
	}

	seen := make(map[int64]struct{}, len(unsettled)+len(maturable))
	shopIDs := make([]int64, 0, len(unsettled)+len(maturable))
	for _, id := range append(unsettled, maturable...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		shopIDs = append(shopIDs, id)
	}
	sort.Slice(shopIDs, func(i, j int) bool { return shopIDs[i] < shopIDs[j] })
	return shopIDs, nil
}

func (s *Summary) add(accrual *domain.AccrualResult, maturation *domain.MaturationResult, err error) {
	if accrual != nil {
		s.Accrued += accrual.Accrued
		s.AccruedAmount = s.AccruedAmount.Add(accrual.Amount)
	}
	if maturation != nil {
		s.Matured += maturation.Matured
		s.MaturedAmount = s.MaturedAmount.Add(maturation.Amount)
	}
	if err != nil {
		s.Failed++
	}
}
