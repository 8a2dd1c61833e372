package eligibility

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
)

//go:generate mockgen -source=eligibility.go -destination=mock_eligibility.go -package=eligibility

const DefaultBatchSize = 100

type OrderRepo interface {
	FindEligible(ctx context.Context, shopID int64, cutoff time.Time, limit int) ([]domain.Order, error)
	FindShopsWithEligible(ctx context.Context, cutoff time.Time) ([]int64, error)
}

// Scanner finds delivered orders that are past their hold period and have no
// order settlement yet. It never writes.
type Scanner struct {
	orderRepo OrderRepo
	batchSize int
	now       func() time.Time
}

func New(orderRepo OrderRepo, batchSize int) *Scanner {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Scanner{
		orderRepo: orderRepo,
		batchSize: batchSize,
		now:       time.Now,
	}
}

// GetEligibleOrders returns at most one batch of the shop's eligible orders,
// oldest delivery first.
func (s *Scanner) GetEligibleOrders(ctx context.Context, shopID int64, holdPeriod time.Duration) ([]domain.Order, error) {
	if shopID <= 0 {
		return nil, domain.NewValidationError("shop id must be positive")
	}
	if holdPeriod < 0 {
		return nil, domain.NewValidationError("hold period must not be negative")
	}

	orders, err := s.orderRepo.FindEligible(ctx, shopID, s.now().Add(-holdPeriod), s.batchSize)
	if err != nil {
		zap.L().Error("failed to scan eligible orders", zap.Int64("shop_id", shopID), zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// ShopsWithUnsettledOrders lists the shops GetEligibleOrders would return
// something for.
func (s *Scanner) ShopsWithUnsettledOrders(ctx context.Context, holdPeriod time.Duration) ([]int64, error) {
	if holdPeriod < 0 {
		return nil, domain.NewValidationError("hold period must not be negative")
	}

	shopIDs, err := s.orderRepo.FindShopsWithEligible(ctx, s.now().Add(-holdPeriod))
	if err != nil {
		zap.L().Error("failed to list shops with unsettled orders", zap.Error(err))
		return nil, err
	}
	return shopIDs, nil
}
