package accrual

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/sellerpayout/internal/config"
	"github.com/GlebRadaev/sellerpayout/internal/domain"
)

type mocks struct {
	settler *MockSettler
	scanner *MockShopScanner
	ledger  *MockLedgerRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	cfg := &config.Config{AccrualWorkers: 2, AccrualInterval: 10 * time.Millisecond}
	ctrl := gomock.NewController(t)

	m := &mocks{
		settler: NewMockSettler(ctrl),
		scanner: NewMockShopScanner(ctrl),
		ledger:  NewMockLedgerRepo(ctrl),
	}
	service := New(cfg, m.settler, m.scanner, m.ledger)
	t.Cleanup(service.workerPool.Close)
	return service, m
}

func accrued(shopID int64, count int, amount string) *domain.AccrualResult {
	return &domain.AccrualResult{ShopID: shopID, Accrued: count, Amount: decimal.RequireFromString(amount)}
}

func matured(shopID int64, count int, amount string) *domain.MaturationResult {
	return &domain.MaturationResult{ShopID: shopID, Matured: count, Amount: decimal.RequireFromString(amount)}
}

func TestService_Start(t *testing.T) {
	service, m := NewMock(t)
	m.scanner.EXPECT().ShopsWithUnsettledOrders(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.ledger.EXPECT().FindShopsWithMaturable(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()
}

func TestService_RunOnce(t *testing.T) {
	tests := []struct {
		name            string
		prepareMock     func(m *mocks)
		expectedSummary *Summary
		expectedErr     string
	}{
		{
			name: "Accrues and matures every shop once",
			prepareMock: func(m *mocks) {
				m.scanner.EXPECT().ShopsWithUnsettledOrders(gomock.Any(), time.Duration(0)).Return([]int64{3, 5}, nil)
				m.ledger.EXPECT().FindShopsWithMaturable(gomock.Any(), gomock.Any()).Return([]int64{5, 8}, nil)

				m.settler.EXPECT().AccrueShop(gomock.Any(), int64(3)).Return(accrued(3, 2, "180.00"), nil)
				m.settler.EXPECT().MatureShop(gomock.Any(), int64(3)).Return(matured(3, 0, "0"), nil)
				m.settler.EXPECT().AccrueShop(gomock.Any(), int64(5)).Return(accrued(5, 1, "20.00"), nil)
				m.settler.EXPECT().MatureShop(gomock.Any(), int64(5)).Return(matured(5, 1, "45.50"), nil)
				m.settler.EXPECT().AccrueShop(gomock.Any(), int64(8)).Return(accrued(8, 0, "0"), nil)
				m.settler.EXPECT().MatureShop(gomock.Any(), int64(8)).Return(matured(8, 2, "10.00"), nil)
			},
			expectedSummary: &Summary{
				Shops:         3,
				Accrued:       3,
				AccruedAmount: decimal.RequireFromString("200.00"),
				Matured:       3,
				MaturedAmount: decimal.RequireFromString("55.50"),
			},
		},
		{
			name: "Accrual failure still matures",
			prepareMock: func(m *mocks) {
				m.scanner.EXPECT().ShopsWithUnsettledOrders(gomock.Any(), gomock.Any()).Return([]int64{3}, nil)
				m.ledger.EXPECT().FindShopsWithMaturable(gomock.Any(), gomock.Any()).Return(nil, nil)

				m.settler.EXPECT().AccrueShop(gomock.Any(), int64(3)).Return(nil, domain.ErrTransientFailure)
				m.settler.EXPECT().MatureShop(gomock.Any(), int64(3)).Return(matured(3, 1, "9.00"), nil)
			},
			expectedSummary: &Summary{
				Shops:         1,
				AccruedAmount: decimal.Zero,
				Matured:       1,
				MaturedAmount: decimal.RequireFromString("9.00"),
				Failed:        1,
			},
		},
		{
			name: "Scanner failure",
			prepareMock: func(m *mocks) {
				m.scanner.EXPECT().ShopsWithUnsettledOrders(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: "db error",
		},
		{
			name: "Maturable shops failure",
			prepareMock: func(m *mocks) {
				m.scanner.EXPECT().ShopsWithUnsettledOrders(gomock.Any(), gomock.Any()).Return([]int64{3}, nil)
				m.ledger.EXPECT().FindShopsWithMaturable(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			summary, err := service.RunOnce(context.Background())

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSummary.Shops, summary.Shops)
			assert.Equal(t, tt.expectedSummary.Accrued, summary.Accrued)
			assert.Equal(t, tt.expectedSummary.Matured, summary.Matured)
			assert.Equal(t, tt.expectedSummary.Failed, summary.Failed)
			assert.True(t, tt.expectedSummary.AccruedAmount.Equal(summary.AccruedAmount))
			assert.True(t, tt.expectedSummary.MaturedAmount.Equal(summary.MaturedAmount))
		})
	}
}

func TestService_RunOnceSkipsShopsInFlight(t *testing.T) {
	service, m := NewMock(t)
	service.processing.Store(int64(3), struct{}{})

	m.scanner.EXPECT().ShopsWithUnsettledOrders(gomock.Any(), gomock.Any()).Return([]int64{3, 4}, nil)
	m.ledger.EXPECT().FindShopsWithMaturable(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.settler.EXPECT().AccrueShop(gomock.Any(), int64(4)).Return(accrued(4, 1, "1.00"), nil)
	m.settler.EXPECT().MatureShop(gomock.Any(), int64(4)).Return(matured(4, 0, "0"), nil)

	summary, err := service.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Shops)
	assert.Equal(t, 1, summary.Skipped)
	_, stillMarked := service.processing.Load(int64(3))
	assert.True(t, stillMarked)
	_, released := service.processing.Load(int64(4))
	assert.False(t, released)
}

func TestService_RunOnceAddTaskError(t *testing.T) {
	ctrl := gomock.NewController(t)
	scanner := NewMockShopScanner(ctrl)
	ledger := NewMockLedgerRepo(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	scanner.EXPECT().ShopsWithUnsettledOrders(gomock.Any(), gomock.Any()).Return([]int64{3}, nil)
	ledger.EXPECT().FindShopsWithMaturable(gomock.Any(), gomock.Any()).Return(nil, nil)
	workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(ErrPoolClosed)

	service := &Service{
		scanner:    scanner,
		ledgerRepo: ledger,
		workerPool: workerPool,
		now:        time.Now,
	}

	_, err := service.RunOnce(context.Background())

	assert.ErrorIs(t, err, ErrPoolClosed)
	_, marked := service.processing.Load(int64(3))
	assert.False(t, marked)
}
