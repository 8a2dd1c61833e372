package repo

import (
	"context"
	"time"

	"github.com/GlebRadaev/sellerpayout/internal/pg"
	balancerepo "github.com/GlebRadaev/sellerpayout/internal/repo/balance-repo"
	ledgerrepo "github.com/GlebRadaev/sellerpayout/internal/repo/ledger-repo"
	orderrepo "github.com/GlebRadaev/sellerpayout/internal/repo/order-repo"
	settlementrepo "github.com/GlebRadaev/sellerpayout/internal/repo/settlement-repo"
	"github.com/GlebRadaev/sellerpayout/internal/service/balanceservice"
	"github.com/GlebRadaev/sellerpayout/internal/service/eligibility"
	"github.com/GlebRadaev/sellerpayout/internal/service/payoutservice"
	"github.com/GlebRadaev/sellerpayout/internal/service/settlementservice"
)

// LedgerRepo is every use of order settlements across the services.
type LedgerRepo interface {
	settlementservice.LedgerRepo
	payoutservice.LedgerRepo
	balanceservice.LedgerRepo
	FindShopsWithMaturable(ctx context.Context, now time.Time) ([]int64, error)
}

type SettlementRepo interface {
	settlementservice.SettlementRepo
	payoutservice.SettlementRepo
	balanceservice.SettlementRepo
}

type BalanceRepo interface {
	settlementservice.BalanceRepo
	balanceservice.BalanceRepo
}

type Repositories struct {
	OrderRepo      eligibility.OrderRepo
	LedgerRepo     LedgerRepo
	SettlementRepo SettlementRepo
	BalanceRepo    BalanceRepo
	TxManager      pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		OrderRepo:      orderrepo.New(conn),
		LedgerRepo:     ledgerrepo.New(conn),
		SettlementRepo: settlementrepo.New(conn),
		BalanceRepo:    balancerepo.New(conn),
		TxManager:      txManager,
	}
}
