package service

import (
	"github.com/GlebRadaev/sellerpayout/internal/repo"
	"github.com/GlebRadaev/sellerpayout/internal/service/balanceservice"
	"github.com/GlebRadaev/sellerpayout/internal/service/eligibility"
	"github.com/GlebRadaev/sellerpayout/internal/service/payoutservice"
	"github.com/GlebRadaev/sellerpayout/internal/service/settlementservice"
)

type Services struct {
	Scanner           *eligibility.Scanner
	SettlementService *settlementservice.Service
	PayoutService     *payoutservice.Service
	BalanceService    *balanceservice.Service
}

func New(repo *repo.Repositories, shops settlementservice.ShopDirectory, cfg settlementservice.Config) *Services {
	scanner := eligibility.New(repo.OrderRepo, cfg.BatchSize)
	settlementService := settlementservice.New(
		shops,
		scanner,
		repo.LedgerRepo,
		repo.SettlementRepo,
		repo.BalanceRepo,
		repo.TxManager,
		cfg,
	)
	payoutService := payoutservice.New(repo.SettlementRepo, repo.BalanceRepo, repo.LedgerRepo, repo.TxManager)
	balanceService := balanceservice.New(repo.BalanceRepo, repo.SettlementRepo, repo.LedgerRepo, repo.TxManager)

	return &Services{
		Scanner:           scanner,
		SettlementService: settlementService,
		PayoutService:     payoutService,
		BalanceService:    balanceService,
	}
}
