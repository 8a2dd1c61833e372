package balanceservice

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/internal/pg"
)

//go:generate mockgen -source=balanceservice.go -destination=mock_balanceservice.go -package=balanceservice

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type BalanceRepo interface {
	Get(ctx context.Context, sellerID, shopID int64) (*domain.SellerBalance, error)
	SumByShop(ctx context.Context, shopID int64) (*domain.SellerBalance, error)
}

type SettlementRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Settlement, error)
	List(ctx context.Context, f domain.SettlementFilter) ([]domain.Settlement, int, error)
	SumCompleted(ctx context.Context, f domain.SettlementFilter) (decimal.Decimal, error)
	Totals(ctx context.Context, sellerID, shopID int64) (withdrawn, fees, reserved decimal.Decimal, err error)
}

type LedgerRepo interface {
	ListBySettlement(ctx context.Context, settlementID int64) ([]domain.OrderSettlement, error)
	Totals(ctx context.Context, sellerID, shopID int64) (earned, pending decimal.Decimal, err error)
}

// Service answers balance and history questions. Each call reads one
// snapshot, so it never sees half of a concurrent mutation.
//
// Balances are kept per seller and shop. A zero sellerID asks about the shop
// as a whole, adding up every seller that has owned it.
type Service struct {
	balanceRepo    BalanceRepo
	settlementRepo SettlementRepo
	ledgerRepo     LedgerRepo
	txManager      pg.TXManager
}

func New(balanceRepo BalanceRepo, settlementRepo SettlementRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		balanceRepo:    balanceRepo,
		settlementRepo: settlementRepo,
		ledgerRepo:     ledgerRepo,
		txManager:      txManager,
	}
}

// GetBalance reports zeros when nothing has been earned yet.
func (s *Service) GetBalance(ctx context.Context, sellerID, shopID int64) (*domain.SellerBalance, error) {
	if err := validateScope(sellerID, shopID); err != nil {
		return nil, err
	}

	var balance *domain.SellerBalance
	err := s.txManager.BeginReadOnly(ctx, func(ctx context.Context) error {
		var err error
		balance, err = s.loadBalance(ctx, sellerID, shopID)
		return err
	})
	if err != nil {
		zap.L().Error("failed to get balance", zap.Int64("seller_id", sellerID), zap.Int64("shop_id", shopID), zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// GetSettlement returns the settlement with the order settlements attributed to it.
func (s *Service) GetSettlement(ctx context.Context, id int64) (*domain.Settlement, error) {
	var settlement *domain.Settlement
	err := s.txManager.BeginReadOnly(ctx, func(ctx context.Context) error {
		var err error
		settlement, err = s.settlementRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		settlement.Orders, err = s.ledgerRepo.ListBySettlement(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return settlement, nil
}

func (s *Service) ListSettlements(ctx context.Context, filter domain.SettlementFilter) (*domain.SettlementPage, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	page := &domain.SettlementPage{Page: filter.Page, PageSize: filter.PageSize}
	err = s.txManager.BeginReadOnly(ctx, func(ctx context.Context) error {
		var err error
		page.Items, page.Total, err = s.settlementRepo.List(ctx, filter)
		return err
	})
	if err != nil {
		zap.L().Error("failed to list settlements", zap.Error(err))
		return nil, err
	}
	return page, nil
}

// TotalSettled sums the net amount of settlements completed within the range.
func (s *Service) TotalSettled(ctx context.Context, filter domain.SettlementFilter) (decimal.Decimal, error) {
	filter.Status = ""
	filter, err := normalizeFilter(filter)
	if err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	err = s.txManager.BeginReadOnly(ctx, func(ctx context.Context) error {
		var err error
		total, err = s.settlementRepo.SumCompleted(ctx, filter)
		return err
	})
	if err != nil {
		zap.L().Error("failed to sum settled amount", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

// Reconcile recomputes the running totals from order settlements and
// settlements and compares them with the stored balance.
func (s *Service) Reconcile(ctx context.Context, sellerID, shopID int64) (*domain.Reconciliation, error) {
	if err := validateScope(sellerID, shopID); err != nil {
		return nil, err
	}

	result := &domain.Reconciliation{SellerID: sellerID, ShopID: shopID}
	err := s.txManager.BeginReadOnly(ctx, func(ctx context.Context) error {
		balance, err := s.loadBalance(ctx, sellerID, shopID)
		if err != nil {
			return err
		}
		result.Balance = *balance

		ledger := &result.Ledger
		ledger.TotalEarned, ledger.PendingBalance, err = s.ledgerRepo.Totals(ctx, sellerID, shopID)
		if err != nil {
			return err
		}
		ledger.TotalWithdrawn, ledger.TotalFees, ledger.TotalPendingWithdrawal, err = s.settlementRepo.Totals(ctx, sellerID, shopID)
		return err
	})
	if err != nil {
		zap.L().Error("failed to reconcile balance", zap.Int64("seller_id", sellerID), zap.Int64("shop_id", shopID), zap.Error(err))
		return nil, err
	}

	b, l := result.Balance, result.Ledger
	compare := func(field string, stored, computed decimal.Decimal) {
		if !stored.Equal(computed) {
			result.Mismatches = append(result.Mismatches, field)
		}
	}
	compare("total_earned", b.TotalEarned, l.TotalEarned)
	compare("pending_balance", b.PendingBalance, l.PendingBalance)
	compare("total_withdrawn", b.TotalWithdrawn, l.TotalWithdrawn)
	compare("total_fees", b.TotalFees, l.TotalFees)
	compare("total_pending_withdrawal", b.TotalPendingWithdrawal, l.TotalPendingWithdrawal)
	if !b.Reconciles() {
		result.Mismatches = append(result.Mismatches, "conservation")
	}
	result.Consistent = len(result.Mismatches) == 0

	if !result.Consistent {
		zap.L().Warn("balance does not match ledger",
			zap.Int64("seller_id", sellerID),
			zap.Int64("shop_id", shopID),
			zap.Strings("fields", result.Mismatches),
		)
	}
	return result, nil
}

func validateScope(sellerID, shopID int64) error {
	if shopID <= 0 {
		return domain.NewValidationError("shop id must be positive")
	}
	if sellerID < 0 {
		return domain.NewValidationError("seller id must not be negative")
	}
	return nil
}

func (s *Service) loadBalance(ctx context.Context, sellerID, shopID int64) (*domain.SellerBalance, error) {
	var balance *domain.SellerBalance
	var err error
	if sellerID == 0 {
		balance, err = s.balanceRepo.SumByShop(ctx, shopID)
	} else {
		balance, err = s.balanceRepo.Get(ctx, sellerID, shopID)
	}
	if err != nil {
		return nil, err
	}
	if balance == nil {
		balance = &domain.SellerBalance{
			SellerID:               sellerID,
			ShopID:                 shopID,
			AvailableBalance:       decimal.Zero,
			PendingBalance:         decimal.Zero,
			TotalEarned:            decimal.Zero,
			TotalWithdrawn:         decimal.Zero,
			TotalPendingWithdrawal: decimal.Zero,
			TotalFees:              decimal.Zero,
		}
	}
	return balance, nil
}

func normalizeFilter(f domain.SettlementFilter) (domain.SettlementFilter, error) {
	if f.Status != "" && !f.Status.Valid() {
		return f, domain.NewValidationError("unknown settlement status " + string(f.Status))
	}
	if f.From != nil && f.To != nil && !f.From.Before(*f.To) {
		return f, domain.NewValidationError("from must be before to")
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	switch {
	case f.PageSize <= 0:
		f.PageSize = DefaultPageSize
	case f.PageSize > MaxPageSize:
		f.PageSize = MaxPageSize
	}
	// the offset (Page-1)*PageSize must fit in an int
	if f.Page > math.MaxInt/f.PageSize {
		return f, domain.NewValidationError("page is out of range")
	}
	if f.From != nil {
		from := f.From.UTC()
		f.From = &from
	}
	if f.To != nil {
		to := f.To.UTC()
		f.To = &to
	}
	return f, nil
}

// MonthRange is the [from, to) range of the calendar month containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 1, 0)
}
