package settlementservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/internal/pg"
	"github.com/GlebRadaev/sellerpayout/pkg/validate"
)

//go:generate mockgen -source=settlementservice.go -destination=mock_settlementservice.go -package=settlementservice

type ShopDirectory interface {
	GetShop(ctx context.Context, shopID int64) (*domain.Shop, error)
}

type Scanner interface {
	GetEligibleOrders(ctx context.Context, shopID int64, holdPeriod time.Duration) ([]domain.Order, error)
}

type LedgerRepo interface {
	Insert(ctx context.Context, os *domain.OrderSettlement) (bool, error)
	FindMaturable(ctx context.Context, shopID int64, now time.Time, limit int) ([]domain.OrderSettlement, error)
	MarkMatured(ctx context.Context, id int64, at time.Time) (decimal.Decimal, bool, error)
}

type SettlementRepo interface {
	Create(ctx context.Context, s *domain.Settlement) (*domain.Settlement, error)
	GetByRequestKey(ctx context.Context, key uuid.UUID) (*domain.Settlement, error)
}

type BalanceRepo interface {
	GetForUpdate(ctx context.Context, sellerID, shopID int64) (*domain.SellerBalance, error)
	Update(ctx context.Context, balance *domain.SellerBalance) error
}

type Config struct {
	// HoldPeriod is added to the delivery time to get EligibleAt.
	HoldPeriod time.Duration
	// AccrualDelay is how long after delivery an order is picked up at all.
	AccrualDelay time.Duration
	BatchSize    int
	FeeRate      decimal.Decimal
	FeeFixed     decimal.Decimal
}

// Service moves money into the ledger (accrual, maturation) and reserves it
// for payouts (settlement requests).
type Service struct {
	shops          ShopDirectory
	scanner        Scanner
	ledgerRepo     LedgerRepo
	settlementRepo SettlementRepo
	balanceRepo    BalanceRepo
	txManager      pg.TXManager
	cfg            Config
	now            func() time.Time
}

func New(
	shops ShopDirectory,
	scanner Scanner,
	ledgerRepo LedgerRepo,
	settlementRepo SettlementRepo,
	balanceRepo BalanceRepo,
	txManager pg.TXManager,
	cfg Config,
) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &Service{
		shops:          shops,
		scanner:        scanner,
		ledgerRepo:     ledgerRepo,
		settlementRepo: settlementRepo,
		balanceRepo:    balanceRepo,
		txManager:      txManager,
		cfg:            cfg,
		now:            time.Now,
	}
}

var (
	ErrOrderNotDelivered    = domain.NewValidationError("order has no delivery time")
	ErrInvalidCommission    = domain.NewValidationError("commission rate must be between 0 and 1 with at most 4 decimal places")
	ErrRequestKeyReused     = domain.NewValidationError("idempotency key was used for another request")
	ErrAmountBelowFee       = domain.NewValidationError("amount does not cover the payout fee")
	ErrUnknownMethod        = domain.NewValidationError("unknown payout method")
	ErrMissingBankDetails   = domain.NewValidationError("bank name, account number and account holder are required for bank transfers")
	ErrInvalidCardNumber    = domain.NewValidationError("card number is invalid")
	ErrMissingWalletID      = domain.NewValidationError("wallet id is required for wallet payouts")
	errNegativeOrderAmount  = domain.NewValidationError("order amount must not be negative")
	errNotEnoughPendingFund = errors.New("pending balance is lower than the maturing amount")
)

// AccrueShop records an order settlement for every eligible order of the shop
// and credits the seller. Each order is its own transaction, so an error or a
// cancelled ctx keeps the orders already accrued.
func (s *Service) AccrueShop(ctx context.Context, shopID int64) (*domain.AccrualResult, error) {
	shop, err := s.shops.GetShop(ctx, shopID)
	if err != nil {
		zap.L().Error("failed to resolve shop for accrual", zap.Int64("shop_id", shopID), zap.Error(err))
		return nil, err
	}
	if !domain.ValidCommissionRate(shop.CommissionRate) {
		zap.L().Error("shop has invalid commission rate", zap.Int64("shop_id", shopID), zap.Stringer("rate", shop.CommissionRate))
		return nil, ErrInvalidCommission
	}

	orders, err := s.scanner.GetEligibleOrders(ctx, shopID, s.cfg.AccrualDelay)
	if err != nil {
		return nil, err
	}

	result := &domain.AccrualResult{ShopID: shopID, Amount: decimal.Zero}
	for _, order := range orders {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		accrued, amount, err := s.accrueOrder(ctx, shop, order)
		if err != nil {
			zap.L().Error("failed to accrue order", zap.Int64("order_id", order.ID), zap.Int64("shop_id", shopID), zap.Error(err))
			return result, err
		}
		if !accrued {
			result.Skipped++
			continue
		}
		result.Accrued++
		result.Amount = result.Amount.Add(amount)
	}

	if result.Accrued > 0 {
		zap.L().Info("orders accrued",
			zap.Int64("shop_id", shopID),
			zap.Int("accrued", result.Accrued),
			zap.Int("skipped", result.Skipped),
			zap.String("amount", result.Amount.StringFixed(domain.MoneyPlaces)),
		)
	}
	return result, nil
}

func (s *Service) accrueOrder(ctx context.Context, shop *domain.Shop, order domain.Order) (bool, decimal.Decimal, error) {
	if order.DeliveredAt == nil {
		return false, decimal.Zero, ErrOrderNotDelivered
	}
	if order.TotalAmount.IsNegative() {
		return false, decimal.Zero, errNegativeOrderAmount
	}

	var accrued bool
	var amount decimal.Decimal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		accrued, amount = false, decimal.Zero

		balance, err := s.balanceRepo.GetForUpdate(ctx, shop.SellerID, shop.ID)
		if err != nil {
			return err
		}

		now := s.now()
		orderAmount := domain.RoundMoney(order.TotalAmount)
		commission, share := domain.SplitCommission(orderAmount, shop.CommissionRate)
		entry := &domain.OrderSettlement{
			OrderID:          order.ID,
			ShopID:           shop.ID,
			SellerID:         shop.SellerID,
			OrderAmount:      orderAmount,
			CommissionRate:   shop.CommissionRate,
			Commission:       commission,
			SettlementAmount: share,
			OrderDeliveredAt: *order.DeliveredAt,
			EligibleAt:       order.DeliveredAt.Add(s.cfg.HoldPeriod),
			CreatedAt:        now,
		}
		if !entry.EligibleAt.After(now) {
			entry.Matured = true
			entry.MaturedAt = &now
		}

		inserted, err := s.ledgerRepo.Insert(ctx, entry)
		if err != nil {
			return err
		}
		if !inserted {
			// another run settled this order first
			return nil
		}

		if entry.Matured {
			balance.AvailableBalance = balance.AvailableBalance.Add(share)
		} else {
			balance.PendingBalance = balance.PendingBalance.Add(share)
		}
		balance.TotalEarned = balance.TotalEarned.Add(share)
		if err := s.balanceRepo.Update(ctx, balance); err != nil {
			return err
		}

		accrued, amount = true, share
		return nil
	})
	return accrued, amount, err
}

// MatureShop moves the amount of every order settlement whose hold period has
// ended from pending to available balance.
func (s *Service) MatureShop(ctx context.Context, shopID int64) (*domain.MaturationResult, error) {
	due, err := s.ledgerRepo.FindMaturable(ctx, shopID, s.now(), s.cfg.BatchSize)
	if err != nil {
		return nil, err
	}

	result := &domain.MaturationResult{ShopID: shopID, Amount: decimal.Zero}
	for _, entry := range due {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		matured, amount, err := s.matureEntry(ctx, entry)
		if err != nil {
			zap.L().Error("failed to mature order settlement", zap.Int64("order_settlement_id", entry.ID), zap.Error(err))
			return result, err
		}
		if matured {
			result.Matured++
			result.Amount = result.Amount.Add(amount)
		}
	}

	if result.Matured > 0 {
		zap.L().Info("pending funds matured",
			zap.Int64("shop_id", shopID),
			zap.Int("matured", result.Matured),
			zap.String("amount", result.Amount.StringFixed(domain.MoneyPlaces)),
		)
	}
	return result, nil
}

func (s *Service) matureEntry(ctx context.Context, entry domain.OrderSettlement) (bool, decimal.Decimal, error) {
	var matured bool
	var amount decimal.Decimal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		matured, amount = false, decimal.Zero

		balance, err := s.balanceRepo.GetForUpdate(ctx, entry.SellerID, entry.ShopID)
		if err != nil {
			return err
		}

		value, ok, err := s.ledgerRepo.MarkMatured(ctx, entry.ID, s.now())
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if balance.PendingBalance.LessThan(value) {
			zap.L().Error("pending balance out of sync with ledger",
				zap.Int64("shop_id", entry.ShopID),
				zap.String("pending", balance.PendingBalance.StringFixed(domain.MoneyPlaces)),
				zap.String("amount", value.StringFixed(domain.MoneyPlaces)),
			)
			return errNotEnoughPendingFund
		}

		balance.PendingBalance = balance.PendingBalance.Sub(value)
		balance.AvailableBalance = balance.AvailableBalance.Add(value)
		if err := s.balanceRepo.Update(ctx, balance); err != nil {
			return err
		}

		matured, amount = true, value
		return nil
	})
	return matured, amount, err
}

// CheckOwnership fails with ErrUnauthorized unless the seller owns the shop.
func (s *Service) CheckOwnership(ctx context.Context, sellerID, shopID int64) (*domain.Shop, error) {
	shop, err := s.shops.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop.SellerID != sellerID {
		zap.L().Warn("seller does not own shop", zap.Int64("seller_id", sellerID), zap.Int64("shop_id", shopID))
		return nil, domain.ErrUnauthorized
	}
	return shop, nil
}

// RequestSettlement reserves req.Amount of the shop's available balance for a
// payout. Repeating a request with the same RequestKey returns the settlement
// created the first time.
func (s *Service) RequestSettlement(ctx context.Context, req domain.SettlementRequest) (*domain.Settlement, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}
	fee := s.PayoutFee(req.Amount)
	if fee.GreaterThanOrEqual(req.Amount) {
		return nil, ErrAmountBelowFee
	}

	if _, err := s.CheckOwnership(ctx, req.SellerID, req.ShopID); err != nil {
		return nil, err
	}

	if req.RequestKey == uuid.Nil {
		req.RequestKey = uuid.New()
	} else {
		existing, err := s.settlementRepo.GetByRequestKey(ctx, req.RequestKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return sameRequest(existing, req)
		}
	}

	var created *domain.Settlement
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.GetForUpdate(ctx, req.SellerID, req.ShopID)
		if err != nil {
			return err
		}

		// a concurrent request with the same key may have committed while we waited for the lock
		existing, err := s.settlementRepo.GetByRequestKey(ctx, req.RequestKey)
		if err != nil {
			return err
		}
		if existing != nil {
			created, err = sameRequest(existing, req)
			return err
		}

		if req.Amount.GreaterThan(balance.AvailableBalance) {
			return domain.ErrInsufficientBalance
		}

		created, err = s.settlementRepo.Create(ctx, s.newSettlement(req, fee))
		if err != nil {
			return err
		}

		balance.AvailableBalance = balance.AvailableBalance.Sub(req.Amount)
		balance.TotalPendingWithdrawal = balance.TotalPendingWithdrawal.Add(req.Amount)
		return s.balanceRepo.Update(ctx, balance)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInsufficientBalance) {
			zap.L().Error("failed to request settlement", zap.Int64("shop_id", req.ShopID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("settlement requested",
		zap.Int64("settlement_id", created.ID),
		zap.Int64("shop_id", created.ShopID),
		zap.String("amount", created.Amount.StringFixed(domain.MoneyPlaces)),
	)
	return created, nil
}

// PayoutFee is what the platform keeps from a payout of amount.
func (s *Service) PayoutFee(amount decimal.Decimal) decimal.Decimal {
	return domain.RoundMoney(amount.Mul(s.cfg.FeeRate)).Add(domain.RoundMoney(s.cfg.FeeFixed))
}

func (s *Service) newSettlement(req domain.SettlementRequest, fee decimal.Decimal) *domain.Settlement {
	now := s.now()
	settlement := &domain.Settlement{
		RequestKey:  req.RequestKey,
		SellerID:    req.SellerID,
		ShopID:      req.ShopID,
		Amount:      req.Amount,
		PlatformFee: fee,
		NetAmount:   req.Amount.Sub(fee),
		Status:      domain.StatusPending,
		Method:      req.Method,
		RequestedAt: now,
		UpdatedAt:   now,
	}
	switch req.Method {
	case domain.MethodBankTransfer:
		bank := *req.Bank
		settlement.Bank = &bank
	case domain.MethodCard:
		masked := validate.MaskCardNumber(req.CardNumber)
		settlement.CardNumber = &masked
	case domain.MethodWallet:
		wallet := req.WalletID
		settlement.WalletID = &wallet
	}
	if req.Notes != "" {
		notes := req.Notes
		settlement.Notes = &notes
	}
	return settlement
}

func sameRequest(existing *domain.Settlement, req domain.SettlementRequest) (*domain.Settlement, error) {
	if existing.SellerID != req.SellerID || existing.ShopID != req.ShopID || !existing.Amount.Equal(req.Amount) {
		return nil, ErrRequestKeyReused
	}
	return existing, nil
}

func validateRequest(req *domain.SettlementRequest) error {
	if req.ShopID <= 0 {
		return domain.NewValidationError("shop id must be positive")
	}
	if !req.Amount.IsPositive() || !domain.HasMoneyPrecision(req.Amount) {
		return domain.ErrInvalidAmount
	}

	switch req.Method {
	case domain.MethodBankTransfer:
		if req.Bank == nil {
			return ErrMissingBankDetails
		}
		req.Bank.BankName = strings.TrimSpace(req.Bank.BankName)
		req.Bank.AccountNumber = strings.TrimSpace(req.Bank.AccountNumber)
		req.Bank.AccountHolderName = strings.TrimSpace(req.Bank.AccountHolderName)
		if req.Bank.BankName == "" || req.Bank.AccountNumber == "" || req.Bank.AccountHolderName == "" {
			return ErrMissingBankDetails
		}
	case domain.MethodCard:
		if !validate.IsCardNumber(req.CardNumber) {
			return ErrInvalidCardNumber
		}
	case domain.MethodWallet:
		req.WalletID = strings.TrimSpace(req.WalletID)
		if req.WalletID == "" {
			return ErrMissingWalletID
		}
	default:
		return ErrUnknownMethod
	}
	return nil
}
