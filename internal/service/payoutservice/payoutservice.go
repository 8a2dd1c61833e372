package payoutservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/internal/pg"
)

//go:generate mockgen -source=payoutservice.go -destination=mock_payoutservice.go -package=payoutservice

type SettlementRepo interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Settlement, error)
	UpdateStatus(ctx context.Context, s *domain.Settlement) error
}

type BalanceRepo interface {
	GetForUpdate(ctx context.Context, sellerID, shopID int64) (*domain.SellerBalance, error)
	Update(ctx context.Context, balance *domain.SellerBalance) error
}

type LedgerRepo interface {
	AttributeToSettlement(ctx context.Context, sellerID, shopID, settlementID int64, amount decimal.Decimal) (int, error)
}

// Service drives settlements through their lifecycle. Every transition runs
// in one transaction holding the settlement row lock, and the balance row lock
// when the transition moves money.
type Service struct {
	settlementRepo SettlementRepo
	balanceRepo    BalanceRepo
	ledgerRepo     LedgerRepo
	txManager      pg.TXManager
	now            func() time.Time
}

func New(settlementRepo SettlementRepo, balanceRepo BalanceRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		settlementRepo: settlementRepo,
		balanceRepo:    balanceRepo,
		ledgerRepo:     ledgerRepo,
		txManager:      txManager,
		now:            time.Now,
	}
}

var (
	ErrMissingReference = domain.NewValidationError("transaction reference is required")
	ErrMissingReason    = domain.NewValidationError("failure reason is required")
	errReservationDrift = errors.New("pending withdrawal is lower than the settlement amount")
)

type applyFn func(ctx context.Context, s *domain.Settlement, balance *domain.SellerBalance, now time.Time) error

func (s *Service) Approve(ctx context.Context, id, adminID int64) (*domain.Settlement, error) {
	return s.transition(ctx, id, domain.StatusApproved, nil,
		func(_ context.Context, st *domain.Settlement, _ *domain.SellerBalance, now time.Time) error {
			st.ProcessedBy = &adminID
			st.ApprovedAt = &now
			return nil
		})
}

// Process marks the payout as handed to the payment provider. The reference is
// optional here and can still be given on completion.
func (s *Service) Process(ctx context.Context, id, adminID int64, reference string) (*domain.Settlement, error) {
	reference = strings.TrimSpace(reference)
	return s.transition(ctx, id, domain.StatusProcessing, nil,
		func(_ context.Context, st *domain.Settlement, _ *domain.SellerBalance, now time.Time) error {
			st.ProcessedBy = &adminID
			st.ProcessedAt = &now
			if reference != "" {
				st.TransactionReference = &reference
			}
			return nil
		})
}

func (s *Service) Complete(ctx context.Context, id int64, reference string) (*domain.Settlement, error) {
	reference = strings.TrimSpace(reference)
	return s.transition(ctx, id, domain.StatusCompleted, nil,
		func(ctx context.Context, st *domain.Settlement, balance *domain.SellerBalance, now time.Time) error {
			if reference != "" {
				st.TransactionReference = &reference
			}
			if st.TransactionReference == nil || *st.TransactionReference == "" {
				return ErrMissingReference
			}
			if err := releaseReservation(st, balance); err != nil {
				return err
			}
			balance.TotalWithdrawn = balance.TotalWithdrawn.Add(st.NetAmount)
			balance.TotalFees = balance.TotalFees.Add(st.PlatformFee)
			st.CompletedAt = &now

			attributed, err := s.ledgerRepo.AttributeToSettlement(ctx, st.SellerID, st.ShopID, st.ID, st.Amount)
			if err != nil {
				return err
			}
			zap.L().Debug("order settlements attributed", zap.Int64("settlement_id", st.ID), zap.Int("count", attributed))
			return nil
		})
}

func (s *Service) Fail(ctx context.Context, id int64, reason string) (*domain.Settlement, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrMissingReason
	}
	return s.transition(ctx, id, domain.StatusFailed, nil,
		func(_ context.Context, st *domain.Settlement, balance *domain.SellerBalance, now time.Time) error {
			if err := restoreFunds(st, balance); err != nil {
				return err
			}
			st.FailureReason = &reason
			st.FailedAt = &now
			return nil
		})
}

// Cancel is open to the seller who requested the settlement and to admins.
func (s *Service) Cancel(ctx context.Context, id int64, actor domain.Actor) (*domain.Settlement, error) {
	authorize := func(st *domain.Settlement) error {
		if !actor.IsAdmin() && st.SellerID != actor.UserID {
			zap.L().Warn("cancel rejected for non-owner", zap.Int64("settlement_id", id), zap.Int64("user_id", actor.UserID))
			return domain.ErrUnauthorized
		}
		return nil
	}
	return s.transition(ctx, id, domain.StatusCancelled, authorize,
		func(_ context.Context, st *domain.Settlement, balance *domain.SellerBalance, now time.Time) error {
			if err := restoreFunds(st, balance); err != nil {
				return err
			}
			st.CancelledAt = &now
			if actor.IsAdmin() {
				st.ProcessedBy = &actor.UserID
			}
			return nil
		})
}

func (s *Service) transition(
	ctx context.Context,
	id int64,
	next domain.SettlementStatus,
	authorize func(st *domain.Settlement) error,
	apply applyFn,
) (*domain.Settlement, error) {
	var result *domain.Settlement
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		st, err := s.settlementRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if authorize != nil {
			if err := authorize(st); err != nil {
				return err
			}
		}
		if !st.Status.CanTransitionTo(next) {
			return domain.NewTransitionError(st.Status, next)
		}

		// only the terminal transitions move money
		var balance *domain.SellerBalance
		if next.Terminal() {
			balance, err = s.balanceRepo.GetForUpdate(ctx, st.SellerID, st.ShopID)
			if err != nil {
				return err
			}
		}

		now := s.now()
		if err := apply(ctx, st, balance, now); err != nil {
			return err
		}
		st.Status = next
		st.UpdatedAt = now

		if balance != nil {
			if err := s.balanceRepo.Update(ctx, balance); err != nil {
				return err
			}
		}
		if err := s.settlementRepo.UpdateStatus(ctx, st); err != nil {
			return err
		}
		result = st
		return nil
	})
	if err != nil {
		logTransitionError(id, next, err)
		return nil, err
	}

	zap.L().Info("settlement status changed", zap.Int64("settlement_id", id), zap.String("status", string(next)))
	return result, nil
}

func releaseReservation(st *domain.Settlement, balance *domain.SellerBalance) error {
	if balance.TotalPendingWithdrawal.LessThan(st.Amount) {
		zap.L().Error("reservation out of sync with settlement",
			zap.Int64("settlement_id", st.ID),
			zap.String("pending_withdrawal", balance.TotalPendingWithdrawal.StringFixed(domain.MoneyPlaces)),
			zap.String("amount", st.Amount.StringFixed(domain.MoneyPlaces)),
		)
		return errReservationDrift
	}
	balance.TotalPendingWithdrawal = balance.TotalPendingWithdrawal.Sub(st.Amount)
	return nil
}

func restoreFunds(st *domain.Settlement, balance *domain.SellerBalance) error {
	if err := releaseReservation(st, balance); err != nil {
		return err
	}
	balance.AvailableBalance = balance.AvailableBalance.Add(st.Amount)
	return nil
}

func logTransitionError(id int64, next domain.SettlementStatus, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) && domainErr.Code != domain.CodeInternal && domainErr.Code != domain.CodeTransientFailure {
		zap.L().Info("settlement transition rejected",
			zap.Int64("settlement_id", id), zap.String("status", string(next)), zap.String("reason", domainErr.Message))
		return
	}
	zap.L().Error("settlement transition failed", zap.Int64("settlement_id", id), zap.String("status", string(next)), zap.Error(err))
}
