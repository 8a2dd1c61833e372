package payoutservice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/internal/pg"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type mocks struct {
	settlements *MockSettlementRepo
	balances    *MockBalanceRepo
	ledger      *MockLedgerRepo
	tx          *pg.MockTXManager
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		settlements: NewMockSettlementRepo(ctrl),
		balances:    NewMockBalanceRepo(ctrl),
		ledger:      NewMockLedgerRepo(ctrl),
		tx:          pg.NewMockTXManager(ctrl),
	}
	service := New(m.settlements, m.balances, m.ledger, m.tx)
	service.now = func() time.Time { return testNow }
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return service, m
}

func settlementIn(status domain.SettlementStatus) *domain.Settlement {
	return &domain.Settlement{
		ID:          9,
		SellerID:    7,
		ShopID:      3,
		Amount:      dec("60.00"),
		PlatformFee: dec("0"),
		NetAmount:   dec("60.00"),
		Status:      status,
		Method:      domain.MethodBankTransfer,
	}
}

// reservedBalance is the balance right after a 60.00 request against 100.00.
func reservedBalance() *domain.SellerBalance {
	return &domain.SellerBalance{
		ID:                     1,
		SellerID:               7,
		ShopID:                 3,
		AvailableBalance:       dec("40.00"),
		PendingBalance:         dec("0"),
		TotalEarned:            dec("100.00"),
		TotalWithdrawn:         dec("0"),
		TotalPendingWithdrawal: dec("60.00"),
		TotalFees:              dec("0"),
	}
}

func TestApproveAndProcess(t *testing.T) {
	service, m := NewMock(t)
	st := settlementIn(domain.StatusPending)

	m.settlements.EXPECT().GetByIDForUpdate(gomock.Any(), int64(9)).Return(st, nil).Times(2)
	m.settlements.EXPECT().UpdateStatus(gomock.Any(), st).Return(nil).Times(2)

	approved, err := service.Approve(context.Background(), 9, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, approved.Status)
	assert.Equal(t, int64(1), *approved.ProcessedBy)
	assert.Equal(t, testNow, *approved.ApprovedAt)

	processing, err := service.Process(context.Background(), 9, 2, "  ")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, processing.Status)
	assert.Equal(t, int64(2), *processing.ProcessedBy)
	assert.Equal(t, testNow, *processing.ProcessedAt)
	assert.Nil(t, processing.TransactionReference)
}

func TestComplete(t *testing.T) {
	t.Run("Releases reservation and records withdrawal", func(t *testing.T) {
		service, m := NewMock(t)
		st := settlementIn(domain.StatusProcessing)
		balance := reservedBalance()

		m.settlements.EXPECT().GetByIDForUpdate(gomock.Any(), int64(9)).Return(st, nil)
		m.balances.EXPECT().GetForUpdate(gomock.Any(), int64(7), int64(3)).Return(balance, nil)
		m.ledger.EXPECT().AttributeToSettlement(gomock.Any(), int64(7), int64(3), int64(9), dec("60.00")).Return(1, nil)
		m.balances.EXPECT().Update(gomock.Any(), balance).Return(nil)
		m.settlements.EXPECT().UpdateStatus(gomock.Any(), st).Return(nil)

		completed, err := service.Complete(context.Background(), 9, "TXN123")

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, completed.Status)
		assert.Equal(t, "TXN123", *completed.TransactionReference)
		assert.Equal(t, testNow, *completed.CompletedAt)
		assert.True(t, balance.TotalPendingWithdrawal.IsZero())
		assert.Equal(t, "60.00", balance.TotalWithdrawn.StringFixed(2))
		assert.Equal(t, "40.00", balance.AvailableBalance.StringFixed(2))
		assert.True(t, balance.Reconciles())
	})

	t.Run("Fee goes to total fees", func(t *testing.T) {
		service, m := NewMock(t)
		st := settlementIn(domain.StatusProcessing)
		st.PlatformFee = dec("1.50")
		st.NetAmount = dec("58.50")
		reference := "TXN9"
		st.TransactionReference = &reference
		balance := reservedBalance()

		m.settlements.EXPECT().GetByIDForUpdate(gomock.Any(), int64(9)).Return(st, nil)
		m.balances.EXPECT().GetForUpdate(gomock.Any(), int64(7), int64(3)).Return(balance, nil)
		m.ledger.EXPECT().AttributeToSettlement(gomock.Any(), int64(7), int64(3), int64(9), gomock.Any()).Return(0, nil)
		m.balances.EXPECT().Update(gomock.Any(), balance).Return(nil)
		m.settlements.EXPECT().UpdateStatus(gomock.Any(), st).Return(nil)

		completed, err := service.Complete(context.Background(), 9, "")

		require.NoError(t, err)
		assert.Equal(t, "TXN9", *completed.TransactionReference)
		assert.Equal(t, "58.50", balance.TotalWithdrawn.StringFixed(2))
		assert.Equal(t, "1.50", balance.TotalFees.StringFixed(2))
		assert.True(t, balance.Reconciles())
	})

	t.Run("Reference required", func(t *testing.T) {
		service, m := NewMock(t)
		st := settlementIn(domain.StatusProcessing)
		balance := reservedBalance()

		m.settlements.EXPECT().GetByIDForUpdate(gomock.Any(), int64(9)).Return(st, nil)
		m.balances.EXPECT().GetForUpdate(gomock.Any(), int64(7), int64(3)).Return(balance, nil)

		_, err := service.Complete(context.Background(), 9, "")

		assert.ErrorIs(t, err, ErrMissingReference)
		assert.Equal(t, "60.00", balance.TotalPendingWithdrawal.StringFixed(2))
	})

	t.Run("Reservation drift is an internal failure", func(t *testing.T) {
		service, m := NewMock(t)
		st := settlementIn(domain.StatusProcessing)
		balance := reservedBalance()
		balance.TotalPendingWithdrawal = dec("10.00")

		m.settlements.EXPECT().GetByIDForUpdate(gomock.Any(), int64(9)).Return(st, nil)
		m.balances.EXPECT().GetForUpdate(gomock.Any(), int64(7), int64(3)).Return(balance, nil)

		_, err := service.Complete(context.Background(), 9, "TXN1")

		assert.ErrorIs(t, err, errReservationDrift)
	})
}

func TestFail(t *testing.T) {
	t.Run("Processing settlement restores funds", func(t *testing.T) {
		service, m := NewMock(t)
		st := settlementIn(domain.StatusProcessing)
		balance := reservedBalance()

		m.settlements.EXPECT().GetByIDForUpdate(gomock.Any(), int64(9)).Return(st, nil)
		m.balances.EXPECT().GetForUpdate(gomock.Any(), int64(7), int64(3)).Return(balance, nil)
		m.balances.EXPECT().Update(gomock.Any(), balance).Return(nil)
		m.settlements.EXPECT().UpdateStatus(gomock.Any(), st).Return(nil)

		failed, err := service.Fail(context.Background(), 9, "bank rejected")

		require.NoError(t, err)
		assert.Equal(t, domain.StatusFailed, failed.Status)
		assert.Equal(t, "bank rejected", *failed.FailureReason)
		assert.Equal(t, testNow, *failed.FailedAt)
		assert.Equal(t, "100.00", balance.AvailableBalance.StringFixed(2))
		assert.True(t, balance.TotalPendingWithdrawal.IsZero())
		assert.True(t, balance.Reconciles())
	})

	t.Run("Reason required", func(t *testing.T) {
		service, _ := NewMock(t)

		_, err := service.Fail(context.Background(), 9, " ")

		assert.ErrorIs(t, err, ErrMissingReason)
	})
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name        string
		actor       domain.Actor
		status      domain.SettlementStatus
		allowed     bool
		expectedErr error
	}{
		{name: "Owner cancels pending", actor: domain.Actor{UserID: 7, Role: domain.RoleSeller}, status: domain.StatusPending, allowed: true},
		{name: "Admin cancels approved", actor: domain.Actor{UserID: 1, Role: domain.RoleAdmin}, status: domain.StatusApproved, allowed: true},
		{name: "Other seller", actor: domain.Actor{UserID: 8, Role: domain.RoleSeller}, status: domain.StatusPending, expectedErr: domain.ErrUnauthorized},
		{name: "Processing cannot be cancelled", actor: domain.Actor{UserID: 7, Role: domain.RoleSeller}, status: domain.StatusProcessing, expectedErr: domain.ErrInvalidStateTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			st := settlementIn(tt.status)
			balance := reservedBalance()

			m.settlements.EXPECT().GetByIDForUpdate(gomock.Any(), int64(9)).Return(st, nil)
			if tt.allowed {
				m.balances.EXPECT().GetForUpdate(gomock.Any(), int64(7), int64(3)).Return(balance, nil)
				m.balances.EXPECT().Update(gomock.Any(), balance).Return(nil)
				m.settlements.EXPECT().UpdateStatus(gomock.Any(), st).Return(nil)
			}

			result, err := service.Cancel(context.Background(), 9, tt.actor)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				assert.Equal(t, tt.status, st.Status)
				assert.Equal(t, "40.00", balance.AvailableBalance.StringFixed(2))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, result.Status)
			assert.Equal(t, testNow, *result.CancelledAt)
			assert.Equal(t, "100.00", balance.AvailableBalance.StringFixed(2))
			assert.True(t, balance.TotalPendingWithdrawal.IsZero())
		})
	}
}

func TestIllegalTransitionsLeaveStateUnchanged(t *testing.T) {
	type op struct {
		name string
		run  func(s *Service) (*domain.Settlement, error)
	}
	ops := []op{
		{"approve", func(s *Service) (*domain.Settlement, error) { return s.Approve(context.Background(), 9, 1) }},
		{"process", func(s *Service) (*domain.Settlement, error) { return s.Process(context.Background(), 9, 1, "TXN") }},
		{"complete", func(s *Service) (*domain.Settlement, error) { return s.Complete(context.Background(), 9, "TXN") }},
		{"fail", func(s *Service) (*domain.Settlement, error) { return s.Fail(context.Background(), 9, "x") }},
		{"cancel", func(s *Service) (*domain.Settlement, error) {
			return s.Cancel(context.Background(), 9, domain.Actor{UserID: 1, Role: domain.RoleAdmin})
		}},
	}
	targets := map[string]domain.SettlementStatus{
		"approve":  domain.StatusApproved,
		"process":  domain.StatusProcessing,
		"complete": domain.StatusCompleted,
		"fail":     domain.StatusFailed,
		"cancel":   domain.StatusCancelled,
	}
	statuses := []domain.SettlementStatus{
		domain.StatusPending, domain.StatusApproved, domain.StatusProcessing,
		domain.StatusCompleted, domain.StatusFailed, domain.StatusCancelled,
	}

	for _, from := range statuses {
		for _, o := range ops {
			if from.CanTransitionTo(targets[o.name]) {
				continue
			}
			t.Run(string(from)+" "+o.name, func(t *testing.T) {
				service, m := NewMock(t)
				st := settlementIn(from)
				m.settlements.EXPECT().GetByIDForUpdate(gomock.Any(), int64(9)).Return(st, nil)

				result, err := o.run(service)

				assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
				assert.Nil(t, result)
				assert.Equal(t, from, st.Status)
			})
		}
	}
}

func TestTransition_NotFound(t *testing.T) {
	service, m := NewMock(t)
	m.settlements.EXPECT().GetByIDForUpdate(gomock.Any(), int64(404)).Return(nil, domain.ErrNotFound)

	_, err := service.Approve(context.Background(), 404, 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
