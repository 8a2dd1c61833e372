package settlementservice

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/internal/service/balanceservice"
	"github.com/GlebRadaev/sellerpayout/internal/service/eligibility"
	"github.com/GlebRadaev/sellerpayout/internal/service/payoutservice"
	"github.com/GlebRadaev/sellerpayout/internal/testutil"
)

const (
	ledgerShopID   = int64(3)
	ledgerSellerID = int64(7)
	ledgerAdminID  = int64(1)
)

// ledgerEnv wires the real services to the in-memory store. Settlement
// service time is driven by clock; order delivery times are set relative to
// base, which is never after the wall clock.
type ledgerEnv struct {
	store       *testutil.Store
	settlements *Service
	payouts     *payoutservice.Service
	balances    *balanceservice.Service
	base        time.Time
	clock       time.Time
	nextOrderID int64
}

func newLedgerEnv(t *testing.T, cfg Config, rate string) *ledgerEnv {
	t.Helper()
	store := testutil.NewStore()
	store.AddShop(domain.Shop{ID: ledgerShopID, SellerID: ledgerSellerID, CommissionRate: dec(rate)})

	tx := store.TxManager()
	scanner := eligibility.New(store.Orders(), cfg.BatchSize)
	env := &ledgerEnv{
		store:       store,
		settlements: New(store.Shops(), scanner, store.Ledger(), store.SettlementRepo(), store.Balances(), tx, cfg),
		payouts:     payoutservice.New(store.SettlementRepo(), store.Balances(), store.Ledger(), tx),
		balances:    balanceservice.New(store.Balances(), store.SettlementRepo(), store.Ledger(), tx),
		base:        time.Now().UTC().Add(-time.Minute),
	}
	env.clock = env.base
	env.settlements.now = func() time.Time { return env.clock }
	return env
}

// deliver adds a delivered order of the test shop, delivered age before base.
func (e *ledgerEnv) deliver(amount string, age time.Duration) int64 {
	e.nextOrderID++
	deliveredAt := e.base.Add(-age)
	e.store.AddOrder(domain.Order{
		ID:          e.nextOrderID,
		ShopID:      ledgerShopID,
		TotalAmount: dec(amount),
		Status:      domain.OrderStatusDelivered,
		DeliveredAt: &deliveredAt,
	})
	return e.nextOrderID
}

func (e *ledgerEnv) request(amount string) (*domain.Settlement, error) {
	return e.settlements.RequestSettlement(context.Background(), bankRequest(amount))
}

func (e *ledgerEnv) balance() domain.SellerBalance {
	return e.store.Balance(ledgerSellerID, ledgerShopID)
}

func assertMoney(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.Equal(t, expected, actual.StringFixed(domain.MoneyPlaces), field)
}

func TestLedger_AccrualSplitsCommission(t *testing.T) {
	env := newLedgerEnv(t, Config{HoldPeriod: 72 * time.Hour}, "0.10")
	orderID := env.deliver("200.00", 100*time.Hour)

	result, err := env.settlements.AccrueShop(context.Background(), ledgerShopID)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Accrued)
	assertMoney(t, "180.00", result.Amount, "accrued amount")

	rows := env.store.LedgerRows(ledgerShopID)
	require.Len(t, rows, 1)
	assert.Equal(t, orderID, rows[0].OrderID)
	assertMoney(t, "20.00", rows[0].Commission, "commission")
	assertMoney(t, "180.00", rows[0].SettlementAmount, "settlement amount")
	assert.True(t, rows[0].Matured)

	balance := env.balance()
	assertMoney(t, "180.00", balance.TotalEarned, "total earned")
	assertMoney(t, "180.00", balance.AvailableBalance, "available")
	assert.True(t, balance.Reconciles())
}

func TestLedger_AccrualRunsTwiceWithoutDoubleSettlement(t *testing.T) {
	env := newLedgerEnv(t, Config{HoldPeriod: 72 * time.Hour}, "0.05")
	env.deliver("33.33", 100*time.Hour)
	env.deliver("0.05", 90*time.Hour)
	env.deliver("120.00", time.Hour)

	first, err := env.settlements.AccrueShop(context.Background(), ledgerShopID)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Accrued)
	afterFirst := env.balance()

	second, err := env.settlements.AccrueShop(context.Background(), ledgerShopID)
	require.NoError(t, err)

	assert.Zero(t, second.Accrued)
	assert.Len(t, env.store.LedgerRows(ledgerShopID), 3)
	assert.Equal(t, afterFirst, env.balance())
}

func TestLedger_MaturationMovesPendingOnce(t *testing.T) {
	env := newLedgerEnv(t, Config{HoldPeriod: 72 * time.Hour}, "0.10")
	env.deliver("100.00", time.Hour)

	_, err := env.settlements.AccrueShop(context.Background(), ledgerShopID)
	require.NoError(t, err)
	assertMoney(t, "90.00", env.balance().PendingBalance, "pending after accrual")

	early, err := env.settlements.MatureShop(context.Background(), ledgerShopID)
	require.NoError(t, err)
	assert.Zero(t, early.Matured)

	env.clock = env.clock.Add(72 * time.Hour)
	due, err := env.settlements.MatureShop(context.Background(), ledgerShopID)
	require.NoError(t, err)
	assert.Equal(t, 1, due.Matured)

	again, err := env.settlements.MatureShop(context.Background(), ledgerShopID)
	require.NoError(t, err)
	assert.Zero(t, again.Matured)

	balance := env.balance()
	assert.True(t, balance.PendingBalance.IsZero())
	assertMoney(t, "90.00", balance.AvailableBalance, "available")
	assertMoney(t, "90.00", balance.TotalEarned, "total earned")
	assert.True(t, balance.Reconciles())
}

func TestLedger_CancelledAccrualKeepsCommittedOrders(t *testing.T) {
	env := newLedgerEnv(t, Config{HoldPeriod: 72 * time.Hour}, "0")
	env.deliver("10.00", 100*time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := env.settlements.AccrueShop(ctx, ledgerShopID)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, result.Accrued)
	assert.Empty(t, env.store.LedgerRows(ledgerShopID))
	assert.True(t, env.balance().TotalEarned.IsZero())
}

func TestLedger_WithdrawalCompletes(t *testing.T) {
	ctx := context.Background()
	env := newLedgerEnv(t, Config{HoldPeriod: 72 * time.Hour}, "0")
	firstOrder := env.deliver("60.00", 120*time.Hour)
	env.deliver("40.00", 100*time.Hour)
	_, err := env.settlements.AccrueShop(ctx, ledgerShopID)
	require.NoError(t, err)
	assertMoney(t, "100.00", env.balance().AvailableBalance, "available before request")

	st, err := env.request("60.00")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, st.Status)
	balance := env.balance()
	assertMoney(t, "40.00", balance.AvailableBalance, "available after request")
	assertMoney(t, "60.00", balance.TotalPendingWithdrawal, "pending withdrawal after request")

	_, err = env.payouts.Approve(ctx, st.ID, ledgerAdminID)
	require.NoError(t, err)
	_, err = env.payouts.Process(ctx, st.ID, ledgerAdminID, "")
	require.NoError(t, err)
	completed, err := env.payouts.Complete(ctx, st.ID, "TXN123")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, completed.Status)

	balance = env.balance()
	assertMoney(t, "60.00", balance.TotalWithdrawn, "total withdrawn")
	assert.True(t, balance.TotalPendingWithdrawal.IsZero())
	assertMoney(t, "40.00", balance.AvailableBalance, "available after completion")
	assert.True(t, balance.Reconciles())

	detail, err := env.balances.GetSettlement(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, detail.Orders, 1)
	assert.Equal(t, firstOrder, detail.Orders[0].OrderID)

	reconciliation, err := env.balances.Reconcile(ctx, ledgerSellerID, ledgerShopID)
	require.NoError(t, err)
	assert.True(t, reconciliation.Consistent, reconciliation.Mismatches)
}

func TestLedger_ShopChangesOwner(t *testing.T) {
	ctx := context.Background()
	newOwner := int64(99)
	env := newLedgerEnv(t, Config{HoldPeriod: 72 * time.Hour}, "0.10")
	env.deliver("100.00", 100*time.Hour)
	_, err := env.settlements.AccrueShop(ctx, ledgerShopID)
	require.NoError(t, err)

	env.store.AddShop(domain.Shop{ID: ledgerShopID, SellerID: newOwner, CommissionRate: dec("0.10")})
	secondOrder := env.deliver("50.00", 90*time.Hour)
	_, err = env.settlements.AccrueShop(ctx, ledgerShopID)
	require.NoError(t, err)

	previous, err := env.balances.GetBalance(ctx, ledgerSellerID, ledgerShopID)
	require.NoError(t, err)
	assertMoney(t, "90.00", previous.AvailableBalance, "previous owner available")
	assertMoney(t, "90.00", previous.TotalEarned, "previous owner earned")

	current, err := env.balances.GetBalance(ctx, newOwner, ledgerShopID)
	require.NoError(t, err)
	assertMoney(t, "45.00", current.AvailableBalance, "new owner available")
	assertMoney(t, "45.00", current.TotalEarned, "new owner earned")

	shop, err := env.balances.GetBalance(ctx, 0, ledgerShopID)
	require.NoError(t, err)
	assertMoney(t, "135.00", shop.TotalEarned, "shop earned")
	assertMoney(t, "135.00", shop.AvailableBalance, "shop available")

	_, err = env.request("10.00")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	req := bankRequest("60.00")
	req.SellerID = newOwner
	_, err = env.settlements.RequestSettlement(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	req = bankRequest("45.00")
	req.SellerID = newOwner
	st, err := env.settlements.RequestSettlement(ctx, req)
	require.NoError(t, err)
	_, err = env.payouts.Approve(ctx, st.ID, ledgerAdminID)
	require.NoError(t, err)
	_, err = env.payouts.Process(ctx, st.ID, ledgerAdminID, "")
	require.NoError(t, err)
	_, err = env.payouts.Complete(ctx, st.ID, "TXN45")
	require.NoError(t, err)

	detail, err := env.balances.GetSettlement(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, detail.Orders, 1)
	assert.Equal(t, secondOrder, detail.Orders[0].OrderID)

	for _, sellerID := range []int64{ledgerSellerID, newOwner, 0} {
		reconciliation, err := env.balances.Reconcile(ctx, sellerID, ledgerShopID)
		require.NoError(t, err)
		assert.True(t, reconciliation.Consistent, "seller %d: %v", sellerID, reconciliation.Mismatches)
	}
}

func TestLedger_WithdrawalFeeIsRetained(t *testing.T) {
	ctx := context.Background()
	env := newLedgerEnv(t, Config{HoldPeriod: 72 * time.Hour, FeeRate: dec("0.015"), FeeFixed: dec("0.50")}, "0")
	env.deliver("100.00", 100*time.Hour)
	_, err := env.settlements.AccrueShop(ctx, ledgerShopID)
	require.NoError(t, err)

	st, err := env.request("60.00")
	require.NoError(t, err)
	assertMoney(t, "1.40", st.PlatformFee, "fee")
	assertMoney(t, "58.60", st.NetAmount, "net")

	for _, step := range []func() error{
		func() error { _, err := env.payouts.Approve(ctx, st.ID, ledgerAdminID); return err },
		func() error { _, err := env.payouts.Process(ctx, st.ID, ledgerAdminID, "TXN7"); return err },
		func() error { _, err := env.payouts.Complete(ctx, st.ID, ""); return err },
	} {
		require.NoError(t, step())
	}

	balance := env.balance()
	assertMoney(t, "58.60", balance.TotalWithdrawn, "total withdrawn")
	assertMoney(t, "1.40", balance.TotalFees, "total fees")
	assert.True(t, balance.Reconciles())
}

func TestLedger_InsufficientBalanceChangesNothing(t *testing.T) {
	env := newLedgerEnv(t, Config{HoldPeriod: 72 * time.Hour}, "0")
	env.deliver("100.00", 100*time.Hour)
	_, err := env.settlements.AccrueShop(context.Background(), ledgerShopID)
	require.NoError(t, err)
	before := env.balance()

	_, err = env.request("150.00")

	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, before, env.balance())
	assert.Empty(t, env.store.Settlements())
}

func TestLedger_FailedPayoutRestoresFunds(t *testing.T) {
	ctx := context.Background()
	env := newLedgerEnv(t, Config{HoldPeriod: 72 * time.Hour}, "0")
	env.deliver("100.00", 100*time.Hour)
	_, err := env.settlements.AccrueShop(ctx, ledgerShopID)
	require.NoError(t, err)

	st, err := env.request("60.00")
	require.NoError(t, err)
	_, err = env.payouts.Approve(ctx, st.ID, ledgerAdminID)
	require.NoError(t, err)
	_, err = env.payouts.Process(ctx, st.ID, ledgerAdminID, "")
	require.NoError(t, err)

	failed, err := env.payouts.Fail(ctx, st.ID, "bank rejected")
	require.NoError(t, err)
	assert.Equal(t, "bank rejected", *failed.FailureReason)

	balance := env.balance()
	assertMoney(t, "100.00", balance.AvailableBalance, "available")
	assert.True(t, balance.TotalPendingWithdrawal.IsZero())
	assert.True(t, balance.TotalWithdrawn.IsZero())
	assert.True(t, balance.Reconciles())
}

func TestLedger_RequestKeyIsIdempotent(t *testing.T) {
	env := newLedgerEnv(t, Config{HoldPeriod: 72 * time.Hour}, "0")
	env.deliver("100.00", 100*time.Hour)
	_, err := env.settlements.AccrueShop(context.Background(), ledgerShopID)
	require.NoError(t, err)

	req := bankRequest("30.00")
	req.RequestKey = uuid.New()

	first, err := env.settlements.RequestSettlement(context.Background(), req)
	require.NoError(t, err)
	second, err := env.settlements.RequestSettlement(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, env.store.Settlements(), 1)
	assertMoney(t, "70.00", env.balance().AvailableBalance, "available")

	req.Amount = dec("31.00")
	_, err = env.settlements.RequestSettlement(context.Background(), req)
	assert.ErrorIs(t, err, ErrRequestKeyReused)
}

func TestLedger_ConcurrentFullWithdrawals(t *testing.T) {
	env := newLedgerEnv(t, Config{HoldPeriod: 72 * time.Hour}, "0")
	env.deliver("100.00", 100*time.Hour)
	_, err := env.settlements.AccrueShop(context.Background(), ledgerShopID)
	require.NoError(t, err)

	const requests = 8
	errs := make([]error, requests)
	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.request("100.00")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	}
	assert.Equal(t, 1, succeeded)

	balance := env.balance()
	assert.True(t, balance.AvailableBalance.IsZero())
	assertMoney(t, "100.00", balance.TotalPendingWithdrawal, "pending withdrawal")
	assert.Len(t, env.store.Settlements(), 1)
}

func TestLedger_IllegalTransitionsKeepBalance(t *testing.T) {
	ctx := context.Background()
	env := newLedgerEnv(t, Config{HoldPeriod: 72 * time.Hour}, "0")
	env.deliver("100.00", 100*time.Hour)
	_, err := env.settlements.AccrueShop(ctx, ledgerShopID)
	require.NoError(t, err)

	st, err := env.request("50.00")
	require.NoError(t, err)
	_, err = env.payouts.Cancel(ctx, st.ID, domain.Actor{UserID: ledgerSellerID, Role: domain.RoleSeller})
	require.NoError(t, err)
	before := env.balance()

	_, err = env.payouts.Process(ctx, st.ID, ledgerAdminID, "TXN")
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	_, err = env.payouts.Complete(ctx, st.ID, "TXN")
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	_, err = env.payouts.Fail(ctx, st.ID, "late")
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	assert.Equal(t, before, env.balance())
	assert.Equal(t, domain.StatusCancelled, env.store.Settlements()[0].Status)
}

// TestLedger_RandomOperationsKeepInvariants drives a fixed pseudo-random mix of
// accruals, maturations, requests and transitions and checks conservation and
// monotonicity after every step.
func TestLedger_RandomOperationsKeepInvariants(t *testing.T) {
	ctx := context.Background()
	env := newLedgerEnv(t, Config{HoldPeriod: 72 * time.Hour, FeeRate: dec("0.01")}, "0.07")
	rnd := rand.New(rand.NewSource(42))
	admin := domain.Actor{UserID: ledgerAdminID, Role: domain.RoleAdmin}

	previous := env.balance()
	for step := 0; step < 300; step++ {
		settlements := env.store.Settlements()
		var target int64
		if len(settlements) > 0 {
			target = settlements[rnd.Intn(len(settlements))].ID
		}

		var err error
		switch op := rnd.Intn(8); {
		case op == 0:
			cents := rnd.Int63n(50000) + 1
			env.deliver(decimal.New(cents, -2).StringFixed(2), time.Duration(rnd.Intn(150))*time.Hour)
			_, err = env.settlements.AccrueShop(ctx, ledgerShopID)
		case op == 1:
			env.clock = env.clock.Add(time.Duration(rnd.Intn(24)) * time.Hour)
			_, err = env.settlements.MatureShop(ctx, ledgerShopID)
		case op == 2:
			cents := rnd.Int63n(20000) + 100
			_, err = env.request(decimal.New(cents, -2).StringFixed(2))
		case target == 0:
			continue
		case op == 3:
			_, err = env.payouts.Approve(ctx, target, ledgerAdminID)
		case op == 4:
			_, err = env.payouts.Process(ctx, target, ledgerAdminID, "")
		case op == 5:
			_, err = env.payouts.Complete(ctx, target, "TXN")
		case op == 6:
			_, err = env.payouts.Fail(ctx, target, "rejected")
		default:
			_, err = env.payouts.Cancel(ctx, target, admin)
		}
		if err != nil {
			var domainErr *domain.Error
			require.ErrorAs(t, err, &domainErr, "step %d", step)
		}

		current := env.balance()
		require.True(t, current.Reconciles(), "conservation broken at step %d: %+v", step, current)
		require.False(t, current.TotalEarned.LessThan(previous.TotalEarned), "total earned decreased at step %d", step)
		require.False(t, current.TotalWithdrawn.LessThan(previous.TotalWithdrawn), "total withdrawn decreased at step %d", step)
		previous = current
	}

	reconciliation, err := env.balances.Reconcile(ctx, ledgerSellerID, ledgerShopID)
	require.NoError(t, err)
	assert.True(t, reconciliation.Consistent, reconciliation.Mismatches)
}
