// Package testutil holds an in-memory implementation of the repositories and
// the unit of work, for tests that exercise several services together.
package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/internal/pg"
)

var ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

type txKey struct{}

type balanceKey struct {
	sellerID int64
	shopID   int64
}

// Store keeps every table in memory. Units of work are serialized by txMu and
// rolled back by restoring a snapshot, which is enough to model row locks for
// a single shop.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex

	shops       map[int64]domain.Shop
	orders      map[int64]domain.Order
	ledger      []domain.OrderSettlement
	settlements []domain.Settlement
	balances    map[balanceKey]domain.SellerBalance
	nextBalance int64
}

func NewStore() *Store {
	return &Store{
		shops:    make(map[int64]domain.Shop),
		orders:   make(map[int64]domain.Order),
		balances: make(map[balanceKey]domain.SellerBalance),
	}
}

type snapshot struct {
	ledger      []domain.OrderSettlement
	settlements []domain.Settlement
	balances    map[balanceKey]domain.SellerBalance
	nextBalance int64
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := snapshot{
		ledger:      append([]domain.OrderSettlement(nil), s.ledger...),
		settlements: append([]domain.Settlement(nil), s.settlements...),
		balances:    make(map[balanceKey]domain.SellerBalance, len(s.balances)),
		nextBalance: s.nextBalance,
	}
	for k, v := range s.balances {
		snap.balances[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = snap.ledger
	s.settlements = snap.settlements
	s.balances = snap.balances
	s.nextBalance = snap.nextBalance
}

// access runs fn under the data lock, and under the unit-of-work lock too
// when the caller is not inside a transaction already.
func (s *Store) access(ctx context.Context, fn func()) {
	if ctx.Value(txKey{}) == nil {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func (s *Store) AddShop(shop domain.Shop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shops[shop.ID] = shop
}

func (s *Store) AddOrder(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
}

// Balance returns the stored balance of the seller in the shop, zero valued
// if there is none.
func (s *Store) Balance(sellerID, shopID int64) domain.SellerBalance {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.balances[balanceKey{sellerID: sellerID, shopID: shopID}]; ok {
		return b
	}
	return domain.SellerBalance{SellerID: sellerID, ShopID: shopID}
}

func (s *Store) LedgerRows(shopID int64) []domain.OrderSettlement {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []domain.OrderSettlement
	for _, row := range s.ledger {
		if row.ShopID == shopID {
			rows = append(rows, row)
		}
	}
	return rows
}

func (s *Store) Settlements() []domain.Settlement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Settlement(nil), s.settlements...)
}

func (s *Store) TxManager() *TxManager { return &TxManager{s: s} }
func (s *Store) Orders() *OrderRepo { return &OrderRepo{s: s} }
func (s *Store) Ledger() *LedgerRepo { return &LedgerRepo{s: s} }
func (s *Store) SettlementRepo() *SettlementRepo { return &SettlementRepo{s: s} }
func (s *Store) Balances() *BalanceRepo { return &BalanceRepo{s: s} }
func (s *Store) Shops() *ShopDirectory { return &ShopDirectory{s: s} }

var _ pg.TXManager = (*TxManager)(nil)

type TxManager struct {
	s *Store
}

func (m *TxManager) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	return m.run(ctx, fn)
}

func (m *TxManager) BeginReadOnly(ctx context.Context, fn pg.TransactionalFn) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	snap := m.s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		m.s.restore(snap)
		return err
	}
	// commit fails once the caller has gone away
	if err := ctx.Err(); err != nil {
		m.s.restore(snap)
		return err
	}
	return nil
}

type ShopDirectory struct {
	s *Store
}

func (d *ShopDirectory) GetShop(_ context.Context, shopID int64) (*domain.Shop, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	shop, ok := d.s.shops[shopID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &shop, nil
}

type OrderRepo struct {
	s *Store
}

func (r *OrderRepo) FindEligible(ctx context.Context, shopID int64, cutoff time.Time, limit int) ([]domain.Order, error) {
	var result []domain.Order
	r.s.access(ctx, func() {
		result = r.s.eligible(cutoff, func(o domain.Order) bool { return o.ShopID == shopID })
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *OrderRepo) FindShopsWithEligible(ctx context.Context, cutoff time.Time) ([]int64, error) {
	var shopIDs []int64
	r.s.access(ctx, func() {
		seen := make(map[int64]bool)
		for _, o := range r.s.eligible(cutoff, func(domain.Order) bool { return true }) {
			if !seen[o.ShopID] {
				seen[o.ShopID] = true
				shopIDs = append(shopIDs, o.ShopID)
			}
		}
	})
	sort.Slice(shopIDs, func(i, j int) bool { return shopIDs[i] < shopIDs[j] })
	return shopIDs, nil
}

func (s *Store) eligible(cutoff time.Time, match func(domain.Order) bool) []domain.Order {
	settled := make(map[int64]bool, len(s.ledger))
	for _, row := range s.ledger {
		settled[row.OrderID] = true
	}
	var result []domain.Order
	for _, o := range s.orders {
		if !match(o) || o.Status != domain.OrderStatusDelivered || o.DeliveredAt == nil {
			continue
		}
		if o.DeliveredAt.After(cutoff) || settled[o.ID] {
			continue
		}
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].DeliveredAt.Equal(*result[j].DeliveredAt) {
			return result[i].DeliveredAt.Before(*result[j].DeliveredAt)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

type LedgerRepo struct {
	s *Store
}

func (r *LedgerRepo) Insert(ctx context.Context, os *domain.OrderSettlement) (bool, error) {
	inserted := false
	r.s.access(ctx, func() {
		for _, row := range r.s.ledger {
			if row.OrderID == os.OrderID {
				return
			}
		}
		os.ID = int64(len(r.s.ledger) + 1)
		r.s.ledger = append(r.s.ledger, *os)
		inserted = true
	})
	return inserted, nil
}

func (r *LedgerRepo) FindMaturable(ctx context.Context, shopID int64, now time.Time, limit int) ([]domain.OrderSettlement, error) {
	var result []domain.OrderSettlement
	r.s.access(ctx, func() {
		for _, row := range r.s.ledger {
			if row.ShopID == shopID && !row.Matured && !row.EligibleAt.After(now) {
				result = append(result, row)
			}
		}
	})
	sortLedger(result)
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *LedgerRepo) FindShopsWithMaturable(ctx context.Context, now time.Time) ([]int64, error) {
	var shopIDs []int64
	r.s.access(ctx, func() {
		seen := make(map[int64]bool)
		for _, row := range r.s.ledger {
			if !row.Matured && !row.EligibleAt.After(now) && !seen[row.ShopID] {
				seen[row.ShopID] = true
				shopIDs = append(shopIDs, row.ShopID)
			}
		}
	})
	sort.Slice(shopIDs, func(i, j int) bool { return shopIDs[i] < shopIDs[j] })
	return shopIDs, nil
}

func (r *LedgerRepo) MarkMatured(ctx context.Context, id int64, at time.Time) (amount decimal.Decimal, ok bool, err error) {
	r.s.access(ctx, func() {
		for i := range r.s.ledger {
			row := &r.s.ledger[i]
			if row.ID != id || row.Matured {
				continue
			}
			row.Matured = true
			row.MaturedAt = &at
			amount, ok = row.SettlementAmount, true
			return
		}
	})
	return amount, ok, nil
}

func (r *LedgerRepo) AttributeToSettlement(ctx context.Context, sellerID, shopID, settlementID int64, amount decimal.Decimal) (int, error) {
	count := 0
	r.s.access(ctx, func() {
		var candidates []*domain.OrderSettlement
		for i := range r.s.ledger {
			row := &r.s.ledger[i]
			if row.SellerID == sellerID && row.ShopID == shopID && row.Matured && row.SettlementID == nil {
				candidates = append(candidates, row)
			}
		}
		sort.Slice(candidates, func(i, j int) bool {
			if !candidates[i].EligibleAt.Equal(candidates[j].EligibleAt) {
				return candidates[i].EligibleAt.Before(candidates[j].EligibleAt)
			}
			return candidates[i].ID < candidates[j].ID
		})
		running := decimal.Zero
		for _, row := range candidates {
			running = running.Add(row.SettlementAmount)
			if running.GreaterThan(amount) {
				continue
			}
			id := settlementID
			row.SettlementID = &id
			count++
		}
	})
	return count, nil
}

func (r *LedgerRepo) ListBySettlement(ctx context.Context, settlementID int64) ([]domain.OrderSettlement, error) {
	var result []domain.OrderSettlement
	r.s.access(ctx, func() {
		for _, row := range r.s.ledger {
			if row.SettlementID != nil && *row.SettlementID == settlementID {
				result = append(result, row)
			}
		}
	})
	sortLedger(result)
	return result, nil
}

func (r *LedgerRepo) Totals(ctx context.Context, sellerID, shopID int64) (earned, pending decimal.Decimal, err error) {
	earned, pending = decimal.Zero, decimal.Zero
	r.s.access(ctx, func() {
		for _, row := range r.s.ledger {
			if row.ShopID != shopID || (sellerID != 0 && row.SellerID != sellerID) {
				continue
			}
			earned = earned.Add(row.SettlementAmount)
			if !row.Matured {
				pending = pending.Add(row.SettlementAmount)
			}
		}
	})
	return earned, pending, nil
}

func sortLedger(rows []domain.OrderSettlement) {
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].EligibleAt.Equal(rows[j].EligibleAt) {
			return rows[i].EligibleAt.Before(rows[j].EligibleAt)
		}
		return rows[i].ID < rows[j].ID
	})
}

type SettlementRepo struct {
	s *Store
}

func (r *SettlementRepo) Create(ctx context.Context, st *domain.Settlement) (*domain.Settlement, error) {
	var err error
	r.s.access(ctx, func() {
		for _, existing := range r.s.settlements {
			if existing.RequestKey == st.RequestKey {
				err = ErrDuplicateKey
				return
			}
		}
		st.ID = int64(len(r.s.settlements) + 1)
		r.s.settlements = append(r.s.settlements, *st)
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (r *SettlementRepo) GetByRequestKey(ctx context.Context, key uuid.UUID) (*domain.Settlement, error) {
	var found *domain.Settlement
	r.s.access(ctx, func() {
		for _, st := range r.s.settlements {
			if st.RequestKey == key {
				st := st
				found = &st
				return
			}
		}
	})
	return found, nil
}

func (r *SettlementRepo) GetByID(ctx context.Context, id int64) (*domain.Settlement, error) {
	var found *domain.Settlement
	r.s.access(ctx, func() {
		if id > 0 && int(id) <= len(r.s.settlements) {
			st := r.s.settlements[id-1]
			found = &st
		}
	})
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *SettlementRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Settlement, error) {
	return r.GetByID(ctx, id)
}

func (r *SettlementRepo) UpdateStatus(ctx context.Context, st *domain.Settlement) error {
	var err error
	r.s.access(ctx, func() {
		if st.ID <= 0 || int(st.ID) > len(r.s.settlements) {
			err = domain.ErrNotFound
			return
		}
		stored := &r.s.settlements[st.ID-1]
		stored.Status = st.Status
		stored.TransactionReference = st.TransactionReference
		stored.ProcessedBy = st.ProcessedBy
		stored.ApprovedAt = st.ApprovedAt
		stored.ProcessedAt = st.ProcessedAt
		stored.CompletedAt = st.CompletedAt
		stored.FailedAt = st.FailedAt
		stored.CancelledAt = st.CancelledAt
		stored.FailureReason = st.FailureReason
		stored.UpdatedAt = st.UpdatedAt
	})
	return err
}

func (r *SettlementRepo) List(ctx context.Context, f domain.SettlementFilter) ([]domain.Settlement, int, error) {
	var matched []domain.Settlement
	r.s.access(ctx, func() {
		for _, st := range r.s.settlements {
			if matches(st, f, st.RequestedAt) {
				matched = append(matched, st)
			}
		}
	})
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].RequestedAt.Equal(matched[j].RequestedAt) {
			return matched[i].RequestedAt.After(matched[j].RequestedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := len(matched)
	start := (f.Page - 1) * f.PageSize
	if start > total {
		start = total
	}
	end := start + f.PageSize
	if end > total {
		end = total
	}
	return append([]domain.Settlement{}, matched[start:end]...), total, nil
}

func (r *SettlementRepo) SumCompleted(ctx context.Context, f domain.SettlementFilter) (decimal.Decimal, error) {
	f.Status = domain.StatusCompleted
	total := decimal.Zero
	r.s.access(ctx, func() {
		for _, st := range r.s.settlements {
			if st.CompletedAt != nil && matches(st, f, *st.CompletedAt) {
				total = total.Add(st.NetAmount)
			}
		}
	})
	return total, nil
}

func (r *SettlementRepo) Totals(ctx context.Context, sellerID, shopID int64) (withdrawn, fees, reserved decimal.Decimal, err error) {
	withdrawn, fees, reserved = decimal.Zero, decimal.Zero, decimal.Zero
	r.s.access(ctx, func() {
		for _, st := range r.s.settlements {
			if st.ShopID != shopID || (sellerID != 0 && st.SellerID != sellerID) {
				continue
			}
			switch {
			case st.Status == domain.StatusCompleted:
				withdrawn = withdrawn.Add(st.NetAmount)
				fees = fees.Add(st.PlatformFee)
			case st.Status.HoldsReservation():
				reserved = reserved.Add(st.Amount)
			}
		}
	})
	return withdrawn, fees, reserved, nil
}

func matches(st domain.Settlement, f domain.SettlementFilter, at time.Time) bool {
	if f.Status != "" && st.Status != f.Status {
		return false
	}
	if f.SellerID != 0 && st.SellerID != f.SellerID {
		return false
	}
	if f.ShopID != 0 && st.ShopID != f.ShopID {
		return false
	}
	if f.From != nil && at.Before(*f.From) {
		return false
	}
	if f.To != nil && !at.Before(*f.To) {
		return false
	}
	return true
}

type BalanceRepo struct {
	s *Store
}

func (r *BalanceRepo) GetForUpdate(ctx context.Context, sellerID, shopID int64) (*domain.SellerBalance, error) {
	var balance domain.SellerBalance
	r.s.access(ctx, func() {
		key := balanceKey{sellerID: sellerID, shopID: shopID}
		b, ok := r.s.balances[key]
		if !ok {
			r.s.nextBalance++
			b = domain.SellerBalance{
				ID:                     r.s.nextBalance,
				SellerID:               sellerID,
				ShopID:                 shopID,
				AvailableBalance:       decimal.Zero,
				PendingBalance:         decimal.Zero,
				TotalEarned:            decimal.Zero,
				TotalWithdrawn:         decimal.Zero,
				TotalPendingWithdrawal: decimal.Zero,
				TotalFees:              decimal.Zero,
			}
			r.s.balances[key] = b
		}
		balance = b
	})
	return &balance, nil
}

func (r *BalanceRepo) Update(ctx context.Context, balance *domain.SellerBalance) error {
	var err error
	r.s.access(ctx, func() {
		key := balanceKey{sellerID: balance.SellerID, shopID: balance.ShopID}
		stored, ok := r.s.balances[key]
		if !ok || stored.ID != balance.ID {
			err = domain.ErrNotFound
			return
		}
		if balance.AvailableBalance.IsNegative() || balance.PendingBalance.IsNegative() || balance.TotalPendingWithdrawal.IsNegative() {
			err = errors.New("balance check constraint violated")
			return
		}
		r.s.balances[key] = *balance
	})
	return err
}

func (r *BalanceRepo) Get(ctx context.Context, sellerID, shopID int64) (*domain.SellerBalance, error) {
	var found *domain.SellerBalance
	r.s.access(ctx, func() {
		if b, ok := r.s.balances[balanceKey{sellerID: sellerID, shopID: shopID}]; ok {
			found = &b
		}
	})
	return found, nil
}

func (r *BalanceRepo) SumByShop(ctx context.Context, shopID int64) (*domain.SellerBalance, error) {
	var found *domain.SellerBalance
	r.s.access(ctx, func() {
		for k, b := range r.s.balances {
			if k.shopID != shopID {
				continue
			}
			if found == nil {
				found = &domain.SellerBalance{
					ShopID:                 shopID,
					AvailableBalance:       decimal.Zero,
					PendingBalance:         decimal.Zero,
					TotalEarned:            decimal.Zero,
					TotalWithdrawn:         decimal.Zero,
					TotalPendingWithdrawal: decimal.Zero,
					TotalFees:              decimal.Zero,
				}
			}
			found.AvailableBalance = found.AvailableBalance.Add(b.AvailableBalance)
			found.PendingBalance = found.PendingBalance.Add(b.PendingBalance)
			found.TotalEarned = found.TotalEarned.Add(b.TotalEarned)
			found.TotalWithdrawn = found.TotalWithdrawn.Add(b.TotalWithdrawn)
			found.TotalPendingWithdrawal = found.TotalPendingWithdrawal.Add(b.TotalPendingWithdrawal)
			found.TotalFees = found.TotalFees.Add(b.TotalFees)
			if b.UpdatedAt.After(found.UpdatedAt) {
				found.UpdatedAt = b.UpdatedAt
			}
		}
	})
	return found, nil
}
