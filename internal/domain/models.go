package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is owned by the order subsystem and only read here.
type Order struct {
	ID          int64           `db:"id"`
	ShopID      int64           `db:"shop_id"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Status      string          `db:"status"`
	DeliveredAt *time.Time      `db:"delivered_at"`
}

// Shop is the part of the shop directory this service needs.
type Shop struct {
	ID             int64           `json:"id"`
	SellerID       int64           `json:"seller_id"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

// OrderSettlement is the immutable commission split of one delivered order.
// SettlementID is written once, when a completed payout is attributed to it.
type OrderSettlement struct {
	ID               int64           `db:"id"`
	OrderID          int64           `db:"order_id"`
	ShopID           int64           `db:"shop_id"`
	SellerID         int64           `db:"seller_id"`
	SettlementID     *int64          `db:"settlement_id"`
	OrderAmount      decimal.Decimal `db:"order_amount"`
	CommissionRate   decimal.Decimal `db:"commission_rate"`
	Commission       decimal.Decimal `db:"commission"`
	SettlementAmount decimal.Decimal `db:"settlement_amount"`
	OrderDeliveredAt time.Time       `db:"order_delivered_at"`
	EligibleAt       time.Time       `db:"eligible_at"`
	Matured          bool            `db:"matured"`
	MaturedAt        *time.Time      `db:"matured_at"`
	CreatedAt        time.Time       `db:"created_at"`
}

type BankDetails struct {
	BankName          string `db:"bank_name"`
	AccountNumber     string `db:"bank_account_number"`
	AccountHolderName string `db:"bank_account_holder"`
}

// Settlement is one payout requested by a seller for one shop.
type Settlement struct {
	ID                   int64            `db:"id"`
	RequestKey           uuid.UUID        `db:"request_key"`
	SellerID             int64            `db:"seller_id"`
	ShopID               int64            `db:"shop_id"`
	Amount               decimal.Decimal  `db:"amount"`
	PlatformFee          decimal.Decimal  `db:"platform_fee"`
	NetAmount            decimal.Decimal  `db:"net_amount"`
	Status               SettlementStatus `db:"status"`
	Method               PayoutMethod     `db:"method"`
	Bank                 *BankDetails
	CardNumber           *string    `db:"card_number"`
	WalletID             *string    `db:"wallet_id"`
	TransactionReference *string    `db:"transaction_reference"`
	Notes                *string    `db:"notes"`
	ProcessedBy          *int64     `db:"processed_by"`
	RequestedAt          time.Time  `db:"requested_at"`
	ApprovedAt           *time.Time `db:"approved_at"`
	ProcessedAt          *time.Time `db:"processed_at"`
	CompletedAt          *time.Time `db:"completed_at"`
	FailedAt             *time.Time `db:"failed_at"`
	CancelledAt          *time.Time `db:"cancelled_at"`
	FailureReason        *string    `db:"failure_reason"`
	UpdatedAt            time.Time  `db:"updated_at"`

	Orders []OrderSettlement
}

// SellerBalance holds the running totals of one shop.
type SellerBalance struct {
	ID                     int64           `db:"id"`
	SellerID               int64           `db:"seller_id"`
	ShopID                 int64           `db:"shop_id"`
	AvailableBalance       decimal.Decimal `db:"available_balance"`
	PendingBalance         decimal.Decimal `db:"pending_balance"`
	TotalEarned            decimal.Decimal `db:"total_earned"`
	TotalWithdrawn         decimal.Decimal `db:"total_withdrawn"`
	TotalPendingWithdrawal decimal.Decimal `db:"total_pending_withdrawal"`
	TotalFees              decimal.Decimal `db:"total_fees"`
	UpdatedAt              time.Time       `db:"updated_at"`
}

// Unwithdrawn is what the shop still holds in any form.
func (b *SellerBalance) Unwithdrawn() decimal.Decimal {
	return b.AvailableBalance.Add(b.PendingBalance).Add(b.TotalPendingWithdrawal)
}

// Reconciles reports whether the running totals agree with each other.
func (b *SellerBalance) Reconciles() bool {
	return b.Unwithdrawn().Equal(b.TotalEarned.Sub(b.TotalWithdrawn).Sub(b.TotalFees))
}

// SettlementFilter narrows settlement history queries. Zero values mean "any".
type SettlementFilter struct {
	Status   SettlementStatus
	SellerID int64
	ShopID   int64
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

type SettlementPage struct {
	Items    []Settlement
	Total    int
	Page     int
	PageSize int
}

// SettlementRequest is a seller's withdrawal request.
type SettlementRequest struct {
	RequestKey uuid.UUID
	SellerID   int64
	ShopID     int64
	Amount     decimal.Decimal
	Method     PayoutMethod
	Bank       *BankDetails
	CardNumber string
	WalletID   string
	Notes      string
}

type AccrualResult struct {
	ShopID  int64
	Accrued int
	Skipped int
	Amount  decimal.Decimal
}

type MaturationResult struct {
	ShopID  int64
	Matured int
	Amount  decimal.Decimal
}

// LedgerTotals are balance figures recomputed from ledger rows.
type LedgerTotals struct {
	TotalEarned            decimal.Decimal
	PendingBalance         decimal.Decimal
	TotalWithdrawn         decimal.Decimal
	TotalFees              decimal.Decimal
	TotalPendingWithdrawal decimal.Decimal
}

// Reconciliation compares a stored balance with the totals recomputed from
// the ledger. SellerID is zero when the whole shop was checked.
type Reconciliation struct {
	SellerID   int64
	ShopID     int64
	Balance    SellerBalance
	Ledger     LedgerTotals
	Consistent bool
	Mismatches []string
}

type Role string

const (
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID int64
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
