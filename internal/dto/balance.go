package dto

import "time"

type BalanceResponseDTO struct {
	ShopID                 int64     `json:"shop_id" example:"3"`
	SellerID               int64     `json:"seller_id" example:"7"`
	AvailableBalance       Money     `json:"available_balance" swaggertype:"number" example:"40.00"`
	PendingBalance         Money     `json:"pending_balance" swaggertype:"number" example:"30.00"`
	TotalEarned            Money     `json:"total_earned" swaggertype:"number" example:"130.00"`
	TotalWithdrawn         Money     `json:"total_withdrawn" swaggertype:"number" example:"0.00"`
	TotalPendingWithdrawal Money     `json:"total_pending_withdrawal" swaggertype:"number" example:"60.00"`
	TotalFees              Money     `json:"total_fees" swaggertype:"number" example:"0.00"`
	UpdatedAt              time.Time `json:"updated_at,omitempty" example:"2024-03-10T12:00:00Z"`
}

type LedgerTotalsDTO struct {
	TotalEarned            Money `json:"total_earned" swaggertype:"number" example:"130.00"`
	PendingBalance         Money `json:"pending_balance" swaggertype:"number" example:"30.00"`
	TotalWithdrawn         Money `json:"total_withdrawn" swaggertype:"number" example:"0.00"`
	TotalFees              Money `json:"total_fees" swaggertype:"number" example:"0.00"`
	TotalPendingWithdrawal Money `json:"total_pending_withdrawal" swaggertype:"number" example:"60.00"`
}

type ReconciliationResponseDTO struct {
	ShopID     int64              `json:"shop_id" example:"3"`
	SellerID   int64              `json:"seller_id,omitempty" example:"7"`
	Consistent bool               `json:"consistent" example:"true"`
	Mismatches []string           `json:"mismatches" example:"total_earned"`
	Balance    BalanceResponseDTO `json:"balance"`
	Ledger     LedgerTotalsDTO    `json:"ledger"`
}

type AccrualRunResponseDTO struct {
	Shops         int   `json:"shops" example:"2"`
	Skipped       int   `json:"skipped" example:"0"`
	Failed        int   `json:"failed" example:"0"`
	Accrued       int   `json:"accrued" example:"5"`
	AccruedAmount Money `json:"accrued_amount" swaggertype:"number" example:"450.00"`
	Matured       int   `json:"matured" example:"3"`
	MaturedAmount Money `json:"matured_amount" swaggertype:"number" example:"120.00"`
}
