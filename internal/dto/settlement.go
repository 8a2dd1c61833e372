package dto

import (
	"time"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
)

type BankDetailsDTO struct {
	BankName          string `json:"bank_name" example:"Northwind Bank"`
	AccountNumber     string `json:"account_number" example:"40817810099910004312"`
	AccountHolderName string `json:"account_holder_name" example:"Jane Roe"`
}

type SettlementRequestDTO struct {
	Amount      Money           `json:"amount" swaggertype:"number" example:"60.00"`
	Method      string          `json:"method" enums:"BANK_TRANSFER,CARD,WALLET" example:"BANK_TRANSFER"`
	BankDetails *BankDetailsDTO `json:"bank_details,omitempty"`
	CardNumber  string          `json:"card_number,omitempty" example:"4111111111111111"`
	WalletID    string          `json:"wallet_id,omitempty" example:"wallet-42"`
	Notes       string          `json:"notes,omitempty" example:"March payout"`
}

type ProcessRequestDTO struct {
	TransactionReference string `json:"transaction_reference,omitempty" example:"TXN123"`
}

type CompleteRequestDTO struct {
	TransactionReference string `json:"transaction_reference" example:"TXN123"`
}

type FailRequestDTO struct {
	Reason string `json:"reason" example:"bank rejected"`
}

type OrderSettlementDTO struct {
	OrderID          int64     `json:"order_id" example:"1001"`
	OrderAmount      Money     `json:"order_amount" swaggertype:"number" example:"200.00"`
	CommissionRate   string    `json:"commission_rate" example:"0.1"`
	Commission       Money     `json:"commission" swaggertype:"number" example:"20.00"`
	SettlementAmount Money     `json:"settlement_amount" swaggertype:"number" example:"180.00"`
	DeliveredAt      time.Time `json:"delivered_at" example:"2024-03-01T10:00:00Z"`
	EligibleAt       time.Time `json:"eligible_at" example:"2024-03-04T10:00:00Z"`
}

type SettlementResponseDTO struct {
	ID                   int64                `json:"id" example:"9"`
	RequestKey           string               `json:"request_key" example:"0b6a4f3e-8c0e-4f57-9a43-1f3c2a7d5e10"`
	SellerID             int64                `json:"seller_id" example:"7"`
	ShopID               int64                `json:"shop_id" example:"3"`
	Amount               Money                `json:"amount" swaggertype:"number" example:"60.00"`
	PlatformFee          Money                `json:"platform_fee" swaggertype:"number" example:"0.00"`
	NetAmount            Money                `json:"net_amount" swaggertype:"number" example:"60.00"`
	Status               string               `json:"status" example:"PENDING"`
	Method               string               `json:"method" example:"BANK_TRANSFER"`
	BankDetails          *BankDetailsDTO      `json:"bank_details,omitempty"`
	CardNumber           *string              `json:"card_number,omitempty" example:"************1111"`
	WalletID             *string              `json:"wallet_id,omitempty"`
	TransactionReference *string              `json:"transaction_reference,omitempty" example:"TXN123"`
	Notes                *string              `json:"notes,omitempty"`
	ProcessedBy          *int64               `json:"processed_by,omitempty" example:"1"`
	FailureReason        *string              `json:"failure_reason,omitempty"`
	RequestedAt          time.Time            `json:"requested_at" example:"2024-03-10T12:00:00Z"`
	ApprovedAt           *time.Time           `json:"approved_at,omitempty"`
	ProcessedAt          *time.Time           `json:"processed_at,omitempty"`
	CompletedAt          *time.Time           `json:"completed_at,omitempty"`
	FailedAt             *time.Time           `json:"failed_at,omitempty"`
	CancelledAt          *time.Time           `json:"cancelled_at,omitempty"`
	Orders               []OrderSettlementDTO `json:"orders,omitempty"`
}

type SettlementListResponseDTO struct {
	Items    []SettlementResponseDTO `json:"items"`
	Total    int                     `json:"total" example:"1"`
	Page     int                     `json:"page" example:"1"`
	PageSize int                     `json:"page_size" example:"20"`
}

type TotalSettledResponseDTO struct {
	Total Money     `json:"total" swaggertype:"number" example:"1520.40"`
	From  time.Time `json:"from" example:"2024-03-01T00:00:00Z"`
	To    time.Time `json:"to" example:"2024-04-01T00:00:00Z"`
}

func (d SettlementRequestDTO) ToDomain(sellerID, shopID int64) domain.SettlementRequest {
	req := domain.SettlementRequest{
		SellerID:   sellerID,
		ShopID:     shopID,
		Amount:     d.Amount.Decimal(),
		Method:     domain.PayoutMethod(d.Method),
		CardNumber: d.CardNumber,
		WalletID:   d.WalletID,
		Notes:      d.Notes,
	}
	if d.BankDetails != nil {
		req.Bank = &domain.BankDetails{
			BankName:          d.BankDetails.BankName,
			AccountNumber:     d.BankDetails.AccountNumber,
			AccountHolderName: d.BankDetails.AccountHolderName,
		}
	}
	return req
}

func NewSettlementResponse(s *domain.Settlement) SettlementResponseDTO {
	resp := SettlementResponseDTO{
		ID:                   s.ID,
		RequestKey:           s.RequestKey.String(),
		SellerID:             s.SellerID,
		ShopID:               s.ShopID,
		Amount:               Money(s.Amount),
		PlatformFee:          Money(s.PlatformFee),
		NetAmount:            Money(s.NetAmount),
		Status:               string(s.Status),
		Method:               string(s.Method),
		CardNumber:           s.CardNumber,
		WalletID:             s.WalletID,
		TransactionReference: s.TransactionReference,
		Notes:                s.Notes,
		ProcessedBy:          s.ProcessedBy,
		FailureReason:        s.FailureReason,
		RequestedAt:          s.RequestedAt,
		ApprovedAt:           s.ApprovedAt,
		ProcessedAt:          s.ProcessedAt,
		CompletedAt:          s.CompletedAt,
		FailedAt:             s.FailedAt,
		CancelledAt:          s.CancelledAt,
	}
	if s.Bank != nil {
		resp.BankDetails = &BankDetailsDTO{
			BankName:          s.Bank.BankName,
			AccountNumber:     s.Bank.AccountNumber,
			AccountHolderName: s.Bank.AccountHolderName,
		}
	}
	for _, o := range s.Orders {
		resp.Orders = append(resp.Orders, OrderSettlementDTO{
			OrderID:          o.OrderID,
			OrderAmount:      Money(o.OrderAmount),
			CommissionRate:   o.CommissionRate.String(),
			Commission:       Money(o.Commission),
			SettlementAmount: Money(o.SettlementAmount),
			DeliveredAt:      o.OrderDeliveredAt,
			EligibleAt:       o.EligibleAt,
		})
	}
	return resp
}

func NewSettlementListResponse(page *domain.SettlementPage) SettlementListResponseDTO {
	items := make([]SettlementResponseDTO, len(page.Items))
	for i := range page.Items {
		items[i] = NewSettlementResponse(&page.Items[i])
	}
	return SettlementListResponseDTO{
		Items:    items,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}

func NewBalanceResponse(b *domain.SellerBalance) BalanceResponseDTO {
	return BalanceResponseDTO{
		ShopID:                 b.ShopID,
		SellerID:               b.SellerID,
		AvailableBalance:       Money(b.AvailableBalance),
		PendingBalance:         Money(b.PendingBalance),
		TotalEarned:            Money(b.TotalEarned),
		TotalWithdrawn:         Money(b.TotalWithdrawn),
		TotalPendingWithdrawal: Money(b.TotalPendingWithdrawal),
		TotalFees:              Money(b.TotalFees),
		UpdatedAt:              b.UpdatedAt,
	}
}

func NewReconciliationResponse(r *domain.Reconciliation) ReconciliationResponseDTO {
	mismatches := r.Mismatches
	if mismatches == nil {
		mismatches = []string{}
	}
	return ReconciliationResponseDTO{
		ShopID:     r.ShopID,
		SellerID:   r.SellerID,
		Consistent: r.Consistent,
		Mismatches: mismatches,
		Balance:    NewBalanceResponse(&r.Balance),
		Ledger: LedgerTotalsDTO{
			TotalEarned:            Money(r.Ledger.TotalEarned),
			PendingBalance:         Money(r.Ledger.PendingBalance),
			TotalWithdrawn:         Money(r.Ledger.TotalWithdrawn),
			TotalFees:              Money(r.Ledger.TotalFees),
			TotalPendingWithdrawal: Money(r.Ledger.TotalPendingWithdrawal),
		},
	}
}
