package domain

type SettlementStatus string

const (
	StatusPending    SettlementStatus = "PENDING"
	StatusApproved   SettlementStatus = "APPROVED"
	StatusProcessing SettlementStatus = "PROCESSING"
	StatusCompleted  SettlementStatus = "COMPLETED"
	StatusFailed     SettlementStatus = "FAILED"
	StatusCancelled  SettlementStatus = "CANCELLED"
)

// OrderStatusDelivered is the only order status settlement cares about.
const OrderStatusDelivered = "DELIVERED"

type PayoutMethod string

const (
	MethodBankTransfer PayoutMethod = "BANK_TRANSFER"
	MethodCard         PayoutMethod = "CARD"
	MethodWallet       PayoutMethod = "WALLET"
)

func (m PayoutMethod) Valid() bool {
	switch m {
	case MethodBankTransfer, MethodCard, MethodWallet:
		return true
	default:
		return false
	}
}

var transitions = map[SettlementStatus][]SettlementStatus{
	StatusPending:    {StatusApproved, StatusFailed, StatusCancelled},
	StatusApproved:   {StatusProcessing, StatusFailed, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusFailed},
}

func (s SettlementStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal statuses accept no further transitions.
func (s SettlementStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

func (s SettlementStatus) CanTransitionTo(next SettlementStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// HoldsReservation reports whether a settlement in this status still counts
// towards TotalPendingWithdrawal.
func (s SettlementStatus) HoldsReservation() bool {
	return s == StatusPending || s == StatusApproved || s == StatusProcessing
}
