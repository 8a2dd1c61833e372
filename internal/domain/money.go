package domain

import "github.com/shopspring/decimal"

// MoneyPlaces is the currency precision used for every stored amount.
const MoneyPlaces = 2

// RatePlaces is the precision of a stored commission rate.
const RatePlaces = 4

// RoundMoney rounds half away from zero to two places. Amounts here are never
// negative, so this is round-half-up.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// SplitCommission returns the commission and the seller's share of an order.
// The share is derived by subtraction so the two always add up to the order amount.
func SplitCommission(orderAmount, rate decimal.Decimal) (commission, share decimal.Decimal) {
	commission = RoundMoney(orderAmount.Mul(rate))
	if commission.GreaterThan(orderAmount) {
		commission = orderAmount
	}
	if commission.IsNegative() {
		commission = decimal.Zero
	}
	return commission, orderAmount.Sub(commission)
}

// HasMoneyPrecision reports whether d has at most two fraction digits.
func HasMoneyPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyPlaces))
}

// ValidCommissionRate reports whether rate is within [0, 1] and can be stored
// without rounding.
func ValidCommissionRate(rate decimal.Decimal) bool {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return false
	}
	return rate.Equal(rate.Truncate(RatePlaces))
}
