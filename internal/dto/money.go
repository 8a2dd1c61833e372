package dto

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
)

// Money is a JSON number with exactly two fraction digits, e.g. 60.00.
type Money decimal.Decimal

func (m Money) Decimal() decimal.Decimal {
	return decimal.Decimal(m)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(domain.MoneyPlaces)), nil
}

// UnmarshalJSON accepts a number or a quoted number.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", data, err)
	}
	*m = Money(d)
	return nil
}
