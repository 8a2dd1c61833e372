package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{name: "Valid visa test number", number: "4111111111111111", valid: true},
		{name: "Valid with spaces", number: "4111 1111 1111 1111", valid: true},
		{name: "Valid with dashes", number: "5555-5555-5555-4444", valid: true},
		{name: "Luhn failure", number: "4111111111111112", valid: false},
		{name: "Too short", number: "79927398713", valid: false},
		{name: "Letters", number: "4111abcd11111111", valid: false},
		{name: "Empty", number: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsCardNumber(tt.number))
		})
	}
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "************1111", MaskCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "123", MaskCardNumber("123"))
}
