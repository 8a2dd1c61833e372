package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashKey(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		key         string
		expectError bool
	}{
		{
			name:        "Valid Key",
			key:         "gateway-key",
			expectError: false,
		},
		{
			name:        "Empty Key",
			key:         "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedKey, err := hashService.HashKey(tt.key)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, hashedKey)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hashedKey)
			}
		})
	}
}

func TestCompareKey(t *testing.T) {
	hashService := &HashService{}
	hashedKey, err := hashService.HashKey("gateway-key")
	require.NoError(t, err)

	tests := []struct {
		name      string
		hashedKey string
		key       string
		expected  bool
	}{
		{name: "Correct Key", hashedKey: hashedKey, key: "gateway-key", expected: true},
		{name: "Wrong Key", hashedKey: hashedKey, key: "other-key", expected: false},
		{name: "Missing Key", hashedKey: hashedKey, key: "", expected: false},
		{name: "No Hash Configured", hashedKey: "", key: "gateway-key", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hashService.CompareKey(tt.hashedKey, tt.key))
		})
	}
}
