package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name           string
		userID         int64
		role           string
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			userID:         123,
			role:           RoleSeller,
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Expired Token",
			userID:         123,
			role:           RoleAdmin,
			expirationTime: time.Now().Add(-time.Hour),
			expectError:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.userID, tt.role, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name         string
		tokenString  string
		setup        func() string
		expectError  bool
		expectedRole string
	}{
		{
			name: "Valid Seller Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, RoleSeller, time.Now().Add(time.Hour))
				return token
			},
			expectedRole: RoleSeller,
		},
		{
			name: "Valid Admin Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(1, RoleAdmin, time.Now().Add(time.Hour))
				return token
			},
			expectedRole: RoleAdmin,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, RoleSeller, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Other Secret",
			setup: func() string {
				token, _ := NewJWTService("other").GenerateJWT(123, RoleSeller, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Unknown Role",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, "buyer", time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Invalid Claims Type",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    Issuer,
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
		{
			name: "Foreign Issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					UserID:         123,
					Role:           RoleSeller,
					StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix(), Issuer: "storefront"},
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, claims.Role)
			}
		})
	}
}
