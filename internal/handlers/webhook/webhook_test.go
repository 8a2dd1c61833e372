package webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
)

func NewMock(t *testing.T) (*WebhookHandler, *MockPayoutService) {
	ctrl := gomock.NewController(t)
	service := NewMockPayoutService(ctrl)
	return New(service), service
}

func newRequest(id, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/webhooks/payouts/"+id, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func settlement(status domain.SettlementStatus) *domain.Settlement {
	return &domain.Settlement{
		ID:          9,
		Amount:      decimal.RequireFromString("60"),
		PlatformFee: decimal.Zero,
		NetAmount:   decimal.RequireFromString("60"),
		Status:      status,
	}
}

func TestPayoutCompleted(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func(m *MockPayoutService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Completed",
			id:   "9",
			body: `{"transaction_reference":"TXN123"}`,
			prepareMock: func(m *MockPayoutService) {
				m.EXPECT().Complete(gomock.Any(), int64(9), "TXN123").Return(settlement(domain.StatusCompleted), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"status":"COMPLETED"`,
		},
		{
			name: "Replayed callback",
			id:   "9",
			body: `{"transaction_reference":"TXN123"}`,
			prepareMock: func(m *MockPayoutService) {
				m.EXPECT().Complete(gomock.Any(), int64(9), "TXN123").
					Return(nil, domain.NewTransitionError(domain.StatusCompleted, domain.StatusCompleted))
			},
			expectedCode: http.StatusConflict,
			expectedBody: string(domain.CodeInvalidStateTransition),
		},
		{
			name:         "Invalid body",
			id:           "9",
			body:         `TXN123`,
			prepareMock:  func(m *MockPayoutService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid id",
			id:           "nine",
			body:         `{"transaction_reference":"TXN123"}`,
			prepareMock:  func(m *MockPayoutService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.PayoutCompleted(w, newRequest(tt.id, tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestPayoutFailed(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(m *MockPayoutService)
		expectedCode int
	}{
		{
			name: "Failed",
			body: `{"reason":"account closed"}`,
			prepareMock: func(m *MockPayoutService) {
				m.EXPECT().Fail(gomock.Any(), int64(9), "account closed").Return(settlement(domain.StatusFailed), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Missing reason",
			body: `{}`,
			prepareMock: func(m *MockPayoutService) {
				m.EXPECT().Fail(gomock.Any(), int64(9), "").Return(nil, domain.NewValidationError("failure reason is required"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown settlement",
			body: `{"reason":"account closed"}`,
			prepareMock: func(m *MockPayoutService) {
				m.EXPECT().Fail(gomock.Any(), int64(9), "account closed").Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.PayoutFailed(w, newRequest("9", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
