package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/sellerpayout/internal/config"
	"github.com/GlebRadaev/sellerpayout/internal/handlers/admin"
	"github.com/GlebRadaev/sellerpayout/internal/repo"
	"github.com/GlebRadaev/sellerpayout/internal/service"
	"github.com/GlebRadaev/sellerpayout/internal/service/settlementservice"
	"github.com/GlebRadaev/sellerpayout/internal/testutil"
	"github.com/GlebRadaev/sellerpayout/pkg/auth"
)

const (
	testSecret = "test-secret"
	testAPIKey = "gateway-key"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := testutil.NewStore()
	services := service.New(&repo.Repositories{
		OrderRepo:      store.Orders(),
		LedgerRepo:     store.Ledger(),
		SettlementRepo: store.SettlementRepo(),
		BalanceRepo:    store.Balances(),
		TxManager:      store.TxManager(),
	}, store.Shops(), settlementservice.Config{HoldPeriod: time.Hour})

	h := New(services, admin.NewMockAccrualRunner(ctrl), &config.Config{JWTSecret: testSecret})

	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.SellerHandler)
	assert.NotNil(t, h.AdminHandler)
	assert.NotNil(t, h.WebhookHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockSellerHandler := NewMockSellerHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)
	mockWebhookHandler := NewMockWebhookHandler(ctrl)

	mockSellerHandler.EXPECT().RequestSettlement(gomock.Any(), gomock.Any()).AnyTimes()
	mockSellerHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockSellerHandler.EXPECT().ListSettlements(gomock.Any(), gomock.Any()).AnyTimes()
	mockSellerHandler.EXPECT().CancelSettlement(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ListSettlements(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetSettlement(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().TotalSettled(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().Approve(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().Process(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().Complete(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().Fail(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().Cancel(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().RunAccrual(gomock.Any(), gomock.Any()).AnyTimes()
	mockWebhookHandler.EXPECT().PayoutCompleted(gomock.Any(), gomock.Any()).AnyTimes()
	mockWebhookHandler.EXPECT().PayoutFailed(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewJWTService(testSecret)
	hasher := &auth.HashService{}
	keyHash, err := hasher.HashKey(testAPIKey)
	require.NoError(t, err)

	h := &Handlers{
		SellerHandler:  mockSellerHandler,
		AdminHandler:   mockAdminHandler,
		WebhookHandler: mockWebhookHandler,
		jwtService:     jwtService,
		hasher:         hasher,
		webhookKeyHash: keyHash,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	sellerToken, err := jwtService.GenerateJWT(7, auth.RoleSeller, time.Now().Add(time.Hour))
	require.NoError(t, err)
	adminToken, err := jwtService.GenerateJWT(1, auth.RoleAdmin, time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		method string
		url    string
		token  string
		apiKey string
		status int
	}{
		{"POST", "/api/seller/shops/3/settlements", "", "", http.StatusUnauthorized},
		{"POST", "/api/seller/shops/3/settlements", sellerToken, "", http.StatusOK},
		{"GET", "/api/seller/shops/3/settlements", sellerToken, "", http.StatusOK},
		{"GET", "/api/seller/shops/3/balance", sellerToken, "", http.StatusOK},
		{"GET", "/api/seller/shops/3/balance", adminToken, "", http.StatusForbidden},
		{"POST", "/api/seller/settlements/9/cancel", sellerToken, "", http.StatusOK},
		{"GET", "/api/admin/settlements", "", "", http.StatusUnauthorized},
		{"GET", "/api/admin/settlements", sellerToken, "", http.StatusForbidden},
		{"GET", "/api/admin/settlements", adminToken, "", http.StatusOK},
		{"GET", "/api/admin/settlements/total", adminToken, "", http.StatusOK},
		{"GET", "/api/admin/settlements/9", adminToken, "", http.StatusOK},
		{"POST", "/api/admin/settlements/9/approve", adminToken, "", http.StatusOK},
		{"POST", "/api/admin/settlements/9/process", adminToken, "", http.StatusOK},
		{"POST", "/api/admin/settlements/9/complete", adminToken, "", http.StatusOK},
		{"POST", "/api/admin/settlements/9/fail", adminToken, "", http.StatusOK},
		{"POST", "/api/admin/settlements/9/cancel", adminToken, "", http.StatusOK},
		{"GET", "/api/admin/shops/3/balance", adminToken, "", http.StatusOK},
		{"GET", "/api/admin/shops/3/reconciliation", adminToken, "", http.StatusOK},
		{"POST", "/api/admin/accruals/run", adminToken, "", http.StatusOK},
		{"POST", "/api/webhooks/payouts/9/completed", "", "", http.StatusUnauthorized},
		{"POST", "/api/webhooks/payouts/9/completed", adminToken, "wrong", http.StatusUnauthorized},
		{"POST", "/api/webhooks/payouts/9/completed", "", testAPIKey, http.StatusOK},
		{"POST", "/api/webhooks/payouts/9/failed", "", testAPIKey, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			if tt.apiKey != "" {
				req.Header.Set(auth.APIKeyHeader, tt.apiKey)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
