package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/sellerpayout/docs"
	"github.com/GlebRadaev/sellerpayout/internal/config"
	adminhandlers "github.com/GlebRadaev/sellerpayout/internal/handlers/admin"
	sellerhandlers "github.com/GlebRadaev/sellerpayout/internal/handlers/seller"
	webhookhandlers "github.com/GlebRadaev/sellerpayout/internal/handlers/webhook"
	"github.com/GlebRadaev/sellerpayout/internal/service"
	"github.com/GlebRadaev/sellerpayout/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type SellerHandler interface {
	RequestSettlement(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	ListSettlements(w http.ResponseWriter, r *http.Request)
	CancelSettlement(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListSettlements(w http.ResponseWriter, r *http.Request)
	GetSettlement(w http.ResponseWriter, r *http.Request)
	TotalSettled(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Fail(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
	RunAccrual(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	PayoutCompleted(w http.ResponseWriter, r *http.Request)
	PayoutFailed(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	SellerHandler  SellerHandler
	AdminHandler   AdminHandler
	WebhookHandler WebhookHandler

	jwtService     auth.JWTServiceInterface
	hasher         auth.HashServiceInterface
	webhookKeyHash string
}

func New(s *service.Services, accrualRunner adminhandlers.AccrualRunner, cfg *config.Config) *Handlers {
	return &Handlers{
		SellerHandler:  sellerhandlers.New(s.SettlementService, s.BalanceService, s.PayoutService),
		AdminHandler:   adminhandlers.New(s.BalanceService, s.PayoutService, accrualRunner),
		WebhookHandler: webhookhandlers.New(s.PayoutService),
		jwtService:     auth.NewJWTService(cfg.JWTSecret),
		hasher:         &auth.HashService{},
		webhookKeyHash: cfg.WebhookKeyHash,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api/seller", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwtService), auth.RequireRole(auth.RoleSeller))
		r.Route("/shops/{shopID}", func(r chi.Router) {
			r.Get("/balance", h.SellerHandler.GetBalance)
			r.Post("/settlements", h.SellerHandler.RequestSettlement)
			r.Get("/settlements", h.SellerHandler.ListSettlements)
		})
		r.Post("/settlements/{id}/cancel", h.SellerHandler.CancelSettlement)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwtService), auth.RequireRole(auth.RoleAdmin))
		r.Route("/settlements", func(r chi.Router) {
			r.Get("/", h.AdminHandler.ListSettlements)
			r.Get("/total", h.AdminHandler.TotalSettled)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.AdminHandler.GetSettlement)
				r.Post("/approve", h.AdminHandler.Approve)
				r.Post("/process", h.AdminHandler.Process)
				r.Post("/complete", h.AdminHandler.Complete)
				r.Post("/fail", h.AdminHandler.Fail)
				r.Post("/cancel", h.AdminHandler.Cancel)
			})
		})
		r.Route("/shops/{shopID}", func(r chi.Router) {
			r.Get("/balance", h.AdminHandler.GetBalance)
			r.Get("/reconciliation", h.AdminHandler.Reconcile)
		})
		r.Post("/accruals/run", h.AdminHandler.RunAccrual)
	})

	r.Route("/api/webhooks/payouts/{id}", func(r chi.Router) {
		r.Use(auth.APIKeyMiddleware(h.webhookKeyHash, h.hasher))
		r.Post("/completed", h.WebhookHandler.PayoutCompleted)
		r.Post("/failed", h.WebhookHandler.PayoutFailed)
	})

	return r
}
