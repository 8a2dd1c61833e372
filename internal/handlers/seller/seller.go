package seller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/internal/dto"
	"github.com/GlebRadaev/sellerpayout/internal/handlers/httperror"
	"github.com/GlebRadaev/sellerpayout/internal/handlers/params"
	"github.com/GlebRadaev/sellerpayout/pkg/auth"
	"github.com/GlebRadaev/sellerpayout/pkg/utils"
)

//go:generate mockgen -source=seller.go -destination=mock_seller.go -package=seller

const IdempotencyKeyHeader = "Idempotency-Key"

type SettlementService interface {
	CheckOwnership(ctx context.Context, sellerID, shopID int64) (*domain.Shop, error)
	RequestSettlement(ctx context.Context, req domain.SettlementRequest) (*domain.Settlement, error)
}

type BalanceService interface {
	GetBalance(ctx context.Context, sellerID, shopID int64) (*domain.SellerBalance, error)
	ListSettlements(ctx context.Context, filter domain.SettlementFilter) (*domain.SettlementPage, error)
}

type PayoutService interface {
	Cancel(ctx context.Context, id int64, actor domain.Actor) (*domain.Settlement, error)
}

type SellerHandler struct {
	settlementService SettlementService
	balanceService    BalanceService
	payoutService     PayoutService
}

func New(settlementService SettlementService, balanceService BalanceService, payoutService PayoutService) *SellerHandler {
	return &SellerHandler{
		settlementService: settlementService,
		balanceService:    balanceService,
		payoutService:     payoutService,
	}
}

// RequestSettlement godoc
//
//	@Summary		Request a payout
//	@Description	Reserve part of the shop's available balance for a payout. Repeating the request with the same Idempotency-Key returns the settlement created the first time.
//	@Tags			Seller
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			shopID			path		int							true	"Shop ID"
//	@Param			Idempotency-Key	header		string						false	"Request key (UUID)"
//	@Param			request			body		dto.SettlementRequestDTO	true	"Payout request"
//	@Success		201				{object}	dto.SettlementResponseDTO	"Settlement created"
//	@Failure		400				{object}	utils.Response				"Invalid request"
//	@Failure		401				{object}	utils.Response				"User not authorized"
//	@Failure		402				{object}	utils.Response				"Insufficient balance"
//	@Failure		403				{object}	utils.Response				"Shop belongs to another seller"
//	@Failure		503				{object}	utils.Response				"Shop directory unavailable"
//	@Failure		500				{object}	utils.Response				"Internal server error"
//	@Router			/api/seller/shops/{shopID}/settlements [post]
func (h *SellerHandler) RequestSettlement(w http.ResponseWriter, r *http.Request) {
	sellerID, _, _ := auth.UserFromContext(r.Context())

	shopID, err := params.PathID(r, "shopID")
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}

	var requestKey uuid.UUID
	if raw := r.Header.Get(IdempotencyKeyHeader); raw != "" {
		if requestKey, err = uuid.Parse(raw); err != nil {
			httperror.BadRequest(w, "Idempotency-Key must be a UUID")
			return
		}
	}

	var req dto.SettlementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperror.BadRequest(w, "invalid request body")
		return
	}

	// ownership is checked by the service
	request := req.ToDomain(sellerID, shopID)
	request.RequestKey = requestKey
	settlement, err := h.settlementService.RequestSettlement(r.Context(), request)
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSettlementResponse(settlement))
}

// GetBalance godoc
//
//	@Summary		Get shop balance
//	@Description	Available, pending and running totals of the seller's shop.
//	@Tags			Seller
//	@Security		BearerAuth
//	@Produce		json
//	@Param			shopID	path		int						true	"Shop ID"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Shop belongs to another seller"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/seller/shops/{shopID}/balance [get]
func (h *SellerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	sellerID, _, _ := auth.UserFromContext(r.Context())

	shopID, err := params.PathID(r, "shopID")
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	if _, err := h.settlementService.CheckOwnership(r.Context(), sellerID, shopID); err != nil {
		httperror.Respond(w, r, err)
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), sellerID, shopID)
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponse(balance))
}

// ListSettlements godoc
//
//	@Summary		List shop settlements
//	@Description	Settlement history of the seller's shop, newest first.
//	@Tags			Seller
//	@Security		BearerAuth
//	@Produce		json
//	@Param			shopID		path		int								true	"Shop ID"
//	@Param			status		query		string							false	"Settlement status"
//	@Param			from		query		string							false	"Requested at or after (RFC 3339 or YYYY-MM-DD)"
//	@Param			to			query		string							false	"Requested before (RFC 3339 or YYYY-MM-DD)"
//	@Param			page		query		int								false	"Page, from 1"
//	@Param			page_size	query		int								false	"Page size"
//	@Success		200			{object}	dto.SettlementListResponseDTO	"Settlements"
//	@Failure		400			{object}	utils.Response					"Invalid filter"
//	@Failure		401			{object}	utils.Response					"User not authorized"
//	@Failure		403			{object}	utils.Response					"Shop belongs to another seller"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/seller/shops/{shopID}/settlements [get]
func (h *SellerHandler) ListSettlements(w http.ResponseWriter, r *http.Request) {
	sellerID, _, _ := auth.UserFromContext(r.Context())

	shopID, err := params.PathID(r, "shopID")
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	from, to, err := params.Range(r)
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	page, pageSize, err := params.Page(r)
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	if _, err := h.settlementService.CheckOwnership(r.Context(), sellerID, shopID); err != nil {
		httperror.Respond(w, r, err)
		return
	}

	result, err := h.balanceService.ListSettlements(r.Context(), domain.SettlementFilter{
		Status:   domain.SettlementStatus(r.URL.Query().Get("status")),
		SellerID: sellerID,
		ShopID:   shopID,
		From:     from,
		To:       to,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSettlementListResponse(result))
}

// CancelSettlement godoc
//
//	@Summary		Cancel a payout
//	@Description	Cancel a pending or approved settlement of the seller and release the reserved funds.
//	@Tags			Seller
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Settlement ID"
//	@Success		200	{object}	dto.SettlementResponseDTO	"Cancelled settlement"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Settlement belongs to another seller"
//	@Failure		404	{object}	utils.Response				"Settlement not found"
//	@Failure		409	{object}	utils.Response				"Settlement can no longer be cancelled"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/seller/settlements/{id}/cancel [post]
func (h *SellerHandler) CancelSettlement(w http.ResponseWriter, r *http.Request) {
	userID, role, _ := auth.UserFromContext(r.Context())

	id, err := params.PathID(r, "id")
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}

	settlement, err := h.payoutService.Cancel(r.Context(), id, domain.Actor{UserID: userID, Role: domain.Role(role)})
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSettlementResponse(settlement))
}
