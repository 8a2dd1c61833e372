package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/sellerpayout/internal/accrual"
	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/internal/dto"
	"github.com/GlebRadaev/sellerpayout/internal/handlers/httperror"
	"github.com/GlebRadaev/sellerpayout/internal/handlers/params"
	"github.com/GlebRadaev/sellerpayout/internal/service/balanceservice"
	"github.com/GlebRadaev/sellerpayout/pkg/auth"
	"github.com/GlebRadaev/sellerpayout/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

const monthLayout = "2006-01"

type BalanceService interface {
	GetBalance(ctx context.Context, sellerID, shopID int64) (*domain.SellerBalance, error)
	GetSettlement(ctx context.Context, id int64) (*domain.Settlement, error)
	ListSettlements(ctx context.Context, filter domain.SettlementFilter) (*domain.SettlementPage, error)
	TotalSettled(ctx context.Context, filter domain.SettlementFilter) (decimal.Decimal, error)
	Reconcile(ctx context.Context, sellerID, shopID int64) (*domain.Reconciliation, error)
}

type PayoutService interface {
	Approve(ctx context.Context, id, adminID int64) (*domain.Settlement, error)
	Process(ctx context.Context, id, adminID int64, reference string) (*domain.Settlement, error)
	Complete(ctx context.Context, id int64, reference string) (*domain.Settlement, error)
	Fail(ctx context.Context, id int64, reason string) (*domain.Settlement, error)
	Cancel(ctx context.Context, id int64, actor domain.Actor) (*domain.Settlement, error)
}

type AccrualRunner interface {
	RunOnce(ctx context.Context) (*accrual.Summary, error)
}

type AdminHandler struct {
	balanceService BalanceService
	payoutService  PayoutService
	accrualRunner  AccrualRunner
	now            func() time.Time
}

func New(balanceService BalanceService, payoutService PayoutService, accrualRunner AccrualRunner) *AdminHandler {
	return &AdminHandler{
		balanceService: balanceService,
		payoutService:  payoutService,
		accrualRunner:  accrualRunner,
		now:            time.Now,
	}
}

// ListSettlements godoc
//
//	@Summary		List settlements
//	@Description	Settlements across all sellers, newest first, filtered by status, seller, shop and request time.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status		query		string							false	"Settlement status"
//	@Param			seller_id	query		int								false	"Seller ID"
//	@Param			shop_id		query		int								false	"Shop ID"
//	@Param			from		query		string							false	"Requested at or after (RFC 3339 or YYYY-MM-DD)"
//	@Param			to			query		string							false	"Requested before (RFC 3339 or YYYY-MM-DD)"
//	@Param			page		query		int								false	"Page, from 1"
//	@Param			page_size	query		int								false	"Page size"
//	@Success		200			{object}	dto.SettlementListResponseDTO	"Settlements"
//	@Failure		400			{object}	utils.Response					"Invalid filter"
//	@Failure		401			{object}	utils.Response					"User not authorized"
//	@Failure		403			{object}	utils.Response					"Admin role required"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/settlements [get]
func (h *AdminHandler) ListSettlements(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}

	page, err := h.balanceService.ListSettlements(r.Context(), filter)
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSettlementListResponse(page))
}

// GetSettlement godoc
//
//	@Summary		Get settlement
//	@Description	Settlement with the order settlements attributed to it.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Settlement ID"
//	@Success		200	{object}	dto.SettlementResponseDTO	"Settlement"
//	@Failure		404	{object}	utils.Response				"Settlement not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/settlements/{id} [get]
func (h *AdminHandler) GetSettlement(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(r, "id")
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}

	settlement, err := h.balanceService.GetSettlement(r.Context(), id)
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSettlementResponse(settlement))
}

// TotalSettled godoc
//
//	@Summary		Total settled amount
//	@Description	Sum of net amounts of settlements completed in [from, to). Defaults to the current calendar month; month=YYYY-MM selects another one.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			from		query		string						false	"Completed at or after"
//	@Param			to			query		string						false	"Completed before"
//	@Param			month		query		string						false	"Calendar month, YYYY-MM"
//	@Param			seller_id	query		int							false	"Seller ID"
//	@Param			shop_id		query		int							false	"Shop ID"
//	@Success		200			{object}	dto.TotalSettledResponseDTO	"Total"
//	@Failure		400			{object}	utils.Response				"Invalid range"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/settlements/total [get]
func (h *AdminHandler) TotalSettled(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	if err := h.settleRange(r, &filter); err != nil {
		httperror.Respond(w, r, err)
		return
	}

	total, err := h.balanceService.TotalSettled(r.Context(), filter)
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TotalSettledResponseDTO{
		Total: dto.Money(total),
		From:  *filter.From,
		To:    *filter.To,
	})
}

// settleRange fills missing range bounds from month or the current month.
func (h *AdminHandler) settleRange(r *http.Request, filter *domain.SettlementFilter) error {
	if filter.From != nil && filter.To != nil {
		return nil
	}
	if filter.From != nil || filter.To != nil {
		return domain.NewValidationError("from and to must be given together")
	}

	month := h.now().UTC()
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := time.Parse(monthLayout, raw)
		if err != nil {
			return domain.NewValidationError("invalid month, expected YYYY-MM")
		}
		month = parsed
	}
	from, to := balanceservice.MonthRange(month)
	filter.From, filter.To = &from, &to
	return nil
}

// Approve godoc
//
//	@Summary		Approve settlement
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Settlement ID"
//	@Success		200	{object}	dto.SettlementResponseDTO	"Approved settlement"
//	@Failure		404	{object}	utils.Response				"Settlement not found"
//	@Failure		409	{object}	utils.Response				"Invalid state transition"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/settlements/{id}/approve [post]
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	adminID, _, _ := auth.UserFromContext(r.Context())
	id, err := params.PathID(r, "id")
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}

	settlement, err := h.payoutService.Approve(r.Context(), id, adminID)
	respondSettlement(w, r, settlement, err)
}

// Process godoc
//
//	@Summary		Hand settlement to the payment gateway
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Settlement ID"
//	@Param			request	body		dto.ProcessRequestDTO		false	"Gateway reference"
//	@Success		200		{object}	dto.SettlementResponseDTO	"Processing settlement"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		404		{object}	utils.Response				"Settlement not found"
//	@Failure		409		{object}	utils.Response				"Invalid state transition"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/settlements/{id}/process [post]
func (h *AdminHandler) Process(w http.ResponseWriter, r *http.Request) {
	adminID, _, _ := auth.UserFromContext(r.Context())
	id, err := params.PathID(r, "id")
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}

	var req dto.ProcessRequestDTO
	if err := decodeOptional(r, &req); err != nil {
		httperror.BadRequest(w, "invalid request body")
		return
	}

	settlement, err := h.payoutService.Process(r.Context(), id, adminID, req.TransactionReference)
	respondSettlement(w, r, settlement, err)
}

// Complete godoc
//
//	@Summary		Mark settlement completed
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Settlement ID"
//	@Param			request	body		dto.CompleteRequestDTO		true	"Transaction reference"
//	@Success		200		{object}	dto.SettlementResponseDTO	"Completed settlement"
//	@Failure		400		{object}	utils.Response				"Missing reference"
//	@Failure		404		{object}	utils.Response				"Settlement not found"
//	@Failure		409		{object}	utils.Response				"Invalid state transition"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/settlements/{id}/complete [post]
func (h *AdminHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(r, "id")
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}

	var req dto.CompleteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperror.BadRequest(w, "invalid request body")
		return
	}

	settlement, err := h.payoutService.Complete(r.Context(), id, req.TransactionReference)
	respondSettlement(w, r, settlement, err)
}

// Fail godoc
//
//	@Summary		Mark settlement failed
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Settlement ID"
//	@Param			request	body		dto.FailRequestDTO			true	"Failure reason"
//	@Success		200		{object}	dto.SettlementResponseDTO	"Failed settlement"
//	@Failure		400		{object}	utils.Response				"Missing reason"
//	@Failure		404		{object}	utils.Response				"Settlement not found"
//	@Failure		409		{object}	utils.Response				"Invalid state transition"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/settlements/{id}/fail [post]
func (h *AdminHandler) Fail(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(r, "id")
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}

	var req dto.FailRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperror.BadRequest(w, "invalid request body")
		return
	}

	settlement, err := h.payoutService.Fail(r.Context(), id, req.Reason)
	respondSettlement(w, r, settlement, err)
}

// Cancel godoc
//
//	@Summary		Cancel settlement
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Settlement ID"
//	@Success		200	{object}	dto.SettlementResponseDTO	"Cancelled settlement"
//	@Failure		404	{object}	utils.Response				"Settlement not found"
//	@Failure		409	{object}	utils.Response				"Invalid state transition"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/settlements/{id}/cancel [post]
func (h *AdminHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	adminID, _, _ := auth.UserFromContext(r.Context())
	id, err := params.PathID(r, "id")
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}

	settlement, err := h.payoutService.Cancel(r.Context(), id, domain.Actor{UserID: adminID, Role: domain.RoleAdmin})
	respondSettlement(w, r, settlement, err)
}

// GetBalance godoc
//
//	@Summary		Get shop balance
//	@Description	Balance of one seller in the shop, or the sum over every seller that has owned it when seller_id is omitted.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			shopID		path		int						true	"Shop ID"
//	@Param			seller_id	query		int						false	"Seller ID"
//	@Success		200			{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		400			{object}	utils.Response			"Invalid shop or seller id"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/shops/{shopID}/balance [get]
func (h *AdminHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	sellerID, shopID, err := balanceScope(r)
	if err != nil {
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

// Reconcile godoc
//
//	@Summary		Reconcile shop balance
//	@Description	Recompute the totals from the ledger and settlements and compare them with the stored balance, for one seller or the whole shop.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			shopID		path		int								true	"Shop ID"
//	@Param			seller_id	query		int								false	"Seller ID"
//	@Success		200			{object}	dto.ReconciliationResponseDTO	"Reconciliation report"
//	@Failure		400			{object}	utils.Response					"Invalid shop or seller id"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/shops/{shopID}/reconciliation [get]
func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	sellerID, shopID, err := balanceScope(r)
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}

	report, err := h.balanceService.Reconcile(r.Context(), sellerID, shopID)
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReconciliationResponse(report))
}

// RunAccrual godoc
//
//	@Summary		Run accrual now
//	@Description	Accrue eligible orders and mature held funds for every shop, waiting for the run to finish.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccrualRunResponseDTO	"Run summary"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/accruals/run [post]
func (h *AdminHandler) RunAccrual(w http.ResponseWriter, r *http.Request) {
	summary, err := h.accrualRunner.RunOnce(r.Context())
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccrualRunResponseDTO{
		Shops:         summary.Shops,
		Skipped:       summary.Skipped,
		Failed:        summary.Failed,
		Accrued:       summary.Accrued,
		AccruedAmount: dto.Money(summary.AccruedAmount),
		Matured:       summary.Matured,
		MaturedAmount: dto.Money(summary.MaturedAmount),
	})
}

func parseFilter(r *http.Request) (domain.SettlementFilter, error) {
	var (
		filter domain.SettlementFilter
		err    error
	)
	filter.Status = domain.SettlementStatus(r.URL.Query().Get("status"))
	if filter.SellerID, err = params.QueryInt64(r, "seller_id"); err != nil {
		return filter, err
	}
	if filter.ShopID, err = params.QueryInt64(r, "shop_id"); err != nil {
		return filter, err
	}
	if filter.From, filter.To, err = params.Range(r); err != nil {
		return filter, err
	}
	filter.Page, filter.PageSize, err = params.Page(r)
	return filter, err
}

// balanceScope reads the shop from the path and the optional seller_id. A
// missing seller means every seller of the shop.
func balanceScope(r *http.Request) (sellerID, shopID int64, err error) {
	if shopID, err = params.PathID(r, "shopID"); err != nil {
		return 0, 0, err
	}
	if sellerID, err = params.QueryInt64(r, "seller_id"); err != nil {
		return 0, 0, err
	}
	return sellerID, shopID, nil
}

// decodeOptional accepts an empty body.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func respondSettlement(w http.ResponseWriter, r *http.Request, settlement *domain.Settlement, err error) {
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSettlementResponse(settlement))
}
