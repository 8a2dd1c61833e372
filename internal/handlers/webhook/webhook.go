// Package webhook receives payout outcome callbacks from the payment gateway.
package webhook

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/internal/dto"
	"github.com/GlebRadaev/sellerpayout/internal/handlers/httperror"
	"github.com/GlebRadaev/sellerpayout/internal/handlers/params"
	"github.com/GlebRadaev/sellerpayout/pkg/utils"
)

//go:generate mockgen -source=webhook.go -destination=mock_webhook.go -package=webhook

type PayoutService interface {
	Complete(ctx context.Context, id int64, reference string) (*domain.Settlement, error)
	Fail(ctx context.Context, id int64, reason string) (*domain.Settlement, error)
}

type WebhookHandler struct {
	payoutService PayoutService
}

func New(payoutService PayoutService) *WebhookHandler {
	return &WebhookHandler{payoutService: payoutService}
}

// PayoutCompleted godoc
//
//	@Summary		Payout completed callback
//	@Tags			Webhooks
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Settlement ID"
//	@Param			request	body		dto.CompleteRequestDTO		true	"Gateway transaction reference"
//	@Success		200		{object}	dto.SettlementResponseDTO	"Completed settlement"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		401		{object}	utils.Response				"Invalid API key"
//	@Failure		404		{object}	utils.Response				"Settlement not found"
//	@Failure		409		{object}	utils.Response				"Invalid state transition"
//	@Router			/api/webhooks/payouts/{id}/completed [post]
func (h *WebhookHandler) PayoutCompleted(w http.ResponseWriter, r *http.Request) {
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
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	zap.L().Info("payout completed by gateway", zap.Int64("settlement_id", id), zap.String("reference", req.TransactionReference))
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSettlementResponse(settlement))
}

// PayoutFailed godoc
//
//	@Summary		Payout failed callback
//	@Tags			Webhooks
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Settlement ID"
//	@Param			request	body		dto.FailRequestDTO			true	"Failure reason"
//	@Success		200		{object}	dto.SettlementResponseDTO	"Failed settlement"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		401		{object}	utils.Response				"Invalid API key"
//	@Failure		404		{object}	utils.Response				"Settlement not found"
//	@Failure		409		{object}	utils.Response				"Invalid state transition"
//	@Router			/api/webhooks/payouts/{id}/failed [post]
func (h *WebhookHandler) PayoutFailed(w http.ResponseWriter, r *http.Request) {
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
	if err != nil {
		httperror.Respond(w, r, err)
		return
	}
	zap.L().Info("payout failed by gateway", zap.Int64("settlement_id", id), zap.String("reason", req.Reason))
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSettlementResponse(settlement))
}
