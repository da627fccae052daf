package payments

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=payments

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/dto"
	"github.com/GlebRadaev/rafflemart/internal/handlers/httperr"
	"github.com/GlebRadaev/rafflemart/pkg/utils"
	"github.com/GlebRadaev/rafflemart/pkg/validate"
)

const (
	SecretHeader       = "X-Webhook-Secret"
	EventSessionPaid   = "checkout.session.completed"
	acknowledgedStatus = http.StatusOK
)

type Service interface {
	ConfirmPayment(ctx context.Context, number, sessionID string) (*domain.Order, error)
}

type PaymentHandler struct {
	orderService Service
	secret       []byte
}

func New(orderService Service, secret string) *PaymentHandler {
	return &PaymentHandler{
		orderService: orderService,
		secret:       []byte(secret),
	}
}

// Webhook godoc
//
//	@Summary		Payment processor webhook
//	@Description	Confirms the referenced order when its checkout session completes. Repeated deliveries are acknowledged without crediting twice.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			X-Webhook-Secret	header	string					true	"Shared webhook secret"
//	@Param			request				body	dto.WebhookRequestDTO	true	"Processor event"
//	@Success		200	{object}	utils.Response		"Event processed"
//	@Failure		400	{object}	httperr.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response		"Invalid secret"
//	@Failure		404	{object}	httperr.Response	"Order not found"
//	@Failure		409	{object}	httperr.Response	"Session does not match the order"
//	@Failure		503	{object}	httperr.Response	"Store unavailable"
//	@Router			/api/payments/webhook [post]
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	got := []byte(r.Header.Get(SecretHeader))
	if len(h.secret) == 0 || subtle.ConstantTimeCompare(got, h.secret) != 1 {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.WebhookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w, "Invalid request body")
		return
	}
	if req.Type != EventSessionPaid {
		zap.L().Debug("ignoring payment event", zap.String("type", req.Type))
		acknowledge(w, "Event ignored")
		return
	}
	if !validate.IsOrderNumber(req.Reference) {
		httperr.BadRequest(w, "Invalid order reference")
		return
	}

	order, err := h.orderService.ConfirmPayment(r.Context(), req.Reference, req.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotPending) {
			zap.L().Info("duplicate payment notification", zap.String("order", req.Reference), zap.String("session", req.SessionID))
			acknowledge(w, "Order already processed")
			return
		}
		httperr.Write(w, err)
		return
	}
	zap.L().Info("order paid",
		zap.String("order", order.Number),
		zap.String("session", req.SessionID),
		zap.Int64("tickets", order.TotalTickets),
	)
	acknowledge(w, "Order confirmed")
}

func acknowledge(w http.ResponseWriter, message string) {
	utils.RespondWithJSON(w, acknowledgedStatus, utils.Response{Status: acknowledgedStatus, Message: message})
}
