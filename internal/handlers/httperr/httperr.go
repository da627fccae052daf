package httperr

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/pkg/utils"
)

// Response is the error body returned by every API route.
type Response struct {
	Kind       string `json:"kind" example:"invalid_quantity"`
	Message    string `json:"message" example:"quantity 0 for product A is out of range"`
	RetryAfter int    `json:"retry_after,omitempty" example:"30"`
}

var statuses = map[string]int{
	"invalid_product":        http.StatusBadRequest,
	"invalid_quantity":       http.StatusBadRequest,
	"empty_cart":             http.StatusBadRequest,
	"invalid_total":          http.StatusBadRequest,
	"invalid_email":          http.StatusBadRequest,
	"invalid_payment_method": http.StatusBadRequest,
	"invalid_ticket_amount":  http.StatusBadRequest,
	"insufficient_tickets":   http.StatusConflict,
	"order_not_found":        http.StatusNotFound,
	"order_not_pending":      http.StatusConflict,
	"payment_mismatch":       http.StatusConflict,
	"prize_not_found":        http.StatusNotFound,
	"prize_closed":           http.StatusConflict,
	"winner_already_drawn":   http.StatusConflict,
	"rate_limited":           http.StatusTooManyRequests,
	"upstream_unavailable":   http.StatusServiceUnavailable,
	"login_taken":            http.StatusConflict,
	"invalid_credentials":    http.StatusUnauthorized,
	"invalid_password":       http.StatusBadRequest,
	"invalid_prize":          http.StatusBadRequest,
}

func Status(err error) int {
	if code, ok := statuses[domain.Kind(err)]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// Write maps err to its status and writes the error body. Internal errors are
// logged and reported without details.
func Write(w http.ResponseWriter, err error) {
	WriteRetry(w, err, 0)
}

func WriteRetry(w http.ResponseWriter, err error, retryAfter int) {
	kind := domain.Kind(err)
	code := Status(err)
	message := err.Error()
	switch code {
	case http.StatusInternalServerError:
		zap.L().Error("request failed", zap.Error(err))
		message = "internal server error"
	case http.StatusServiceUnavailable:
		zap.L().Warn("upstream unavailable", zap.Error(err))
		message = "service temporarily unavailable"
	}
	if retryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	}
	utils.RespondWithJSON(w, code, Response{Kind: kind, Message: message, RetryAfter: retryAfter})
}

// BadRequest reports a malformed request body or parameter.
func BadRequest(w http.ResponseWriter, message string) {
	utils.RespondWithJSON(w, http.StatusBadRequest, Response{Kind: "bad_request", Message: message})
}
