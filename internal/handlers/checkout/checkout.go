package checkout

//go:generate mockgen -source=checkout.go -destination=mock_checkout.go -package=checkout

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/dto"
	"github.com/GlebRadaev/rafflemart/internal/handlers/httperr"
	"github.com/GlebRadaev/rafflemart/internal/pricing"
	"github.com/GlebRadaev/rafflemart/pkg/auth"
	"github.com/GlebRadaev/rafflemart/pkg/utils"
)

type Service interface {
	Revalidate(ctx context.Context, raw []domain.CartLineItem) (*domain.ValidatedCart, error)
	Checkout(ctx context.Context, userID string, raw []domain.CartLineItem, method domain.PaymentMethod, email string) (*domain.Order, error)
}

type CheckoutHandler struct {
	checkoutService Service
}

func New(checkoutService Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// Validate godoc
//
//	@Summary		Revalidate a cart
//	@Description	Price a cart against the current catalog. Client supplied prices and names are ignored.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CartRequestDTO	true	"Cart"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CartResponseDTO
//	@Failure		400	{object}	httperr.Response	"Invalid product, quantity or empty cart"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		429	{object}	httperr.Response	"Too many requests"
//	@Failure		503	{object}	httperr.Response	"Catalog unavailable"
//	@Router			/api/cart/validate [post]
func (h *CheckoutHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.CartRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, domain.Reject(domain.ErrEmptyCart, "cart must be a list of items"))
		return
	}

	cart, err := h.checkoutService.Revalidate(r.Context(), dto.CartItems(req.Items))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CartResponseDTO{
		Items:        dto.LineItems(cart.Items),
		Total:        cart.Total.StringFixed(2),
		TotalCents:   pricing.ToMinorUnits(cart.Total),
		TotalTickets: cart.TotalTickets,
	})
}

// Checkout godoc
//
//	@Summary		Place an order
//	@Description	Revalidate the cart and create a pending order. Processor payments return a hosted payment URL.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CheckoutRequestDTO	true	"Cart and payment method"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	httperr.Response	"Invalid cart, email or payment method"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		429	{object}	httperr.Response	"Too many requests"
//	@Failure		503	{object}	httperr.Response	"Payment processor or store unavailable"
//	@Router			/api/checkout [post]
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w, "Invalid request body")
		return
	}

	order, err := h.checkoutService.Checkout(r.Context(), userID, dto.CartItems(req.Items), domain.PaymentMethod(req.PaymentMethod), req.Email)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.Order(order))
}
