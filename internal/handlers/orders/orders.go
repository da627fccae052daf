package orders

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/dto"
	"github.com/GlebRadaev/rafflemart/internal/handlers/httperr"
	"github.com/GlebRadaev/rafflemart/pkg/auth"
	"github.com/GlebRadaev/rafflemart/pkg/utils"
	"github.com/GlebRadaev/rafflemart/pkg/validate"
)

type Service interface {
	GetOrders(ctx context.Context, userID string) ([]domain.Order, error)
	ConfirmOrder(ctx context.Context, number string) (*domain.Order, error)
	ConfirmPayment(ctx context.Context, number, sessionID string) (*domain.Order, error)
	CancelOrder(ctx context.Context, number string) (*domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// GetOrders godoc
//
//	@Summary		Get orders list for user
//	@Description	Retrieve the orders placed by the authorized user, newest first
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Success		204	{object}	utils.Response		"No data available"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		503	{object}	httperr.Response	"Store unavailable"
//	@Router			/api/user/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	orders, err := h.orderService.GetOrders(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, dto.Order(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ConfirmOrder godoc
//
//	@Summary		Confirm a pending order
//	@Description	Admin only. Marks a pending order as paid and credits its tickets exactly once.
//	@Tags			Admin
//	@Produce		json
//	@Param			number	path	string	true	"Order number"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		403	{object}	utils.Response		"Not an admin"
//	@Failure		404	{object}	httperr.Response	"Order not found"
//	@Failure		409	{object}	httperr.Response	"Order is not pending"
//	@Failure		422	{object}	httperr.Response	"Invalid order number format"
//	@Router			/api/admin/orders/{number}/confirm [post]
func (h *OrderHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderService.ConfirmOrder)
}

// CancelOrder godoc
//
//	@Summary		Cancel a pending order
//	@Description	Admin only. Cancels a pending order without touching the ticket ledger.
//	@Tags			Admin
//	@Produce		json
//	@Param			number	path	string	true	"Order number"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		403	{object}	utils.Response		"Not an admin"
//	@Failure		404	{object}	httperr.Response	"Order not found"
//	@Failure		409	{object}	httperr.Response	"Order is not pending"
//	@Failure		422	{object}	httperr.Response	"Invalid order number format"
//	@Router			/api/admin/orders/{number}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderService.CancelOrder)
}

func (h *OrderHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, number string) (*domain.Order, error)) {
	number := chi.URLParam(r, "number")
	if !validate.IsOrderNumber(number) {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, httperr.Response{Kind: "invalid_order_number", Message: "Invalid order number"})
		return
	}

	order, err := fn(r.Context(), number)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Order(order))
}
