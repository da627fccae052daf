package tickets

//go:generate mockgen -source=tickets.go -destination=mock_tickets.go -package=tickets

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/dto"
	"github.com/GlebRadaev/rafflemart/internal/handlers/httperr"
	"github.com/GlebRadaev/rafflemart/pkg/auth"
	"github.com/GlebRadaev/rafflemart/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID string) (*domain.TicketBalance, error)
	GetPurchases(ctx context.Context, userID string) ([]domain.Purchase, error)
}

type TicketHandler struct {
	ticketService Service
}

func New(ticketService Service) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// GetBalance godoc
//
//	@Summary		Get ticket balance
//	@Description	Retrieve the spendable ticket balance and lifetime earned and spent totals for the authenticated user.
//	@Tags			Tickets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TicketBalanceResponseDTO
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		503	{object}	httperr.Response	"Store unavailable"
//	@Router			/api/user/tickets [get]
func (h *TicketHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	balance, err := h.ticketService.GetBalance(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TicketBalanceResponseDTO{
		Balance:     balance.Balance,
		EarnedTotal: balance.EarnedTotal,
		SpentTotal:  balance.SpentTotal,
	})
}

// GetPurchases godoc
//
//	@Summary		Get purchase history
//	@Description	List the confirmed orders that credited tickets to the authenticated user.
//	@Tags			Tickets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PurchaseResponseDTO
//	@Success		204	{object}	utils.Response		"No data available"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		503	{object}	httperr.Response	"Store unavailable"
//	@Router			/api/user/purchases [get]
func (h *TicketHandler) GetPurchases(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	purchases, err := h.ticketService.GetPurchases(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if len(purchases) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.PurchaseResponseDTO, 0, len(purchases))
	for _, p := range purchases {
		response = append(response, dto.PurchaseResponseDTO{
			OrderID:   p.OrderID,
			Tickets:   p.Tickets,
			Amount:    p.Amount.StringFixed(2),
			CreatedAt: p.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
