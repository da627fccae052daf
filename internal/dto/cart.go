package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/rafflemart/internal/domain"
)

// CartItemDTO is a line item as sent by the client. Price and name are
// accepted for compatibility and ignored.
type CartItemDTO struct {
	ProductID string           `json:"product_id" example:"A"`
	Quantity  int              `json:"quantity" example:"5"`
	Price     *decimal.Decimal `json:"price,omitempty" swaggertype:"string" example:"1"`
	Name      string           `json:"name,omitempty" example:"Ticket pack"`
}

type CartRequestDTO struct {
	Items []CartItemDTO `json:"items"`
}

type CheckoutRequestDTO struct {
	Items         []CartItemDTO `json:"items"`
	PaymentMethod string        `json:"payment_method" example:"manual_transfer"`
	Email         string        `json:"email,omitempty" example:"buyer@example.com"`
}

type LineItemDTO struct {
	ProductID        string `json:"product_id" example:"B"`
	Name             string `json:"name" example:"Bundle"`
	UnitPrice        string `json:"unit_price" example:"50.00"`
	PaidQuantity     int    `json:"paid_quantity" example:"10"`
	FreeQuantity     int    `json:"free_quantity" example:"2"`
	Subtotal         string `json:"subtotal" example:"500.00"`
	TicketsEarned    int64  `json:"tickets_earned" example:"50"`
	OriginalQuantity int    `json:"original_quantity" example:"12"`
}

type CartResponseDTO struct {
	Items        []LineItemDTO `json:"items"`
	Total        string        `json:"total" example:"500.00"`
	TotalCents   int64         `json:"total_cents" example:"50000"`
	TotalTickets int64         `json:"total_tickets" example:"50"`
}

func CartItems(items []CartItemDTO) []domain.CartLineItem {
	out := make([]domain.CartLineItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.CartLineItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return out
}

func LineItems(items []domain.ValidatedLineItem) []LineItemDTO {
	out := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, LineItemDTO{
			ProductID:        item.ProductID,
			Name:             item.Name,
			UnitPrice:        item.UnitPrice.StringFixed(2),
			PaidQuantity:     item.PaidQuantity,
			FreeQuantity:     item.FreeQuantity,
			Subtotal:         item.Subtotal.StringFixed(2),
			TicketsEarned:    item.TicketsEarned,
			OriginalQuantity: item.OriginalQuantity,
		})
	}
	return out
}
