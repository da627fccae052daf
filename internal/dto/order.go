package dto

import (
	"time"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/pricing"
)

type OrderResponseDTO struct {
	Number        string        `json:"number" example:"4539578763621486"`
	Status        string        `json:"status" example:"pending"`
	PaymentMethod string        `json:"payment_method" example:"processor"`
	Items         []LineItemDTO `json:"items"`
	Total         string        `json:"total" example:"500.00"`
	TotalCents    int64         `json:"total_cents" example:"50000"`
	TotalTickets  int64         `json:"total_tickets" example:"50"`
	PaymentURL    string        `json:"payment_url,omitempty" example:"https://pay.example.com/cs_1"`
	ExpiresAt     string        `json:"expires_at,omitempty" example:"2020-12-09T16:39:57Z"`
	CreatedAt     string        `json:"created_at" example:"2020-12-09T16:09:57Z"`
}

func Order(order *domain.Order) OrderResponseDTO {
	resp := OrderResponseDTO{
		Number:        order.Number,
		Status:        string(order.Status),
		PaymentMethod: string(order.PaymentMethod),
		Items:         LineItems(order.Items),
		Total:         order.TotalAmount.StringFixed(2),
		TotalCents:    pricing.ToMinorUnits(order.TotalAmount),
		TotalTickets:  order.TotalTickets,
		PaymentURL:    order.PaymentURL,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
	}
	if order.ExpiresAt != nil {
		resp.ExpiresAt = order.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}
