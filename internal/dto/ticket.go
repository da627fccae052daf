package dto

import "time"

type TicketBalanceResponseDTO struct {
	Balance     int64 `json:"balance" example:"42"`
	EarnedTotal int64 `json:"earned_total" example:"50"`
	SpentTotal  int64 `json:"spent_total" example:"8"`
}

type PurchaseResponseDTO struct {
	OrderID   string    `json:"order_id" example:"4f7c2b9e-0a1d-4c8e-9f3b-2d6e8a1c5b70"`
	Tickets   int64     `json:"tickets" example:"50"`
	Amount    string    `json:"amount" example:"500.00"`
	CreatedAt time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
