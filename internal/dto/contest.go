package dto

import "time"

type PrizeResponseDTO struct {
	ID          string    `json:"id" example:"7d9c1e2a-3b4f-4a5c-8d6e-9f0a1b2c3d4e"`
	Name        string    `json:"name" example:"Weekend trip"`
	Description string    `json:"description,omitempty" example:"Two nights for two"`
	DrawAt      time.Time `json:"draw_at" example:"2020-12-31T18:00:00Z"`
}

type CreatePrizeRequestDTO struct {
	Name        string    `json:"name" example:"Weekend trip"`
	Description string    `json:"description,omitempty" example:"Two nights for two"`
	DrawAt      time.Time `json:"draw_at" example:"2020-12-31T18:00:00Z"`
}

type EnterRequestDTO struct {
	Tickets int64 `json:"tickets" example:"5"`
}

type EntryResponseDTO struct {
	ID          string    `json:"id" example:"0b8e4f6a-1c2d-4e3f-9a8b-7c6d5e4f3a2b"`
	PrizeID     string    `json:"prize_id" example:"7d9c1e2a-3b4f-4a5c-8d6e-9f0a1b2c3d4e"`
	TicketsUsed int64     `json:"tickets_used" example:"5"`
	CreatedAt   time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type WinnerResponseDTO struct {
	PrizeID     string    `json:"prize_id" example:"7d9c1e2a-3b4f-4a5c-8d6e-9f0a1b2c3d4e"`
	UserID      string    `json:"user_id" example:"5a1b2c3d-4e5f-6a7b-8c9d-0e1f2a3b4c5d"`
	TicketsUsed int64     `json:"tickets_used" example:"5"`
	DrawnAt     time.Time `json:"drawn_at" example:"2020-12-31T18:00:05Z"`
}
