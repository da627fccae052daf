package dto

// WebhookRequestDTO is sent by the payment processor when a checkout session
// completes.
type WebhookRequestDTO struct {
	Type      string `json:"type" example:"checkout.session.completed"`
	SessionID string `json:"session_id" example:"cs_1"`
	Reference string `json:"reference" example:"4539578763621486"`
}
