package dto

// CredentialsDTO is the body of both register and login.
type CredentialsDTO struct {
	Login    string `json:"login" example:"alice"`
	Password string `json:"password" example:"s3cret-pass"`
}

type TokenResponseDTO struct {
	Message string `json:"message" example:"User successfully authenticated"`
	UserID  string `json:"user_id" example:"5a1b2c3d-4e5f-6a7b-8c9d-0e1f2a3b4c5d"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	Admin   bool   `json:"admin,omitempty"`
}
