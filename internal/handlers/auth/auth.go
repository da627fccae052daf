package auth

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/dto"
	"github.com/GlebRadaev/rafflemart/internal/handlers/httperr"
	"github.com/GlebRadaev/rafflemart/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, login, password string) (*domain.User, error)
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new user account with login and password. A zero ticket balance is opened for the user.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CredentialsDTO	true	"Login and password"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	httperr.Response	"Invalid request body"
//	@Failure		409		{object}	httperr.Response	"User already exists"
//	@Failure		500		{object}	httperr.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}
	user, err := h.authService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	h.respondWithToken(w, user, "User successfully registered")
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in and get a JWT. The token is returned in the body and the Authorization header.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CredentialsDTO	true	"Login and password"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	httperr.Response	"Invalid request body"
//	@Failure		401		{object}	httperr.Response	"Invalid credentials"
//	@Failure		500		{object}	httperr.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	h.respondWithToken(w, user, "User successfully authenticated")
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (dto.CredentialsDTO, bool) {
	var req dto.CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		httperr.BadRequest(w, "Invalid request body")
		return req, false
	}
	return req, true
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, user *domain.User, message string) {
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		Message: message,
		UserID:  user.ID,
		Token:   token,
		Admin:   user.IsAdmin,
	})
}
