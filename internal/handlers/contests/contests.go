package contests

//go:generate mockgen -source=contests.go -destination=mock_contests.go -package=contests

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/dto"
	"github.com/GlebRadaev/rafflemart/internal/handlers/httperr"
	"github.com/GlebRadaev/rafflemart/internal/service/contestservice"
	"github.com/GlebRadaev/rafflemart/pkg/auth"
	"github.com/GlebRadaev/rafflemart/pkg/utils"
)

type Service interface {
	CreatePrize(ctx context.Context, name, description string, drawAt time.Time) (*domain.Prize, error)
	GetPrizes(ctx context.Context) ([]domain.Prize, error)
	GetEntries(ctx context.Context, userID string) ([]domain.Entry, error)
	GetWinner(ctx context.Context, prizeID string) (*domain.Winner, error)
	Enter(ctx context.Context, userID, prizeID string, tickets int64) (*domain.Entry, error)
	DrawWinner(ctx context.Context, prizeID string) (*contestservice.DrawResult, error)
	DrawDue(ctx context.Context) (*contestservice.DrawSummary, error)
}

type ContestHandler struct {
	contestService Service
}

func New(contestService Service) *ContestHandler {
	return &ContestHandler{
		contestService: contestService,
	}
}

// GetPrizes godoc
//
//	@Summary		List prizes
//	@Description	List every prize ordered by draw time.
//	@Tags			Contests
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PrizeResponseDTO
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		503	{object}	httperr.Response	"Store unavailable"
//	@Router			/api/prizes [get]
func (h *ContestHandler) GetPrizes(w http.ResponseWriter, r *http.Request) {
	prizes, err := h.contestService.GetPrizes(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	response := make([]dto.PrizeResponseDTO, 0, len(prizes))
	for _, p := range prizes {
		response = append(response, prizeDTO(p))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreatePrize godoc
//
//	@Summary		Create a prize
//	@Description	Admin only. Opens a prize for entries until its draw time.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreatePrizeRequestDTO	true	"Prize"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PrizeResponseDTO
//	@Failure		400	{object}	httperr.Response	"Missing name or draw time in the past"
//	@Failure		403	{object}	utils.Response		"Not an admin"
//	@Router			/api/admin/prizes [post]
func (h *ContestHandler) CreatePrize(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePrizeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w, "Invalid request body")
		return
	}
	prize, err := h.contestService.CreatePrize(r.Context(), req.Name, req.Description, req.DrawAt)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, prizeDTO(*prize))
}

// Enter godoc
//
//	@Summary		Enter a prize draw
//	@Description	Spend tickets to enter a prize draw. Each ticket is one chance to win.
//	@Tags			Contests
//	@Accept			json
//	@Produce		json
//	@Param			prizeID	path	string				true	"Prize ID"
//	@Param			request	body	dto.EnterRequestDTO	true	"Tickets to spend"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.EntryResponseDTO
//	@Failure		400	{object}	httperr.Response	"Ticket amount must be positive"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		404	{object}	httperr.Response	"Prize not found"
//	@Failure		409	{object}	httperr.Response	"Insufficient tickets or prize closed"
//	@Router			/api/prizes/{prizeID}/entries [post]
func (h *ContestHandler) Enter(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	prizeID := chi.URLParam(r, "prizeID")

	var req dto.EnterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w, "Invalid request body")
		return
	}

	entry, err := h.contestService.Enter(r.Context(), userID, prizeID, req.Tickets)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, entryDTO(*entry))
}

// GetEntries godoc
//
//	@Summary		List my entries
//	@Description	List the prize entries of the authenticated user, newest first.
//	@Tags			Contests
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.EntryResponseDTO
//	@Success		204	{object}	utils.Response		"No data available"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		503	{object}	httperr.Response	"Store unavailable"
//	@Router			/api/user/entries [get]
func (h *ContestHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	entries, err := h.contestService.GetEntries(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}
	response := make([]dto.EntryResponseDTO, 0, len(entries))
	for _, e := range entries {
		response = append(response, entryDTO(e))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetWinner godoc
//
//	@Summary		Get prize winner
//	@Description	Return the winner of a drawn prize.
//	@Tags			Contests
//	@Produce		json
//	@Param			prizeID	path	string	true	"Prize ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.WinnerResponseDTO
//	@Success		204	{object}	utils.Response		"Prize not drawn yet"
//	@Failure		404	{object}	httperr.Response	"Prize not found"
//	@Router			/api/prizes/{prizeID}/winner [get]
func (h *ContestHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	winner, err := h.contestService.GetWinner(r.Context(), chi.URLParam(r, "prizeID"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if winner == nil {
		utils.RespondWithError(w, http.StatusNoContent, "Prize not drawn yet")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WinnerResponseDTO{
		PrizeID:     winner.PrizeID,
		UserID:      winner.UserID,
		TicketsUsed: winner.TicketsUsed,
		DrawnAt:     winner.DrawnAt,
	})
}

// DrawWinner godoc
//
//	@Summary		Draw a prize winner
//	@Description	Admin only. Picks a winner weighted by tickets. A prize that is not due or has no entries is reported without a winner.
//	@Tags			Admin
//	@Produce		json
//	@Param			prizeID	path	string	true	"Prize ID"
//	@Security		BearerAuth
//	@Success		200	{object}	contestservice.DrawResult
//	@Failure		403	{object}	utils.Response		"Not an admin"
//	@Failure		404	{object}	httperr.Response	"Prize not found"
//	@Failure		409	{object}	httperr.Response	"Winner already drawn"
//	@Router			/api/admin/prizes/{prizeID}/draw [post]
func (h *ContestHandler) DrawWinner(w http.ResponseWriter, r *http.Request) {
	result, err := h.contestService.DrawWinner(r.Context(), chi.URLParam(r, "prizeID"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// DrawDue godoc
//
//	@Summary		Draw every due prize
//	@Description	Admin only. Draws winners for all prizes whose draw time has passed.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	contestservice.DrawSummary
//	@Failure		403	{object}	utils.Response		"Not an admin"
//	@Failure		503	{object}	httperr.Response	"Store unavailable"
//	@Router			/api/admin/draws [post]
func (h *ContestHandler) DrawDue(w http.ResponseWriter, r *http.Request) {
	summary, err := h.contestService.DrawDue(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

func prizeDTO(p domain.Prize) dto.PrizeResponseDTO {
	return dto.PrizeResponseDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		DrawAt:      p.DrawAt,
	}
}

func entryDTO(e domain.Entry) dto.EntryResponseDTO {
	return dto.EntryResponseDTO{
		ID:          e.ID,
		PrizeID:     e.PrizeID,
		TicketsUsed: e.TicketsUsed,
		CreatedAt:   e.CreatedAt,
	}
}
