package contests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/dto"
	"github.com/GlebRadaev/rafflemart/internal/handlers/httperr"
	"github.com/GlebRadaev/rafflemart/internal/service/contestservice"
	"github.com/GlebRadaev/rafflemart/pkg/auth"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*ContestHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func request(method, target, body, prizeID string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("prizeID", prizeID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, "u1")
	return req.WithContext(ctx)
}

func TestGetPrizes(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().GetPrizes(gomock.Any()).Return([]domain.Prize{
		{ID: "p1", Name: "Bike", DrawAt: now},
	}, nil)

	rr := httptest.NewRecorder()
	handler.GetPrizes(rr, request(http.MethodGet, "/api/prizes", "", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.PrizeResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, []dto.PrizeResponseDTO{{ID: "p1", Name: "Bike", DrawAt: now}}, resp)
}

func TestCreatePrize(t *testing.T) {
	handler, service := NewMock(t)
	drawAt := now.Add(72 * time.Hour)

	service.EXPECT().CreatePrize(gomock.Any(), "Bike", "Red one", drawAt).
		Return(&domain.Prize{ID: "p9", Name: "Bike", Description: "Red one", DrawAt: drawAt}, nil)
	rr := httptest.NewRecorder()
	handler.CreatePrize(rr, request(http.MethodPost, "/api/admin/prizes", `{"name":"Bike","description":"Red one","draw_at":"2026-03-04T12:00:00Z"}`, ""))
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":"p9","name":"Bike","description":"Red one","draw_at":"2026-03-04T12:00:00Z"}`, rr.Body.String())

	service.EXPECT().CreatePrize(gomock.Any(), "", "", gomock.Any()).
		Return(nil, domain.Reject(domain.ErrInvalidPrize, "prize name is required"))
	rr = httptest.NewRecorder()
	handler.CreatePrize(rr, request(http.MethodPost, "/api/admin/prizes", `{"draw_at":"2026-03-04T12:00:00Z"}`, ""))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestEnter(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedKind string
	}{
		{
			name: "Entry created",
			body: `{"tickets":3}`,
			prepareMock: func() {
				service.EXPECT().Enter(gomock.Any(), "u1", "p1", int64(3)).
					Return(&domain.Entry{ID: "e1", UserID: "u1", PrizeID: "p1", TicketsUsed: 3, CreatedAt: now}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Balance too low",
			body: `{"tickets":5}`,
			prepareMock: func() {
				service.EXPECT().Enter(gomock.Any(), "u1", "p1", int64(5)).Return(nil, domain.ErrInsufficientTickets)
			},
			expectedCode: http.StatusConflict,
			expectedKind: "insufficient_tickets",
		},
		{
			name: "Prize closed",
			body: `{"tickets":1}`,
			prepareMock: func() {
				service.EXPECT().Enter(gomock.Any(), "u1", "p1", int64(1)).
					Return(nil, domain.Reject(domain.ErrPrizeClosed, "prize %s is closed", "p1"))
			},
			expectedCode: http.StatusConflict,
			expectedKind: "prize_closed",
		},
		{
			name: "Non positive tickets",
			body: `{"tickets":0}`,
			prepareMock: func() {
				service.EXPECT().Enter(gomock.Any(), "u1", "p1", int64(0)).Return(nil, domain.ErrInvalidTicketAmount)
			},
			expectedCode: http.StatusBadRequest,
			expectedKind: "invalid_ticket_amount",
		},
		{
			name:         "Invalid request body",
			body:         `{"tickets":"many"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedKind: "bad_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Enter(rr, request(http.MethodPost, "/api/prizes/p1/entries", tt.body, "p1"))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedKind != "" {
				var resp httperr.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedKind, resp.Kind)
			}
		})
	}
}

func TestGetEntries(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetEntries(gomock.Any(), "u1").Return([]domain.Entry{
		{ID: "e2", PrizeID: "p1", TicketsUsed: 2, CreatedAt: now},
		{ID: "e1", PrizeID: "p1", TicketsUsed: 1, CreatedAt: now},
	}, nil)
	rr := httptest.NewRecorder()
	handler.GetEntries(rr, request(http.MethodGet, "/api/user/entries", "", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.EntryResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)

	service.EXPECT().GetEntries(gomock.Any(), "u1").Return(nil, nil)
	rr = httptest.NewRecorder()
	handler.GetEntries(rr, request(http.MethodGet, "/api/user/entries", "", ""))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestGetWinner(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Winner drawn",
			prepareMock: func() {
				service.EXPECT().GetWinner(gomock.Any(), "p1").
					Return(&domain.Winner{PrizeID: "p1", UserID: "u7", EntryID: "e3", TicketsUsed: 4, DrawnAt: now}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not drawn yet",
			prepareMock: func() {
				service.EXPECT().GetWinner(gomock.Any(), "p1").Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Unknown prize",
			prepareMock: func() {
				service.EXPECT().GetWinner(gomock.Any(), "p1").Return(nil, domain.ErrPrizeNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.GetWinner(rr, request(http.MethodGet, "/api/prizes/p1/winner", "", "p1"))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDrawWinner(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Winner drawn",
			prepareMock: func() {
				service.EXPECT().DrawWinner(gomock.Any(), "p1").Return(&contestservice.DrawResult{
					PrizeID: "p1",
					Drawn:   true,
					Winner:  &domain.Winner{PrizeID: "p1", UserID: "u7", EntryID: "e3", TicketsUsed: 4, DrawnAt: now},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"prize_id":"p1","drawn":true,"winner":{"prize_id":"p1","user_id":"u7","entry_id":"e3","tickets_used":4,"drawn_at":"2026-03-01T12:00:00Z"}}`,
		},
		{
			name: "No entries",
			prepareMock: func() {
				service.EXPECT().DrawWinner(gomock.Any(), "p1").
					Return(&contestservice.DrawResult{PrizeID: "p1", Reason: contestservice.ReasonNoEntries}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"prize_id":"p1","drawn":false,"reason":"no_entries"}`,
		},
		{
			name: "Already drawn",
			prepareMock: func() {
				service.EXPECT().DrawWinner(gomock.Any(), "p1").Return(nil, domain.ErrWinnerAlreadyDrawn)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"kind":"winner_already_drawn","message":"winner already drawn"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.DrawWinner(rr, request(http.MethodPost, "/api/admin/prizes/p1/draw", "", "p1"))
			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestDrawDue(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().DrawDue(gomock.Any()).Return(&contestservice.DrawSummary{Drawn: 2, NoEntries: 1}, nil)
	rr := httptest.NewRecorder()
	handler.DrawDue(rr, request(http.MethodPost, "/api/admin/draws", "", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"drawn":2,"no_entries":1,"skipped":0,"failed":0}`, rr.Body.String())

	service.EXPECT().DrawDue(gomock.Any()).Return(nil, domain.Unavailable(errors.New("down"), "list due prizes"))
	rr = httptest.NewRecorder()
	handler.DrawDue(rr, request(http.MethodPost, "/api/admin/draws", "", ""))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
