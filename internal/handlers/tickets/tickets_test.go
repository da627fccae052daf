package tickets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/dto"
	"github.com/GlebRadaev/rafflemart/pkg/auth"
)

func NewMock(t *testing.T) (*TicketHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func authorized(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, "u1"))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.TicketBalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), "u1").
					Return(&domain.TicketBalance{UserID: "u1", Balance: 42, EarnedTotal: 50, SpentTotal: 8}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.TicketBalanceResponseDTO{Balance: 42, EarnedTotal: 50, SpentTotal: 8},
		},
		{
			name: "Store unavailable",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), "u1").Return(nil, domain.Unavailable(errors.New("down"), "get balance"))
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorized(httptest.NewRequest(http.MethodGet, "/api/user/tickets", nil))
			rr := httptest.NewRecorder()
			handler.GetBalance(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.TicketBalanceResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedBody, resp)
			}
		})
	}
}

func TestGetPurchasesHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.PurchaseResponseDTO
	}{
		{
			name: "History exists",
			prepareMock: func() {
				service.EXPECT().GetPurchases(gomock.Any(), "u1").Return([]domain.Purchase{
					{ID: "p1", OrderID: "o1", UserID: "u1", Tickets: 50, Amount: decimal.NewFromInt(500), CreatedAt: now},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.PurchaseResponseDTO{{OrderID: "o1", Tickets: 50, Amount: "500.00", CreatedAt: now}},
		},
		{
			name: "No purchases",
			prepareMock: func() {
				service.EXPECT().GetPurchases(gomock.Any(), "u1").Return([]domain.Purchase{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorized(httptest.NewRequest(http.MethodGet, "/api/user/purchases", nil))
			rr := httptest.NewRecorder()
			handler.GetPurchases(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var resp []dto.PurchaseResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedBody, resp)
			}
		})
	}
}
