package payments

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/pkg/utils"
)

const number = "79927398713"

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service, "whsec"), service
}

func TestWebhook(t *testing.T) {
	handler, service := NewMock(t)
	paid := `{"type":"checkout.session.completed","session_id":"cs_1","reference":"` + number + `"}`

	tests := []struct {
		name            string
		secret          string
		body            string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:   "Paid session confirms order",
			secret: "whsec",
			body:   paid,
			prepareMock: func() {
				service.EXPECT().ConfirmPayment(gomock.Any(), number, "cs_1").
					Return(&domain.Order{Number: number, Status: domain.OrderStatusConfirmed, TotalTickets: 50}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Order confirmed",
		},
		{
			name:   "Repeated delivery is acknowledged",
			secret: "whsec",
			body:   paid,
			prepareMock: func() {
				service.EXPECT().ConfirmPayment(gomock.Any(), number, "cs_1").
					Return(nil, domain.Reject(domain.ErrOrderNotPending, "order %s is confirmed", number))
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Order already processed",
		},
		{
			name:   "Session of another order is refused",
			secret: "whsec",
			body:   paid,
			prepareMock: func() {
				service.EXPECT().ConfirmPayment(gomock.Any(), number, "cs_1").
					Return(nil, domain.Reject(domain.ErrPaymentMismatch, "order %s was not paid by session cs_1", number))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Wrong secret",
			secret:       "guess",
			body:         paid,
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:            "Other events are ignored",
			secret:          "whsec",
			body:            `{"type":"checkout.session.expired","reference":"` + number + `"}`,
			prepareMock:     func() {},
			expectedCode:    http.StatusOK,
			expectedMessage: "Event ignored",
		},
		{
			name:         "Reference fails checksum",
			secret:       "whsec",
			body:         `{"type":"checkout.session.completed","reference":"12345"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Store unavailable asks processor to retry",
			secret: "whsec",
			body:   paid,
			prepareMock: func() {
				service.EXPECT().ConfirmPayment(gomock.Any(), number, "cs_1").
					Return(nil, domain.Unavailable(errors.New("down"), "confirm order"))
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader(tt.body))
			req.Header.Set(SecretHeader, tt.secret)
			rr := httptest.NewRecorder()
			handler.Webhook(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedMessage != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
				assert.Equal(t, tt.expectedCode, resp.Status)
			}
		})
	}
}

func TestWebhook_EmptySecretRejectsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := New(NewMockService(ctrl), "")

	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	handler.Webhook(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
