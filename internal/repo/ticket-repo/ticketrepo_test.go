package ticketrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/rafflemart/internal/domain"
)

var balanceColumns = []string{"user_id", "balance", "earned_total", "spent_total"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_GetBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT user_id, balance, earned_total, spent_total FROM ticket_balances WHERE user_id = $1`)

	tests := []struct {
		name      string
		userID    string
		mockSetup func()
		expectErr error
		result    *domain.TicketBalance
	}{
		{
			name:   "Existing balance",
			userID: "u1",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("u1").
					WillReturnRows(pgxmock.NewRows(balanceColumns).AddRow("u1", int64(7), int64(10), int64(3)))
			},
			result: &domain.TicketBalance{UserID: "u1", Balance: 7, EarnedTotal: 10, SpentTotal: 3},
		},
		{
			name:   "No balance row",
			userID: "u2",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u2").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:   "Database error",
			userID: "u1",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u1").WillReturnError(errors.New("database error"))
			},
			expectErr: domain.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetBalance(context.Background(), tt.userID)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateBalance(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO ticket_balances (user_id, balance, earned_total, spent_total)
		VALUES ($1, 0, 0, 0)
		RETURNING user_id, balance, earned_total, spent_total`)).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(balanceColumns).AddRow("u1", int64(0), int64(0), int64(0)))

	result, err := repo.CreateBalance(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, &domain.TicketBalance{UserID: "u1"}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Credit(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO ticket_balances (user_id, balance, earned_total, spent_total) VALUES ($1, $2, $2, 0) ON CONFLICT (user_id) DO UPDATE`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    *domain.TicketBalance
	}{
		{
			name: "Credit increments balance",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("u1", int64(50)).
					WillReturnRows(pgxmock.NewRows(balanceColumns).AddRow("u1", int64(53), int64(60), int64(7)))
			},
			result: &domain.TicketBalance{UserID: "u1", Balance: 53, EarnedTotal: 60, SpentTotal: 7},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("u1", int64(50)).
					WillReturnError(errors.New("connection reset"))
			},
			expectErr: domain.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Credit(context.Background(), "u1", 50)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Debit(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE ticket_balances SET balance = balance - $2, spent_total = spent_total + $2 WHERE user_id = $1 AND balance >= $2`)

	tests := []struct {
		name      string
		amount    int64
		mockSetup func()
		expectErr error
		result    *domain.TicketBalance
	}{
		{
			name:   "Debit within balance",
			amount: 3,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("u1", int64(3)).
					WillReturnRows(pgxmock.NewRows(balanceColumns).AddRow("u1", int64(2), int64(5), int64(3)))
			},
			result: &domain.TicketBalance{UserID: "u1", Balance: 2, EarnedTotal: 5, SpentTotal: 3},
		},
		{
			name:   "Balance does not cover amount",
			amount: 5,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("u1", int64(5)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrInsufficientTickets,
		},
		{
			name:   "Database error",
			amount: 5,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("u1", int64(5)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: domain.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Debit(context.Background(), "u1", tt.amount)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
