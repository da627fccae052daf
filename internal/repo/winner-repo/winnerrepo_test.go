package winnerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/rafflemart/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO winners (prize_id, user_id, entry_id, tickets_used, drawn_at) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (prize_id) DO NOTHING RETURNING prize_id`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "First draw is stored",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("pz1", "u1", "e1", int64(3), now).
					WillReturnRows(pgxmock.NewRows([]string{"prize_id"}).AddRow("pz1"))
			},
		},
		{
			name: "Prize already has a winner",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("pz1", "u1", "e1", int64(3), now).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrWinnerAlreadyDrawn,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("pz1", "u1", "e1", int64(3), now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: domain.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			winner, err := repo.Create(context.Background(), &domain.Winner{PrizeID: "pz1", UserID: "u1", EntryID: "e1", TicketsUsed: 3, DrawnAt: now})
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, winner)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "pz1", winner.PrizeID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByPrizeID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`SELECT prize_id, user_id, entry_id, tickets_used, drawn_at FROM winners WHERE prize_id = $1`)

	t.Run("Winner exists", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("pz1").
			WillReturnRows(pgxmock.NewRows([]string{"prize_id", "user_id", "entry_id", "tickets_used", "drawn_at"}).
				AddRow("pz1", "u1", "e1", int64(3), now))

		winner, err := repo.FindByPrizeID(context.Background(), "pz1")
		require.NoError(t, err)
		assert.Equal(t, &domain.Winner{PrizeID: "pz1", UserID: "u1", EntryID: "e1", TicketsUsed: 3, DrawnAt: now}, winner)
	})

	t.Run("Not drawn yet", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("pz1").WillReturnError(pgx.ErrNoRows)

		winner, err := repo.FindByPrizeID(context.Background(), "pz1")
		assert.NoError(t, err)
		assert.Nil(t, winner)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
