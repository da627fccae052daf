package prizerepo

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

var prizeColumns = []string{"id", "name", "description", "draw_at", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`SELECT id, name, description, draw_at, created_at FROM prizes WHERE id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    *domain.Prize
	}{
		{
			name: "Prize exists",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("pz1").
					WillReturnRows(pgxmock.NewRows(prizeColumns).AddRow("pz1", "Bike", "A red bike", now, now))
			},
			result: &domain.Prize{ID: "pz1", Name: "Bike", Description: "A red bike", DrawAt: now, CreatedAt: now},
		},
		{
			name: "Prize missing",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("pz1").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("pz1").WillReturnError(errors.New("database error"))
			},
			expectErr: domain.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			prize, err := repo.FindByID(context.Background(), "pz1")
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, prize)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Lock(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name   string
		clause string
		lock   func(ctx context.Context, id string) (*domain.Prize, error)
	}{
		{name: "Entry takes a shared lock", clause: "FOR SHARE", lock: repo.LockForEntry},
		{name: "Draw takes an exclusive lock", clause: "FOR UPDATE", lock: repo.LockForDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := regexp.QuoteMeta(`SELECT id, name, description, draw_at, created_at FROM prizes WHERE id = $1 ` + tt.clause)
			mock.ExpectQuery(query).WithArgs("pz1").
				WillReturnRows(pgxmock.NewRows(prizeColumns).AddRow("pz1", "Bike", "", now, now))

			prize, err := tt.lock(context.Background(), "pz1")
			require.NoError(t, err)
			assert.Equal(t, "pz1", prize.ID)

			mock.ExpectQuery(query).WithArgs("pz2").WillReturnError(pgx.ErrNoRows)
			prize, err = tt.lock(context.Background(), "pz2")
			assert.NoError(t, err)
			assert.Nil(t, prize)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindDue(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`FROM prizes p LEFT JOIN winners w ON w.prize_id = p.id ` +
		`WHERE w.prize_id IS NULL AND p.draw_at <= $1 ` +
		`AND EXISTS (SELECT 1 FROM entries e WHERE e.prize_id = p.id) ` +
		`ORDER BY p.draw_at ASC LIMIT $2`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		ids       []string
	}{
		{
			name: "Due prizes with entries",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(now, 10).
					WillReturnRows(pgxmock.NewRows(prizeColumns).
						AddRow("pz1", "Bike", "", now.Add(-time.Hour), now).
						AddRow("pz2", "Phone", "", now.Add(-time.Minute), now))
			},
			ids: []string{"pz1", "pz2"},
		},
		{
			name: "Nothing due",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(now, 10).WillReturnRows(pgxmock.NewRows(prizeColumns))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(now, 10).WillReturnError(errors.New("database error"))
			},
			expectErr: domain.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			prizes, err := repo.FindDue(context.Background(), now, 10)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				require.NoError(t, err)
			}
			var ids []string
			for _, p := range prizes {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.ids, ids)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO prizes (id, name, description, draw_at, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`)).
		WithArgs("pz1", "Bike", "", now, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("pz1"))

	prize, err := repo.Create(context.Background(), &domain.Prize{ID: "pz1", Name: "Bike", DrawAt: now, CreatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, "pz1", prize.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
