package contestservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/pg"
	"github.com/GlebRadaev/rafflemart/pkg/clock"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	prizes  *MockPrizeRepo
	entries *MockEntryRepo
	winners *MockWinnerRepo
	ledger  *MockLedger
	tx      *pg.MockTXManager
	clock   *clock.FixedClock
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		prizes:  NewMockPrizeRepo(ctrl),
		entries: NewMockEntryRepo(ctrl),
		winners: NewMockWinnerRepo(ctrl),
		ledger:  NewMockLedger(ctrl),
		tx:      pg.NewMockTXManager(ctrl),
		clock:   clock.NewFixedClock(now),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return New(m.prizes, m.entries, m.winners, m.ledger, m.tx, m.clock), m
}

func openPrize() *domain.Prize {
	return &domain.Prize{ID: "pz1", Name: "Bike", DrawAt: now.Add(24 * time.Hour)}
}

func duePrize(id string) *domain.Prize {
	return &domain.Prize{ID: id, Name: "Bike", DrawAt: now.Add(-time.Minute)}
}

func TestEnter(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		tickets       int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Entry debits and records",
			tickets: 3,
			prepareMock: func() {
				m.prizes.EXPECT().LockForEntry(gomock.Any(), "pz1").Return(openPrize(), nil)
				m.winners.EXPECT().FindByPrizeID(gomock.Any(), "pz1").Return(nil, nil)
				m.ledger.EXPECT().Debit(gomock.Any(), "u1", int64(3)).Return(&domain.TicketBalance{UserID: "u1", Balance: 0}, nil)
				m.entries.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *domain.Entry) (*domain.Entry, error) {
						assert.Equal(t, "u1", e.UserID)
						assert.Equal(t, "pz1", e.PrizeID)
						assert.Equal(t, int64(3), e.TicketsUsed)
						assert.NotEmpty(t, e.ID)
						return e, nil
					})
			},
		},
		{
			name:    "Balance 3 entering with 5 is rejected",
			tickets: 5,
			prepareMock: func() {
				m.prizes.EXPECT().LockForEntry(gomock.Any(), "pz1").Return(openPrize(), nil)
				m.winners.EXPECT().FindByPrizeID(gomock.Any(), "pz1").Return(nil, nil)
				m.ledger.EXPECT().Debit(gomock.Any(), "u1", int64(5)).Return(nil, domain.ErrInsufficientTickets)
			},
			expectedError: domain.ErrInsufficientTickets,
		},
		{
			name:          "Zero tickets",
			tickets:       0,
			expectedError: domain.ErrInvalidTicketAmount,
		},
		{
			name:    "Unknown prize",
			tickets: 1,
			prepareMock: func() {
				m.prizes.EXPECT().LockForEntry(gomock.Any(), "pz1").Return(nil, nil)
			},
			expectedError: domain.ErrPrizeNotFound,
		},
		{
			name:    "Draw time passed",
			tickets: 1,
			prepareMock: func() {
				m.prizes.EXPECT().LockForEntry(gomock.Any(), "pz1").Return(duePrize("pz1"), nil)
			},
			expectedError: domain.ErrPrizeClosed,
		},
		{
			name:    "Winner already drawn",
			tickets: 1,
			prepareMock: func() {
				m.prizes.EXPECT().LockForEntry(gomock.Any(), "pz1").Return(openPrize(), nil)
				m.winners.EXPECT().FindByPrizeID(gomock.Any(), "pz1").Return(&domain.Winner{PrizeID: "pz1"}, nil)
			},
			expectedError: domain.ErrPrizeClosed,
		},
		{
			name:    "Entry insert failure",
			tickets: 2,
			prepareMock: func() {
				m.prizes.EXPECT().LockForEntry(gomock.Any(), "pz1").Return(openPrize(), nil)
				m.winners.EXPECT().FindByPrizeID(gomock.Any(), "pz1").Return(nil, nil)
				m.ledger.EXPECT().Debit(gomock.Any(), "u1", int64(2)).Return(&domain.TicketBalance{UserID: "u1"}, nil)
				m.entries.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUpstreamUnavailable)
			},
			expectedError: domain.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			entry, err := service.Enter(context.Background(), "u1", "pz1", tt.tickets)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, entry)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(tt.tickets), entry.TicketsUsed)
		})
	}
}

type txKey struct{}

func TestEnter_ChecksRunInsideTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	prizes := NewMockPrizeRepo(ctrl)
	winners := NewMockWinnerRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	entries := NewMockEntryRepo(ctrl)
	tx := pg.NewMockTXManager(ctrl)
	service := New(prizes, entries, winners, ledger, tx, clock.NewFixedClock(now))

	inTx := func(ctx context.Context) {
		assert.Equal(t, true, ctx.Value(txKey{}), "call made outside the transaction")
	}
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(context.WithValue(ctx, txKey{}, true))
	})
	prizes.EXPECT().LockForEntry(gomock.Any(), "pz1").DoAndReturn(func(ctx context.Context, _ string) (*domain.Prize, error) {
		inTx(ctx)
		return openPrize(), nil
	})
	winners.EXPECT().FindByPrizeID(gomock.Any(), "pz1").DoAndReturn(func(ctx context.Context, _ string) (*domain.Winner, error) {
		inTx(ctx)
		return &domain.Winner{PrizeID: "pz1"}, nil
	})

	entry, err := service.Enter(context.Background(), "u1", "pz1", 1)
	assert.ErrorIs(t, err, domain.ErrPrizeClosed)
	assert.Nil(t, entry)
}

func TestDrawWinner(t *testing.T) {
	service, m := NewMock(t)
	service.WithPicker(func(n int64) int64 { return n - 1 })

	entries := []domain.Entry{
		{ID: "e1", UserID: "u1", PrizeID: "pz1", TicketsUsed: 1},
		{ID: "e2", UserID: "u2", PrizeID: "pz1", TicketsUsed: 4},
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *DrawResult
		expectedError error
	}{
		{
			name: "Prize not due yet",
			prepareMock: func() {
				m.prizes.EXPECT().LockForDraw(gomock.Any(), "pz1").Return(openPrize(), nil)
			},
			expected: &DrawResult{PrizeID: "pz1", Reason: ReasonNotDue},
		},
		{
			name: "No entries",
			prepareMock: func() {
				m.prizes.EXPECT().LockForDraw(gomock.Any(), "pz1").Return(duePrize("pz1"), nil)
				m.winners.EXPECT().FindByPrizeID(gomock.Any(), "pz1").Return(nil, nil)
				m.entries.EXPECT().FindByPrizeID(gomock.Any(), "pz1").Return(nil, nil)
			},
			expected: &DrawResult{PrizeID: "pz1", Reason: ReasonNoEntries},
		},
		{
			name: "Weighted pick is stored",
			prepareMock: func() {
				m.prizes.EXPECT().LockForDraw(gomock.Any(), "pz1").Return(duePrize("pz1"), nil)
				m.winners.EXPECT().FindByPrizeID(gomock.Any(), "pz1").Return(nil, nil)
				m.entries.EXPECT().FindByPrizeID(gomock.Any(), "pz1").Return(entries, nil)
				m.winners.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, w *domain.Winner) (*domain.Winner, error) { return w, nil })
			},
			expected: &DrawResult{PrizeID: "pz1", Drawn: true, Winner: &domain.Winner{
				PrizeID: "pz1", UserID: "u2", EntryID: "e2", TicketsUsed: 4, DrawnAt: now,
			}},
		},
		{
			name: "Already drawn",
			prepareMock: func() {
				m.prizes.EXPECT().LockForDraw(gomock.Any(), "pz1").Return(duePrize("pz1"), nil)
				m.winners.EXPECT().FindByPrizeID(gomock.Any(), "pz1").Return(&domain.Winner{PrizeID: "pz1"}, nil)
			},
			expectedError: domain.ErrWinnerAlreadyDrawn,
		},
		{
			name: "Concurrent draw wins the insert",
			prepareMock: func() {
				m.prizes.EXPECT().LockForDraw(gomock.Any(), "pz1").Return(duePrize("pz1"), nil)
				m.winners.EXPECT().FindByPrizeID(gomock.Any(), "pz1").Return(nil, nil)
				m.entries.EXPECT().FindByPrizeID(gomock.Any(), "pz1").Return(entries, nil)
				m.winners.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrWinnerAlreadyDrawn)
			},
			expectedError: domain.ErrWinnerAlreadyDrawn,
		},
		{
			name: "Unknown prize",
			prepareMock: func() {
				m.prizes.EXPECT().LockForDraw(gomock.Any(), "pz1").Return(nil, nil)
			},
			expectedError: domain.ErrPrizeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.DrawWinner(context.Background(), "pz1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPickWeighted(t *testing.T) {
	entries := []domain.Entry{
		{ID: "e1", TicketsUsed: 1},
		{ID: "e2", TicketsUsed: 3},
		{ID: "e3", TicketsUsed: 0},
		{ID: "e4", TicketsUsed: 6},
	}

	// Walking every value of the random source hits each entry once per ticket.
	hits := make([]int64, len(entries))
	for r := int64(0); r < 10; r++ {
		idx := PickWeighted(entries, func(n int64) int64 {
			require.Equal(t, int64(10), n)
			return r
		})
		hits[idx]++
	}
	assert.Equal(t, []int64{1, 3, 0, 6}, hits)
}

func TestPickWeighted_NoTickets(t *testing.T) {
	pick := func(int64) int64 { t.Fatal("picker must not be called"); return 0 }
	assert.Equal(t, -1, PickWeighted(nil, pick))
	assert.Equal(t, -1, PickWeighted([]domain.Entry{{ID: "e1"}}, pick))
}

func TestPickWeighted_Distribution(t *testing.T) {
	entries := []domain.Entry{{ID: "e1", TicketsUsed: 1}, {ID: "e2", TicketsUsed: 9}}
	service, _ := NewMock(t)

	const rounds = 20000
	var second int
	for i := 0; i < rounds; i++ {
		if PickWeighted(entries, service.pick) == 1 {
			second++
		}
	}
	assert.InDelta(t, 0.9, float64(second)/rounds, 0.02)
}

func TestDrawDue(t *testing.T) {
	service, m := NewMock(t)
	service.WithPicker(func(int64) int64 { return 0 })

	m.prizes.EXPECT().FindDue(gomock.Any(), now, uint32(dueBatchSize)).
		Return([]domain.Prize{*duePrize("pz1"), *duePrize("pz2"), *duePrize("pz3"), *duePrize("pz4")}, nil)

	m.prizes.EXPECT().LockForDraw(gomock.Any(), "pz1").Return(duePrize("pz1"), nil)
	m.winners.EXPECT().FindByPrizeID(gomock.Any(), "pz1").Return(nil, nil)
	m.entries.EXPECT().FindByPrizeID(gomock.Any(), "pz1").Return([]domain.Entry{{ID: "e1", UserID: "u1", TicketsUsed: 2}}, nil)
	m.winners.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w *domain.Winner) (*domain.Winner, error) { return w, nil })

	m.prizes.EXPECT().LockForDraw(gomock.Any(), "pz2").Return(duePrize("pz2"), nil)
	m.winners.EXPECT().FindByPrizeID(gomock.Any(), "pz2").Return(nil, nil)
	m.entries.EXPECT().FindByPrizeID(gomock.Any(), "pz2").Return(nil, nil)

	m.prizes.EXPECT().LockForDraw(gomock.Any(), "pz3").Return(nil, domain.ErrUpstreamUnavailable)

	m.prizes.EXPECT().LockForDraw(gomock.Any(), "pz4").Return(duePrize("pz4"), nil)
	m.winners.EXPECT().FindByPrizeID(gomock.Any(), "pz4").Return(&domain.Winner{PrizeID: "pz4"}, nil)

	summary, err := service.DrawDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &DrawSummary{Drawn: 1, NoEntries: 1, Skipped: 1, Failed: 1}, summary)
}

func TestGetWinner(t *testing.T) {
	service, m := NewMock(t)

	m.prizes.EXPECT().FindByID(gomock.Any(), "pz1").Return(duePrize("pz1"), nil)
	m.winners.EXPECT().FindByPrizeID(gomock.Any(), "pz1").Return(nil, nil)
	winner, err := service.GetWinner(context.Background(), "pz1")
	assert.NoError(t, err)
	assert.Nil(t, winner)

	m.prizes.EXPECT().FindByID(gomock.Any(), "nope").Return(nil, nil)
	_, err = service.GetWinner(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrPrizeNotFound)
}

func TestCreatePrize(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		prizeName     string
		drawAt        time.Time
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Prize opened",
			prizeName: "Bike",
			drawAt:    now.Add(48 * time.Hour),
			prepareMock: func() {
				m.prizes.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Prize) (*domain.Prize, error) {
						assert.NotEmpty(t, p.ID)
						assert.Equal(t, now, p.CreatedAt)
						assert.Equal(t, now.Add(48*time.Hour), p.DrawAt)
						return p, nil
					})
			},
		},
		{
			name:          "Missing name",
			drawAt:        now.Add(time.Hour),
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidPrize,
		},
		{
			name:          "Draw time in the past",
			prizeName:     "Bike",
			drawAt:        now.Add(-time.Hour),
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidPrize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			prize, err := service.CreatePrize(context.Background(), tt.prizeName, "", tt.drawAt)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, prize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.prizeName, prize.Name)
		})
	}
}
