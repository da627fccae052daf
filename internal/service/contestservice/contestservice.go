package contestservice

//go:generate mockgen -source=contestservice.go -destination=mock_contestservice.go -package=contestservice

import (
	"context"
	"errors"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/pg"
	"github.com/GlebRadaev/rafflemart/pkg/clock"
)

const (
	ReasonNotDue    = "not_due"
	ReasonNoEntries = "no_entries"

	dueBatchSize    = 100
	drawConcurrency = 4
)

type PrizeRepo interface {
	Create(ctx context.Context, prize *domain.Prize) (*domain.Prize, error)
	FindByID(ctx context.Context, prizeID string) (*domain.Prize, error)
	LockForEntry(ctx context.Context, prizeID string) (*domain.Prize, error)
	LockForDraw(ctx context.Context, prizeID string) (*domain.Prize, error)
	FindAll(ctx context.Context) ([]domain.Prize, error)
	FindDue(ctx context.Context, now time.Time, limit uint32) ([]domain.Prize, error)
}

type EntryRepo interface {
	Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	FindByPrizeID(ctx context.Context, prizeID string) ([]domain.Entry, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Entry, error)
}

type WinnerRepo interface {
	Create(ctx context.Context, winner *domain.Winner) (*domain.Winner, error)
	FindByPrizeID(ctx context.Context, prizeID string) (*domain.Winner, error)
}

type Ledger interface {
	Debit(ctx context.Context, userID string, amount int64) (*domain.TicketBalance, error)
}

// Picker returns a uniformly distributed value in [0, n).
type Picker func(n int64) int64

type DrawResult struct {
	PrizeID string         `json:"prize_id"`
	Drawn   bool           `json:"drawn"`
	Reason  string         `json:"reason,omitempty"`
	Winner  *domain.Winner `json:"winner,omitempty"`
}

type DrawSummary struct {
	Drawn     int `json:"drawn"`
	NoEntries int `json:"no_entries"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

type Service struct {
	prizes    PrizeRepo
	entries   EntryRepo
	winners   WinnerRepo
	ledger    Ledger
	txManager pg.TXManager
	clock     clock.Clock
	pick      Picker
}

func New(prizes PrizeRepo, entries EntryRepo, winners WinnerRepo, ledger Ledger, txManager pg.TXManager, clk clock.Clock) *Service {
	return &Service{
		prizes:    prizes,
		entries:   entries,
		winners:   winners,
		ledger:    ledger,
		txManager: txManager,
		clock:     clk,
		pick:      rand.Int64N,
	}
}

// WithPicker replaces the random source used by draws.
func (s *Service) WithPicker(pick Picker) *Service {
	s.pick = pick
	return s
}

// CreatePrize opens a prize for entries until drawAt.
func (s *Service) CreatePrize(ctx context.Context, name, description string, drawAt time.Time) (*domain.Prize, error) {
	if name == "" {
		return nil, domain.Reject(domain.ErrInvalidPrize, "prize name is required")
	}
	now := s.clock.Now()
	if !drawAt.After(now) {
		return nil, domain.Reject(domain.ErrInvalidPrize, "draw time %s is not in the future", drawAt.Format(time.RFC3339))
	}
	prize, err := s.prizes.Create(ctx, &domain.Prize{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		DrawAt:      drawAt.UTC(),
		CreatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("prize created", zap.String("prizeID", prize.ID), zap.Time("drawAt", prize.DrawAt))
	return prize, nil
}

func (s *Service) GetPrizes(ctx context.Context) ([]domain.Prize, error) {
	return s.prizes.FindAll(ctx)
}

func (s *Service) GetEntries(ctx context.Context, userID string) ([]domain.Entry, error) {
	return s.entries.FindByUserID(ctx, userID)
}

// GetWinner returns nil when the prize has not been drawn yet.
func (s *Service) GetWinner(ctx context.Context, prizeID string) (*domain.Winner, error) {
	if _, err := s.prize(ctx, prizeID); err != nil {
		return nil, err
	}
	return s.winners.FindByPrizeID(ctx, prizeID)
}

func (s *Service) prize(ctx context.Context, prizeID string) (*domain.Prize, error) {
	return s.lock(ctx, prizeID, s.prizes.FindByID)
}

func (s *Service) lock(ctx context.Context, prizeID string, find func(context.Context, string) (*domain.Prize, error)) (*domain.Prize, error) {
	prize, err := find(ctx, prizeID)
	if err != nil {
		return nil, err
	}
	if prize == nil {
		return nil, domain.Reject(domain.ErrPrizeNotFound, "prize %s not found", prizeID)
	}
	return prize, nil
}

// Enter spends tickets on a prize. The debit and the entry are written in one
// transaction holding a shared lock on the prize, so a draw can't commit
// between the close check and the insert.
func (s *Service) Enter(ctx context.Context, userID, prizeID string, tickets int64) (*domain.Entry, error) {
	if tickets <= 0 {
		return nil, domain.Reject(domain.ErrInvalidTicketAmount, "can't enter with %d tickets", tickets)
	}

	var entry *domain.Entry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		prize, err := s.lock(ctx, prizeID, s.prizes.LockForEntry)
		if err != nil {
			return err
		}
		now := s.clock.Now()
		if !now.Before(prize.DrawAt) {
			return domain.Reject(domain.ErrPrizeClosed, "prize %s closed at %s", prizeID, prize.DrawAt.Format(time.RFC3339))
		}
		winner, err := s.winners.FindByPrizeID(ctx, prizeID)
		if err != nil {
			return err
		}
		if winner != nil {
			return domain.Reject(domain.ErrPrizeClosed, "prize %s already drawn", prizeID)
		}

		if _, err := s.ledger.Debit(ctx, userID, tickets); err != nil {
			return err
		}
		created, err := s.entries.Create(ctx, &domain.Entry{
			ID:          uuid.NewString(),
			UserID:      userID,
			PrizeID:     prizeID,
			TicketsUsed: tickets,
			CreatedAt:   now,
		})
		if err != nil {
			return err
		}
		entry = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("contest entered", zap.String("userID", userID), zap.String("prizeID", prizeID), zap.Int64("tickets", tickets))
	return entry, nil
}

// DrawWinner picks one entry of a due prize with probability proportional to
// the tickets it used. The prize row stays locked until the winner is saved.
func (s *Service) DrawWinner(ctx context.Context, prizeID string) (*DrawResult, error) {
	var result *DrawResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		prize, err := s.lock(ctx, prizeID, s.prizes.LockForDraw)
		if err != nil {
			return err
		}
		now := s.clock.Now()
		if now.Before(prize.DrawAt) {
			result = &DrawResult{PrizeID: prizeID, Reason: ReasonNotDue}
			return nil
		}

		existing, err := s.winners.FindByPrizeID(ctx, prizeID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Reject(domain.ErrWinnerAlreadyDrawn, "prize %s already drawn", prizeID)
		}

		entries, err := s.entries.FindByPrizeID(ctx, prizeID)
		if err != nil {
			return err
		}
		idx := PickWeighted(entries, s.pick)
		if idx < 0 {
			zap.L().Info("no entries to draw", zap.String("prizeID", prizeID))
			result = &DrawResult{PrizeID: prizeID, Reason: ReasonNoEntries}
			return nil
		}

		chosen := entries[idx]
		winner, err := s.winners.Create(ctx, &domain.Winner{
			PrizeID:     prizeID,
			UserID:      chosen.UserID,
			EntryID:     chosen.ID,
			TicketsUsed: chosen.TicketsUsed,
			DrawnAt:     now,
		})
		if err != nil {
			return err
		}
		zap.L().Info("winner drawn", zap.String("prizeID", prizeID), zap.String("userID", winner.UserID), zap.Int("entries", len(entries)))
		result = &DrawResult{PrizeID: prizeID, Drawn: true, Winner: winner}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DuePrizes lists prizes whose draw time has passed, that have entries and no winner.
func (s *Service) DuePrizes(ctx context.Context, limit uint32) ([]domain.Prize, error) {
	return s.prizes.FindDue(ctx, s.clock.Now(), limit)
}

// DrawDue draws every due prize. One failing prize does not stop the others.
func (s *Service) DrawDue(ctx context.Context) (*DrawSummary, error) {
	prizes, err := s.DuePrizes(ctx, dueBatchSize)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		summary DrawSummary
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(drawConcurrency)
	for _, prize := range prizes {
		g.Go(func() error {
			result, err := s.DrawWinner(gCtx, prize.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, domain.ErrWinnerAlreadyDrawn):
				summary.Skipped++
			case err != nil:
				summary.Failed++
				zap.L().Error("draw failed", zap.String("prizeID", prize.ID), zap.Error(err))
			case result.Drawn:
				summary.Drawn++
			case result.Reason == ReasonNoEntries:
				summary.NoEntries++
			default:
				summary.Skipped++
			}
			return nil
		})
	}
	_ = g.Wait()

	zap.L().Info("due draws finished",
		zap.Int("drawn", summary.Drawn),
		zap.Int("noEntries", summary.NoEntries),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return &summary, nil
}

// PickWeighted returns the index of the chosen entry, or -1 when no entry
// holds tickets. It binary-searches the cumulative ticket counts, which gives
// each ticket the same chance as drawing from one slot per ticket.
func PickWeighted(entries []domain.Entry, pick Picker) int {
	cumulative := make([]int64, len(entries))
	var total int64
	for i, e := range entries {
		if e.TicketsUsed > 0 {
			total += e.TicketsUsed
		}
		cumulative[i] = total
	}
	if total == 0 {
		return -1
	}
	r := pick(total)
	return sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > r })
}
