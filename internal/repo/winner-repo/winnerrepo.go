package winnerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create stores the winner of a prize. prize_id is the primary key, so only
// the first draw of a prize is ever persisted.
func (r *Repository) Create(ctx context.Context, winner *domain.Winner) (*domain.Winner, error) {
	query := `
		INSERT INTO winners (prize_id, user_id, entry_id, tickets_used, drawn_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (prize_id) DO NOTHING
		RETURNING prize_id
	`
	err := r.db.QueryRow(ctx, query, winner.PrizeID, winner.UserID, winner.EntryID, winner.TicketsUsed, winner.DrawnAt).Scan(&winner.PrizeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.Reject(domain.ErrWinnerAlreadyDrawn, "winner already drawn for prize %s", winner.PrizeID)
	}
	if err != nil {
		zap.L().Error("can't save winner", zap.Error(err))
		return nil, domain.Unavailable(err, "save winner")
	}
	return winner, nil
}

func (r *Repository) FindByPrizeID(ctx context.Context, prizeID string) (*domain.Winner, error) {
	query := `
        SELECT prize_id, user_id, entry_id, tickets_used, drawn_at
        FROM winners
        WHERE prize_id = $1
    `
	var w domain.Winner
	err := r.db.QueryRow(ctx, query, prizeID).Scan(&w.PrizeID, &w.UserID, &w.EntryID, &w.TicketsUsed, &w.DrawnAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find winner", zap.Error(err))
		return nil, domain.Unavailable(err, "find winner")
	}
	return &w, nil
}
