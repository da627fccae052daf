package entryrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	query := `
		INSERT INTO entries (id, user_id, prize_id, tickets_used, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, entry.ID, entry.UserID, entry.PrizeID, entry.TicketsUsed, entry.CreatedAt).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't save entry", zap.Error(err))
		return nil, domain.Unavailable(err, "save entry")
	}
	return entry, nil
}

// FindByPrizeID lists entries in insertion order; the draw depends on a stable order.
func (r *Repository) FindByPrizeID(ctx context.Context, prizeID string) ([]domain.Entry, error) {
	query := `
        SELECT id, user_id, prize_id, tickets_used, created_at
        FROM entries
        WHERE prize_id = $1
        ORDER BY created_at ASC, id ASC
    `
	return r.list(ctx, query, prizeID)
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.Entry, error) {
	query := `
        SELECT id, user_id, prize_id, tickets_used, created_at
        FROM entries
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, userID)
}

func (r *Repository) list(ctx context.Context, query string, arg string) ([]domain.Entry, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("failed to fetch entries", zap.Error(err))
		return nil, domain.Unavailable(err, "fetch entries")
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.PrizeID, &e.TicketsUsed, &e.CreatedAt); err != nil {
			zap.L().Error("failed to scan entry row", zap.Error(err))
			return nil, domain.Unavailable(err, "scan entry")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Unavailable(err, "iterate entries")
	}
	return entries, nil
}
